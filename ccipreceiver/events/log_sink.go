package events

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/pushchain/ccip-receiver/ccipreceiver/types"
)

// LogSink writes every event as a structured log line.
type LogSink struct {
	logger zerolog.Logger
}

func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger.With().Str("component", "event_log").Logger()}
}

func (s *LogSink) Emit(_ context.Context, event types.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	s.logger.Info().
		Str("event", event.EventType()).
		RawJSON("data", data).
		Msg("receiver event")
	return nil
}

func (s *LogSink) Close() error { return nil }
