// Package events delivers receiver events to external consumers. Events of an
// operation are collected in a Batch and only flushed once the operation's
// state change is committed.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/pushchain/ccip-receiver/ccipreceiver/types"
)

// Sink receives committed events.
type Sink interface {
	Emit(ctx context.Context, event types.Event) error
	Close() error
}

// Envelope is the wire shape published to external sinks.
type Envelope struct {
	Type string          `json:"type"`
	TS   int64           `json:"ts"`
	Data json.RawMessage `json:"data"`
}

// NewEnvelope wraps event with its type and a millisecond timestamp.
func NewEnvelope(event types.Event, now time.Time) (Envelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to marshal %s event: %w", event.EventType(), err)
	}
	return Envelope{
		Type: event.EventType(),
		TS:   now.UnixMilli(),
		Data: data,
	}, nil
}

func encodeEnvelope(event types.Event) ([]byte, error) {
	env, err := NewEnvelope(event, time.Now())
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}

// Batch collects the events of one operation in emission order.
type Batch struct {
	events []types.Event
}

func NewBatch() *Batch {
	return &Batch{}
}

func (b *Batch) Add(event types.Event) {
	b.events = append(b.events, event)
}

func (b *Batch) Events() []types.Event {
	return b.events
}

func (b *Batch) Len() int {
	return len(b.events)
}

// Emitter fans committed events out to every configured sink.
type Emitter struct {
	mu     sync.RWMutex
	sinks  []Sink
	logger zerolog.Logger
}

// NewEmitter creates an emitter publishing to sinks.
func NewEmitter(logger zerolog.Logger, sinks ...Sink) *Emitter {
	return &Emitter{
		sinks:  sinks,
		logger: logger.With().Str("component", "event_emitter").Logger(),
	}
}

// AddSink registers another sink.
func (e *Emitter) AddSink(sink Sink) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sinks = append(e.sinks, sink)
}

// Flush emits every event of b, in order, to every sink. A failing sink does
// not stop delivery to the others; all failures are returned joined.
func (e *Emitter) Flush(ctx context.Context, b *Batch) error {
	if e == nil || b == nil {
		return nil
	}

	e.mu.RLock()
	sinks := e.sinks
	e.mu.RUnlock()

	var errs []error
	for _, event := range b.Events() {
		for _, sink := range sinks {
			if err := sink.Emit(ctx, event); err != nil {
				e.logger.Warn().
					Err(err).
					Str("event", event.EventType()).
					Msg("failed to deliver event")
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Close closes all sinks.
func (e *Emitter) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var errs []error
	for _, sink := range e.sinks {
		if err := sink.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	e.sinks = nil
	return errors.Join(errs...)
}
