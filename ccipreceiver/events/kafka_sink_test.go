package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pushchain/ccip-receiver/ccipreceiver/types"
)

func TestKafkaSink(t *testing.T) {
	t.Run("sends envelope", func(t *testing.T) {
		cfg := sarama.NewConfig()
		cfg.Producer.Return.Successes = true
		producer := mocks.NewSyncProducer(t, cfg)
		producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
			var env Envelope
			if err := json.Unmarshal(val, &env); err != nil {
				return err
			}
			if env.Type != types.EventTypeMessageReceived {
				return errors.New("unexpected event type " + env.Type)
			}
			return nil
		})

		sink := NewKafkaSinkWithProducer(producer, "ccipreceiver.events")
		require.NoError(t, sink.Emit(context.Background(), types.MessageReceived{TokenCount: 1}))
		require.NoError(t, sink.Close())
	})

	t.Run("producer failure", func(t *testing.T) {
		cfg := sarama.NewConfig()
		cfg.Producer.Return.Successes = true
		producer := mocks.NewSyncProducer(t, cfg)
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

		sink := NewKafkaSinkWithProducer(producer, "ccipreceiver.events")
		err := sink.Emit(context.Background(), types.MessageReceived{})
		require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
		assert.Contains(t, err.Error(), "kafka emit failed")
		require.NoError(t, sink.Close())
	})
}
