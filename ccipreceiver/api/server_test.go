package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pushchain/ccip-receiver/ccipreceiver/store"
	"github.com/pushchain/ccip-receiver/ccipreceiver/types"
)

// mockReceiver implements ReceiverQuerier and AccountQuerier for testing
type mockReceiver struct {
	config   *types.ReceiverConfig
	latest   *types.LatestMessage
	accounts map[solana.PublicKey]store.TokenAccount
	err      error
}

func (m *mockReceiver) GetConfig(context.Context) (types.ReceiverConfig, error) {
	if m.err != nil {
		return types.ReceiverConfig{}, m.err
	}
	if m.config == nil {
		return types.ReceiverConfig{}, types.ErrNotInitialized
	}
	return *m.config, nil
}

func (m *mockReceiver) GetLatestMessage(context.Context) (types.LatestMessage, error) {
	if m.err != nil {
		return types.LatestMessage{}, m.err
	}
	if m.latest == nil {
		return types.LatestMessage{}, types.ErrLatestMessageNotFound
	}
	return *m.latest, nil
}

func (m *mockReceiver) Account(_ context.Context, address solana.PublicKey) (store.TokenAccount, error) {
	acc, ok := m.accounts[address]
	if !ok {
		return store.TokenAccount{}, types.ErrAccountNotFound
	}
	return acc, nil
}

func TestNewServer(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	t.Run("Create server with valid config", func(t *testing.T) {
		receiver := &mockReceiver{}
		server, err := NewServer(logger, 8080, receiver, receiver, nil)
		require.NoError(t, err)

		assert.NotNil(t, server.server)
		assert.Equal(t, ":8080", server.server.Addr)
		assert.NotNil(t, server.Handler())
	})

	t.Run("Nil receiver", func(t *testing.T) {
		_, err := NewServer(logger, 8080, nil, nil, nil)
		assert.Error(t, err)
	})
}

func TestServerStartStop(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	t.Run("Start and stop server", func(t *testing.T) {
		server, err := NewServer(logger, 0, &mockReceiver{}, nil, nil)
		require.NoError(t, err)

		require.NoError(t, server.Start())
		assert.NoError(t, server.Stop())
	})

	t.Run("Start with nil server", func(t *testing.T) {
		server := &Server{logger: logger}

		err := server.Start()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "query server is nil")
	})

	t.Run("Stop with nil server", func(t *testing.T) {
		server := &Server{logger: logger}
		assert.NoError(t, server.Stop())
	})
}

func TestServerIntegration(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	server, err := NewServer(logger, 18081, &mockReceiver{}, nil, nil)
	require.NoError(t, err)
	require.NoError(t, server.Start())
	defer server.Stop()

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://localhost:18081/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
