package keeper

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/pushchain/ccip-receiver/ccipreceiver/types"
)

func TestInitialize(t *testing.T) {
	t.Run("stores config and emits event", func(t *testing.T) {
		f := setupKeeper(t)

		require.NoError(t, f.k.Initialize(f.ctx, f.owner, f.router, f.recipient))

		cfg, err := f.k.GetConfig(f.ctx)
		require.NoError(t, err)
		require.Equal(t, types.ReceiverConfig{Owner: f.owner, Router: f.router, Recipient: f.recipient}, cfg)
		require.Equal(t, []types.Event{types.ReceiverInitialized{Owner: f.owner, Router: f.router}}, f.recorder.Events())
	})

	t.Run("recipient defaults to owner", func(t *testing.T) {
		f := setupKeeper(t)

		require.NoError(t, f.k.Initialize(f.ctx, f.owner, f.router, solana.PublicKey{}))

		cfg, err := f.k.GetConfig(f.ctx)
		require.NoError(t, err)
		require.Equal(t, f.owner, cfg.Recipient)
	})

	t.Run("only once", func(t *testing.T) {
		f := setupInitialized(t)

		err := f.k.Initialize(f.ctx, solana.NewWallet().PublicKey(), f.router, f.recipient)
		require.ErrorIs(t, err, types.ErrAlreadyInitialized)

		cfg, err := f.k.GetConfig(f.ctx)
		require.NoError(t, err)
		require.Equal(t, f.owner, cfg.Owner)
		require.Empty(t, f.recorder.Events())
	})

	t.Run("rejects zero identities", func(t *testing.T) {
		f := setupKeeper(t)

		require.ErrorIs(t, f.k.Initialize(f.ctx, solana.PublicKey{}, f.router, f.recipient), types.ErrInvalidConfig)
		require.ErrorIs(t, f.k.Initialize(f.ctx, f.owner, solana.PublicKey{}, f.recipient), types.ErrInvalidConfig)

		_, err := f.k.GetConfig(f.ctx)
		require.ErrorIs(t, err, types.ErrNotInitialized)
	})
}
