package keeper

import (
	"context"
	"errors"

	"github.com/gagliardetto/solana-go"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/pushchain/ccip-receiver/ccipreceiver/events"
	"github.com/pushchain/ccip-receiver/ccipreceiver/store"
	"github.com/pushchain/ccip-receiver/ccipreceiver/types"
)

// Initialize stores the receiver's owner, router and forwarding recipient.
// A zero recipient defaults to the owner. It can only be called once.
func (k *Keeper) Initialize(ctx context.Context, owner, router, recipient solana.PublicKey) error {
	if recipient.IsZero() {
		recipient = owner
	}
	cfg := types.ReceiverConfig{Owner: owner, Router: router, Recipient: recipient}
	if err := cfg.Validate(); err != nil {
		return err
	}

	err := k.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := loadConfig(tx)
		switch {
		case err == nil:
			return types.ErrAlreadyInitialized
		case !errors.Is(err, types.ErrNotInitialized):
			return err
		}

		row := store.ReceiverConfig{
			ID:        store.SingletonID,
			Owner:     owner.String(),
			Router:    router.String(),
			Recipient: recipient.String(),
		}
		if err := tx.Create(&row).Error; err != nil {
			return pkgerrors.Wrap(err, "failed to store receiver config")
		}
		return nil
	})
	if err != nil {
		return err
	}

	batch := events.NewBatch()
	batch.Add(types.ReceiverInitialized{Owner: owner, Router: router})
	k.flush(ctx, batch)

	k.logger.Info().
		Str("owner", owner.String()).
		Str("router", router.String()).
		Str("recipient", recipient.String()).
		Msg("receiver initialized")
	return nil
}
