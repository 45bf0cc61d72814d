package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"github.com/gagliardetto/solana-go"
	"gorm.io/gorm"

	"github.com/pushchain/ccip-receiver/ccipreceiver/events"
	"github.com/pushchain/ccip-receiver/ccipreceiver/types"
)

// WithdrawTokens moves amount of mint from the program's holding account to
// the owner's associated token account. Only the owner may call it.
func (k *Keeper) WithdrawTokens(ctx context.Context, caller solana.PublicKey, amount uint64, mint solana.PublicKey) (err error) {
	defer func() { k.metrics.ObserveWithdraw(err) }()

	batch := events.NewBatch()
	err = k.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cfg, err := loadConfig(tx)
		if err != nil {
			return err
		}
		if !caller.Equals(cfg.Owner) {
			return errorsmod.Wrapf(types.ErrUnauthorized, "got %s", caller)
		}

		admin, _, err := types.DeriveTokenAdmin(mint, k.params.ProgramID)
		if err != nil {
			return err
		}
		holding, err := types.DeriveHoldingAccount(mint, k.params.ProgramID)
		if err != nil {
			return err
		}
		dest, err := k.ledger.EnsureAssociatedAccount(tx, cfg.Owner, mint, k.params.TokenProgram)
		if err != nil {
			return errorsmod.Wrap(err, "owner account")
		}
		if err := k.ledger.Transfer(tx, holding, dest, mint, admin, amount); err != nil {
			return errorsmod.Wrap(err, "withdraw")
		}

		batch.Add(types.TokensWithdrawn{Token: mint, Amount: amount, Owner: cfg.Owner})
		return nil
	})
	if err != nil {
		k.logger.Warn().Err(err).Str("caller", caller.String()).Str("mint", mint.String()).Msg("withdraw rejected")
		return err
	}

	k.flush(ctx, batch)

	k.logger.Info().
		Str("mint", mint.String()).
		Uint64("amount", amount).
		Msg("withdrew tokens")
	return nil
}
