package keeper

import (
	"errors"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/gagliardetto/solana-go"
	"gorm.io/gorm"

	"github.com/pushchain/ccip-receiver/ccipreceiver/events"
	"github.com/pushchain/ccip-receiver/ccipreceiver/types"
)

// forwardToken moves one bound transfer from the holding account to the
// recipient's associated token account, signed by the token admin PDA.
// The holding account's owner is taken from the ledger, not from the caller's
// account references.
func (k *Keeper) forwardToken(tx *gorm.DB, recipient solana.PublicKey, t types.TokenTransfer, batch *events.Batch) error {
	owner, err := k.ledger.Owner(tx, t.Holding)
	if errors.Is(err, types.ErrAccountNotFound) {
		return errorsmod.Wrapf(types.ErrInvalidTokenAccountOwner,
			"token %d: %s is not a token account", t.Index, t.Holding)
	}
	if err != nil {
		return errorsmod.Wrapf(err, "token %d", t.Index)
	}
	if !owner.Equals(k.params.TokenProgram) {
		return errorsmod.Wrapf(types.ErrInvalidTokenAccountOwner,
			"token %d: %s is owned by %s", t.Index, t.Holding, owner)
	}

	balance, err := k.ledger.Balance(tx, t.Holding, t.Mint)
	if err != nil {
		return errorsmod.Wrapf(err, "token %d", t.Index)
	}
	if balance.LT(math.NewUint(t.Amount)) {
		return errorsmod.Wrapf(types.ErrInsufficientFunds,
			"token %d: holding account %s has %s, needs %d", t.Index, t.Holding, balance, t.Amount)
	}
	batch.Add(types.TokenReceived{Token: t.Mint, Amount: t.Amount, Index: t.Index})

	dest, err := k.ledger.EnsureAssociatedAccount(tx, recipient, t.Mint, k.params.TokenProgram)
	if err != nil {
		return errorsmod.Wrapf(err, "token %d: recipient account", t.Index)
	}
	if err := k.ledger.Transfer(tx, t.Holding, dest, t.Mint, t.TokenAdmin, t.Amount); err != nil {
		return errorsmod.Wrapf(err, "token %d: forward", t.Index)
	}
	batch.Add(types.TokensForwarded{Token: t.Mint, Amount: t.Amount, Recipient: dest})

	k.logger.Debug().
		Str("mint", t.Mint.String()).
		Uint64("amount", t.Amount).
		Uint8("index", t.Index).
		Str("recipient", dest.String()).
		Msg("forwarded token")
	return nil
}
