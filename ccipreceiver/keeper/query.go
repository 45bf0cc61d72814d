package keeper

import (
	"context"
	"errors"
	"strconv"

	"github.com/gagliardetto/solana-go"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/pushchain/ccip-receiver/ccipreceiver/store"
	"github.com/pushchain/ccip-receiver/ccipreceiver/types"
)

// GetLatestMessage returns the most recently accepted message.
func (k *Keeper) GetLatestMessage(ctx context.Context) (types.LatestMessage, error) {
	var row store.LatestMessage
	err := k.db.WithContext(ctx).Where("id = ?", store.SingletonID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return types.LatestMessage{}, types.ErrLatestMessageNotFound
	}
	if err != nil {
		return types.LatestMessage{}, pkgerrors.Wrap(err, "failed to load latest message")
	}

	id, err := types.ParseMessageID(row.MessageID)
	if err != nil {
		return types.LatestMessage{}, pkgerrors.Wrap(err, "corrupt message id")
	}
	selector, err := strconv.ParseUint(row.SourceChainSelector, 10, 64)
	if err != nil {
		return types.LatestMessage{}, pkgerrors.Wrap(err, "corrupt source chain selector")
	}

	return types.LatestMessage{
		MessageID:           id,
		SourceChainSelector: selector,
		Sender:              types.HexBytes(row.Sender),
		Data:                types.HexBytes(row.Data),
		DataLength:          row.DataLength,
		TokenCount:          row.TokenCount,
		ReceivedAt:          row.ReceivedAt.UTC(),
	}, nil
}

// GetConfig returns the receiver config.
func (k *Keeper) GetConfig(ctx context.Context) (types.ReceiverConfig, error) {
	return loadConfig(k.db.WithContext(ctx))
}

// HoldingAccount returns the program's holding account for mint and its token admin PDA.
func (k *Keeper) HoldingAccount(mint solana.PublicKey) (holding, admin solana.PublicKey, err error) {
	admin, _, err = types.DeriveTokenAdmin(mint, k.params.ProgramID)
	if err != nil {
		return solana.PublicKey{}, solana.PublicKey{}, err
	}
	holding, err = types.DeriveHoldingAccount(mint, k.params.ProgramID)
	if err != nil {
		return solana.PublicKey{}, solana.PublicKey{}, err
	}
	return holding, admin, nil
}

// RemainingAccountsFor returns the remaining-account keys a router passes for
// mints, in group order.
func (k *Keeper) RemainingAccountsFor(mints ...solana.PublicKey) ([]solana.PublicKey, error) {
	keys := make([]solana.PublicKey, 0, len(mints)*types.GroupSize)
	for _, mint := range mints {
		holding, admin, err := k.HoldingAccount(mint)
		if err != nil {
			return nil, err
		}
		keys = append(keys, holding, mint, k.params.TokenProgram, admin)
	}
	return keys, nil
}
