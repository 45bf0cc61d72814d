package keeper

import (
	"context"
	"strconv"

	"github.com/gagliardetto/solana-go"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pushchain/ccip-receiver/ccipreceiver/events"
	"github.com/pushchain/ccip-receiver/ccipreceiver/store"
	"github.com/pushchain/ccip-receiver/ccipreceiver/types"
)

// CCIPReceive handles a message delivered by caller. Every token transfer is
// forwarded to the configured recipient and the message becomes the latest
// message. Either all of it happens or none of it: on error no balance, no
// stored message and no event changes.
func (k *Keeper) CCIPReceive(
	ctx context.Context,
	caller solana.PublicKey,
	msg types.Any2SVMMessage,
	remaining []types.AccountRef,
) (err error) {
	defer func() {
		k.metrics.ObserveReceive(err, len(msg.TokenTransfers))
		if err != nil {
			k.logger.Warn().
				Err(err).
				Str("message_id", msg.MessageID.String()).
				Str("caller", caller.String()).
				Str("kind", types.ErrorKind(err)).
				Msg("rejected ccip message")
		}
	}()

	cfg, err := loadConfig(k.db.WithContext(ctx))
	if err != nil {
		return err
	}
	if err := ValidateInbound(msg, caller, cfg, k.params.Limits); err != nil {
		return err
	}

	groups, err := ParseRemainingAccounts(remaining, len(msg.TokenTransfers), k.params.TokenProgram, k.params.ProgramID)
	if err != nil {
		return err
	}
	transfers, err := BindTransfers(groups, msg.TokenTransfers)
	if err != nil {
		return err
	}

	batch := events.NewBatch()
	latest := types.NewLatestMessage(msg, k.now())
	err = k.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, t := range transfers {
			if err := k.forwardToken(tx, cfg.Recipient, t, batch); err != nil {
				return err
			}
		}

		if err := saveLatestMessage(tx, latest); err != nil {
			return err
		}
		batch.Add(types.MessageReceived{
			MessageID:           latest.MessageID,
			SourceChainSelector: latest.SourceChainSelector,
			Sender:              latest.Sender,
			DataLength:          latest.DataLength,
			TokenCount:          latest.TokenCount,
		})
		return nil
	})
	if err != nil {
		return err
	}

	k.flush(ctx, batch)

	k.logger.Info().
		Str("message_id", msg.MessageID.String()).
		Uint64("source_chain_selector", msg.SourceChainSelector).
		Int("data_length", len(msg.Data)).
		Int("token_count", len(msg.TokenTransfers)).
		Msg("received ccip message")
	return nil
}

// saveLatestMessage overwrites the single latest-message slot.
func saveLatestMessage(tx *gorm.DB, latest types.LatestMessage) error {
	row := store.LatestMessage{
		ID:                  store.SingletonID,
		MessageID:           latest.MessageID.String(),
		SourceChainSelector: strconv.FormatUint(latest.SourceChainSelector, 10),
		Sender:              latest.Sender,
		Data:                latest.Data,
		DataLength:          latest.DataLength,
		TokenCount:          latest.TokenCount,
		ReceivedAt:          latest.ReceivedAt,
	}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&row).Error
	if err != nil {
		return pkgerrors.Wrap(err, "failed to store latest message")
	}
	return nil
}
