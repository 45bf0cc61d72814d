package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/gagliardetto/solana-go"

	"github.com/pushchain/ccip-receiver/ccipreceiver/types"
)

// ValidateInbound checks that caller is the configured router and that msg is
// within limits. The caller is checked before anything else in the message.
func ValidateInbound(msg types.Any2SVMMessage, caller solana.PublicKey, cfg types.ReceiverConfig, limits types.Limits) error {
	if !caller.Equals(cfg.Router) {
		return errorsmod.Wrapf(types.ErrInvalidCaller, "got %s", caller)
	}
	if len(msg.Data) > limits.MaxDataSize {
		return errorsmod.Wrapf(types.ErrMessageDataTooLarge, "%d > %d bytes", len(msg.Data), limits.MaxDataSize)
	}
	if len(msg.TokenTransfers) > limits.MaxTokens {
		return errorsmod.Wrapf(types.ErrTooManyTokens, "%d > %d", len(msg.TokenTransfers), limits.MaxTokens)
	}
	if len(msg.Sender) > limits.MaxSenderSize {
		return errorsmod.Wrapf(types.ErrSenderAddressTooLarge, "%d > %d bytes", len(msg.Sender), limits.MaxSenderSize)
	}
	for i, t := range msg.TokenTransfers {
		if int(t.Index) != i {
			return errorsmod.Wrapf(types.ErrInvalidRemainingAccounts, "token transfer at position %d has index %d", i, t.Index)
		}
	}
	return nil
}
