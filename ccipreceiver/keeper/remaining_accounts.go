package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/gagliardetto/solana-go"

	"github.com/pushchain/ccip-receiver/ccipreceiver/types"
)

// ParseRemainingAccounts splits raw into groups of types.GroupSize accounts,
// one per expected token transfer, laid out as
// [holding token account, mint, token program, token admin PDA].
//
// The holding account must be owned by tokenProgram and the admin slot must be
// the PDA derived from the group's mint under programID.
func ParseRemainingAccounts(
	raw []types.AccountRef,
	expectedCount int,
	tokenProgram solana.PublicKey,
	programID solana.PublicKey,
) ([]types.TokenGroup, error) {
	if expectedCount < 0 || len(raw) != expectedCount*types.GroupSize {
		return nil, errorsmod.Wrapf(types.ErrInvalidRemainingAccounts,
			"got %d accounts, want %d for %d token transfers", len(raw), expectedCount*types.GroupSize, expectedCount)
	}

	groups := make([]types.TokenGroup, 0, expectedCount)
	for i := 0; i < expectedCount; i++ {
		group := raw[i*types.GroupSize : (i+1)*types.GroupSize]
		holding := group[types.GroupTokenAccountIdx]
		mint := group[types.GroupMintIdx]
		program := group[types.GroupTokenProgramIdx]
		admin := group[types.GroupTokenAdminIdx]

		if !program.Key.Equals(tokenProgram) {
			return nil, errorsmod.Wrapf(types.ErrInvalidRemainingAccounts,
				"group %d: token program slot is %s, want %s", i, program.Key, tokenProgram)
		}
		if !holding.Owner.Equals(tokenProgram) {
			return nil, errorsmod.Wrapf(types.ErrInvalidTokenAccountOwner,
				"group %d: %s is owned by %s", i, holding.Key, holding.Owner)
		}

		expectedAdmin, _, err := types.DeriveTokenAdmin(mint.Key, programID)
		if err != nil {
			return nil, errorsmod.Wrapf(types.ErrInvalidTokenAdmin, "group %d: %s", i, err)
		}
		if !admin.Key.Equals(expectedAdmin) {
			return nil, errorsmod.Wrapf(types.ErrInvalidTokenAdmin,
				"group %d: got %s, want %s", i, admin.Key, expectedAdmin)
		}

		groups = append(groups, types.TokenGroup{
			Index:        uint8(i),
			TokenAccount: holding.Key,
			Mint:         mint.Key,
			TokenProgram: program.Key,
			TokenAdmin:   admin.Key,
		})
	}
	return groups, nil
}

// BindTransfers pairs each transfer request with the account group at the same
// position. Mints and indexes must agree.
func BindTransfers(groups []types.TokenGroup, requests []types.TokenTransferRequest) ([]types.TokenTransfer, error) {
	if len(groups) != len(requests) {
		return nil, errorsmod.Wrapf(types.ErrInvalidRemainingAccounts,
			"%d account groups for %d token transfers", len(groups), len(requests))
	}

	transfers := make([]types.TokenTransfer, len(requests))
	for i, req := range requests {
		g := groups[i]
		if req.Index != g.Index || int(req.Index) != i {
			return nil, errorsmod.Wrapf(types.ErrInvalidRemainingAccounts,
				"position %d: transfer index %d, group index %d", i, req.Index, g.Index)
		}
		if !req.Mint.Equals(g.Mint) {
			return nil, errorsmod.Wrapf(types.ErrInvalidRemainingAccounts,
				"position %d: transfer mint %s, group mint %s", i, req.Mint, g.Mint)
		}
		transfers[i] = types.TokenTransfer{
			TokenTransferRequest: req,
			Holding:              g.TokenAccount,
			TokenAdmin:           g.TokenAdmin,
		}
	}
	return transfers, nil
}
