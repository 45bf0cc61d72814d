package types

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// DeriveTokenAdmin returns the token admin PDA for mint under programID, the
// authority of the program's holding accounts.
func DeriveTokenAdmin(mint, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	seeds := [][]byte{[]byte(TokenAdminSeed), mint.Bytes()}
	address, bump, err := solana.FindProgramAddress(seeds, programID)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("failed to derive token admin PDA: %w", err)
	}
	return address, bump, nil
}

// DeriveHoldingAccount returns the program's holding account for mint: the
// associated token account of the token admin PDA.
func DeriveHoldingAccount(mint, programID solana.PublicKey) (solana.PublicKey, error) {
	admin, _, err := DeriveTokenAdmin(mint, programID)
	if err != nil {
		return solana.PublicKey{}, err
	}
	holding, _, err := solana.FindAssociatedTokenAddress(admin, mint)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive holding account: %w", err)
	}
	return holding, nil
}
