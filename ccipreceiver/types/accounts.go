package types

import "github.com/gagliardetto/solana-go"

// AccountRef is one caller-supplied account reference. Owner is the program
// that owns the account's data.
type AccountRef struct {
	Key        solana.PublicKey `json:"key"`
	Owner      solana.PublicKey `json:"owner"`
	IsWritable bool             `json:"is_writable"`
	IsSigner   bool             `json:"is_signer"`
}

// AccountRefFromMeta converts a transaction account meta, attaching the owning program.
func AccountRefFromMeta(meta *solana.AccountMeta, owner solana.PublicKey) AccountRef {
	return AccountRef{
		Key:        meta.PublicKey,
		Owner:      owner,
		IsWritable: meta.IsWritable,
		IsSigner:   meta.IsSigner,
	}
}

// Meta returns the account as a transaction account meta.
func (a AccountRef) Meta() *solana.AccountMeta {
	return solana.NewAccountMeta(a.Key, a.IsWritable, a.IsSigner)
}

// TokenGroup is one validated remaining-accounts group.
type TokenGroup struct {
	Index        uint8
	TokenAccount solana.PublicKey
	Mint         solana.PublicKey
	TokenProgram solana.PublicKey
	TokenAdmin   solana.PublicKey
}

// TokenTransfer is a transfer request bound to its validated account group.
type TokenTransfer struct {
	TokenTransferRequest
	Holding    solana.PublicKey
	TokenAdmin solana.PublicKey
}
