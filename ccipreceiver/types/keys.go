package types

import "github.com/gagliardetto/solana-go"

const (
	// ModuleName is the codespace of the receiver error taxonomy.
	ModuleName = "ccipreceiver"

	// TokenAdminSeed seeds the token admin PDA together with the mint.
	TokenAdminSeed = "token_admin"

	// GroupSize is the number of remaining accounts describing one token transfer:
	// [holding token account, mint, token program, token admin PDA].
	GroupSize = 4

	// Positions inside a remaining-accounts group.
	GroupTokenAccountIdx = 0
	GroupMintIdx         = 1
	GroupTokenProgramIdx = 2
	GroupTokenAdminIdx   = 3

	MessageIDLength = 32
)

const (
	DefaultMaxDataSize   = 1024
	DefaultMaxSenderSize = 64
	DefaultMaxTokens     = 5

	// MaxTokensCeiling keeps token indexes representable in a uint8.
	MaxTokensCeiling = 255
)

// DefaultProgramID is the receiver program id used when none is configured.
var DefaultProgramID = solana.MustPublicKeyFromBase58("6oTKzASn8EAqPHTdqTKT6oJ68jLmfSFTfkTDbt7qDCtw")
