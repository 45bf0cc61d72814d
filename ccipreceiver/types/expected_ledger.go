//go:generate mockgen -source=expected_ledger.go -destination=../mocks/expected_ledger.go -package=mocks

package types

import (
	"cosmossdk.io/math"
	"github.com/gagliardetto/solana-go"
	"gorm.io/gorm"
)

// TokenLedger moves tokens between token accounts. Every call runs inside the
// caller's database transaction so a failed receive rolls back all of them.
type TokenLedger interface {
	// Owner returns the token program recorded as the owner of account.
	Owner(tx *gorm.DB, account solana.PublicKey) (solana.PublicKey, error)
	// Balance returns the amount of mint held by account.
	Balance(tx *gorm.DB, account, mint solana.PublicKey) (math.Uint, error)
	// Transfer moves amount of mint from -> to, authorized by authority.
	Transfer(tx *gorm.DB, from, to, mint, authority solana.PublicKey, amount uint64) error
	// EnsureAssociatedAccount returns wallet's associated token account for mint, creating it if missing.
	EnsureAssociatedAccount(tx *gorm.DB, wallet, mint, tokenProgram solana.PublicKey) (solana.PublicKey, error)
}
