// Package ledger is a minimal SPL-style token ledger backed by SQLite. It keeps
// token accounts (mint, authority, owning token program, balance) and moves
// balances between them inside the caller's database transaction.
package ledger

import (
	"context"
	"errors"

	"cosmossdk.io/math"
	errorsmod "cosmossdk.io/errors"
	"github.com/gagliardetto/solana-go"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/pushchain/ccip-receiver/ccipreceiver/store"
	"github.com/pushchain/ccip-receiver/ccipreceiver/types"
)

var _ types.TokenLedger = (*Ledger)(nil)

// Ledger implements types.TokenLedger on top of the token_accounts table.
type Ledger struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// New creates a ledger over db.
func New(db *gorm.DB, logger zerolog.Logger) *Ledger {
	return &Ledger{
		db:     db,
		logger: logger.With().Str("component", "token_ledger").Logger(),
	}
}

// OpenAccount creates a token account. Opening an existing account with the
// same mint and authority is a no-op.
func (l *Ledger) OpenAccount(ctx context.Context, address, mint, authority, tokenProgram solana.PublicKey) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return openAccount(tx, address, mint, authority, tokenProgram)
	})
}

// OpenHoldingAccount creates the program holding account for mint and returns its address.
func (l *Ledger) OpenHoldingAccount(ctx context.Context, programID, mint, tokenProgram solana.PublicKey) (solana.PublicKey, error) {
	admin, _, err := types.DeriveTokenAdmin(mint, programID)
	if err != nil {
		return solana.PublicKey{}, err
	}
	holding, err := types.DeriveHoldingAccount(mint, programID)
	if err != nil {
		return solana.PublicKey{}, err
	}
	if err := l.OpenAccount(ctx, holding, mint, admin, tokenProgram); err != nil {
		return solana.PublicKey{}, err
	}
	return holding, nil
}

// Credit adds amount to address. It stands in for the router releasing
// bridged funds into a holding account.
func (l *Ledger) Credit(ctx context.Context, address solana.PublicKey, amount uint64) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		acc, err := loadAccount(tx, address)
		if err != nil {
			return err
		}
		balance, err := parseAmount(acc)
		if err != nil {
			return err
		}
		return setAmount(tx, address, balance.AddUint64(amount))
	})
}

// SetFrozen freezes or thaws address.
func (l *Ledger) SetFrozen(ctx context.Context, address solana.PublicKey, frozen bool) error {
	res := l.db.WithContext(ctx).
		Model(&store.TokenAccount{}).
		Where("address = ?", address.String()).
		Update("frozen", frozen)
	if res.Error != nil {
		return pkgerrors.Wrap(res.Error, "failed to update token account")
	}
	if res.RowsAffected == 0 {
		return errorsmod.Wrap(types.ErrAccountNotFound, address.String())
	}
	return nil
}

// Account returns the stored token account.
func (l *Ledger) Account(ctx context.Context, address solana.PublicKey) (store.TokenAccount, error) {
	acc, err := loadAccount(l.db.WithContext(ctx), address)
	if err != nil {
		return store.TokenAccount{}, err
	}
	return *acc, nil
}

// AccountRefs resolves keys into account references, filling in each
// account's owning program the way the runtime would. Keys unknown to the
// ledger are reported as system-owned.
func (l *Ledger) AccountRefs(ctx context.Context, keys []solana.PublicKey) ([]types.AccountRef, error) {
	addrs := make([]string, len(keys))
	for i, k := range keys {
		addrs[i] = k.String()
	}

	var accounts []store.TokenAccount
	if len(addrs) > 0 {
		if err := l.db.WithContext(ctx).Where("address IN ?", addrs).Find(&accounts).Error; err != nil {
			return nil, pkgerrors.Wrap(err, "failed to load token accounts")
		}
	}
	owners := make(map[string]string, len(accounts))
	for _, acc := range accounts {
		owners[acc.Address] = acc.TokenProgram
	}

	refs := make([]types.AccountRef, len(keys))
	for i, k := range keys {
		ref := types.AccountRef{Key: k, Owner: solana.SystemProgramID}
		if owner, ok := owners[k.String()]; ok {
			programID, err := solana.PublicKeyFromBase58(owner)
			if err != nil {
				return nil, pkgerrors.Wrapf(err, "corrupt token program for %s", k)
			}
			ref.Owner = programID
			ref.IsWritable = true
		}
		refs[i] = ref
	}
	return refs, nil
}

// Owner implements types.TokenLedger.
func (l *Ledger) Owner(tx *gorm.DB, account solana.PublicKey) (solana.PublicKey, error) {
	acc, err := loadAccount(tx, account)
	if err != nil {
		return solana.PublicKey{}, err
	}
	owner, err := solana.PublicKeyFromBase58(acc.TokenProgram)
	if err != nil {
		return solana.PublicKey{}, pkgerrors.Wrapf(err, "corrupt token program for %s", account)
	}
	return owner, nil
}

// Balance implements types.TokenLedger.
func (l *Ledger) Balance(tx *gorm.DB, account, mint solana.PublicKey) (math.Uint, error) {
	acc, err := loadAccount(tx, account)
	if err != nil {
		return math.Uint{}, err
	}
	if acc.Mint != mint.String() {
		return math.Uint{}, errorsmod.Wrapf(types.ErrMintMismatch, "account %s holds %s, not %s", account, acc.Mint, mint)
	}
	return parseAmount(acc)
}

// Transfer implements types.TokenLedger.
func (l *Ledger) Transfer(tx *gorm.DB, from, to, mint, authority solana.PublicKey, amount uint64) error {
	src, err := loadAccount(tx, from)
	if err != nil {
		return err
	}
	dst, err := loadAccount(tx, to)
	if err != nil {
		return err
	}

	if src.Mint != mint.String() {
		return errorsmod.Wrapf(types.ErrMintMismatch, "source %s holds %s", from, src.Mint)
	}
	if dst.Mint != mint.String() {
		return errorsmod.Wrapf(types.ErrMintMismatch, "destination %s holds %s", to, dst.Mint)
	}
	if src.Authority != authority.String() {
		return errorsmod.Wrapf(types.ErrAuthorityMismatch, "%s cannot debit %s", authority, from)
	}
	if src.Frozen {
		return errorsmod.Wrap(types.ErrAccountFrozen, from.String())
	}
	if dst.Frozen {
		return errorsmod.Wrap(types.ErrAccountFrozen, to.String())
	}

	srcBalance, err := parseAmount(src)
	if err != nil {
		return err
	}
	want := math.NewUint(amount)
	if srcBalance.LT(want) {
		return errorsmod.Wrapf(types.ErrInsufficientFunds, "%s has %s, needs %d", from, srcBalance, amount)
	}
	if from.Equals(to) {
		return nil
	}
	dstBalance, err := parseAmount(dst)
	if err != nil {
		return err
	}

	if err := setAmount(tx, from, srcBalance.Sub(want)); err != nil {
		return err
	}
	if err := setAmount(tx, to, dstBalance.Add(want)); err != nil {
		return err
	}

	l.logger.Debug().
		Str("from", from.String()).
		Str("to", to.String()).
		Str("mint", mint.String()).
		Uint64("amount", amount).
		Msg("transferred tokens")
	return nil
}

// EnsureAssociatedAccount implements types.TokenLedger.
func (l *Ledger) EnsureAssociatedAccount(tx *gorm.DB, wallet, mint, tokenProgram solana.PublicKey) (solana.PublicKey, error) {
	ata, _, err := solana.FindAssociatedTokenAddress(wallet, mint)
	if err != nil {
		return solana.PublicKey{}, pkgerrors.Wrap(err, "failed to derive associated token account")
	}
	if err := openAccount(tx, ata, mint, wallet, tokenProgram); err != nil {
		return solana.PublicKey{}, err
	}
	return ata, nil
}

func openAccount(tx *gorm.DB, address, mint, authority, tokenProgram solana.PublicKey) error {
	existing, err := loadAccount(tx, address)
	switch {
	case err == nil:
		if existing.Mint != mint.String() {
			return errorsmod.Wrapf(types.ErrMintMismatch, "account %s already holds %s", address, existing.Mint)
		}
		if existing.Authority != authority.String() {
			return errorsmod.Wrapf(types.ErrAuthorityMismatch, "account %s already owned by %s", address, existing.Authority)
		}
		return nil
	case !errors.Is(err, types.ErrAccountNotFound):
		return err
	}

	acc := store.TokenAccount{
		Address:      address.String(),
		Mint:         mint.String(),
		Authority:    authority.String(),
		TokenProgram: tokenProgram.String(),
		Amount:       math.ZeroUint().String(),
	}
	if err := tx.Create(&acc).Error; err != nil {
		return pkgerrors.Wrapf(err, "failed to create token account %s", address)
	}
	return nil
}

func loadAccount(tx *gorm.DB, address solana.PublicKey) (*store.TokenAccount, error) {
	var acc store.TokenAccount
	err := tx.Where("address = ?", address.String()).First(&acc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorsmod.Wrap(types.ErrAccountNotFound, address.String())
	}
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to load token account %s", address)
	}
	return &acc, nil
}

func setAmount(tx *gorm.DB, address solana.PublicKey, amount math.Uint) error {
	err := tx.Model(&store.TokenAccount{}).
		Where("address = ?", address.String()).
		Update("amount", amount.String()).Error
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to update balance of %s", address)
	}
	return nil
}

func parseAmount(acc *store.TokenAccount) (math.Uint, error) {
	amount, err := math.ParseUint(acc.Amount)
	if err != nil {
		return math.Uint{}, pkgerrors.Wrapf(err, "corrupt balance for %s", acc.Address)
	}
	return amount, nil
}
