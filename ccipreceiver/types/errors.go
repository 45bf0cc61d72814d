package types

import (
	"errors"

	errorsmod "cosmossdk.io/errors"
)

// Receive protocol errors.
var (
	ErrInvalidCaller            = errorsmod.Register(ModuleName, 2, "Caller is not the configured CCIP router")
	ErrUnauthorized             = errorsmod.Register(ModuleName, 3, "Unauthorized: Signer is not the program owner")
	ErrInvalidRemainingAccounts = errorsmod.Register(ModuleName, 4, "Invalid remaining accounts structure for token transfer")
	ErrInvalidTokenAccountOwner = errorsmod.Register(ModuleName, 5, "Provided token account owner does not match token program")
	ErrInvalidTokenAdmin        = errorsmod.Register(ModuleName, 6, "Provided token admin PDA is incorrect")
	ErrMessageDataTooLarge      = errorsmod.Register(ModuleName, 7, "Message data exceeds the maximum allowed size for this receiver")
	ErrTooManyTokens            = errorsmod.Register(ModuleName, 8, "Number of tokens exceeds the maximum allowed for this receiver")
	ErrSenderAddressTooLarge    = errorsmod.Register(ModuleName, 9, "Sender address exceeds the maximum allowed size for this receiver")
)

// State and ledger errors.
var (
	ErrNotInitialized        = errorsmod.Register(ModuleName, 20, "receiver is not initialized")
	ErrAlreadyInitialized    = errorsmod.Register(ModuleName, 21, "receiver is already initialized")
	ErrLatestMessageNotFound = errorsmod.Register(ModuleName, 22, "no message has been received yet")
	ErrInvalidConfig         = errorsmod.Register(ModuleName, 23, "invalid receiver config")
	ErrAccountNotFound       = errorsmod.Register(ModuleName, 24, "token account not found")
	ErrInsufficientFunds     = errorsmod.Register(ModuleName, 25, "insufficient funds")
	ErrAccountFrozen         = errorsmod.Register(ModuleName, 26, "token account is frozen")
	ErrAuthorityMismatch     = errorsmod.Register(ModuleName, 27, "authority does not own the token account")
	ErrMintMismatch          = errorsmod.Register(ModuleName, 28, "token account mint does not match")
)

var errorKinds = []struct {
	err  *errorsmod.Error
	kind string
}{
	{ErrInvalidCaller, "InvalidCaller"},
	{ErrUnauthorized, "Unauthorized"},
	{ErrInvalidRemainingAccounts, "InvalidRemainingAccounts"},
	{ErrInvalidTokenAccountOwner, "InvalidTokenAccountOwner"},
	{ErrInvalidTokenAdmin, "InvalidTokenAdmin"},
	{ErrMessageDataTooLarge, "MessageDataTooLarge"},
	{ErrTooManyTokens, "TooManyTokens"},
	{ErrSenderAddressTooLarge, "SenderAddressTooLarge"},
	{ErrNotInitialized, "NotInitialized"},
	{ErrAlreadyInitialized, "AlreadyInitialized"},
	{ErrLatestMessageNotFound, "LatestMessageNotFound"},
	{ErrInvalidConfig, "InvalidConfig"},
	{ErrAccountNotFound, "AccountNotFound"},
	{ErrInsufficientFunds, "InsufficientFunds"},
	{ErrAccountFrozen, "AccountFrozen"},
	{ErrAuthorityMismatch, "AuthorityMismatch"},
	{ErrMintMismatch, "MintMismatch"},
}

// ErrorKind names the registered error err wraps, "Internal" for anything else.
// Used as a bounded metrics label.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return "Internal"
}
