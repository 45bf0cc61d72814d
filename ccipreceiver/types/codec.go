package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// MessageFile is the JSON shape used to hand a router delivery to the CLI.
type MessageFile struct {
	MessageID           string             `json:"message_id"`
	SourceChainSelector uint64             `json:"source_chain_selector"`
	Sender              string             `json:"sender"` // 0x-hex or base58
	Data                string             `json:"data"`   // 0x-hex or raw text
	TokenAmounts        []TokenAmountEntry `json:"token_amounts"`
	RemainingAccounts   []string           `json:"remaining_accounts"` // base58
}

type TokenAmountEntry struct {
	Token  string `json:"token"`
	Amount uint64 `json:"amount"`
}

// ToMessage decodes the file into an inbound message.
func (f MessageFile) ToMessage() (Any2SVMMessage, error) {
	id, err := ParseMessageID(f.MessageID)
	if err != nil {
		return Any2SVMMessage{}, err
	}
	sender, err := DecodeAddressBytes(f.Sender)
	if err != nil {
		return Any2SVMMessage{}, fmt.Errorf("invalid sender: %w", err)
	}
	data, err := DecodeData(f.Data)
	if err != nil {
		return Any2SVMMessage{}, fmt.Errorf("invalid data: %w", err)
	}

	amounts := make([]TokenAmount, len(f.TokenAmounts))
	for i, ta := range f.TokenAmounts {
		mint, err := solana.PublicKeyFromBase58(ta.Token)
		if err != nil {
			return Any2SVMMessage{}, fmt.Errorf("invalid token at index %d: %w", i, err)
		}
		amounts[i] = TokenAmount{Token: mint, Amount: ta.Amount}
	}

	return Any2SVMMessage{
		MessageID:           id,
		SourceChainSelector: f.SourceChainSelector,
		Sender:              sender,
		Data:                data,
		TokenTransfers:      NewTokenTransfers(amounts...),
	}, nil
}

// RemainingAccountKeys decodes the remaining account addresses in order.
func (f MessageFile) RemainingAccountKeys() ([]solana.PublicKey, error) {
	keys := make([]solana.PublicKey, len(f.RemainingAccounts))
	for i, s := range f.RemainingAccounts {
		key, err := solana.PublicKeyFromBase58(s)
		if err != nil {
			return nil, fmt.Errorf("invalid remaining account at index %d: %w", i, err)
		}
		keys[i] = key
	}
	return keys, nil
}

// DecodeAddressBytes decodes a source-chain address given as 0x-hex (EVM style)
// or base58 (SVM style).
func DecodeAddressBytes(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	if strings.HasPrefix(s, "0x") {
		bz, err := hex.DecodeString(s[2:])
		if err != nil {
			return nil, fmt.Errorf("failed to decode hex: %w", err)
		}
		return bz, nil
	}
	bz, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base58: %w", err)
	}
	return bz, nil
}

// DecodeData decodes a 0x-hex payload; anything else is taken as raw text.
func DecodeData(s string) ([]byte, error) {
	if strings.HasPrefix(s, "0x") {
		return hex.DecodeString(s[2:])
	}
	return []byte(s), nil
}
