package types

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
)

// MessageID is the 32-byte CCIP message identifier. It renders as 0x-prefixed hex.
type MessageID [MessageIDLength]byte

func (id MessageID) String() string {
	return "0x" + hex.EncodeToString(id[:])
}

func (id MessageID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *MessageID) UnmarshalText(text []byte) error {
	parsed, err := ParseMessageID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ParseMessageID parses a hex message id, with or without the 0x prefix.
func ParseMessageID(s string) (MessageID, error) {
	var id MessageID
	bz, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return id, fmt.Errorf("invalid message id: %w", err)
	}
	if len(bz) != MessageIDLength {
		return id, fmt.Errorf("invalid message id length: got %d, want %d", len(bz), MessageIDLength)
	}
	copy(id[:], bz)
	return id, nil
}

// HexBytes is a byte slice that renders as 0x-prefixed hex in JSON.
type HexBytes []byte

func (b HexBytes) String() string {
	return "0x" + hex.EncodeToString(b)
}

func (b HexBytes) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *HexBytes) UnmarshalText(text []byte) error {
	bz, err := hex.DecodeString(strings.TrimPrefix(string(text), "0x"))
	if err != nil {
		return err
	}
	*b = bz
	return nil
}

// TokenTransferRequest is one token amount carried by an inbound message.
// Index is its 0-based position in the message's token list.
type TokenTransferRequest struct {
	Mint   solana.PublicKey `json:"mint"`
	Amount uint64           `json:"amount"`
	Index  uint8            `json:"index"`
}

// Any2SVMMessage is a cross-chain message delivered by the router.
type Any2SVMMessage struct {
	MessageID           MessageID              `json:"message_id"`
	SourceChainSelector uint64                 `json:"source_chain_selector"`
	Sender              HexBytes               `json:"sender"`
	Data                HexBytes               `json:"data"`
	TokenTransfers      []TokenTransferRequest `json:"token_transfers"`
}

// NewTokenTransfers builds index-tagged transfer requests in declaration order.
func NewTokenTransfers(amounts ...TokenAmount) []TokenTransferRequest {
	out := make([]TokenTransferRequest, len(amounts))
	for i, a := range amounts {
		out[i] = TokenTransferRequest{Mint: a.Token, Amount: a.Amount, Index: uint8(i)}
	}
	return out
}

// TokenAmount is an untagged (token, amount) pair.
type TokenAmount struct {
	Token  solana.PublicKey `json:"token"`
	Amount uint64           `json:"amount"`
}

// LatestMessage is the snapshot of the most recently accepted message.
type LatestMessage struct {
	MessageID           MessageID `json:"message_id"`
	SourceChainSelector uint64    `json:"source_chain_selector,string"`
	Sender              HexBytes  `json:"sender"`
	Data                HexBytes  `json:"data"`
	DataLength          uint64    `json:"data_length"`
	TokenCount          uint8     `json:"token_count"`
	ReceivedAt          time.Time `json:"received_at"`
}

// NewLatestMessage snapshots msg.
func NewLatestMessage(msg Any2SVMMessage, receivedAt time.Time) LatestMessage {
	return LatestMessage{
		MessageID:           msg.MessageID,
		SourceChainSelector: msg.SourceChainSelector,
		Sender:              append(HexBytes(nil), msg.Sender...),
		Data:                append(HexBytes(nil), msg.Data...),
		DataLength:          uint64(len(msg.Data)),
		TokenCount:          uint8(len(msg.TokenTransfers)),
		ReceivedAt:          receivedAt.UTC(),
	}
}

// ReceiverConfig holds the receiver's fixed identities.
type ReceiverConfig struct {
	Owner     solana.PublicKey `json:"owner"`
	Router    solana.PublicKey `json:"router"`
	Recipient solana.PublicKey `json:"recipient"`
}

func (c ReceiverConfig) Validate() error {
	if c.Owner.IsZero() {
		return ErrInvalidConfig.Wrap("owner cannot be empty")
	}
	if c.Router.IsZero() {
		return ErrInvalidConfig.Wrap("router cannot be empty")
	}
	if c.Recipient.IsZero() {
		return ErrInvalidConfig.Wrap("recipient cannot be empty")
	}
	return nil
}
