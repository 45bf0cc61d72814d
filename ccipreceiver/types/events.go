package types

import "github.com/gagliardetto/solana-go"

const (
	EventTypeReceiverInitialized = "receiver_initialized"
	EventTypeMessageReceived     = "message_received"
	EventTypeTokenReceived       = "token_received"
	EventTypeTokensForwarded     = "tokens_forwarded"
	EventTypeTokensWithdrawn     = "tokens_withdrawn"
)

// Event is an informational record emitted for a committed operation.
type Event interface {
	EventType() string
}

// ReceiverInitialized is emitted once the receiver config is stored.
type ReceiverInitialized struct {
	Owner  solana.PublicKey `json:"owner"`
	Router solana.PublicKey `json:"router"`
}

func (ReceiverInitialized) EventType() string { return EventTypeReceiverInitialized }

// MessageReceived is emitted when a message is accepted.
type MessageReceived struct {
	MessageID           MessageID `json:"message_id"`
	SourceChainSelector uint64    `json:"source_chain_selector,string"`
	Sender              HexBytes  `json:"sender"`
	DataLength          uint64    `json:"data_length"`
	TokenCount          uint8     `json:"token_count"`
}

func (MessageReceived) EventType() string { return EventTypeMessageReceived }

// TokenReceived is emitted once a transfer's funds are confirmed in the holding account.
type TokenReceived struct {
	Token  solana.PublicKey `json:"token"`
	Amount uint64           `json:"amount,string"`
	Index  uint8            `json:"index"`
}

func (TokenReceived) EventType() string { return EventTypeTokenReceived }

// TokensForwarded is emitted after tokens reach the recipient's token account.
type TokensForwarded struct {
	Token     solana.PublicKey `json:"token"`
	Amount    uint64           `json:"amount,string"`
	Recipient solana.PublicKey `json:"recipient"`
}

func (TokensForwarded) EventType() string { return EventTypeTokensForwarded }

// TokensWithdrawn is emitted when the owner withdraws from a holding account.
type TokensWithdrawn struct {
	Token  solana.PublicKey `json:"token"`
	Amount uint64           `json:"amount,string"`
	Owner  solana.PublicKey `json:"owner"`
}

func (TokensWithdrawn) EventType() string { return EventTypeTokensWithdrawn }
