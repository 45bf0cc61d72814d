// Package store contains GORM-backed SQLite models holding the receiver's durable state.
//
// Database Structure (database file: receiver.db):
//
//	databases/
//	└── receiver.db
//	    ├── receiver_configs   (single row, id = 1)
//	    ├── latest_messages    (single row, id = 1, overwritten)
//	    └── token_accounts
package store

import (
	"time"
)

// SingletonID is the primary key of single-slot tables.
const SingletonID = 1

// ReceiverConfig stores the owner, router and forwarding recipient.
// Written once by initialize.
type ReceiverConfig struct {
	ID        uint   `gorm:"primaryKey"`
	Owner     string `gorm:"not null"` // base58
	Router    string `gorm:"not null"` // base58
	Recipient string `gorm:"not null"` // base58
	CreatedAt time.Time
}

// LatestMessage is the single-slot snapshot of the last accepted message.
type LatestMessage struct {
	ID                  uint   `gorm:"primaryKey"`
	MessageID           string `gorm:"not null"` // 0x-hex
	SourceChainSelector string `gorm:"not null"` // decimal, uint64 does not fit SQLite INTEGER
	Sender              []byte
	Data                []byte
	DataLength          uint64
	TokenCount          uint8
	ReceivedAt          time.Time
	UpdatedAt           time.Time
}

// TokenAccount is a token account tracked by the ledger.
type TokenAccount struct {
	Address      string `gorm:"primaryKey"`        // base58
	Mint         string `gorm:"index;not null"`    // base58
	Authority    string `gorm:"index;not null"`    // base58 wallet or PDA allowed to debit
	TokenProgram string `gorm:"not null"`          // base58 owning program
	Amount       string `gorm:"not null;default:0"` // decimal math.Uint
	Frozen       bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
