package api

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/pushchain/ccip-receiver/ccipreceiver/store"
	"github.com/pushchain/ccip-receiver/ccipreceiver/types"
)

// ReceiverQuerier defines the receiver state reads needed by the API server
type ReceiverQuerier interface {
	GetConfig(ctx context.Context) (types.ReceiverConfig, error)
	GetLatestMessage(ctx context.Context) (types.LatestMessage, error)
}

// AccountQuerier reads token accounts from the ledger
type AccountQuerier interface {
	Account(ctx context.Context, address solana.PublicKey) (store.TokenAccount, error)
}
