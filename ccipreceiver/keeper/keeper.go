// Package keeper implements the receiver: initialization, inbound CCIP message
// handling with token forwarding, owner withdrawals and state queries.
package keeper

import (
	"context"
	"errors"
	"time"

	errorsmod "cosmossdk.io/errors"
	"github.com/gagliardetto/solana-go"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/pushchain/ccip-receiver/ccipreceiver/events"
	"github.com/pushchain/ccip-receiver/ccipreceiver/metrics"
	"github.com/pushchain/ccip-receiver/ccipreceiver/store"
	"github.com/pushchain/ccip-receiver/ccipreceiver/types"
)

type Keeper struct {
	logger zerolog.Logger

	// state management
	db     *gorm.DB
	params types.Params

	ledger  types.TokenLedger
	emitter *events.Emitter
	metrics *metrics.Metrics

	now func() time.Time
}

// NewKeeper creates a new Keeper instance. emitter and m may be nil.
func NewKeeper(
	db *gorm.DB,
	params types.Params,
	ledger types.TokenLedger,
	emitter *events.Emitter,
	m *metrics.Metrics,
	logger zerolog.Logger,
) (*Keeper, error) {
	if db == nil {
		return nil, errors.New("database cannot be nil")
	}
	if ledger == nil {
		return nil, errors.New("token ledger cannot be nil")
	}
	if err := params.Validate(); err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidConfig, err.Error())
	}

	return &Keeper{
		logger:  logger.With().Str("component", "keeper").Logger(),
		db:      db,
		params:  params,
		ledger:  ledger,
		emitter: emitter,
		metrics: m,
		now:     time.Now,
	}, nil
}

func (k *Keeper) Logger() zerolog.Logger {
	return k.logger
}

func (k *Keeper) Params() types.Params {
	return k.params
}

// loadConfig reads the receiver config through tx.
func loadConfig(tx *gorm.DB) (types.ReceiverConfig, error) {
	var row store.ReceiverConfig
	err := tx.Where("id = ?", store.SingletonID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return types.ReceiverConfig{}, types.ErrNotInitialized
	}
	if err != nil {
		return types.ReceiverConfig{}, pkgerrors.Wrap(err, "failed to load receiver config")
	}

	owner, err := solana.PublicKeyFromBase58(row.Owner)
	if err != nil {
		return types.ReceiverConfig{}, pkgerrors.Wrap(err, "corrupt owner")
	}
	router, err := solana.PublicKeyFromBase58(row.Router)
	if err != nil {
		return types.ReceiverConfig{}, pkgerrors.Wrap(err, "corrupt router")
	}
	recipient, err := solana.PublicKeyFromBase58(row.Recipient)
	if err != nil {
		return types.ReceiverConfig{}, pkgerrors.Wrap(err, "corrupt recipient")
	}
	return types.ReceiverConfig{Owner: owner, Router: router, Recipient: recipient}, nil
}

// flush delivers a committed batch. Sink failures are logged, the operation
// they describe has already been committed.
func (k *Keeper) flush(ctx context.Context, batch *events.Batch) {
	if err := k.emitter.Flush(ctx, batch); err != nil {
		k.logger.Warn().Err(err).Int("events", batch.Len()).Msg("event delivery incomplete")
	}
}
