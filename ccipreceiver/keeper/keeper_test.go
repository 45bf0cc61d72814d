package keeper

import (
	"context"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pushchain/ccip-receiver/ccipreceiver/db"
	"github.com/pushchain/ccip-receiver/ccipreceiver/events"
	"github.com/pushchain/ccip-receiver/ccipreceiver/ledger"
	"github.com/pushchain/ccip-receiver/ccipreceiver/metrics"
	"github.com/pushchain/ccip-receiver/ccipreceiver/types"
)

// sourceChainSelector is the Ethereum mainnet chain selector.
const sourceChainSelector uint64 = 16015286601757825753

type testFixture struct {
	ctx      context.Context
	db       *gorm.DB
	k        *Keeper
	ledger   *ledger.Ledger
	recorder *events.Recorder
	metrics  *metrics.Metrics
	now      time.Time

	owner     solana.PublicKey
	router    solana.PublicKey
	recipient solana.PublicKey
}

func setupKeeper(t *testing.T) *testFixture {
	t.Helper()

	database, err := db.OpenInMemoryDB(true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	logger := zerolog.New(zerolog.NewTestWriter(t))
	f := &testFixture{
		ctx:       context.Background(),
		db:        database.Client(),
		ledger:    ledger.New(database.Client(), logger),
		recorder:  events.NewRecorder(),
		metrics:   metrics.New(prometheus.NewRegistry()),
		now:       time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		owner:     solana.NewWallet().PublicKey(),
		router:    solana.NewWallet().PublicKey(),
		recipient: solana.NewWallet().PublicKey(),
	}

	k, err := NewKeeper(f.db, types.DefaultParams(), f.ledger, events.NewEmitter(logger, f.recorder), f.metrics, logger)
	require.NoError(t, err)
	k.now = func() time.Time { return f.now }
	f.k = k
	return f
}

func setupInitialized(t *testing.T) *testFixture {
	t.Helper()
	f := setupKeeper(t)
	require.NoError(t, f.k.Initialize(f.ctx, f.owner, f.router, f.recipient))
	f.recorder.Reset()
	return f
}

// fundHolding opens the program holding account for mint and credits it.
func (f *testFixture) fundHolding(t *testing.T, mint solana.PublicKey, amount uint64) solana.PublicKey {
	t.Helper()
	params := f.k.Params()
	holding, err := f.ledger.OpenHoldingAccount(f.ctx, params.ProgramID, mint, params.TokenProgram)
	require.NoError(t, err)
	if amount > 0 {
		require.NoError(t, f.ledger.Credit(f.ctx, holding, amount))
	}
	return holding
}

// remaining builds the remaining accounts a router would pass for mints.
func (f *testFixture) remaining(t *testing.T, mints ...solana.PublicKey) []types.AccountRef {
	t.Helper()
	keys, err := f.k.RemainingAccountsFor(mints...)
	require.NoError(t, err)
	refs, err := f.ledger.AccountRefs(f.ctx, keys)
	require.NoError(t, err)
	return refs
}

func (f *testFixture) balanceOf(t *testing.T, account, mint solana.PublicKey) uint64 {
	t.Helper()
	b, err := f.ledger.Balance(f.db, account, mint)
	require.NoError(t, err)
	return b.Uint64()
}

func (f *testFixture) recipientATA(t *testing.T, mint solana.PublicKey) solana.PublicKey {
	t.Helper()
	ata, _, err := solana.FindAssociatedTokenAddress(f.recipient, mint)
	require.NoError(t, err)
	return ata
}

func messageID(last byte) types.MessageID {
	var id types.MessageID
	id[len(id)-1] = last
	return id
}

func newMessage(id byte, senderLen, dataLen int, amounts ...types.TokenAmount) types.Any2SVMMessage {
	return types.Any2SVMMessage{
		MessageID:           messageID(id),
		SourceChainSelector: sourceChainSelector,
		Sender:              make([]byte, senderLen),
		Data:                make([]byte, dataLen),
		TokenTransfers:      types.NewTokenTransfers(amounts...),
	}
}

func TestNewKeeper(t *testing.T) {
	database, err := db.OpenInMemoryDB(true)
	require.NoError(t, err)
	defer database.Close()
	l := ledger.New(database.Client(), zerolog.Nop())

	t.Run("nil database", func(t *testing.T) {
		_, err := NewKeeper(nil, types.DefaultParams(), l, nil, nil, zerolog.Nop())
		require.Error(t, err)
	})

	t.Run("nil ledger", func(t *testing.T) {
		_, err := NewKeeper(database.Client(), types.DefaultParams(), nil, nil, nil, zerolog.Nop())
		require.Error(t, err)
	})

	t.Run("invalid params", func(t *testing.T) {
		params := types.DefaultParams()
		params.ProgramID = solana.PublicKey{}
		_, err := NewKeeper(database.Client(), params, l, nil, nil, zerolog.Nop())
		require.ErrorIs(t, err, types.ErrInvalidConfig)
	})

	t.Run("without emitter and metrics", func(t *testing.T) {
		k, err := NewKeeper(database.Client(), types.DefaultParams(), l, nil, nil, zerolog.Nop())
		require.NoError(t, err)
		require.NoError(t, k.Initialize(context.Background(), solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey(), solana.PublicKey{}))
	})
}
