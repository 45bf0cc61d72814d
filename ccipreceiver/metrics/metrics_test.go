package metrics

import (
	"errors"
	"testing"

	errorsmod "cosmossdk.io/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/pushchain/ccip-receiver/ccipreceiver/types"
)

func TestObserveReceive(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveReceive(nil, 2)
	m.ObserveReceive(nil, 1)
	m.ObserveReceive(errorsmod.Wrap(types.ErrInvalidCaller, "x"), 0)
	m.ObserveReceive(types.ErrTooManyTokens, 0)
	m.ObserveReceive(errors.New("disk"), 0)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.Receives.WithLabelValues("accepted")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.Receives.WithLabelValues("rejected")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.TokensForwarded))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Rejections.WithLabelValues("InvalidCaller")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Rejections.WithLabelValues("TooManyTokens")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Rejections.WithLabelValues("Internal")))
}

func TestObserveWithdraw(t *testing.T) {
	m := New(nil)

	m.ObserveWithdraw(nil)
	m.ObserveWithdraw(types.ErrUnauthorized)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.Withdrawals.WithLabelValues("accepted")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Withdrawals.WithLabelValues("rejected")))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveReceive(nil, 1)
		m.ObserveWithdraw(errors.New("x"))
	})
}

func TestRegisterTwicePanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
