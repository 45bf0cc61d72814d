// Package metrics exposes Prometheus counters for receiver outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pushchain/ccip-receiver/ccipreceiver/types"
)

const namespace = "ccipreceiver"

// Metrics holds the receiver counters. A nil *Metrics is valid and records nothing.
type Metrics struct {
	Receives        *prometheus.CounterVec
	Rejections      *prometheus.CounterVec
	TokensForwarded prometheus.Counter
	Withdrawals     *prometheus.CounterVec
}

// New creates the receiver metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Receives: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "receives_total",
			Help:      "CCIP receive invocations by result.",
		}, []string{"result"}),
		Rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejections_total",
			Help:      "Rejected CCIP receives by error kind.",
		}, []string{"reason"}),
		TokensForwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_transfers_forwarded_total",
			Help:      "Token transfers forwarded to the recipient.",
		}),
		Withdrawals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "withdrawals_total",
			Help:      "Owner withdrawals by result.",
		}, []string{"result"}),
	}

	if reg != nil {
		reg.MustRegister(m.Receives, m.Rejections, m.TokensForwarded, m.Withdrawals)
	}
	return m
}

// ObserveReceive records the outcome of a receive that forwarded tokenCount transfers.
func (m *Metrics) ObserveReceive(err error, tokenCount int) {
	if m == nil {
		return
	}
	if err != nil {
		m.Receives.WithLabelValues("rejected").Inc()
		m.Rejections.WithLabelValues(types.ErrorKind(err)).Inc()
		return
	}
	m.Receives.WithLabelValues("accepted").Inc()
	m.TokensForwarded.Add(float64(tokenCount))
}

// ObserveWithdraw records the outcome of an owner withdrawal.
func (m *Metrics) ObserveWithdraw(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.Withdrawals.WithLabelValues("rejected").Inc()
		return
	}
	m.Withdrawals.WithLabelValues("accepted").Inc()
}
