// Package metrics exposes Prometheus counters for the counter's activity,
// fed by domain events.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rmercado/kahera/pkg/domain"
	"github.com/rmercado/kahera/pkg/domain/ledger"
	"github.com/rmercado/kahera/pkg/eventbus"
)

// Metrics holds the counter vector and counters the ledger feeds.
type Metrics struct {
	TransactionsProcessed *prometheus.CounterVec
	FeesCollected         prometheus.Counter
	Reversals             prometheus.Counter
	FundAdjustments       *prometheus.CounterVec
	ExpensesRecorded      prometheus.Counter
	DayCloses             prometheus.Counter
}

// New registers the metrics with the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TransactionsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kahera_transactions_processed_total",
			Help: "Counter transactions processed, by type.",
		}, []string{"type"}),
		FeesCollected: factory.NewCounter(prometheus.CounterOpts{
			Name: "kahera_fees_collected_centavos_total",
			Help: "Service fees collected, in centavos.",
		}),
		Reversals: factory.NewCounter(prometheus.CounterOpts{
			Name: "kahera_reversals_total",
			Help: "Transactions reversed.",
		}),
		FundAdjustments: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kahera_fund_adjustments_total",
			Help: "Fund-management operations, by kind.",
		}, []string{"kind"}),
		ExpensesRecorded: factory.NewCounter(prometheus.CounterOpts{
			Name: "kahera_expenses_recorded_total",
			Help: "Expense records created.",
		}),
		DayCloses: factory.NewCounter(prometheus.CounterOpts{
			Name: "kahera_day_closes_total",
			Help: "Close-of-day snapshots persisted.",
		}),
	}
}

// Subscribe attaches the metrics to the event bus.
func (m *Metrics) Subscribe(bus eventbus.Bus) {
	bus.Subscribe(ledger.EventTransactionProcessed, func(_ context.Context, e domain.Event) {
		event := e.(ledger.TransactionProcessed)
		m.TransactionsProcessed.WithLabelValues(string(event.TxType)).Inc()
		m.FeesCollected.Add(float64(event.Fee.Centavos()))
	})
	bus.Subscribe(ledger.EventTransactionReversed, func(context.Context, domain.Event) {
		m.Reversals.Inc()
	})
	bus.Subscribe(ledger.EventFundsAdjusted, func(_ context.Context, e domain.Event) {
		event := e.(ledger.FundsAdjusted)
		m.FundAdjustments.WithLabelValues(string(event.Kind)).Inc()
	})
	bus.Subscribe(ledger.EventExpenseRecorded, func(context.Context, domain.Event) {
		m.ExpensesRecorded.Inc()
	})
	bus.Subscribe(ledger.EventDayClosed, func(context.Context, domain.Event) {
		m.DayCloses.Inc()
	})
}
