package eventbus_test

import (
	"context"
	"testing"

	"github.com/rmercado/kahera/pkg/domain"
	"github.com/rmercado/kahera/pkg/domain/ledger"
	"github.com/rmercado/kahera/pkg/eventbus"
	"github.com/rmercado/kahera/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBusRoutesByType(t *testing.T) {
	bus := eventbus.NewMemoryBus()

	var processed []ledger.TransactionProcessed
	bus.Subscribe(ledger.EventTransactionProcessed, func(_ context.Context, e domain.Event) {
		processed = append(processed, e.(ledger.TransactionProcessed))
	})

	var closed int
	bus.Subscribe(ledger.EventDayClosed, func(_ context.Context, _ domain.Event) {
		closed++
	})

	err := bus.Publish(context.Background(), ledger.TransactionProcessed{
		TxType: ledger.TypeCashIn,
		Amount: money.FromCentavos(60000),
	})
	require.NoError(t, err)

	require.Len(t, processed, 1)
	assert.Equal(t, ledger.TypeCashIn, processed[0].TxType)
	assert.Zero(t, closed)
}

func TestMemoryBusMultipleSubscribers(t *testing.T) {
	bus := eventbus.NewMemoryBus()
	hits := 0
	for i := 0; i < 3; i++ {
		bus.Subscribe(ledger.EventExpenseRecorded, func(_ context.Context, _ domain.Event) { hits++ })
	}
	require.NoError(t, bus.Publish(context.Background(), ledger.ExpenseRecorded{}))
	assert.Equal(t, 3, hits)
}
