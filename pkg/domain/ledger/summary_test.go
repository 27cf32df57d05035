package ledger_test

import (
	"testing"

	"github.com/rmercado/kahera/pkg/domain/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumTransactionsEmpty(t *testing.T) {
	totals := ledger.SumTransactions(nil)
	assert.True(t, totals.TotalFee.IsZero())
	assert.True(t, totals.PendingAmount.IsZero())
	assert.True(t, totals.PendingFee.IsZero())
}

func TestSumTransactions(t *testing.T) {
	completed := buildTx(t, 600, ledger.TypeCashIn, ledger.FeeFundCash) // fee ₱10

	pending, err := ledger.NewTransaction().
		WithAmount(pesos(1500)). // fee ₱15
		WithType(ledger.TypeCashOut).
		WithFeeFund(ledger.FeeFundWallet).
		WithCustomerNumber("09181234567").
		Pending(true).
		WithPayeeName("Mang Tomas").
		Build()
	require.NoError(t, err)

	totals := ledger.SumTransactions([]*ledger.Transaction{completed, pending})
	assert.Equal(t, pesos(25), totals.TotalFee)
	assert.Equal(t, pesos(1500), totals.PendingAmount)
	assert.Equal(t, pesos(15), totals.PendingFee)
}
