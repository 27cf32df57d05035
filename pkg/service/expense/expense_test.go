package expense_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/rmercado/kahera/pkg/domain/ledger"
	"github.com/rmercado/kahera/pkg/eventbus"
	"github.com/rmercado/kahera/pkg/money"
	"github.com/rmercado/kahera/pkg/service"
	expensesvc "github.com/rmercado/kahera/pkg/service/expense"
	"github.com/rmercado/kahera/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pesos(p int64) money.Money { return money.FromCentavos(p * 100) }

func newService(uow *testutils.MemoryUoW) *expensesvc.Service {
	return expensesvc.New(uow, eventbus.NewMemoryBus(), &service.Guard{}, slog.Default())
}

func TestAddExpenseFromWallet(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	uow.SeedFunds(1000_00, 2000_00)
	svc := newService(uow)
	ctx := context.Background()

	exp, err := svc.Add(ctx, pesos(350), ledger.SourceWallet, "internet bill")
	require.NoError(t, err)
	assert.Equal(t, pesos(1000), exp.UpdatedCash)
	assert.Equal(t, pesos(1650), exp.UpdatedWallet)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAddExpenseInsufficient(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	uow.SeedFunds(100_00, 50_00)
	svc := newService(uow)

	_, err := svc.Add(context.Background(), pesos(200), ledger.SourceCash, "ice")
	assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAddExpenseValidation(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	uow.SeedFunds(1000_00, 1000_00)
	svc := newService(uow)
	ctx := context.Background()

	_, err := svc.Add(ctx, money.Zero, ledger.SourceCash, "x")
	assert.ErrorIs(t, err, ledger.ErrAmountMustBePositive)

	_, err = svc.Add(ctx, pesos(10), ledger.FundSource("vault"), "x")
	assert.ErrorIs(t, err, ledger.ErrInvalidFundSource)

	_, err = svc.Add(ctx, pesos(10), ledger.SourceCash, "")
	assert.ErrorIs(t, err, ledger.ErrDescriptionRequired)
}
