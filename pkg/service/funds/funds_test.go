package funds_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/rmercado/kahera/pkg/domain/ledger"
	"github.com/rmercado/kahera/pkg/eventbus"
	"github.com/rmercado/kahera/pkg/money"
	"github.com/rmercado/kahera/pkg/service"
	fundssvc "github.com/rmercado/kahera/pkg/service/funds"
	"github.com/rmercado/kahera/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pesos(p int64) money.Money { return money.FromCentavos(p * 100) }

func newService(uow *testutils.MemoryUoW) *fundssvc.Service {
	return fundssvc.New(uow, eventbus.NewMemoryBus(), &service.Guard{}, slog.Default())
}

func TestInitializeCreatesFundsAndLog(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	svc := newService(uow)
	ctx := context.Background()

	funds, err := svc.Initialize(ctx, pesos(5000), pesos(3000), "opening balances")
	require.NoError(t, err)
	assert.Equal(t, pesos(5000), funds.Cash)
	assert.Equal(t, pesos(3000), funds.Wallet)

	logs, err := svc.Logs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, ledger.AdjustmentUpdate, logs[0].Kind)
	assert.True(t, logs[0].PreviousCash.IsZero())
	assert.Equal(t, pesos(5000), logs[0].UpdatedCash)
	assert.Equal(t, "opening balances", logs[0].Description)
}

func TestInitializeRejectsNegative(t *testing.T) {
	svc := newService(testutils.NewMemoryUoW())
	_, err := svc.Initialize(context.Background(), pesos(-1), pesos(0), "")
	assert.ErrorIs(t, err, ledger.ErrNegativeBalance)
}

func TestTopUp(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	uow.SeedFunds(1000_00, 2000_00)
	svc := newService(uow)
	ctx := context.Background()

	funds, err := svc.TopUp(ctx, pesos(500), money.Zero, "cash replenishment")
	require.NoError(t, err)
	assert.Equal(t, pesos(1500), funds.Cash)
	assert.Equal(t, pesos(2000), funds.Wallet)

	logs, err := svc.Logs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, ledger.AdjustmentAdd, logs[0].Kind)
	assert.Equal(t, pesos(1000), logs[0].PreviousCash)
	assert.Equal(t, pesos(1500), logs[0].UpdatedCash)
}

func TestTopUpRequiresAmount(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	uow.SeedFunds(1000_00, 2000_00)
	svc := newService(uow)

	_, err := svc.TopUp(context.Background(), money.Zero, money.Zero, "")
	assert.ErrorIs(t, err, ledger.ErrNothingToAdd)
}

func TestTopUpRequiresExistingFunds(t *testing.T) {
	svc := newService(testutils.NewMemoryUoW())
	_, err := svc.TopUp(context.Background(), pesos(500), money.Zero, "x")
	assert.ErrorIs(t, err, ledger.ErrFundsNotFound)
}

func TestTransfer(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	uow.SeedFunds(1000_00, 2000_00)
	svc := newService(uow)
	ctx := context.Background()

	funds, err := svc.Transfer(ctx, ledger.DirectionWalletToCash, pesos(800), "rebalance")
	require.NoError(t, err)
	assert.Equal(t, pesos(1800), funds.Cash)
	assert.Equal(t, pesos(1200), funds.Wallet)

	funds, err = svc.Transfer(ctx, ledger.DirectionCashToWallet, pesos(300), "rebalance")
	require.NoError(t, err)
	assert.Equal(t, pesos(1500), funds.Cash)
	assert.Equal(t, pesos(1500), funds.Wallet)

	logs, err := svc.Logs(ctx)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
	assert.Equal(t, ledger.AdjustmentSwap, logs[0].Kind)
}

func TestTransferFloorCheck(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	uow.SeedFunds(100_00, 2000_00)
	svc := newService(uow)

	_, err := svc.Transfer(context.Background(), ledger.DirectionCashToWallet, pesos(500), "too much")
	assert.ErrorIs(t, err, ledger.ErrNegativeBalance)

	// Balances untouched after the rejection.
	funds, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, pesos(100), funds.Cash)
	assert.Equal(t, pesos(2000), funds.Wallet)

	logs, err := svc.Logs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestTransferValidation(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	uow.SeedFunds(1000_00, 2000_00)
	svc := newService(uow)

	_, err := svc.Transfer(context.Background(), ledger.TransferDirection("sideways"), pesos(10), "")
	assert.ErrorIs(t, err, ledger.ErrInvalidDirection)

	_, err = svc.Transfer(context.Background(), ledger.DirectionCashToWallet, money.Zero, "")
	assert.ErrorIs(t, err, ledger.ErrAmountMustBePositive)
}
