package ledger_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	domainledger "github.com/rmercado/kahera/pkg/domain/ledger"
	"github.com/rmercado/kahera/pkg/eventbus"
	"github.com/rmercado/kahera/pkg/money"
	"github.com/rmercado/kahera/pkg/service"
	ledgersvc "github.com/rmercado/kahera/pkg/service/ledger"
	"github.com/rmercado/kahera/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pesos(p int64) money.Money { return money.FromCentavos(p * 100) }

func newService(uow *testutils.MemoryUoW) *ledgersvc.Service {
	return ledgersvc.New(uow, eventbus.NewMemoryBus(), &service.Guard{}, slog.Default())
}

func cashInRequest(amount int64) ledgersvc.ProcessRequest {
	return ledgersvc.ProcessRequest{
		Amount:         pesos(amount),
		Type:           domainledger.TypeCashIn,
		FeeFund:        domainledger.FeeFundCash,
		CustomerNumber: "09171234567",
	}
}

func TestProcessCashIn(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	uow.SeedFunds(1000_00, 1000_00)
	svc := newService(uow)

	fee := pesos(5)
	req := cashInRequest(600)
	req.Fee = &fee

	tx, funds, err := svc.Process(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domainledger.StatusCompleted, tx.Status)
	assert.Equal(t, pesos(1605), funds.Cash)
	assert.Equal(t, pesos(400), funds.Wallet)
}

func TestProcessCashOutInsufficientFunds(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	uow.SeedFunds(100_00, 1000_00)
	svc := newService(uow)

	_, _, err := svc.Process(context.Background(), ledgersvc.ProcessRequest{
		Amount:         pesos(500),
		Type:           domainledger.TypeCashOut,
		FeeFund:        domainledger.FeeFundCash,
		CustomerNumber: "09171234567",
	})
	assert.ErrorIs(t, err, domainledger.ErrInsufficientFunds)

	funds, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, funds, "rejected transaction must not be recorded")

	repo, err := uow.FundsRepository()
	require.NoError(t, err)
	current, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, pesos(100), current.Cash)
	assert.Equal(t, pesos(1000), current.Wallet)
}

func TestProcessLoadInsufficientFunds(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	uow.SeedFunds(1000_00, 50_00)
	svc := newService(uow)

	_, _, err := svc.Process(context.Background(), ledgersvc.ProcessRequest{
		Amount:         pesos(200),
		Type:           domainledger.TypeLoad,
		FeeFund:        domainledger.FeeFundWallet,
		CustomerNumber: "09171234567",
	})
	assert.ErrorIs(t, err, domainledger.ErrInsufficientFunds)
}

func TestProcessValidation(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	uow.SeedFunds(1000_00, 1000_00)
	svc := newService(uow)

	req := cashInRequest(100)
	req.CustomerNumber = ""
	_, _, err := svc.Process(context.Background(), req)
	assert.ErrorIs(t, err, domainledger.ErrCustomerNumberRequired)

	req = cashInRequest(100)
	req.Pending = true
	_, _, err = svc.Process(context.Background(), req)
	assert.ErrorIs(t, err, domainledger.ErrPayeeNameRequired)
}

func TestProcessStoreFailureLeavesBalances(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	uow.SeedFunds(1000_00, 1000_00)
	uow.CreateTxErr = errors.New("store unavailable")
	svc := newService(uow)

	_, _, err := svc.Process(context.Background(), cashInRequest(600))
	require.Error(t, err)

	repo, err := uow.FundsRepository()
	require.NoError(t, err)
	current, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, pesos(1000), current.Cash)
	assert.Equal(t, pesos(1000), current.Wallet)
}

func TestReverseRestoresBalances(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	uow.SeedFunds(1000_00, 1000_00)
	svc := newService(uow)
	ctx := context.Background()

	tx, _, err := svc.Process(ctx, cashInRequest(600))
	require.NoError(t, err)

	rev, funds, err := svc.Reverse(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, pesos(1000), funds.Cash)
	assert.Equal(t, pesos(1000), funds.Wallet)
	assert.Equal(t, tx.Amount.Negate(), rev.Amount)
	assert.Equal(t, tx.Fee.Negate(), rev.Fee)

	reloaded, err := svc.Get(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domainledger.StatusReversed, reloaded.Status)
}

func TestReverseTwiceRejected(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	uow.SeedFunds(1000_00, 1000_00)
	svc := newService(uow)
	ctx := context.Background()

	tx, _, err := svc.Process(ctx, cashInRequest(600))
	require.NoError(t, err)

	_, _, err = svc.Reverse(ctx, tx.ID)
	require.NoError(t, err)

	_, _, err = svc.Reverse(ctx, tx.ID)
	assert.ErrorIs(t, err, domainledger.ErrAlreadyReversed)

	_, err = svc.PreviewReversal(ctx, tx.ID)
	assert.ErrorIs(t, err, domainledger.ErrAlreadyReversed)
}

func TestPreviewReversalDoesNotWrite(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	uow.SeedFunds(1000_00, 1000_00)
	svc := newService(uow)
	ctx := context.Background()

	fee := pesos(5)
	req := cashInRequest(600)
	req.Fee = &fee
	tx, _, err := svc.Process(ctx, req)
	require.NoError(t, err)

	preview, err := svc.PreviewReversal(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, pesos(1000), preview.Cash)
	assert.Equal(t, pesos(1000), preview.Wallet)

	// Balances still reflect the processed transaction.
	repo, err := uow.FundsRepository()
	require.NoError(t, err)
	current, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, pesos(1605), current.Cash)

	reloaded, err := svc.Get(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domainledger.StatusCompleted, reloaded.Status)
}

func TestReverseFundsReadFailureAborts(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	uow.SeedFunds(1000_00, 1000_00)
	svc := newService(uow)
	ctx := context.Background()

	tx, _, err := svc.Process(ctx, cashInRequest(600))
	require.NoError(t, err)

	uow.GetFundsErr = errors.New("store unavailable")
	_, _, err = svc.Reverse(ctx, tx.ID)
	require.Error(t, err)

	reloaded, err := svc.Get(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domainledger.StatusCompleted, reloaded.Status, "aborted reversal must not flip status")
}

func TestMarkPaid(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	uow.SeedFunds(1000_00, 1000_00)
	svc := newService(uow)
	ctx := context.Background()

	req := cashInRequest(600)
	req.Pending = true
	req.PayeeName = "Aling Nena"
	tx, _, err := svc.Process(ctx, req)
	require.NoError(t, err)

	require.NoError(t, svc.MarkPaid(ctx, tx.ID))

	reloaded, err := svc.Get(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domainledger.StatusPaid, reloaded.Status)
	require.NotNil(t, reloaded.PaidAt)

	assert.ErrorIs(t, svc.MarkPaid(ctx, tx.ID), domainledger.ErrNotPending)
}

func TestDeleteLeavesBalances(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	uow.SeedFunds(1000_00, 1000_00)
	svc := newService(uow)
	ctx := context.Background()

	tx, funds, err := svc.Process(ctx, cashInRequest(600))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, tx.ID))

	_, err = svc.Get(ctx, tx.ID)
	assert.ErrorIs(t, err, domainledger.ErrTransactionNotFound)

	repo, err := uow.FundsRepository()
	require.NoError(t, err)
	current, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, funds.Cash, current.Cash)
	assert.Equal(t, funds.Wallet, current.Wallet)
}

func TestConcurrentCashInsSerialize(t *testing.T) {
	uow := testutils.NewMemoryUoW()
	uow.SeedFunds(10_000_00, 10_000_00)
	svc := newService(uow)

	const workers = 8
	fee := pesos(5)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := cashInRequest(100)
			req.Fee = &fee
			_, _, err := svc.Process(context.Background(), req)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Every cash-in must land: no update may clobber another.
	repo, err := uow.FundsRepository()
	require.NoError(t, err)
	current, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, pesos(10_000+workers*105), current.Cash)
	assert.Equal(t, pesos(10_000-workers*100), current.Wallet)

	txs, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, txs, workers)
}
