// Package report provides the read-side aggregations over the transaction
// log and the close-of-day snapshot flow.
package report

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rmercado/kahera/pkg/domain/ledger"
	"github.com/rmercado/kahera/pkg/eventbus"
	"github.com/rmercado/kahera/pkg/money"
	"github.com/rmercado/kahera/pkg/repository"
)

// Filter selects which transactions a totals query covers, by creation date.
type Filter string

const (
	// FilterAll covers every transaction.
	FilterAll Filter = "all"
	// FilterToday covers transactions created today.
	FilterToday Filter = "today"
	// FilterYesterday covers transactions created yesterday.
	FilterYesterday Filter = "yesterday"
)

// ErrInvalidFilter is returned for an unrecognized totals filter.
var ErrInvalidFilter = errors.New("invalid totals filter")

// Service computes fee and pending totals and closes out days.
type Service struct {
	uow    repository.UnitOfWork
	bus    eventbus.Bus
	logger *slog.Logger
	now    func() time.Time
}

// New creates the reporting service.
func New(uow repository.UnitOfWork, bus eventbus.Bus, logger *slog.Logger) *Service {
	return &Service{uow: uow, bus: bus, logger: logger, now: time.Now}
}

// WithClock overrides the service's clock. Test hook.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Totals aggregates the filtered transaction set: fee across every match,
// amount and fee across the pending subset. An empty set yields zero totals.
func (s *Service) Totals(ctx context.Context, filter Filter) (ledger.Totals, error) {
	txs, err := s.filtered(ctx, filter)
	if err != nil {
		return ledger.Totals{}, err
	}
	return ledger.SumTransactions(txs), nil
}

// PendingQueue is the settlement work list: pending and already-collected
// transactions with their running totals. Outstanding is what pending
// customers still owe, amount plus fee.
type PendingQueue struct {
	Transactions []*ledger.Transaction
	TotalAmount  money.Money
	TotalFee     money.Money
	Outstanding  money.Money
}

// Pending returns the settlement queue.
func (s *Service) Pending(ctx context.Context) (*PendingQueue, error) {
	txRepo, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, err
	}
	txs, err := txRepo.ListByStatus(ctx, ledger.StatusPending, ledger.StatusPaid)
	if err != nil {
		return nil, err
	}
	var amount, fee, outstanding int64
	for _, tx := range txs {
		amount += tx.Amount.Centavos()
		fee += tx.Fee.Centavos()
		if tx.Status == ledger.StatusPending {
			outstanding += tx.Amount.Centavos() + tx.Fee.Centavos()
		}
	}
	return &PendingQueue{
		Transactions: txs,
		TotalAmount:  money.FromCentavos(amount),
		TotalFee:     money.FromCentavos(fee),
		Outstanding:  money.FromCentavos(outstanding),
	}, nil
}

// CloseDay persists a snapshot of today's collected fees and the current
// balances. Summaries are append-only; closing twice records two rows.
func (s *Service) CloseDay(ctx context.Context) (*ledger.DailySummary, error) {
	var summary *ledger.DailySummary
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		from, to := dayWindow(s.now())
		txs, err := txRepo.ListByDateRange(ctx, from, to)
		if err != nil {
			return err
		}
		totals := ledger.SumTransactions(txs)

		fundsRepo, err := uow.FundsRepository()
		if err != nil {
			return err
		}
		funds, err := fundsRepo.Get(ctx)
		if err != nil {
			return err
		}
		summary = &ledger.DailySummary{
			ID:       uuid.New(),
			Date:     s.now(),
			TotalFee: totals.TotalFee,
			Cash:     funds.Cash,
			Wallet:   funds.Wallet,
		}
		sumRepo, err := uow.DailySummaryRepository()
		if err != nil {
			return err
		}
		return sumRepo.Create(ctx, summary)
	})
	if err != nil {
		s.logger.Error("close day failed", "error", err)
		return nil, err
	}

	s.logger.Info("day closed", "summary_id", summary.ID, "total_fee", summary.TotalFee)
	_ = s.bus.Publish(ctx, ledger.DayClosed{SummaryID: summary.ID, TotalFee: summary.TotalFee})
	return summary, nil
}

// Daily returns the close-of-day history, newest first.
func (s *Service) Daily(ctx context.Context) ([]*ledger.DailySummary, error) {
	repo, err := s.uow.DailySummaryRepository()
	if err != nil {
		return nil, err
	}
	return repo.List(ctx)
}

func (s *Service) filtered(ctx context.Context, filter Filter) ([]*ledger.Transaction, error) {
	txRepo, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, err
	}
	switch filter {
	case FilterAll, "":
		return txRepo.List(ctx)
	case FilterToday:
		from, to := dayWindow(s.now())
		return txRepo.ListByDateRange(ctx, from, to)
	case FilterYesterday:
		from, to := dayWindow(s.now().AddDate(0, 0, -1))
		return txRepo.ListByDateRange(ctx, from, to)
	default:
		return nil, ErrInvalidFilter
	}
}

// dayWindow returns the local-time [midnight, next midnight) window around t.
func dayWindow(t time.Time) (time.Time, time.Time) {
	year, month, day := t.Date()
	from := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	return from, from.AddDate(0, 0, 1)
}
