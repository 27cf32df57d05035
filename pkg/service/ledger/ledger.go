// Package ledger provides the transaction-processing service: cash-in,
// cash-out and load events, the pending queue, and the two-step reversal
// flow. Every balance mutation runs inside a unit of work and behind the
// shared guard, so concurrent operations serialize instead of clobbering
// each other's balance updates.
package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rmercado/kahera/pkg/domain/ledger"
	"github.com/rmercado/kahera/pkg/eventbus"
	"github.com/rmercado/kahera/pkg/money"
	"github.com/rmercado/kahera/pkg/repository"
	"github.com/rmercado/kahera/pkg/service"
)

// Service processes counter transactions against the fund ledger.
type Service struct {
	uow    repository.UnitOfWork
	bus    eventbus.Bus
	guard  *service.Guard
	logger *slog.Logger
}

// New creates the transaction service.
func New(uow repository.UnitOfWork, bus eventbus.Bus, guard *service.Guard, logger *slog.Logger) *Service {
	return &Service{uow: uow, bus: bus, guard: guard, logger: logger}
}

// ProcessRequest describes one counter transaction.
type ProcessRequest struct {
	Amount         money.Money
	Type           ledger.Type
	FeeFund        ledger.FeeFund
	Fee            *money.Money // explicit override; nil quotes from the amount
	Pending        bool
	CustomerNumber string
	PayeeName      string
}

// Process validates the request, applies the transaction's effect to the
// balances and records both in one transaction boundary.
//
// Cash-out fails with ErrInsufficientFunds when the cash drawer cannot cover
// the amount; load fails the same way against the wallet. Rejections leave
// the balances untouched.
func (s *Service) Process(ctx context.Context, req ProcessRequest) (*ledger.Transaction, ledger.Funds, error) {
	logger := s.logger.With("op", "process", "type", req.Type, "amount", req.Amount)

	b := ledger.NewTransaction().
		WithAmount(req.Amount).
		WithType(req.Type).
		WithFeeFund(req.FeeFund).
		Pending(req.Pending).
		WithCustomerNumber(req.CustomerNumber).
		WithPayeeName(req.PayeeName)
	if req.Fee != nil {
		b = b.WithFee(*req.Fee)
	}
	tx, err := b.Build()
	if err != nil {
		return nil, ledger.Funds{}, err
	}

	var updated ledger.Funds
	s.guard.Lock()
	defer s.guard.Unlock()
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		fundsRepo, err := uow.FundsRepository()
		if err != nil {
			return err
		}
		funds, err := fundsRepo.Get(ctx)
		if err != nil {
			return err
		}
		if tx.Type == ledger.TypeCashOut && funds.Cash.LessThan(tx.Amount) {
			return ledger.ErrInsufficientFunds
		}
		if tx.Type == ledger.TypeLoad && funds.Wallet.LessThan(tx.Amount) {
			return ledger.ErrInsufficientFunds
		}
		updated, err = funds.Apply(tx.Delta())
		if err != nil {
			return err
		}
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		if err := txRepo.Create(ctx, tx); err != nil {
			return err
		}
		return fundsRepo.Save(ctx, updated)
	})
	if err != nil {
		logger.Error("transaction rejected", "error", err)
		return nil, ledger.Funds{}, err
	}

	logger.Info("transaction processed",
		"transaction_id", tx.ID, "fee", tx.Fee, "status", tx.Status,
		"cash", updated.Cash, "wallet", updated.Wallet)
	_ = s.bus.Publish(ctx, ledger.TransactionProcessed{
		TransactionID: tx.ID,
		TxType:        tx.Type,
		Amount:        tx.Amount,
		Fee:           tx.Fee,
		Pending:       tx.Status == ledger.StatusPending,
	})
	return tx, updated, nil
}

// PreviewReversal is the first step of the undo flow: it reports what the
// balances would become if the transaction were reversed, without writing.
func (s *Service) PreviewReversal(ctx context.Context, id uuid.UUID) (*ledger.ReversalPreview, error) {
	var preview *ledger.ReversalPreview
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		tx, err := txRepo.Get(ctx, id)
		if err != nil {
			return err
		}
		if tx.Reversed() {
			return ledger.ErrAlreadyReversed
		}
		fundsRepo, err := uow.FundsRepository()
		if err != nil {
			return err
		}
		funds, err := fundsRepo.Get(ctx)
		if err != nil {
			return err
		}
		inverse := tx.Delta().Negate()
		restored, err := funds.Apply(inverse)
		if err != nil {
			return err
		}
		preview = &ledger.ReversalPreview{
			TransactionID: tx.ID,
			Amount:        tx.Amount,
			Fee:           tx.Fee,
			Delta:         inverse,
			Cash:          restored.Cash,
			Wallet:        restored.Wallet,
		}
		return nil
	})
	return preview, err
}

// Reverse is the confirmation step: it creates the compensating record,
// applies the exact negation of the transaction's forward delta, and flips
// the original's status. Reversal is irreversible; a reversed transaction
// cannot be reversed again.
func (s *Service) Reverse(ctx context.Context, id uuid.UUID) (*ledger.Reversal, ledger.Funds, error) {
	logger := s.logger.With("op", "reverse", "transaction_id", id)

	var (
		rev     *ledger.Reversal
		tx      *ledger.Transaction
		updated ledger.Funds
	)
	s.guard.Lock()
	defer s.guard.Unlock()
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		tx, err = txRepo.Get(ctx, id)
		if err != nil {
			return err
		}
		if tx.Reversed() {
			return ledger.ErrAlreadyReversed
		}
		fundsRepo, err := uow.FundsRepository()
		if err != nil {
			return err
		}
		funds, err := fundsRepo.Get(ctx)
		if err != nil {
			return err
		}
		updated, err = funds.Apply(tx.Delta().Negate())
		if err != nil {
			return err
		}
		rev = ledger.NewReversal(tx)
		revRepo, err := uow.ReversalRepository()
		if err != nil {
			return err
		}
		if err := revRepo.Create(ctx, rev); err != nil {
			return err
		}
		if err := txRepo.UpdateStatus(ctx, tx.ID, ledger.StatusReversed, nil); err != nil {
			return err
		}
		return fundsRepo.Save(ctx, updated)
	})
	if err != nil {
		logger.Error("reversal failed", "error", err)
		return nil, ledger.Funds{}, err
	}

	logger.Info("transaction reversed",
		"reversal_id", rev.ID, "cash", updated.Cash, "wallet", updated.Wallet)
	_ = s.bus.Publish(ctx, ledger.TransactionReversed{
		TransactionID: tx.ID,
		ReversalID:    rev.ID,
		OriginalType:  tx.Type,
	})
	return rev, updated, nil
}

// MarkPaid settles a pending transaction, stamping the collection time.
func (s *Service) MarkPaid(ctx context.Context, id uuid.UUID) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		tx, err := txRepo.Get(ctx, id)
		if err != nil {
			return err
		}
		if tx.Status != ledger.StatusPending {
			return ledger.ErrNotPending
		}
		now := time.Now()
		return txRepo.UpdateStatus(ctx, id, ledger.StatusPaid, &now)
	})
}

// Delete removes a transaction record. The balances are not touched; use
// Reverse to undo a transaction's monetary effect.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		return txRepo.Delete(ctx, id)
	})
}

// Get returns one transaction.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	txRepo, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, err
	}
	return txRepo.Get(ctx, id)
}

// List returns all transactions, newest first.
func (s *Service) List(ctx context.Context) ([]*ledger.Transaction, error) {
	txRepo, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, err
	}
	return txRepo.List(ctx)
}
