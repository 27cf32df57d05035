// Package expense records shop costs paid out of one of the two funds.
package expense

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

// Service records expenses against the fund ledger.
type Service struct {
	uow    repository.UnitOfWork
	bus    eventbus.Bus
	guard  *service.Guard
	logger *slog.Logger
}

// New creates the expense service.
func New(uow repository.UnitOfWork, bus eventbus.Bus, guard *service.Guard, logger *slog.Logger) *Service {
	return &Service{uow: uow, bus: bus, guard: guard, logger: logger}
}

// Add deducts the amount from the chosen fund and appends the expense
// record. The deduction is rejected when the fund cannot cover it.
func (s *Service) Add(ctx context.Context, amount money.Money, source ledger.FundSource, description string) (*ledger.Expense, error) {
	if !amount.IsPositive() {
		return nil, ledger.ErrAmountMustBePositive
	}
	if !source.Valid() {
		return nil, ledger.ErrInvalidFundSource
	}
	if description == "" {
		return nil, ledger.ErrDescriptionRequired
	}

	var exp *ledger.Expense
	s.guard.Lock()
	defer s.guard.Unlock()
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		fundsRepo, err := uow.FundsRepository()
		if err != nil {
			return err
		}
		funds, err := fundsRepo.Get(ctx)
		if err != nil {
			return err
		}
		delta := ledger.Delta{Cash: amount.Negate()}
		available := funds.Cash
		if source == ledger.SourceWallet {
			delta = ledger.Delta{Wallet: amount.Negate()}
			available = funds.Wallet
		}
		if available.LessThan(amount) {
			return ledger.ErrInsufficientFunds
		}
		updated, err := funds.Apply(delta)
		if err != nil {
			return err
		}
		updated.UpdatedAt = time.Now()
		if err := fundsRepo.Save(ctx, updated); err != nil {
			return err
		}
		exp = &ledger.Expense{
			ID:            uuid.New(),
			Amount:        amount,
			Source:        source,
			Description:   description,
			UpdatedCash:   updated.Cash,
			UpdatedWallet: updated.Wallet,
			CreatedAt:     time.Now(),
		}
		expRepo, err := uow.ExpenseRepository()
		if err != nil {
			return err
		}
		return expRepo.Create(ctx, exp)
	})
	if err != nil {
		s.logger.Error("expense rejected", "source", source, "amount", amount, "error", err)
		return nil, err
	}

	s.logger.Info("expense recorded", "expense_id", exp.ID, "source", source, "amount", amount)
	_ = s.bus.Publish(ctx, ledger.ExpenseRecorded{
		ExpenseID: exp.ID,
		Amount:    amount,
		Source:    source,
	})
	return exp, nil
}

// List returns all expense records.
func (s *Service) List(ctx context.Context) ([]*ledger.Expense, error) {
	repo, err := s.uow.ExpenseRepository()
	if err != nil {
		return nil, err
	}
	return repo.List(ctx)
}
