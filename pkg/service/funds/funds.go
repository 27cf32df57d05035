// Package funds provides the fund-management service: initializing the two
// balances, topping them up, and moving value between them. Every adjustment
// appends an audit log entry with the before and after balances.
package funds

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/rmercado/kahera/pkg/domain/ledger"
	"github.com/rmercado/kahera/pkg/eventbus"
	"github.com/rmercado/kahera/pkg/money"
	"github.com/rmercado/kahera/pkg/repository"
	"github.com/rmercado/kahera/pkg/service"
)

// Service manages the fund balances.
type Service struct {
	uow    repository.UnitOfWork
	bus    eventbus.Bus
	guard  *service.Guard
	logger *slog.Logger
}

// New creates the fund-management service.
func New(uow repository.UnitOfWork, bus eventbus.Bus, guard *service.Guard, logger *slog.Logger) *Service {
	return &Service{uow: uow, bus: bus, guard: guard, logger: logger}
}

// Get returns the current balances.
func (s *Service) Get(ctx context.Context) (ledger.Funds, error) {
	repo, err := s.uow.FundsRepository()
	if err != nil {
		return ledger.Funds{}, err
	}
	return repo.Get(ctx)
}

// Initialize overwrites both balances with absolute values. Used at setup
// and when a physical recount corrects the books.
func (s *Service) Initialize(ctx context.Context, cash, wallet money.Money, description string) (ledger.Funds, error) {
	if cash.IsNegative() || wallet.IsNegative() {
		return ledger.Funds{}, ledger.ErrNegativeBalance
	}
	return s.adjust(ctx, ledger.AdjustmentUpdate, description, func(ledger.Funds) (ledger.Funds, error) {
		return ledger.Funds{Cash: cash, Wallet: wallet, UpdatedAt: time.Now()}, nil
	})
}

// TopUp adds non-negative amounts to one or both balances.
func (s *Service) TopUp(ctx context.Context, cashAdd, walletAdd money.Money, description string) (ledger.Funds, error) {
	if cashAdd.IsNegative() || walletAdd.IsNegative() {
		return ledger.Funds{}, ledger.ErrNegativeBalance
	}
	if cashAdd.IsZero() && walletAdd.IsZero() {
		return ledger.Funds{}, ledger.ErrNothingToAdd
	}
	return s.adjust(ctx, ledger.AdjustmentAdd, description, func(current ledger.Funds) (ledger.Funds, error) {
		return current.Apply(ledger.Delta{Cash: cashAdd, Wallet: walletAdd})
	})
}

// Transfer moves an amount between the two balances. A transfer that would
// drive the source balance below zero is rejected.
func (s *Service) Transfer(ctx context.Context, direction ledger.TransferDirection, amount money.Money, description string) (ledger.Funds, error) {
	if !direction.Valid() {
		return ledger.Funds{}, ledger.ErrInvalidDirection
	}
	if !amount.IsPositive() {
		return ledger.Funds{}, ledger.ErrAmountMustBePositive
	}
	return s.adjust(ctx, ledger.AdjustmentSwap, description, func(current ledger.Funds) (ledger.Funds, error) {
		delta := ledger.Delta{Cash: amount.Negate(), Wallet: amount}
		source := current.Cash
		if direction == ledger.DirectionWalletToCash {
			delta = ledger.Delta{Cash: amount, Wallet: amount.Negate()}
			source = current.Wallet
		}
		if source.LessThan(amount) {
			return ledger.Funds{}, ledger.ErrNegativeBalance
		}
		return current.Apply(delta)
	})
}

// Logs returns the fund adjustment audit trail.
func (s *Service) Logs(ctx context.Context) ([]*ledger.FundLogEntry, error) {
	repo, err := s.uow.FundLogRepository()
	if err != nil {
		return nil, err
	}
	return repo.List(ctx)
}

// adjust runs one fund-management mutation: read the current balances,
// compute the new ones, persist them and append the audit entry. Initialize
// tolerates a missing funds row; the other adjustments require one.
func (s *Service) adjust(
	ctx context.Context,
	kind ledger.AdjustmentKind,
	description string,
	compute func(current ledger.Funds) (ledger.Funds, error),
) (ledger.Funds, error) {
	logger := s.logger.With("op", "adjust", "kind", kind)

	var updated ledger.Funds
	s.guard.Lock()
	defer s.guard.Unlock()
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		fundsRepo, err := uow.FundsRepository()
		if err != nil {
			return err
		}
		current, err := fundsRepo.Get(ctx)
		switch {
		case errors.Is(err, ledger.ErrFundsNotFound) && kind == ledger.AdjustmentUpdate:
			current = ledger.Funds{}
		case err != nil:
			return err
		}
		updated, err = compute(current)
		if err != nil {
			return err
		}
		updated.UpdatedAt = time.Now()
		if err := fundsRepo.Save(ctx, updated); err != nil {
			return err
		}
		logRepo, err := uow.FundLogRepository()
		if err != nil {
			return err
		}
		return logRepo.Create(ctx, ledger.NewFundLogEntry(current, updated, kind, description))
	})
	if err != nil {
		logger.Error("fund adjustment failed", "error", err)
		return ledger.Funds{}, err
	}

	logger.Info("funds adjusted", "cash", updated.Cash, "wallet", updated.Wallet)
	_ = s.bus.Publish(ctx, ledger.FundsAdjusted{
		Kind:   kind,
		Cash:   updated.Cash,
		Wallet: updated.Wallet,
	})
	return updated, nil
}
