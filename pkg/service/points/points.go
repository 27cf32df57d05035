// Package points provides the loyalty program service: member registration
// and point accrual for purchases run through the counter.
package points

import (
	"context"
	"log/slog"

	"github.com/rmercado/kahera/pkg/domain/loyalty"
	"github.com/rmercado/kahera/pkg/repository"
	"github.com/shopspring/decimal"
)

// Service manages loyalty members and their points.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates the loyalty service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// AccrueResult reports what one accrual earned and the resulting balance.
type AccrueResult struct {
	CardNumber string
	Earned     decimal.Decimal
	Balance    decimal.Decimal
}

// Accrue credits the points for one purchase to the member with the given
// card number and tracks their lifetime spend.
func (s *Service) Accrue(ctx context.Context, cardNumber string, amount decimal.Decimal) (*AccrueResult, error) {
	var result *AccrueResult
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		customer, err := repo.GetByCardNumber(ctx, cardNumber)
		if err != nil {
			return err
		}
		earned, err := customer.Accrue(amount)
		if err != nil {
			return err
		}
		if err := repo.Update(ctx, customer); err != nil {
			return err
		}
		result = &AccrueResult{
			CardNumber: cardNumber,
			Earned:     earned,
			Balance:    customer.Points,
		}
		return nil
	})
	if err != nil {
		s.logger.Error("point accrual failed", "card_number", cardNumber, "error", err)
		return nil, err
	}
	s.logger.Info("points accrued",
		"card_number", cardNumber, "earned", result.Earned, "balance", result.Balance)
	return result, nil
}

// Register adds a new member with zero points.
func (s *Service) Register(ctx context.Context, cardNumber, name, phone string) (*loyalty.Customer, error) {
	customer, err := loyalty.NewCustomer(cardNumber, name, phone)
	if err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		return repo.Create(ctx, customer)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("customer registered", "card_number", cardNumber)
	return customer, nil
}

// List returns all members.
func (s *Service) List(ctx context.Context) ([]*loyalty.Customer, error) {
	repo, err := s.uow.CustomerRepository()
	if err != nil {
		return nil, err
	}
	return repo.List(ctx)
}
