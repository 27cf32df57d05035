package ledger

import "errors"

var (
	// ErrInsufficientFunds is returned when a cash-out or load exceeds the
	// available balance of the fund it draws from.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAmountMustBePositive is returned when a transaction amount is zero
	// or negative.
	ErrAmountMustBePositive = errors.New("transaction amount must be positive")

	// ErrInvalidType is returned when a transaction type is not one a
	// customer can request.
	ErrInvalidType = errors.New("invalid transaction type")

	// ErrInvalidFeeFund is returned when the fee placement is not a known
	// fund.
	ErrInvalidFeeFund = errors.New("invalid fee fund")

	// ErrInvalidFundSource is returned when an expense names an unknown
	// fund.
	ErrInvalidFundSource = errors.New("invalid fund source")

	// ErrFeeMustNotBeNegative is returned when an explicit fee override is
	// below zero.
	ErrFeeMustNotBeNegative = errors.New("fee must not be negative")

	// ErrCustomerNumberRequired is returned when a transaction is submitted
	// without the customer's GCash number.
	ErrCustomerNumberRequired = errors.New("customer number is required")

	// ErrPayeeNameRequired is returned when a pending transaction is
	// submitted without the payee's name.
	ErrPayeeNameRequired = errors.New("payee name is required for pending transactions")

	// ErrAlreadyReversed is returned when reversing a transaction that has
	// already been reversed.
	ErrAlreadyReversed = errors.New("transaction already reversed")

	// ErrTransactionNotFound is returned when a transaction cannot be found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrFundsNotFound is returned when the funds record has not been
	// initialized yet.
	ErrFundsNotFound = errors.New("funds record not found")

	// ErrNegativeBalance is returned when a transfer or expense would drive
	// a fund balance below zero.
	ErrNegativeBalance = errors.New("operation would drive fund balance negative")

	// ErrNotPending is returned when marking a non-pending transaction as
	// paid.
	ErrNotPending = errors.New("transaction is not pending")

	// ErrDescriptionRequired is returned when an expense or fund adjustment
	// is submitted without a description.
	ErrDescriptionRequired = errors.New("description is required")

	// ErrInvalidDirection is returned when a transfer direction is not
	// recognized.
	ErrInvalidDirection = errors.New("invalid transfer direction")

	// ErrNothingToAdd is returned when a top-up carries no amount for
	// either fund.
	ErrNothingToAdd = errors.New("top-up amount required for at least one fund")
)
