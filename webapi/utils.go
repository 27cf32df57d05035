package webapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rmercado/kahera/pkg/domain/ledger"
	"github.com/rmercado/kahera/pkg/domain/loyalty"
	"github.com/rmercado/kahera/pkg/money"
	"github.com/rmercado/kahera/pkg/service/report"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Errors   any    `json:"errors,omitempty"`   // Optional: additional error details
}

// ProblemDetailsJSON returns a response following RFC 9457 Problem Details.
func ProblemDetailsJSON(c *fiber.Ctx, status int, title string, detail any) error {
	pd := ProblemDetails{
		Type:   "about:blank",
		Title:  title,
		Status: status,
	}
	if detail != nil {
		if s, ok := detail.(string); ok {
			pd.Detail = s
		} else {
			pd.Errors = detail
		}
	}
	pd.Instance = c.OriginalURL()
	c.Set(fiber.HeaderContentType, "application/problem+json")

	return c.Status(status).JSON(pd)
}

// ErrorToStatusCode maps domain errors to appropriate HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, ledger.ErrTransactionNotFound),
		errors.Is(err, ledger.ErrFundsNotFound),
		errors.Is(err, loyalty.ErrCustomerNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ledger.ErrInsufficientFunds),
		errors.Is(err, ledger.ErrNegativeBalance):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ledger.ErrAlreadyReversed),
		errors.Is(err, ledger.ErrNotPending),
		errors.Is(err, loyalty.ErrCardNumberTaken):
		return fiber.StatusConflict
	case errors.Is(err, ledger.ErrAmountMustBePositive),
		errors.Is(err, ledger.ErrFeeMustNotBeNegative),
		errors.Is(err, ledger.ErrInvalidType),
		errors.Is(err, ledger.ErrInvalidFeeFund),
		errors.Is(err, ledger.ErrInvalidFundSource),
		errors.Is(err, ledger.ErrInvalidDirection),
		errors.Is(err, ledger.ErrCustomerNumberRequired),
		errors.Is(err, ledger.ErrPayeeNameRequired),
		errors.Is(err, ledger.ErrDescriptionRequired),
		errors.Is(err, ledger.ErrNothingToAdd),
		errors.Is(err, loyalty.ErrCardNumberRequired),
		errors.Is(err, loyalty.ErrNameRequired),
		errors.Is(err, loyalty.ErrAccrualAmountMustBePositive),
		errors.Is(err, money.ErrInvalidAmount),
		errors.Is(err, report.ErrInvalidFilter):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body and validates it using go-playground/validator.
// Returns a pointer to the struct (populated), or writes an error response and returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		ProblemDetailsJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
		return nil, err
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		ProblemDetailsJSON(c, fiber.StatusBadRequest, "Validation failed", err.Error())
		return nil, err
	}
	return &input, nil
}
