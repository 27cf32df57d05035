package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/rmercado/kahera/pkg/domain/ledger"
	"github.com/rmercado/kahera/pkg/money"
	expensesvc "github.com/rmercado/kahera/pkg/service/expense"
)

// AddExpenseRequest records an operating expense against a fund.
type AddExpenseRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Source      string  `json:"source" validate:"required,oneof=cash wallet"`
	Description string  `json:"description" validate:"required"`
}

// ExpenseDTO is the API response representation of an expense.
type ExpenseDTO struct {
	ID            string  `json:"id"`
	Amount        float64 `json:"amount"`
	Source        string  `json:"source"`
	Description   string  `json:"description"`
	UpdatedCash   float64 `json:"updated_cash"`
	UpdatedWallet float64 `json:"updated_wallet"`
	CreatedAt     string  `json:"created_at"`
}

// ToExpenseDTO maps a ledger.Expense to an ExpenseDTO.
func ToExpenseDTO(expense *ledger.Expense) *ExpenseDTO {
	return &ExpenseDTO{
		ID:            expense.ID.String(),
		Amount:        expense.Amount.Pesos(),
		Source:        string(expense.Source),
		Description:   expense.Description,
		UpdatedCash:   expense.UpdatedCash.Pesos(),
		UpdatedWallet: expense.UpdatedWallet.Pesos(),
		CreatedAt:     expense.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ExpenseRoutes registers HTTP routes for expense tracking.
//
// Routes:
//   - POST /expenses : Record an expense and deduct it from a fund.
//   - GET  /expenses : All expenses, newest first.
func ExpenseRoutes(app *fiber.App, expenseSvc *expensesvc.Service) {
	app.Post("/expenses", AddExpense(expenseSvc))
	app.Get("/expenses", GetExpenses(expenseSvc))
}

// AddExpense returns a Fiber handler recording an expense.
func AddExpense(expenseSvc *expensesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[AddExpenseRequest](c)
		if err != nil {
			return nil
		}
		amount, err := money.NewFromPesos(input.Amount)
		if err != nil {
			return ProblemDetailsJSON(c, fiber.StatusBadRequest, "Invalid amount", err.Error())
		}
		expense, err := expenseSvc.Add(c.UserContext(), amount, ledger.FundSource(input.Source), input.Description)
		if err != nil {
			log.Errorf("Failed to add expense: %v", err)
			return ProblemDetailsJSON(c, ErrorToStatusCode(err), "Failed to add expense", err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(Response{Status: fiber.StatusCreated, Message: "Expense recorded", Data: ToExpenseDTO(expense)})
	}
}

// GetExpenses returns a Fiber handler listing all expenses.
func GetExpenses(expenseSvc *expensesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		expenses, err := expenseSvc.List(c.UserContext())
		if err != nil {
			log.Errorf("Failed to list expenses: %v", err)
			return ProblemDetailsJSON(c, ErrorToStatusCode(err), "Failed to list expenses", err.Error())
		}
		dtos := make([]*ExpenseDTO, 0, len(expenses))
		for _, expense := range expenses {
			dtos = append(dtos, ToExpenseDTO(expense))
		}
		return c.JSON(Response{Status: fiber.StatusOK, Message: "Expenses", Data: dtos})
	}
}
