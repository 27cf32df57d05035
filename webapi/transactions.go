package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/rmercado/kahera/pkg/domain/ledger"
	"github.com/rmercado/kahera/pkg/money"
	ledgersvc "github.com/rmercado/kahera/pkg/service/ledger"
)

// ProcessTransactionRequest records a cash-in, cash-out or load transaction.
// Fee is an optional override; when absent the fee is quoted from the amount.
type ProcessTransactionRequest struct {
	Amount         float64  `json:"amount" validate:"required,gt=0"`
	Type           string   `json:"type" validate:"required,oneof=cash-in cash-out load"`
	FeeFund        string   `json:"fee_fund" validate:"omitempty,oneof=cash wallet"`
	Fee            *float64 `json:"fee" validate:"omitempty,gte=0"`
	Pending        bool     `json:"pending"`
	CustomerNumber string   `json:"customer_number"`
	PayeeName      string   `json:"payee_name"`
}

// TransactionDTO is the API response representation of a transaction.
type TransactionDTO struct {
	ID             string  `json:"id"`
	Amount         float64 `json:"amount"`
	Fee            float64 `json:"fee"`
	Type           string  `json:"type"`
	FeeFund        string  `json:"fee_fund"`
	Status         string  `json:"status"`
	CustomerNumber string  `json:"customer_number,omitempty"`
	PayeeName      string  `json:"payee_name,omitempty"`
	CreatedAt      string  `json:"created_at"`
	PaidAt         *string `json:"paid_at,omitempty"`
}

// ToTransactionDTO maps a ledger.Transaction to a TransactionDTO.
func ToTransactionDTO(tx *ledger.Transaction) *TransactionDTO {
	if tx == nil {
		return nil
	}
	dto := &TransactionDTO{
		ID:             tx.ID.String(),
		Amount:         tx.Amount.Pesos(),
		Fee:            tx.Fee.Pesos(),
		Type:           string(tx.Type),
		FeeFund:        string(tx.FeeFund),
		Status:         string(tx.Status),
		CustomerNumber: tx.CustomerNumber,
		PayeeName:      tx.PayeeName,
		CreatedAt:      tx.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if tx.PaidAt != nil {
		paidAt := tx.PaidAt.Format("2006-01-02T15:04:05Z07:00")
		dto.PaidAt = &paidAt
	}
	return dto
}

// ProcessedDTO pairs a recorded transaction with the resulting balances.
type ProcessedDTO struct {
	Transaction *TransactionDTO `json:"transaction"`
	Funds       FundsDTO        `json:"funds"`
}

// ReversalPreviewDTO shows the effect a confirmed reversal would have.
type ReversalPreviewDTO struct {
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	Fee           float64 `json:"fee"`
	Cash          float64 `json:"cash"`
	Wallet        float64 `json:"wallet"`
}

// TransactionRoutes registers HTTP routes for transaction processing.
//
// Routes:
//   - POST   /transactions               : Record a transaction and move the balances.
//   - GET    /transactions               : All transactions, newest first.
//   - GET    /transactions/:id           : A single transaction.
//   - GET    /transactions/:id/reversal  : Preview of reversing the transaction.
//   - POST   /transactions/:id/reverse   : Reverse the transaction.
//   - POST   /transactions/:id/paid      : Settle a pending transaction.
//   - DELETE /transactions/:id           : Remove the record without touching balances.
func TransactionRoutes(app *fiber.App, ledgerSvc *ledgersvc.Service) {
	app.Post("/transactions", ProcessTransaction(ledgerSvc))
	app.Get("/transactions", GetTransactions(ledgerSvc))
	app.Get("/transactions/:id", GetTransaction(ledgerSvc))
	app.Get("/transactions/:id/reversal", PreviewReversal(ledgerSvc))
	app.Post("/transactions/:id/reverse", ReverseTransaction(ledgerSvc))
	app.Post("/transactions/:id/paid", MarkTransactionPaid(ledgerSvc))
	app.Delete("/transactions/:id", DeleteTransaction(ledgerSvc))
}

// ProcessTransaction returns a Fiber handler recording a transaction.
func ProcessTransaction(ledgerSvc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[ProcessTransactionRequest](c)
		if err != nil {
			return nil
		}
		amount, err := money.NewFromPesos(input.Amount)
		if err != nil {
			return ProblemDetailsJSON(c, fiber.StatusBadRequest, "Invalid amount", err.Error())
		}
		req := ledgersvc.ProcessRequest{
			Amount:         amount,
			Type:           ledger.Type(input.Type),
			FeeFund:        ledger.FeeFund(input.FeeFund),
			Pending:        input.Pending,
			CustomerNumber: input.CustomerNumber,
			PayeeName:      input.PayeeName,
		}
		if input.FeeFund == "" {
			req.FeeFund = ledger.FeeFundCash
		}
		if input.Fee != nil {
			fee, err := money.NewFromPesos(*input.Fee)
			if err != nil {
				return ProblemDetailsJSON(c, fiber.StatusBadRequest, "Invalid fee", err.Error())
			}
			req.Fee = &fee
		}
		tx, funds, err := ledgerSvc.Process(c.UserContext(), req)
		if err != nil {
			log.Errorf("Failed to process transaction: %v", err)
			return ProblemDetailsJSON(c, ErrorToStatusCode(err), "Failed to process transaction", err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(Response{
			Status:  fiber.StatusCreated,
			Message: "Transaction processed",
			Data:    ProcessedDTO{Transaction: ToTransactionDTO(tx), Funds: ToFundsDTO(funds)},
		})
	}
}

// GetTransactions returns a Fiber handler listing all transactions.
func GetTransactions(ledgerSvc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		txs, err := ledgerSvc.List(c.UserContext())
		if err != nil {
			log.Errorf("Failed to list transactions: %v", err)
			return ProblemDetailsJSON(c, ErrorToStatusCode(err), "Failed to list transactions", err.Error())
		}
		dtos := make([]*TransactionDTO, 0, len(txs))
		for _, tx := range txs {
			dtos = append(dtos, ToTransactionDTO(tx))
		}
		return c.JSON(Response{Status: fiber.StatusOK, Message: "Transactions", Data: dtos})
	}
}

// GetTransaction returns a Fiber handler fetching one transaction by ID.
func GetTransaction(ledgerSvc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ProblemDetailsJSON(c, fiber.StatusBadRequest, "Invalid transaction ID", err.Error())
		}
		tx, err := ledgerSvc.Get(c.UserContext(), id)
		if err != nil {
			return ProblemDetailsJSON(c, ErrorToStatusCode(err), "Failed to get transaction", err.Error())
		}
		return c.JSON(Response{Status: fiber.StatusOK, Message: "Transaction", Data: ToTransactionDTO(tx)})
	}
}

// PreviewReversal returns a Fiber handler showing the effect a reversal
// would have without writing anything.
func PreviewReversal(ledgerSvc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ProblemDetailsJSON(c, fiber.StatusBadRequest, "Invalid transaction ID", err.Error())
		}
		preview, err := ledgerSvc.PreviewReversal(c.UserContext(), id)
		if err != nil {
			log.Errorf("Failed to preview reversal: %v", err)
			return ProblemDetailsJSON(c, ErrorToStatusCode(err), "Failed to preview reversal", err.Error())
		}
		dto := ReversalPreviewDTO{
			TransactionID: preview.TransactionID.String(),
			Amount:        preview.Amount.Pesos(),
			Fee:           preview.Fee.Pesos(),
			Cash:          preview.Cash.Pesos(),
			Wallet:        preview.Wallet.Pesos(),
		}
		return c.JSON(Response{Status: fiber.StatusOK, Message: "Reversal preview", Data: dto})
	}
}

// ReverseTransaction returns a Fiber handler undoing a transaction's effect.
func ReverseTransaction(ledgerSvc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ProblemDetailsJSON(c, fiber.StatusBadRequest, "Invalid transaction ID", err.Error())
		}
		rev, funds, err := ledgerSvc.Reverse(c.UserContext(), id)
		if err != nil {
			log.Errorf("Failed to reverse transaction: %v", err)
			return ProblemDetailsJSON(c, ErrorToStatusCode(err), "Failed to reverse transaction", err.Error())
		}
		data := fiber.Map{
			"reversal_id":    rev.ID.String(),
			"transaction_id": rev.TransactionID.String(),
			"amount":         rev.Amount.Pesos(),
			"fee":            rev.Fee.Pesos(),
			"funds":          ToFundsDTO(funds),
		}
		return c.JSON(Response{Status: fiber.StatusOK, Message: "Transaction reversed", Data: data})
	}
}

// MarkTransactionPaid returns a Fiber handler settling a pending transaction.
func MarkTransactionPaid(ledgerSvc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ProblemDetailsJSON(c, fiber.StatusBadRequest, "Invalid transaction ID", err.Error())
		}
		if err := ledgerSvc.MarkPaid(c.UserContext(), id); err != nil {
			log.Errorf("Failed to mark transaction paid: %v", err)
			return ProblemDetailsJSON(c, ErrorToStatusCode(err), "Failed to mark transaction paid", err.Error())
		}
		return c.JSON(Response{Status: fiber.StatusOK, Message: "Transaction marked paid"})
	}
}

// DeleteTransaction returns a Fiber handler removing a transaction record.
// The balances are left untouched.
func DeleteTransaction(ledgerSvc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ProblemDetailsJSON(c, fiber.StatusBadRequest, "Invalid transaction ID", err.Error())
		}
		if err := ledgerSvc.Delete(c.UserContext(), id); err != nil {
			log.Errorf("Failed to delete transaction: %v", err)
			return ProblemDetailsJSON(c, ErrorToStatusCode(err), "Failed to delete transaction", err.Error())
		}
		return c.JSON(Response{Status: fiber.StatusOK, Message: "Transaction deleted"})
	}
}
