package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/rmercado/kahera/pkg/domain/ledger"
	"github.com/rmercado/kahera/pkg/money"
	fundssvc "github.com/rmercado/kahera/pkg/service/funds"
)

// InitializeFundsRequest sets both balances to absolute starting values.
type InitializeFundsRequest struct {
	Cash        float64 `json:"cash" validate:"gte=0"`
	Wallet      float64 `json:"wallet" validate:"gte=0"`
	Description string  `json:"description"`
}

// TopUpFundsRequest adds to one or both balances.
type TopUpFundsRequest struct {
	Cash        float64 `json:"cash" validate:"gte=0"`
	Wallet      float64 `json:"wallet" validate:"gte=0"`
	Description string  `json:"description"`
}

// TransferFundsRequest moves value between the two balances.
type TransferFundsRequest struct {
	Direction   string  `json:"direction" validate:"required,oneof=cashToWallet walletToCash"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
}

// FundsDTO is the API response representation of the balances.
type FundsDTO struct {
	Cash      float64 `json:"cash"`
	Wallet    float64 `json:"wallet"`
	Total     float64 `json:"total"`
	UpdatedAt string  `json:"updated_at"`
}

// ToFundsDTO maps ledger.Funds to a FundsDTO.
func ToFundsDTO(funds ledger.Funds) FundsDTO {
	return FundsDTO{
		Cash:      funds.Cash.Pesos(),
		Wallet:    funds.Wallet.Pesos(),
		Total:     funds.Total().Pesos(),
		UpdatedAt: funds.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FundLogDTO is the API response representation of an adjustment log entry.
type FundLogDTO struct {
	ID             string  `json:"id"`
	PreviousCash   float64 `json:"previous_cash"`
	PreviousWallet float64 `json:"previous_wallet"`
	UpdatedCash    float64 `json:"updated_cash"`
	UpdatedWallet  float64 `json:"updated_wallet"`
	Description    string  `json:"description"`
	Kind           string  `json:"kind"`
	CreatedAt      string  `json:"created_at"`
}

// ToFundLogDTO maps a ledger.FundLogEntry to a FundLogDTO.
func ToFundLogDTO(entry *ledger.FundLogEntry) FundLogDTO {
	return FundLogDTO{
		ID:             entry.ID.String(),
		PreviousCash:   entry.PreviousCash.Pesos(),
		PreviousWallet: entry.PreviousWallet.Pesos(),
		UpdatedCash:    entry.UpdatedCash.Pesos(),
		UpdatedWallet:  entry.UpdatedWallet.Pesos(),
		Description:    entry.Description,
		Kind:           string(entry.Kind),
		CreatedAt:      entry.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FundsRoutes registers HTTP routes for balance management.
//
// Routes:
//   - GET    /funds            : Current cash and wallet balances.
//   - POST   /funds/initialize : Set both balances to absolute values.
//   - POST   /funds/topup      : Add to one or both balances.
//   - POST   /funds/transfer   : Move value between the balances.
//   - GET    /funds/logs       : Adjustment audit trail, newest first.
func FundsRoutes(app *fiber.App, fundsSvc *fundssvc.Service) {
	app.Get("/funds", GetFunds(fundsSvc))
	app.Post("/funds/initialize", InitializeFunds(fundsSvc))
	app.Post("/funds/topup", TopUpFunds(fundsSvc))
	app.Post("/funds/transfer", TransferFunds(fundsSvc))
	app.Get("/funds/logs", GetFundLogs(fundsSvc))
}

// GetFunds returns a Fiber handler reporting the current balances.
func GetFunds(fundsSvc *fundssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		funds, err := fundsSvc.Get(c.UserContext())
		if err != nil {
			log.Errorf("Failed to read funds: %v", err)
			return ProblemDetailsJSON(c, ErrorToStatusCode(err), "Failed to read funds", err.Error())
		}
		return c.JSON(Response{Status: fiber.StatusOK, Message: "Current funds", Data: ToFundsDTO(funds)})
	}
}

// InitializeFunds returns a Fiber handler that sets the starting balances.
func InitializeFunds(fundsSvc *fundssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[InitializeFundsRequest](c)
		if err != nil {
			return nil
		}
		cash, err := money.NewFromPesos(input.Cash)
		if err != nil {
			return ProblemDetailsJSON(c, fiber.StatusBadRequest, "Invalid cash amount", err.Error())
		}
		wallet, err := money.NewFromPesos(input.Wallet)
		if err != nil {
			return ProblemDetailsJSON(c, fiber.StatusBadRequest, "Invalid wallet amount", err.Error())
		}
		funds, err := fundsSvc.Initialize(c.UserContext(), cash, wallet, input.Description)
		if err != nil {
			log.Errorf("Failed to initialize funds: %v", err)
			return ProblemDetailsJSON(c, ErrorToStatusCode(err), "Failed to initialize funds", err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(Response{Status: fiber.StatusCreated, Message: "Funds initialized", Data: ToFundsDTO(funds)})
	}
}

// TopUpFunds returns a Fiber handler that adds to the balances.
func TopUpFunds(fundsSvc *fundssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[TopUpFundsRequest](c)
		if err != nil {
			return nil
		}
		cash, err := money.NewFromPesos(input.Cash)
		if err != nil {
			return ProblemDetailsJSON(c, fiber.StatusBadRequest, "Invalid cash amount", err.Error())
		}
		wallet, err := money.NewFromPesos(input.Wallet)
		if err != nil {
			return ProblemDetailsJSON(c, fiber.StatusBadRequest, "Invalid wallet amount", err.Error())
		}
		funds, err := fundsSvc.TopUp(c.UserContext(), cash, wallet, input.Description)
		if err != nil {
			log.Errorf("Failed to top up funds: %v", err)
			return ProblemDetailsJSON(c, ErrorToStatusCode(err), "Failed to top up funds", err.Error())
		}
		return c.JSON(Response{Status: fiber.StatusOK, Message: "Funds topped up", Data: ToFundsDTO(funds)})
	}
}

// TransferFunds returns a Fiber handler that moves value between balances.
func TransferFunds(fundsSvc *fundssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[TransferFundsRequest](c)
		if err != nil {
			return nil
		}
		amount, err := money.NewFromPesos(input.Amount)
		if err != nil {
			return ProblemDetailsJSON(c, fiber.StatusBadRequest, "Invalid amount", err.Error())
		}
		funds, err := fundsSvc.Transfer(c.UserContext(), ledger.TransferDirection(input.Direction), amount, input.Description)
		if err != nil {
			log.Errorf("Failed to transfer funds: %v", err)
			return ProblemDetailsJSON(c, ErrorToStatusCode(err), "Failed to transfer funds", err.Error())
		}
		return c.JSON(Response{Status: fiber.StatusOK, Message: "Funds transferred", Data: ToFundsDTO(funds)})
	}
}

// GetFundLogs returns a Fiber handler listing the adjustment audit trail.
func GetFundLogs(fundsSvc *fundssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries, err := fundsSvc.Logs(c.UserContext())
		if err != nil {
			log.Errorf("Failed to list fund logs: %v", err)
			return ProblemDetailsJSON(c, ErrorToStatusCode(err), "Failed to list fund logs", err.Error())
		}
		dtos := make([]FundLogDTO, 0, len(entries))
		for _, entry := range entries {
			dtos = append(dtos, ToFundLogDTO(entry))
		}
		return c.JSON(Response{Status: fiber.StatusOK, Message: "Fund adjustment logs", Data: dtos})
	}
}
