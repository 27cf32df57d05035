package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/rmercado/kahera/pkg/domain/loyalty"
	pointssvc "github.com/rmercado/kahera/pkg/service/points"
	"github.com/shopspring/decimal"
)

// RegisterCustomerRequest enrolls a loyalty member.
type RegisterCustomerRequest struct {
	CardNumber string `json:"card_number" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Phone      string `json:"phone"`
}

// AccruePointsRequest credits points for a peso amount run through the counter.
type AccruePointsRequest struct {
	CardNumber string  `json:"card_number" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
}

// CustomerDTO is the API response representation of a loyalty member.
type CustomerDTO struct {
	ID          string `json:"id"`
	CardNumber  string `json:"card_number"`
	Name        string `json:"name"`
	Phone       string `json:"phone,omitempty"`
	Points      string `json:"points"`
	TotalAmount string `json:"total_amount"`
	CreatedAt   string `json:"created_at"`
}

// ToCustomerDTO maps a loyalty.Customer to a CustomerDTO.
func ToCustomerDTO(customer *loyalty.Customer) *CustomerDTO {
	return &CustomerDTO{
		ID:          customer.ID.String(),
		CardNumber:  customer.CardNumber,
		Name:        customer.Name,
		Phone:       customer.Phone,
		Points:      customer.Points.String(),
		TotalAmount: customer.TotalAmount.String(),
		CreatedAt:   customer.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// PointsRoutes registers HTTP routes for the loyalty program.
//
// Routes:
//   - POST /points/accrue : Credit points for a purchase amount.
//   - POST /customers     : Enroll a loyalty member.
//   - GET  /customers     : All members, newest first.
func PointsRoutes(app *fiber.App, pointsSvc *pointssvc.Service) {
	app.Post("/points/accrue", AccruePoints(pointsSvc))
	app.Post("/customers", RegisterCustomer(pointsSvc))
	app.Get("/customers", GetCustomers(pointsSvc))
}

// AccruePoints returns a Fiber handler crediting loyalty points.
func AccruePoints(pointsSvc *pointssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[AccruePointsRequest](c)
		if err != nil {
			return nil
		}
		amount := decimal.NewFromFloat(input.Amount)
		result, err := pointsSvc.Accrue(c.UserContext(), input.CardNumber, amount)
		if err != nil {
			log.Errorf("Failed to accrue points: %v", err)
			return ProblemDetailsJSON(c, ErrorToStatusCode(err), "Failed to accrue points", err.Error())
		}
		data := fiber.Map{
			"card_number": result.CardNumber,
			"earned":      result.Earned.String(),
			"balance":     result.Balance.String(),
		}
		return c.JSON(Response{Status: fiber.StatusOK, Message: "Points accrued", Data: data})
	}
}

// RegisterCustomer returns a Fiber handler enrolling a loyalty member.
func RegisterCustomer(pointsSvc *pointssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[RegisterCustomerRequest](c)
		if err != nil {
			return nil
		}
		customer, err := pointsSvc.Register(c.UserContext(), input.CardNumber, input.Name, input.Phone)
		if err != nil {
			log.Errorf("Failed to register customer: %v", err)
			return ProblemDetailsJSON(c, ErrorToStatusCode(err), "Failed to register customer", err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(Response{Status: fiber.StatusCreated, Message: "Customer registered", Data: ToCustomerDTO(customer)})
	}
}

// GetCustomers returns a Fiber handler listing loyalty members.
func GetCustomers(pointsSvc *pointssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		customers, err := pointsSvc.List(c.UserContext())
		if err != nil {
			log.Errorf("Failed to list customers: %v", err)
			return ProblemDetailsJSON(c, ErrorToStatusCode(err), "Failed to list customers", err.Error())
		}
		dtos := make([]*CustomerDTO, 0, len(customers))
		for _, customer := range customers {
			dtos = append(dtos, ToCustomerDTO(customer))
		}
		return c.JSON(Response{Status: fiber.StatusOK, Message: "Customers", Data: dtos})
	}
}
