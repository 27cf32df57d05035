package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/rmercado/kahera/pkg/domain/ledger"
	reportsvc "github.com/rmercado/kahera/pkg/service/report"
)

// TotalsDTO is the API response representation of aggregated totals.
type TotalsDTO struct {
	TotalFee      float64 `json:"total_fee"`
	PendingAmount float64 `json:"pending_amount"`
	PendingFee    float64 `json:"pending_fee"`
}

// PendingQueueDTO lists unsettled transactions with their outstanding value.
type PendingQueueDTO struct {
	Transactions []*TransactionDTO `json:"transactions"`
	TotalAmount  float64           `json:"total_amount"`
	TotalFee     float64           `json:"total_fee"`
	Outstanding  float64           `json:"outstanding"`
}

// DailySummaryDTO is the API response representation of a close-of-day snapshot.
type DailySummaryDTO struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	TotalFee float64 `json:"total_fee"`
	Cash     float64 `json:"cash"`
	Wallet   float64 `json:"wallet"`
}

// ToDailySummaryDTO maps a ledger.DailySummary to a DailySummaryDTO.
func ToDailySummaryDTO(summary *ledger.DailySummary) *DailySummaryDTO {
	return &DailySummaryDTO{
		ID:       summary.ID.String(),
		Date:     summary.Date.Format("2006-01-02"),
		TotalFee: summary.TotalFee.Pesos(),
		Cash:     summary.Cash.Pesos(),
		Wallet:   summary.Wallet.Pesos(),
	}
}

// ReportRoutes registers HTTP routes for reporting and the daily close.
//
// Routes:
//   - GET  /reports/totals?filter= : Fee and pending totals for all, today or yesterday.
//   - GET  /reports/pending        : Unsettled transactions and outstanding value.
//   - POST /reports/close-day      : Snapshot today's totals and balances.
//   - GET  /reports/daily          : Close-of-day history, newest first.
func ReportRoutes(app *fiber.App, reportSvc *reportsvc.Service) {
	app.Get("/reports/totals", GetTotals(reportSvc))
	app.Get("/reports/pending", GetPending(reportSvc))
	app.Post("/reports/close-day", CloseDay(reportSvc))
	app.Get("/reports/daily", GetDailySummaries(reportSvc))
}

// GetTotals returns a Fiber handler aggregating fees and pending value.
// The filter query parameter defaults to "all".
func GetTotals(reportSvc *reportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := reportsvc.Filter(c.Query("filter", string(reportsvc.FilterAll)))
		totals, err := reportSvc.Totals(c.UserContext(), filter)
		if err != nil {
			log.Errorf("Failed to aggregate totals: %v", err)
			return ProblemDetailsJSON(c, ErrorToStatusCode(err), "Failed to aggregate totals", err.Error())
		}
		dto := TotalsDTO{
			TotalFee:      totals.TotalFee.Pesos(),
			PendingAmount: totals.PendingAmount.Pesos(),
			PendingFee:    totals.PendingFee.Pesos(),
		}
		return c.JSON(Response{Status: fiber.StatusOK, Message: "Totals", Data: dto})
	}
}

// GetPending returns a Fiber handler listing the pending queue.
func GetPending(reportSvc *reportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		queue, err := reportSvc.Pending(c.UserContext())
		if err != nil {
			log.Errorf("Failed to list pending queue: %v", err)
			return ProblemDetailsJSON(c, ErrorToStatusCode(err), "Failed to list pending queue", err.Error())
		}
		dtos := make([]*TransactionDTO, 0, len(queue.Transactions))
		for _, tx := range queue.Transactions {
			dtos = append(dtos, ToTransactionDTO(tx))
		}
		dto := PendingQueueDTO{
			Transactions: dtos,
			TotalAmount:  queue.TotalAmount.Pesos(),
			TotalFee:     queue.TotalFee.Pesos(),
			Outstanding:  queue.Outstanding.Pesos(),
		}
		return c.JSON(Response{Status: fiber.StatusOK, Message: "Pending queue", Data: dto})
	}
}

// CloseDay returns a Fiber handler snapshotting today's activity.
func CloseDay(reportSvc *reportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		summary, err := reportSvc.CloseDay(c.UserContext())
		if err != nil {
			log.Errorf("Failed to close the day: %v", err)
			return ProblemDetailsJSON(c, ErrorToStatusCode(err), "Failed to close the day", err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(Response{Status: fiber.StatusCreated, Message: "Day closed", Data: ToDailySummaryDTO(summary)})
	}
}

// GetDailySummaries returns a Fiber handler listing close-of-day history.
func GetDailySummaries(reportSvc *reportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		summaries, err := reportSvc.Daily(c.UserContext())
		if err != nil {
			log.Errorf("Failed to list daily summaries: %v", err)
			return ProblemDetailsJSON(c, ErrorToStatusCode(err), "Failed to list daily summaries", err.Error())
		}
		dtos := make([]*DailySummaryDTO, 0, len(summaries))
		for _, summary := range summaries {
			dtos = append(dtos, ToDailySummaryDTO(summary))
		}
		return c.JSON(Response{Status: fiber.StatusOK, Message: "Daily summaries", Data: dtos})
	}
}
