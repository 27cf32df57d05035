package webapi

import (
	"io"
	"log/slog"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rmercado/kahera/pkg/app"
	"github.com/rmercado/kahera/pkg/eventbus"
	"github.com/rmercado/kahera/pkg/testutils"
)

// NewTestApp creates a Fiber app for testing without rate limiting.
func NewTestApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return ProblemDetailsJSON(c, status, "Internal Server Error", err.Error())
		},
	})
	fiberApp.Use(recover.New())

	FundsRoutes(fiberApp, a.FundsService)
	TransactionRoutes(fiberApp, a.LedgerService)
	ExpenseRoutes(fiberApp, a.ExpenseService)
	ReportRoutes(fiberApp, a.ReportService)
	PointsRoutes(fiberApp, a.PointsService)

	return fiberApp
}

// SetupTestApp wires the full application over an in-memory store.
func SetupTestApp(t *testing.T) (*fiber.App, *testutils.MemoryUoW) {
	t.Helper()
	uow := testutils.NewMemoryUoW()
	a := app.New(&app.Deps{
		Uow:      uow,
		EventBus: eventbus.NewMemoryBus(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil)
	return NewTestApp(a), uow
}
