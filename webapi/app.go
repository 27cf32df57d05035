// Package webapi provides the HTTP surface of the agent counter: balance
// management, transaction processing, expenses, reports and the loyalty
// program.
package webapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rmercado/kahera/pkg/app"
)

// SetupApp initializes Fiber with custom configuration and registers all
// routes.
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			}
			return ProblemDetailsJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	// Uses X-Forwarded-For when behind a proxy, falling back to the
	// direct IP.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return ProblemDetailsJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))
	fiberApp.Use(cors.New())
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Kahera is running! 🚀")
	})

	fiberApp.Get("/metrics", adaptor.HTTPHandler(
		promhttp.HandlerFor(a.Deps.Registry, promhttp.HandlerOpts{}),
	))

	FundsRoutes(fiberApp, a.FundsService)
	TransactionRoutes(fiberApp, a.LedgerService)
	ExpenseRoutes(fiberApp, a.ExpenseService)
	ReportRoutes(fiberApp, a.ReportService)
	PointsRoutes(fiberApp, a.PointsService)

	return fiberApp
}
