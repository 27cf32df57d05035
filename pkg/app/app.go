// Package app wires the services and their shared dependencies.
package app

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rmercado/kahera/pkg/config"
	"github.com/rmercado/kahera/pkg/eventbus"
	"github.com/rmercado/kahera/pkg/metrics"
	"github.com/rmercado/kahera/pkg/repository"
	"github.com/rmercado/kahera/pkg/service"
	expensesvc "github.com/rmercado/kahera/pkg/service/expense"
	fundssvc "github.com/rmercado/kahera/pkg/service/funds"
	ledgersvc "github.com/rmercado/kahera/pkg/service/ledger"
	pointssvc "github.com/rmercado/kahera/pkg/service/points"
	reportsvc "github.com/rmercado/kahera/pkg/service/report"
)

// Deps contains the shared dependencies the services are built from.
type Deps struct {
	Uow      repository.UnitOfWork
	EventBus eventbus.Bus
	Guard    *service.Guard
	Logger   *slog.Logger
	Registry *prometheus.Registry
}

// App holds the wired services.
type App struct {
	Deps           *Deps
	Config         *config.App
	Metrics        *metrics.Metrics
	LedgerService  *ledgersvc.Service
	FundsService   *fundssvc.Service
	ExpenseService *expensesvc.Service
	ReportService  *reportsvc.Service
	PointsService  *pointssvc.Service
}

// New builds the application. Every balance-mutating service shares the
// same Guard so concurrent mutations serialize.
func New(deps *Deps, cfg *config.App) *App {
	if deps.Guard == nil {
		deps.Guard = &service.Guard{}
	}
	if deps.EventBus == nil {
		deps.EventBus = eventbus.NewMemoryBus()
	}
	if deps.Registry == nil {
		deps.Registry = prometheus.NewRegistry()
	}

	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.Metrics = metrics.New(deps.Registry)
	app.Metrics.Subscribe(deps.EventBus)

	app.LedgerService = ledgersvc.New(deps.Uow, deps.EventBus, deps.Guard, deps.Logger)
	app.FundsService = fundssvc.New(deps.Uow, deps.EventBus, deps.Guard, deps.Logger)
	app.ExpenseService = expensesvc.New(deps.Uow, deps.EventBus, deps.Guard, deps.Logger)
	app.ReportService = reportsvc.New(deps.Uow, deps.EventBus, deps.Logger)
	app.PointsService = pointssvc.New(deps.Uow, deps.Logger)
	return app
}
