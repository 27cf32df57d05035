package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/rmercado/kahera/infra"
	infrarepository "github.com/rmercado/kahera/infra/repository"
	"github.com/rmercado/kahera/pkg/app"
	"github.com/rmercado/kahera/pkg/config"
	"github.com/rmercado/kahera/pkg/domain/ledger"
	"github.com/rmercado/kahera/pkg/money"
	ledgersvc "github.com/rmercado/kahera/pkg/service/ledger"
)

func main() {
	argsLen := len(os.Args)
	if argsLen < 2 {
		fmt.Println("Usage: cli <command> [arguments]")
		fmt.Println("Commands: balance, process <cash-in|cash-out|load> <amount> <customer_number>, reverse <transaction_id>, transfer <cashToWallet|walletToCash> <amount>, close-day")
		return
	}
	cmd := os.Args[1]

	cfg, err := config.Load(".env")
	if err != nil {
		color.Red("Failed to load configuration: %v", err)
		return
	}
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		return
	}
	a := app.New(&app.Deps{
		Uow:    infrarepository.NewUoW(db),
		Logger: slog.Default(),
	}, cfg)
	ctx := context.Background()

	switch cmd {
	case "balance":
		funds, err := a.FundsService.Get(ctx)
		if err != nil {
			color.Red("Error fetching balances: %v", err)
			return
		}
		printFunds(funds)
	case "process":
		if argsLen < 5 {
			fmt.Println("Usage: process <cash-in|cash-out|load> <amount> <customer_number>")
			return
		}
		amount, err := parseAmount(os.Args[3])
		if err != nil {
			color.Red("Invalid amount: %v", err)
			return
		}
		tx, funds, err := a.LedgerService.Process(ctx, ledgersvc.ProcessRequest{
			Amount:         amount,
			Type:           ledger.Type(os.Args[2]),
			FeeFund:        ledger.FeeFundCash,
			CustomerNumber: os.Args[4],
		})
		if err != nil {
			color.Red("Error processing transaction: %v", err)
			return
		}
		color.Green("Processed %s %s (fee %s), transaction %s", tx.Type, tx.Amount, tx.Fee, tx.ID)
		printFunds(funds)
	case "reverse":
		if argsLen < 3 {
			fmt.Println("Usage: reverse <transaction_id>")
			return
		}
		id, err := uuid.Parse(os.Args[2])
		if err != nil {
			color.Red("Invalid transaction ID: %v", err)
			return
		}
		rev, funds, err := a.LedgerService.Reverse(ctx, id)
		if err != nil {
			color.Red("Error reversing transaction: %v", err)
			return
		}
		color.Green("Reversed %s %s (fee %s)", rev.OriginalType, rev.Amount, rev.Fee)
		printFunds(funds)
	case "transfer":
		if argsLen < 4 {
			fmt.Println("Usage: transfer <cashToWallet|walletToCash> <amount>")
			return
		}
		amount, err := parseAmount(os.Args[3])
		if err != nil {
			color.Red("Invalid amount: %v", err)
			return
		}
		funds, err := a.FundsService.Transfer(ctx, ledger.TransferDirection(os.Args[2]), amount, "cli transfer")
		if err != nil {
			color.Red("Error transferring funds: %v", err)
			return
		}
		printFunds(funds)
	case "close-day":
		summary, err := a.ReportService.CloseDay(ctx)
		if err != nil {
			color.Red("Error closing the day: %v", err)
			return
		}
		color.Green("Day closed: %s, fees %s, cash %s, wallet %s",
			summary.Date.Format("2006-01-02"), summary.TotalFee, summary.Cash, summary.Wallet)
	default:
		fmt.Println("Unknown command:", cmd)
	}
}

func parseAmount(raw string) (money.Money, error) {
	pesos, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return money.Money{}, err
	}
	return money.NewFromPesos(pesos)
}

func printFunds(funds ledger.Funds) {
	color.Cyan("Cash: %s  Wallet: %s  Total: %s", funds.Cash, funds.Wallet, funds.Total())
}
