package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/Urigo/accounter-ledger/internal/charge"
	chargeStore "github.com/Urigo/accounter-ledger/internal/charge/store"
	"github.com/Urigo/accounter-ledger/internal/config"
	"github.com/Urigo/accounter-ledger/internal/database"
	"github.com/Urigo/accounter-ledger/internal/exchange"
	exchangeStore "github.com/Urigo/accounter-ledger/internal/exchange/store"
	accounterHttp "github.com/Urigo/accounter-ledger/internal/http"
	ledgerHandler "github.com/Urigo/accounter-ledger/internal/http/ledger"
	"github.com/Urigo/accounter-ledger/internal/ledger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	charges := chargeStore.New(db)

	var (
		chargeService   = charge.NewService(charge.Providers{
			Charges:           charges,
			Transactions:      charges,
			Documents:         charges,
			TaxCategories:     charges,
			FinancialEntities: charges,
		})
		exchangeService = exchange.NewService(exchangeStore.New(db))
	)

	builder := ledger.NewBuilder(
		charge.Currency(cfg.Ledger.LocalCurrency),
		ledger.Accounts{
			VAT: &charge.TaxCategory{
				ID:   cfg.Ledger.VATAccountID,
				Name: cfg.Ledger.VATAccountName,
			},
			ExchangeRates: &charge.TaxCategory{
				ID:   cfg.Ledger.ExchangeAccountID,
				Name: cfg.Ledger.ExchangeAccountName,
			},
		},
	)

	rates := func(ctx context.Context) ledger.RateResolver {
		return exchangeService.NewScope(ctx)
	}

	ledgerService := ledger.NewService(chargeService, rates, builder)

	router := accounterHttp.New(ledgerHandler.NewHandler(ledgerService))

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
