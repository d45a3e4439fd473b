package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/Urigo/accounter-ledger/internal/config"
	"github.com/Urigo/accounter-ledger/internal/database"
	exchangeStore "github.com/Urigo/accounter-ledger/internal/exchange/store"
	"github.com/Urigo/accounter-ledger/internal/importer/rates"
)

func main() {
	_ = godotenv.Load()

	path := flag.String("file", "", "path to the rates CSV file")
	flag.Parse()

	if *path == "" {
		slog.Error("missing required -file flag")
		os.Exit(1)
	}

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

	f, err := os.Open(*path)
	if err != nil {
		slog.Error("failed to open rates file", "path", *path, "error", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := rates.Parse(f)
	if err != nil {
		slog.Error("failed to parse rates file", "path", *path, "error", err)
		os.Exit(1)
	}

	store := exchangeStore.New(db)
	ctx := context.Background()

	for _, row := range rows {
		if err := store.UpsertRates(ctx, row); err != nil {
			slog.Error("failed to store rates", "date", row.Date, "error", err)
			os.Exit(1)
		}
	}

	slog.Info("imported exchange rates", "rows", len(rows), "file", *path)
}
