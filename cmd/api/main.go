package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/jumga/ledger/internal/config"
	"github.com/jumga/ledger/internal/database"
	jumgaHttp "github.com/jumga/ledger/internal/http"
	accountHandler "github.com/jumga/ledger/internal/http/account"
	settlementHandler "github.com/jumga/ledger/internal/http/settlement"
	ledgerStore "github.com/jumga/ledger/internal/ledger/store"
	"github.com/jumga/ledger/internal/settlement"
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

	engine, err := settlement.NewService(ledgerStore.New(db), settlement.Config{
		Shares: settlement.Shares{
			PlatformSale:     cfg.Settlement.PlatformSaleShare,
			MerchantSale:     cfg.Settlement.MerchantSaleShare,
			PlatformDelivery: cfg.Settlement.PlatformDeliveryShare,
			RiderDelivery:    cfg.Settlement.RiderDeliveryShare,
		},
		PlatformAccountID: cfg.Settlement.PlatformAccountID,
		Timeout:           cfg.Settlement.Timeout,
	})
	if err != nil {
		slog.Error("failed to build settlement engine", "error", err)
		os.Exit(1)
	}

	var (
		settlementH = settlementHandler.NewHandler(engine)
		accountH    = accountHandler.NewHandler(engine)
	)

	router := jumgaHttp.New(settlementH, accountH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
