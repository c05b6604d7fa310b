package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/nveloso/pipeflow/internal/board"
	"github.com/nveloso/pipeflow/internal/cart"
	"github.com/nveloso/pipeflow/internal/config"
	"github.com/nveloso/pipeflow/internal/database"
	pipeflowHttp "github.com/nveloso/pipeflow/internal/http"
	checkoutHandler "github.com/nveloso/pipeflow/internal/http/checkout"
	leadHandler "github.com/nveloso/pipeflow/internal/http/lead"
	pipelineHandler "github.com/nveloso/pipeflow/internal/http/pipeline"
	"github.com/nveloso/pipeflow/internal/lead"
	leadStore "github.com/nveloso/pipeflow/internal/lead/store"
	"github.com/nveloso/pipeflow/internal/pipeline"
	pipelineStore "github.com/nveloso/pipeflow/internal/pipeline/store"
	"github.com/nveloso/pipeflow/internal/product"
	productStore "github.com/nveloso/pipeflow/internal/product/store"
	"github.com/nveloso/pipeflow/internal/sale"
	saleStore "github.com/nveloso/pipeflow/internal/sale/store"
)

func main() {
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

	var (
		pipelineService = pipeline.NewService(pipelineStore.New(db))
		leadService     = lead.NewService(leadStore.New(db))
		boardService    = board.NewService(pipelineService, leadService)
		productService  = product.NewService(productStore.New(db))
		saleService     = sale.NewService(saleStore.New(db))
		cartService     = cart.NewService(saleService)
	)

	var (
		pipelineH = pipelineHandler.NewHandler(pipelineService, boardService)
		leadH     = leadHandler.NewHandler(leadService)
		checkoutH = checkoutHandler.NewHandler(
			productService, cartService, saleService,
			cfg.Checkout.TaxEnabled, cfg.Checkout.TaxRatePercent,
		)
	)

	router := pipeflowHttp.New(cfg.Auth.JWTSecret, pipelineH, leadH, checkoutH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
