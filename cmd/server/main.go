package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/network/netpoll"
	"github.com/spf13/cobra"

	"github.com/jab1897/LoneStarLedger5/internal/config"
	"github.com/jab1897/LoneStarLedger5/internal/dataset"
	"github.com/jab1897/LoneStarLedger5/internal/handler"
	"github.com/jab1897/LoneStarLedger5/internal/infrastructure/table"
	"github.com/jab1897/LoneStarLedger5/internal/router"
	"github.com/jab1897/LoneStarLedger5/internal/usecase"
	"github.com/jab1897/LoneStarLedger5/pkg/logger"
)

var (
	cfgFile string
	version = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "ledger-apiserver",
	Short: "Texas school finance data API server",
	Long: `ledger-apiserver serves Texas public school finance data over a RESTful API.
It loads district, campus, and spending datasets from configured CSV and GeoJSON
sources, detects their column layout heuristically, and answers search, filter,
and aggregation queries.`,
	Version: version,
	Run:     runServer,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "configs/config.yaml", "path to config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runServer(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.Setup(cfg.Log); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	slog.Info("config loaded successfully", "config_file", cfgFile)
	slog.Info("ledger API server starting...",
		"version", version,
		"config", cfgFile,
	)

	// Route Hertz framework logs through slog.
	hlog.SetLogger(logger.NewHertzSlogAdapter(slog.Default()))

	fetcher, err := dataset.NewHTTPFetcher(cfg.Datasets.FetchTimeout, slog.Default())
	if err != nil {
		slog.Error("failed to create dataset fetcher", "error", err)
		os.Exit(1)
	}
	store := dataset.NewStore(fetcher, slog.Default())

	// Repositories over the dataset store. Datasets load lazily on first
	// request, so startup does not depend on the upstreams being reachable.
	districtRepo := table.NewDistrictRepo(store, cfg.Datasets.DistrictsCSV, slog.Default())
	campusRepo := table.NewCampusRepo(store, cfg.Datasets.CampusesCSV, slog.Default())
	spendingRepo := table.NewSpendingRepo(store, cfg.Datasets.SpendingCSV, slog.Default())
	geoRepo := table.NewGeoRepo(store,
		cfg.Datasets.DistrictsGeoJSON,
		cfg.Datasets.CampusesGeoJSON,
		campusRepo,
		slog.Default(),
	)

	districtUsecase := usecase.NewDistrictUsecase(districtRepo, slog.Default())
	campusUsecase := usecase.NewCampusUsecase(campusRepo, slog.Default())
	spendingUsecase := usecase.NewSpendingUsecase(spendingRepo, slog.Default())
	geoUsecase := usecase.NewGeoUsecase(geoRepo, slog.Default())
	statsUsecase := usecase.NewStatsUsecase(districtRepo, campusRepo, spendingRepo, slog.Default())

	districtHandler := handler.NewDistrictHandler(districtUsecase, slog.Default())
	campusHandler := handler.NewCampusHandler(campusUsecase, slog.Default())
	spendingHandler := handler.NewSpendingHandler(spendingUsecase, slog.Default())
	geoHandler := handler.NewGeoHandler(geoUsecase, slog.Default())
	statsHandler := handler.NewStatsHandler(statsUsecase, slog.Default())
	healthHandler := handler.NewHealthHandler(districtRepo)

	slog.Info("handlers initialized")

	h := server.Default(
		server.WithHostPorts(cfg.GetServerAddr()),
		server.WithReadTimeout(cfg.GetReadTimeout()),
		server.WithWriteTimeout(cfg.GetWriteTimeout()),
		server.WithMaxRequestBodySize(cfg.Server.MaxRequestBodySize*1024*1024),
		server.WithTransport(netpoll.NewTransporter),
	)

	router.Setup(h,
		districtHandler,
		campusHandler,
		spendingHandler,
		geoHandler,
		statsHandler,
		healthHandler,
	)

	slog.Info("server started successfully",
		"address", cfg.GetServerAddr(),
		"mode", cfg.Server.Mode,
	)

	go func() {
		if err := h.Run(); err != nil {
			slog.Error("server run failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
