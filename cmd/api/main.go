package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marcelinaiux/transaction-dashboard/internal/config"

	reportsHttp "github.com/marcelinaiux/transaction-dashboard/internal/reports/adapters/http/fiber"
	reportsJSON "github.com/marcelinaiux/transaction-dashboard/internal/reports/adapters/jsonfile"
	reportsRepoPg "github.com/marcelinaiux/transaction-dashboard/internal/reports/adapters/postgres"
	reportsPorts "github.com/marcelinaiux/transaction-dashboard/internal/reports/core/ports"
	reportsUsecase "github.com/marcelinaiux/transaction-dashboard/internal/reports/core/usecase"

	txHttp "github.com/marcelinaiux/transaction-dashboard/internal/transactions/adapters/http/fiber"
	txRepoPg "github.com/marcelinaiux/transaction-dashboard/internal/transactions/adapters/postgres"
	txUsecase "github.com/marcelinaiux/transaction-dashboard/internal/transactions/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "github.com/marcelinaiux/transaction-dashboard/docs"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	loader, err := config.NewLoader(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	stopWatch, err := loader.Watch()
	if err != nil {
		log.Warnf("config hot reload disabled: %v", err)
	} else {
		defer stopWatch()
	}

	cfg := loader.Config()
	dsn := os.Getenv("POSTGRES_DSN")

	// DB connection (report source in postgres mode, ingest store whenever a
	// DSN is present)
	var db *sql.DB
	if cfg.Source.Kind == config.SourcePostgres && dsn == "" {
		log.Fatal("POSTGRES_DSN is not set but source.kind is postgres")
	}
	if dsn != "" {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			log.Fatalf("failed to open postgres: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(20)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(30 * time.Minute)

		if err := db.Ping(); err != nil {
			log.Fatalf("failed to ping postgres: %v", err)
		}
	}

	// Report source
	var source reportsPorts.EventSourcePort
	switch cfg.Source.Kind {
	case config.SourceFile:
		source = reportsJSON.NewSource(cfg.Source.Datasets)
	case config.SourcePostgres:
		source = reportsRepoPg.NewEventRepository(reportsRepoPg.NewSQLDB(db))
	}

	// Usecases
	statusUC := reportsUsecase.NewGetStatusReportUseCase(source)
	durationUC := reportsUsecase.NewGetDurationReportUseCase(source)

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	// report endpoints; defaults follow the hot-reloaded config
	reportsHandler := reportsHttp.NewReportsHandler(statusUC, durationUC, func() reportsHttp.ReportDefaults {
		r := loader.Config().Reports
		return reportsHttp.ReportDefaults{
			GroupBy:       r.GroupBy,
			RateMode:      r.RateMode,
			MinSampleSize: r.MinSampleSize,
			TopN:          r.TopN,
		}
	})
	app.Get("/reports/status", reportsHandler.GetStatusReport)
	app.Get("/reports/durations", reportsHandler.GetDurationReport)

	// ingest endpoints need somewhere to write
	if db != nil {
		eventRepository := txRepoPg.NewEventRepository(txRepoPg.NewSQLDB(db))
		storeEventUC := txUsecase.NewStoreEventUseCase(eventRepository)

		txHandler := txHttp.NewTransactionHandler(storeEventUC)
		app.Post("/transactions", txHandler.CreateTransaction)
		app.Post("/transactions/bulk", txHandler.BulkCreateTransactions)
	} else {
		log.Info("no POSTGRES_DSN set, ingest endpoints disabled")
	}

	// Swagger + prometheus
	app.Get("/docs/*", fiberSwagger.WrapHandler)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.Server.Addr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Infof("server started on %s", cfg.Server.Addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Info("server exiting")
}
