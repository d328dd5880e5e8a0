package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/api-sage/ledger-accounting-service/internal/adapter/events"
	eventskafka "github.com/api-sage/ledger-accounting-service/internal/adapter/events/kafka"
	"github.com/api-sage/ledger-accounting-service/internal/adapter/http/controller"
	"github.com/api-sage/ledger-accounting-service/internal/adapter/http/middleware"
	"github.com/api-sage/ledger-accounting-service/internal/adapter/http/router"
	"github.com/api-sage/ledger-accounting-service/internal/adapter/repository/postgres"
	"github.com/api-sage/ledger-accounting-service/internal/config"
	"github.com/api-sage/ledger-accounting-service/internal/usecase/services"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	migrateCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := postgres.RunMigrations(migrateCtx, cfg.DatabaseDSN, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	db, err := postgres.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	var publisher events.Publisher = events.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := eventskafka.NewPublisher(cfg.KafkaBrokers)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	customerRepo := postgres.NewCustomerRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)

	customerService := services.NewCustomerService(customerRepo)
	transactionService := services.NewTransactionService(transactionRepo, publisher)

	mux := router.New(
		controller.NewCustomerController(customerService),
		controller.NewTransactionController(transactionService),
	)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           middleware.SecurityHeaders(cfg.AllowedOrigins)(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Printf("server listening on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
