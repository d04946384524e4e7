package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frostline/storefront/internal/cart"
	"github.com/frostline/storefront/internal/catalog"
	"github.com/frostline/storefront/internal/config"
	"github.com/frostline/storefront/internal/db"
	"github.com/frostline/storefront/internal/events"
	httpapi "github.com/frostline/storefront/internal/http"
	"github.com/frostline/storefront/internal/order"
	"github.com/frostline/storefront/internal/storage"
)

func main() {
	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.Lshortfile)
	cfg := config.Load()

	var blob storage.BlobStore
	var orderRepo order.Repository

	if cfg.DatabaseDSN != "" {
		if err := db.RunMigrations(cfg.DatabaseDSN, logger); err != nil {
			logger.Fatalf("run migrations: %v", err)
		}
		database, err := db.Open(cfg.DatabaseDSN)
		if err != nil {
			logger.Fatalf("open db: %v", err)
		}
		defer database.Close()
		blob = storage.NewPostgres(database)
		orderRepo = order.NewRepository(database)
	} else {
		logger.Printf("STOREFRONT_DB_DSN not set, using in-memory storage")
		blob = storage.NewMemory()
		orderRepo = order.NewMemoryRepository()
	}

	var publisher order.Publisher = events.NoopPublisher{}
	if cfg.RabbitURL != "" {
		rabbitConn := events.MustDialRabbit(cfg.RabbitURL)
		defer rabbitConn.Close()

		rabbitPublisher, err := events.NewPublisher(rabbitConn)
		if err != nil {
			logger.Fatalf("create order publisher: %v", err)
		}
		defer rabbitPublisher.Close()
		publisher = rabbitPublisher
	}

	catalogSvc := catalog.NewService(catalog.Seed())
	carts := cart.NewManager(blob, logger)

	// Session-scoped order blobs stay in process memory, they only need to
	// survive a page reload, not a restart.
	session := order.NewSessionStore(storage.NewMemory(), logger)
	orderSvc := order.NewService(carts, session, orderRepo, publisher, cfg.PaymentDelay, logger)

	handler := httpapi.NewHandler(catalogSvc, carts, orderSvc)
	router := httpapi.NewRouter(handler, cfg.CORSAllowOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("storefront listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Printf("shutdown signal received")
	case err := <-errCh:
		logger.Fatalf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown error: %v", err)
	}
}
