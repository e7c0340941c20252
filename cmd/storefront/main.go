package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andreasstove999/fresh-market/internal/catalog"
	"github.com/andreasstove999/fresh-market/internal/config"
	"github.com/andreasstove999/fresh-market/internal/events"
	"github.com/andreasstove999/fresh-market/internal/httpapi"
	"github.com/andreasstove999/fresh-market/internal/offers"
	"github.com/andreasstove999/fresh-market/internal/session"
)

func main() {
	cfg := config.Load()

	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.Lshortfile)

	catalogClient := catalog.NewClient(cfg.CatalogURL, &http.Client{Timeout: cfg.CatalogTimeout}, logger)
	sessions := session.NewManager(catalogClient)
	engine := offers.NewEngine()

	var publisher events.Publisher = &events.NoopPublisher{Logger: logger}
	if cfg.RabbitURL != "" {
		rabbitConn := events.MustDialRabbit(cfg.RabbitURL)
		defer rabbitConn.Close()

		p, err := events.NewRabbitPublisher(rabbitConn, events.NewSequences())
		if err != nil {
			logger.Fatalf("failed to create checkout publisher: %v", err)
		}
		publisher = p
	}

	handler := httpapi.NewHandler(logger, catalogClient, sessions, engine, publisher)
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
		logger.Printf("storefront-service listening on :%s", cfg.Port)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown error: %v", err)
	}
	if err := publisher.Close(); err != nil {
		logger.Printf("publisher close error: %v", err)
	}
}
