package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denmor86/paytik/internal/config"
	"github.com/denmor86/paytik/internal/logger"
	"github.com/denmor86/paytik/internal/network/router"
	"github.com/denmor86/paytik/internal/services"
	"github.com/denmor86/paytik/internal/storage"
	"github.com/denmor86/paytik/internal/worker"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func Run(config config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// хранилище
	db, err := storage.NewDatabase(config.Server.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	defer db.Close()
	if err := db.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	scoring := services.NewScoringService(config.Scoring.ScoringAddr, &http.Client{Timeout: config.Scoring.ProcessingTimeout})
	router := router.NewRouter(config, storage.NewStorage(db), scoring)

	if err := router.Identity.EnsureAdmin(ctx, config.Server.AdminAlias, config.Server.AdminPassword); err != nil {
		return fmt.Errorf("failed to bootstrap admin: %w", err)
	}

	server := &http.Server{
		Addr:    config.Server.ListenAddr,
		Handler: router.HandleRouter(),
	}
	// воркер оценки заявок
	worker := worker.NewAssessmentWorker(config.Scoring, router.Credits)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Infow("Starting server", "address", config.Server.ListenAddr, "scoring", config.Scoring.ScoringAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error listen server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return worker.Run(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutdown server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutdown server: %w", err)
		}
		return nil
	})

	err = g.Wait()
	logger.Info("Server stopped")
	return err
}
