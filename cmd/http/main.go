package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"fsanano/store-api/internal/config"
	"fsanano/store-api/internal/database"
	"fsanano/store-api/internal/handler"
	"fsanano/store-api/internal/logger"
	"fsanano/store-api/internal/repository"
	"fsanano/store-api/internal/service"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg := logger.New(cfg.Logging.Level, cfg.IsLocal())

	if err := run(cfg, logg); err != nil {
		logg.Fatal().Err(err).Msg("server stopped with error")
	}
	logg.Info().Msg("server exiting")
}

func run(cfg *config.Config, logg zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Setup Database
	db, err := database.New(ctx, cfg.Database, logg)
	if err != nil {
		return err
	}
	defer db.Close()

	// 3. Setup Logic
	users := repository.NewUserRepository(db.Pool)
	products := repository.NewProductRepository(db.Pool)
	sales := repository.NewSaleRepository(db.Pool)

	h := handler.NewHandler(
		logg,
		service.NewUserService(users),
		service.NewProductService(products),
		service.NewSaleService(sales, users, products),
	)

	// 4. Setup Server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      h,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 5. Run Server with Graceful Shutdown
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logg.Info().Str("port", cfg.Server.Port).Str("env", cfg.Env).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logg.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
