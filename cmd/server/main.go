package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Clark-Hu/movies-dashboard/internal/config"
	"github.com/Clark-Hu/movies-dashboard/internal/dashboard"
	httpserver "github.com/Clark-Hu/movies-dashboard/internal/http"
	"github.com/Clark-Hu/movies-dashboard/internal/loader"
	"github.com/Clark-Hu/movies-dashboard/internal/repository"
	"github.com/Clark-Hu/movies-dashboard/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := log.New(os.Stdout, "[movies-dashboard] ", log.LstdFlags|log.Lshortfile)

	loadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	table, st, err := loadTable(loadCtx, cfg, logger)
	if err != nil {
		log.Fatalf("load movies: %v", err)
	}
	if st != nil {
		defer st.Close()
	}

	server := httpserver.New(cfg, st, table, logger)

	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			serverErrCh <- err
			return
		}
		serverErrCh <- nil
	}()
	logger.Printf("serving %d movies on :%s", table.Len(), cfg.Port)

	select {
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, context.Canceled) {
			log.Printf("server error: %v", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("graceful shutdown error: %v", err)
	}
}

// loadTable reads the movies table once from the configured source. The
// returned store is nil for file sources.
func loadTable(ctx context.Context, cfg config.Config, logger *log.Logger) (dashboard.Table, *store.Store, error) {
	switch cfg.DataSource {
	case config.SourcePostgres:
		st, err := store.New(ctx, cfg.DBURL, store.Options{
			MaxConns:               int32(cfg.DBMaxConns),
			MinConns:               int32(cfg.DBMinConns),
			MaxConnIdleTime:        time.Duration(cfg.DBMaxIdleSecs) * time.Second,
			MaxConnLifetime:        time.Duration(cfg.DBMaxLifeSecs) * time.Second,
			ConnTimeout:            time.Duration(cfg.DBConnTimeoutSecs) * time.Second,
			StatementCacheCapacity: cfg.DBStatementCache,
			Logger:                 logger,
		})
		if err != nil {
			return nil, nil, err
		}
		if err := st.Migrate(ctx, cfg.MigrationsDir); err != nil {
			st.Close()
			return nil, nil, err
		}
		movies, err := repository.New(st).Movies.All(ctx)
		if err != nil {
			st.Close()
			return nil, nil, err
		}
		logger.Printf("loaded %d movies from postgres", len(movies))
		return dashboard.Table(movies), st, nil
	case config.SourceCSV:
		movies, report, err := loader.LoadFile(cfg.DataPath)
		if err != nil {
			return nil, nil, err
		}
		logger.Printf("loaded %d movies from %s (%d rows skipped)", report.Rows, cfg.DataPath, report.Skipped)
		return dashboard.Table(movies), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown data source %q", cfg.DataSource)
	}
}
