package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Clark-Hu/movies-dashboard/internal/loader"
	"github.com/Clark-Hu/movies-dashboard/internal/repository"
	"github.com/Clark-Hu/movies-dashboard/internal/store"
)

func main() {
	var (
		data       = flag.String("data", "cleaned_n_movies.csv", "path to the movies CSV")
		dbURL      = flag.String("db", os.Getenv("DB_URL"), "postgres connection url")
		migrations = flag.String("migrations", envOr("MIGRATIONS_DIR", "db/migrations"), "directory holding *.up.sql files")
		appendRows = flag.Bool("append", false, "append instead of replacing the stored table")
		timeout    = flag.Duration("timeout", 2*time.Minute, "overall import timeout")
	)
	flag.Parse()

	if *dbURL == "" {
		log.Fatalf("a database url is required (-db or DB_URL)")
	}

	logger := log.New(os.Stdout, "[movies-import] ", log.LstdFlags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	movies, report, err := loader.LoadFile(*data)
	if err != nil {
		log.Fatalf("read %s: %v", *data, err)
	}
	logger.Printf("parsed %d movies (%d rows skipped)", report.Rows, report.Skipped)

	st, err := store.New(ctx, *dbURL, store.Options{MaxConns: 2, ConnTimeout: 10 * time.Second, Logger: logger})
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer st.Close()

	if err := st.Migrate(ctx, *migrations); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	repo := repository.New(st)
	var written int64
	if *appendRows {
		written, err = repo.Movies.Import(ctx, movies)
	} else {
		written, err = repo.Movies.Replace(ctx, movies)
	}
	if err != nil {
		log.Fatalf("import movies: %v", err)
	}
	logger.Printf("wrote %d movies", written)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
