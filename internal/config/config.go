package config

import (
	"fmt"
	"os"
	"strconv"
)

// Data sources the server can load the movies table from.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Config captures all runtime configuration derived from environment variables.
type Config struct {
	Port                 string
	DataSource           string
	DataPath             string
	DBURL                string
	MigrationsDir        string
	ReadTimeoutSecs      int
	WriteTimeoutSecs     int
	IdleTimeoutSecs      int
	DashboardTimeoutSecs int
	OptionsLimit         int
	DBMaxConns           int
	DBMinConns           int
	DBMaxIdleSecs        int
	DBMaxLifeSecs        int
	DBConnTimeoutSecs    int
	DBStatementCache     int
}

// Load reads configuration from environment variables, applying defaults and validation.
func Load() (Config, error) {
	cfg := Config{
		Port:                 getEnv("PORT", "8080"),
		DataSource:           getEnv("DATA_SOURCE", SourceCSV),
		DataPath:             getEnv("DATA_PATH", "cleaned_n_movies.csv"),
		DBURL:                os.Getenv("DB_URL"),
		MigrationsDir:        getEnv("MIGRATIONS_DIR", "db/migrations"),
		ReadTimeoutSecs:      getEnvInt("SERVER_READ_TIMEOUT", 15),
		WriteTimeoutSecs:     getEnvInt("SERVER_WRITE_TIMEOUT", 15),
		IdleTimeoutSecs:      getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		DashboardTimeoutSecs: getEnvInt("DASHBOARD_TIMEOUT_SECS", 5),
		OptionsLimit:         getEnvInt("OPTIONS_LIMIT", 0),
		DBMaxConns:           getEnvInt("DB_MAX_CONNS", 4),
		DBMinConns:           getEnvInt("DB_MIN_CONNS", 0),
		DBMaxIdleSecs:        getEnvInt("DB_MAX_CONN_IDLE_SECS", 300),
		DBMaxLifeSecs:        getEnvInt("DB_MAX_CONN_LIFETIME_SECS", 3600),
		DBConnTimeoutSecs:    getEnvInt("DB_CONN_TIMEOUT_SECS", 10),
		DBStatementCache:     getEnvInt("DB_STATEMENT_CACHE_CAPACITY", 256),
	}

	switch cfg.DataSource {
	case SourceCSV:
		if cfg.DataPath == "" {
			return Config{}, fmt.Errorf("DATA_PATH is required for csv source")
		}
	case SourcePostgres:
		if cfg.DBURL == "" {
			return Config{}, fmt.Errorf("DB_URL is required for postgres source")
		}
		if err := validatePool(cfg); err != nil {
			return Config{}, err
		}
	default:
		return Config{}, fmt.Errorf("DATA_SOURCE must be %q or %q, got %q", SourceCSV, SourcePostgres, cfg.DataSource)
	}

	if cfg.DashboardTimeoutSecs <= 0 {
		return Config{}, fmt.Errorf("DASHBOARD_TIMEOUT_SECS must be positive")
	}
	if cfg.OptionsLimit < 0 {
		return Config{}, fmt.Errorf("OPTIONS_LIMIT must be non-negative")
	}

	return cfg, nil
}

func validatePool(cfg Config) error {
	if cfg.DBMaxConns <= 0 {
		return fmt.Errorf("DB_MAX_CONNS must be positive")
	}
	if cfg.DBMinConns < 0 {
		return fmt.Errorf("DB_MIN_CONNS must be non-negative")
	}
	if cfg.DBMinConns > cfg.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS cannot exceed DB_MAX_CONNS")
	}
	if cfg.DBStatementCache < 0 {
		return fmt.Errorf("DB_STATEMENT_CACHE_CAPACITY must be non-negative")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}
