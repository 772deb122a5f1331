package db

import (
	"database/sql"
	"log/slog"
	"os"
	"strconv"
	"time"

	_ "github.com/lib/pq"
)

var DB *sql.DB

// intFromEnv reads an integer setting, falling back to the default when the
// variable is unset or not a number.
func intFromEnv(name string, defaultValue int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("invalid env value, using default", "name", name, "value", raw, "default", defaultValue)
		return defaultValue
	}

	return parsed
}

func Connect() error {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		slog.Warn("DATABASE_URL environment variable is not set")
	}

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return err
	}

	DB.SetMaxOpenConns(intFromEnv("DB_MAX_OPEN_CONNS", 25))
	DB.SetMaxIdleConns(intFromEnv("DB_MAX_IDLE_CONNS", 25))
	DB.SetConnMaxLifetime(time.Duration(intFromEnv("DB_CONN_MAX_LIFETIME_MINUTES", 5)) * time.Minute)

	return DB.Ping()
}

func Close() {
	if DB != nil {
		DB.Close()
	}
}
