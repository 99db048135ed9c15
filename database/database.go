package database

import (
	"database/sql"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/mager/crossfade/config"
)

// ProvideDatabase provides a postgres client. A missing DATABASE_URL is
// not fatal; run history is simply not recorded.
func ProvideDatabase(logger *zap.SugaredLogger, cfg config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		logger.Warn("database url not configured, run history disabled")
		return nil, nil
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to open database connection", zap.Error(err))
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		logger.Error("Failed to ping database", zap.Error(err))
		return nil, err
	}

	return db, nil
}

var Options = ProvideDatabase
