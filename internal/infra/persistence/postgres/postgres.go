// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"log/slog"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"persona/config"
	"persona/internal/infra/persistence/model"
)

// New opens the database connection and runs schema migration for the
// account table. TranslateError is enabled so constraint violations surface
// as gorm sentinel errors instead of driver-specific ones.
func New(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	if cfg.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	gormConfig := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	}
	if cfg.Env.Debug {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(postgres.Open(cfg.Postgres.DSN()), gormConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to postgres")
	}

	if err := db.AutoMigrate(&model.PersonModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate person table")
	}

	log.Info("Connected to postgres", slog.String("host", cfg.Postgres.Host), slog.String("db", cfg.Postgres.DBName))

	return db, nil
}
