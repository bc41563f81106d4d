// Package sqlite contains the concrete implementation of the local state
// store using GORM over an embedded SQLite database.
package sqlite

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the state database and ensures the schema exists.
func New(params Params) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(params.Config.State.Path), &gorm.Config{
		// Single-writer local file; per-statement transactions only add noise.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open state database")
	}

	if err := db.AutoMigrate(&model.StateModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate state schema")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get state sql.DB")
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Debug("Closing state database")

			return sqlDB.Close()
		},
	})

	return db, nil
}
