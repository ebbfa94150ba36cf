package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/3eLLenKa/journal-review/internal/config"
	"github.com/3eLLenKa/journal-review/internal/ports"
	"github.com/3eLLenKa/journal-review/internal/repository/memory"
	"github.com/3eLLenKa/journal-review/internal/repository/postgres"
)

// New opens the store selected by cfg.Driver. The memory driver starts empty
// and is meant for local runs and tests.
func New(ctx context.Context, log *slog.Logger, cfg config.Database, migrations config.Migrations) (ports.Store, error) {
	switch cfg.Driver {
	case "memory":
		log.Warn("using in-memory store, data is lost on restart")
		return memory.NewStore(memory.Seed{}), nil
	case "postgres":
		pg, err := postgres.New(cfg.DSN(), postgres.PoolOptions{
			MaxOpenConns:    cfg.MaxOpenConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime,
		})
		if err != nil {
			return nil, err
		}

		if !migrations.Skip {
			if err := pg.Migrate(ctx, log); err != nil {
				_ = pg.Db.Close()
				return nil, err
			}
		}

		return postgres.NewStore(log, pg.Db, cfg.TxRetries), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}
