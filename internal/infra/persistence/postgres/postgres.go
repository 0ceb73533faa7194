// Package postgres implements the persistence layer on GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"rangriti/config"
	"rangriti/internal/domain/lifecycle"
	"rangriti/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolStatsInterval  = 5 * time.Second
	poolWaitWarnCutoff = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL connection, runs migrations on startup,
// and ties the pool to the application lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes go through txManager.Execute, so GORM's
		// implicit per-statement transaction is unnecessary overhead.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	statsCtx, stopStats := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if err := migrate(db); err != nil {
				return errors.Wrap(err, "failed to migrate schema")
			}

			go watchPoolStats(statsCtx, params.Logger, sqlDB, poolStatsInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopStats()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// watchPoolStats samples sql.DB pool counters and reports intervals in
// which connections had to wait. Sustained waits mean the pool is
// undersized for the current load.
func watchPoolStats(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waits := cur.WaitCount - prev.WaitCount
			waited := cur.WaitDuration - prev.WaitDuration
			prev = cur

			if waits == 0 {
				continue
			}

			attrs := []slog.Attr{
				slog.Int64("waitCountDelta", waits),
				slog.Duration("waitDurationDelta", waited),
				slog.Duration("avgWait", waited/time.Duration(waits)),
				slog.Int("maxOpenConns", cur.MaxOpenConnections),
				slog.Int("openConns", cur.OpenConnections),
				slog.Int("inUseConns", cur.InUse),
				slog.Int("idleConns", cur.Idle),
				slog.Int64("waitCountTotal", cur.WaitCount),
				slog.Duration("waitDurationTotal", cur.WaitDuration),
			}

			level := slog.LevelDebug
			msg := "Postgres pool wait observed"
			if waited >= poolWaitWarnCutoff {
				level = slog.LevelWarn
				msg = "Postgres pool wait detected"
			}
			logger.LogAttrs(ctx, level, msg, attrs...)
		}
	}
}
