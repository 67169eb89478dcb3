package config

import (
	"context"
	"fmt"
	"time"

	"github.com/Rrahullkumar/shushiman/internal/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

// ConnectDB establishes a connection pool to PostgreSQL
func ConnectDB(cfg *Config, log logrus.FieldLogger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid DATABASE_URL: %w", err)
	}
	poolCfg.ConnConfig.ConnectTimeout = cfg.DBConnectTimeout

	var pool *pgxpool.Pool
	retryInterval := 2 * time.Second

	// Retry connecting to the database a few times
	for i := 0; i < cfg.DBConnectRetries; i++ {
		pool, err = pgxpool.NewWithConfig(context.Background(), poolCfg)
		if err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.DBConnectTimeout)
			err = pool.Ping(ctx)
			cancel()
			if err == nil {
				log.Info("Successfully connected to PostgreSQL")
				return pool, nil
			}
			pool.Close()
		}
		log.WithError(err).WithField("attempt", i+1).Warnf("Failed to connect to database, retrying in %v", retryInterval)
		if i < cfg.DBConnectRetries-1 {
			time.Sleep(retryInterval)
		}
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", cfg.DBConnectRetries, err)
}

// RunMigrations applies the embedded schema migrations
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}
	return nil
}
