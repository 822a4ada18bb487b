package cmd

import (
	"context"
	"fmt"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/cldprgm/Network-vibe/internal/config"
)

func retryPolicy(ctx context.Context, cfg config.DatabaseConfig) backoff.BackOff {
	b := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(cfg.RetryInterval),
		backoff.WithMaxInterval(4*cfg.RetryInterval),
		backoff.WithMaxElapsedTime(0),
	)
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(cfg.MaxRetry)), ctx)
}

// openDB connects and pings MySQL, retrying while the database comes up.
func openDB(ctx context.Context, cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	var db *gorm.DB
	attempt := 0
	err = backoff.Retry(func() error {
		attempt++
		conn, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			logrus.WithError(err).Warnf("failed to open connection to database (attempt %d)", attempt)
			return err
		}
		sqlDB, err := conn.DB()
		if err != nil {
			return backoff.Permanent(err)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			logrus.WithError(err).Warnf("failed to ping database (attempt %d)", attempt)
			_ = sqlDB.Close()
			return err
		}
		db = conn
		return nil
	}, retryPolicy(ctx, cfg))
	if err != nil {
		return nil, fmt.Errorf("could not connect to database after retries: %w", err)
	}
	return db, nil
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("got error when getting sql.DB from gorm.DB")
		return
	}
	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("got error when closing the DB connection")
	}
}

// openCache connects to redis, waiting up to the database retry budget for it
// to come up. An unreachable cache is not fatal: reads fall back to the store
// and the client keeps reconnecting in the background.
func openCache(ctx context.Context, cfg config.CacheConfig, retry config.DatabaseConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Pass,
		DB:       cfg.DB,
	})
	err := backoff.Retry(func() error {
		if err := client.Ping(ctx).Err(); err != nil {
			logrus.WithError(err).Warn("failed to ping cache")
			return err
		}
		return nil
	}, retryPolicy(ctx, retry))
	if err != nil {
		logrus.WithError(err).Warnf("cache %s unreachable, serving from the database until it recovers", cfg.Addr())
	}
	return client
}
