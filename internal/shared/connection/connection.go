package connection

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func (c PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

func retryOptions(maxRetries int, log *zap.Logger, what string) []backoff.RetryOption {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = 10 * time.Second

	if maxRetries < 1 {
		maxRetries = 1
	}

	return []backoff.RetryOption{
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(maxRetries)),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Warn(what+" connection failed, retrying",
				zap.Duration("next_attempt_in", next),
				zap.Error(err),
			)
		}),
	}
}

// OpenGORM opens a gorm handle on dsn with the pool settings used by every process.
func OpenGORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func ConnectGORMWithRetry(ctx context.Context, cfg PostgresConfig, maxRetries int) (*gorm.DB, error) {
	log := zap.L().Named("connection.postgres")

	db, err := backoff.Retry(ctx, func() (*gorm.DB, error) {
		db, err := OpenGORM(cfg.DSN())
		if err != nil {
			return nil, err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		return db, nil
	}, retryOptions(maxRetries, log, "postgres")...)
	if err != nil {
		return nil, fmt.Errorf("database connection failed after %d retries: %w", maxRetries, err)
	}

	log.Info("connected to postgres", zap.String("host", cfg.Host), zap.String("database", cfg.Name))
	return db, nil
}

func ConnectRedisWithRetry(ctx context.Context, addr string, maxRetries int) (*redis.Client, error) {
	log := zap.L().Named("connection.redis")
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	_, err := backoff.Retry(ctx, func() (string, error) {
		return rdb.Ping(ctx).Result()
	}, retryOptions(maxRetries, log, "redis")...)
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis connection failed after %d retries: %w", maxRetries, err)
	}

	log.Info("connected to redis", zap.String("addr", addr))
	return rdb, nil
}

// ConnectKafkaWithRetry waits for the broker to accept connections and returns a writer
// that routes messages by their own Topic field.
func ConnectKafkaWithRetry(ctx context.Context, broker string, maxRetries int) (*kafkago.Writer, error) {
	log := zap.L().Named("connection.kafka")

	_, err := backoff.Retry(ctx, func() (bool, error) {
		conn, err := kafkago.DialContext(ctx, "tcp", broker)
		if err != nil {
			return false, err
		}
		return true, conn.Close()
	}, retryOptions(maxRetries, log, "kafka")...)
	if err != nil {
		return nil, fmt.Errorf("kafka connection failed after %d retries: %w", maxRetries, err)
	}

	log.Info("connected to kafka", zap.String("broker", broker))
	return &kafkago.Writer{
		Addr:                   kafkago.TCP(broker),
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}, nil
}
