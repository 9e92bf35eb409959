package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jhankim/slack-olapic/pkg/logger"
)

type Config struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
}

// DefaultConfig suits startup probes: four attempts inside roughly five seconds.
func DefaultConfig() Config {
	return Config{
		MaxRetries:      3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      2,
	}
}

func (c Config) backOff(ctx context.Context) backoff.BackOffContext {
	bo := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(c.InitialInterval),
		backoff.WithMaxInterval(c.MaxInterval),
		backoff.WithMultiplier(c.Multiplier),
	)
	return backoff.WithContext(backoff.WithMaxRetries(bo, c.MaxRetries), ctx)
}

// Permanent marks err as not worth retrying; Do returns it immediately.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

func Do(ctx context.Context, log logger.Logger, operationName string, operation func() error, cfg Config) error {
	_, err := Value(ctx, log, operationName, func() (struct{}, error) {
		return struct{}{}, operation()
	}, cfg)
	return err
}

// Value is Do for operations that produce a result.
func Value[T any](ctx context.Context, log logger.Logger, operationName string, operation func() (T, error), cfg Config) (T, error) {
	attempt := 1
	notify := func(err error, wait time.Duration) {
		log.Warn("Operation failed, retrying",
			"operation", operationName,
			"attempt", attempt,
			"error", err,
			"next_attempt_in", wait.Round(time.Millisecond).String(),
		)
		attempt++
	}

	return backoff.RetryNotifyWithData(operation, cfg.backOff(ctx), notify)
}
