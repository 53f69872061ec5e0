package retry

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type Config struct {
	Delays []time.Duration
}

var DefaultConfig = Config{
	Delays: []time.Duration{1 * time.Second, 3 * time.Second, 5 * time.Second},
}

// DoRetry runs fn, repeating it after the configured delays while the error
// stays retriable (connection-level failures). Any other error is returned
// as is on the first occurrence.
func DoRetry(ctx context.Context, fn func() error, configs ...Config) error {
	config := DefaultConfig
	if len(configs) > 0 {
		config = configs[0]
	}

	err := fn()
	for _, delay := range config.Delays {
		if err == nil || !isRetriable(err) {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		err = fn()
	}
	return err
}

func DoRetryWithResult[T any](ctx context.Context, fn func() (T, error), configs ...Config) (T, error) {
	config := DefaultConfig
	if len(configs) > 0 {
		config = configs[0]
	}

	result, err := fn()
	for _, delay := range config.Delays {
		if err == nil || !isRetriable(err) {
			return result, err
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(delay):
		}
		result, err = fn()
	}
	return result, err
}

func isRetriable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgerrcode.IsConnectionException(pgErr.Code)
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
