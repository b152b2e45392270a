// Package poll retries operations whose results become available
// eventually, such as verify-engine indexing of a freshly registered asset
// or the first commit landing in an asset's history. The Capture client
// itself never retries; treating availability gaps as soft is a caller
// decision, and this package is where callers make it.
package poll

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/numbersprotocol/capture-go/capture"
	"github.com/numbersprotocol/capture-go/pkg/log"
)

const (
	defaultInitialInterval = 2 * time.Second
	defaultMaxElapsed      = 2 * time.Minute
)

type options struct {
	initialInterval time.Duration
	maxElapsed      time.Duration
	retryable       func(error) bool
}

// Option tunes a Do call.
type Option func(*options)

// WithInitialInterval sets the first wait between attempts; later waits
// grow exponentially from it.
func WithInitialInterval(d time.Duration) Option {
	return func(o *options) { o.initialInterval = d }
}

// WithMaxElapsed caps the total time spent across attempts and waits.
func WithMaxElapsed(d time.Duration) Option {
	return func(o *options) { o.maxElapsed = d }
}

// WithRetryable replaces the Retryable predicate.
func WithRetryable(fn func(error) bool) Option {
	return func(o *options) {
		if fn != nil {
			o.retryable = fn
		}
	}
}

// Retryable is the default predicate. It retries the signals that mean
// "not yet" rather than "never": transport failures, server-side errors,
// and assets the services have not indexed yet. Validation, authentication
// and permission failures will not improve by waiting.
func Retryable(err error) bool {
	var captureErr *capture.Error
	if !errors.As(err, &captureErr) {
		return false
	}
	switch captureErr.Kind {
	case capture.KindNoCommits, capture.KindNotFound:
		return true
	case capture.KindNetwork:
		return captureErr.Status == 0 || captureErr.Status >= 500
	default:
		return false
	}
}

// Do invokes op until it succeeds, a non-retryable error occurs, the
// context is done, or the elapsed budget runs out. It returns the last
// result or the last error.
func Do[T any](ctx context.Context, logger log.Logger, op func(context.Context) (T, error), opts ...Option) (T, error) {
	if logger == nil {
		logger = log.NewNoopLogger()
	}

	o := options{
		initialInterval: defaultInitialInterval,
		maxElapsed:      defaultMaxElapsed,
		retryable:       Retryable,
	}
	for _, opt := range opts {
		opt(&o)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = o.initialInterval
	b.MaxElapsedTime = o.maxElapsed

	var result T
	err := backoff.RetryNotify(func() error {
		value, err := op(ctx)
		if err != nil {
			if o.retryable(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		result = value
		return nil
	}, backoff.WithContext(b, ctx), func(err error, wait time.Duration) {
		logger.Debug(ctx, "Result not available yet, retrying", "error", err, "wait", wait)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
