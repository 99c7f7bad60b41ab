package llm

// #region imports
import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/sirupsen/logrus"
)

// #endregion imports

// #region retrying

const (
	// DefaultMaxRetries bounds extra attempts after the first call.
	DefaultMaxRetries = 2
	// DefaultRetryBase is the first Fibonacci backoff step.
	DefaultRetryBase = 250 * time.Millisecond
)

// Retrying wraps a Completer with bounded Fibonacci backoff.
// Context cancellation and deadline errors are never retried.
type Retrying struct {
	next       Completer
	maxRetries uint64
	base       time.Duration
	log        *logrus.Entry
}

// NewRetrying wraps next. Zero base falls back to DefaultRetryBase.
func NewRetrying(next Completer, maxRetries uint64, base time.Duration, log *logrus.Entry) *Retrying {
	if base <= 0 {
		base = DefaultRetryBase
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Retrying{
		next:       next,
		maxRetries: maxRetries,
		base:       base,
		log:        log.WithField("component", "llm"),
	}
}

// Complete calls the wrapped completer until it succeeds or retries run out.
func (r *Retrying) Complete(ctx context.Context, req Request) (string, error) {
	var out string
	attempt := 0
	backoff := retry.WithMaxRetries(r.maxRetries, retry.NewFibonacci(r.base))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		text, err := r.next.Complete(ctx, req)
		if err == nil {
			out = text
			return nil
		}
		if !retryable(ctx, err) {
			return err
		}
		r.log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("completion failed, retrying")
		return retry.RetryableError(err)
	})
	if err != nil {
		return "", err
	}
	return out, nil
}

func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return !errors.Is(err, ErrNotConfigured)
}

// #endregion retrying
