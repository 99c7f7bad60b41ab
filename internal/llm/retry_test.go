package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func countingCompleter(failures int, err error) (*int, Completer) {
	calls := 0
	return &calls, CompleterFunc(func(ctx context.Context, req Request) (string, error) {
		calls++
		if calls <= failures {
			return "", err
		}
		return "ok", nil
	})
}

func TestRetrying_SucceedsAfterTransientFailures(t *testing.T) {
	calls, inner := countingCompleter(2, errors.New("unavailable"))
	r := NewRetrying(inner, 2, time.Millisecond, nil)

	out, err := r.Complete(context.Background(), Request{Prompt: "x"})
	require.NoError(t, err)
	require.Equal(t, "ok", out)
	require.Equal(t, 3, *calls)
}

func TestRetrying_BoundedAttempts(t *testing.T) {
	calls, inner := countingCompleter(10, errors.New("unavailable"))
	r := NewRetrying(inner, 2, time.Millisecond, nil)

	_, err := r.Complete(context.Background(), Request{Prompt: "x"})
	require.ErrorContains(t, err, "unavailable")
	require.Equal(t, 3, *calls)
}

func TestRetrying_ZeroRetries(t *testing.T) {
	calls, inner := countingCompleter(10, errors.New("unavailable"))
	r := NewRetrying(inner, 0, time.Millisecond, nil)

	_, err := r.Complete(context.Background(), Request{Prompt: "x"})
	require.Error(t, err)
	require.Equal(t, 1, *calls)
}

func TestRetrying_DoesNotRetryDeadline(t *testing.T) {
	calls, inner := countingCompleter(10, context.DeadlineExceeded)
	r := NewRetrying(inner, 5, time.Millisecond, nil)

	_, err := r.Complete(context.Background(), Request{Prompt: "x"})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Equal(t, 1, *calls)
}

func TestRetrying_DoesNotRetryNotConfigured(t *testing.T) {
	calls, inner := countingCompleter(10, ErrNotConfigured)
	r := NewRetrying(inner, 5, time.Millisecond, nil)

	_, err := r.Complete(context.Background(), Request{Prompt: "x"})
	require.ErrorIs(t, err, ErrNotConfigured)
	require.Equal(t, 1, *calls)
}

func TestRetrying_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	inner := CompleterFunc(func(ctx context.Context, req Request) (string, error) {
		calls++
		cancel()
		return "", errors.New("unavailable")
	})
	r := NewRetrying(inner, 5, time.Millisecond, nil)

	_, err := r.Complete(ctx, Request{Prompt: "x"})
	require.Error(t, err)
	require.Equal(t, 1, calls)
}
