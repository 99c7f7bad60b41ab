package llm

// #region imports
import (
	"context"
	"errors"
	"fmt"
)

// #endregion imports

// #region errors

var (
	// ErrNotConfigured is returned when a backend is missing its credentials or address.
	ErrNotConfigured = errors.New("llm: backend not configured")
)

// #endregion errors

// #region request

// Request is one text-completion call.
type Request struct {
	SystemPrompt string
	Prompt       string
	Temperature  float32
	MaxTokens    int32
}

// Validate rejects requests that cannot be sent.
func (r Request) Validate() error {
	if r.Prompt == "" {
		return fmt.Errorf("llm: empty prompt")
	}
	if r.MaxTokens < 0 {
		return fmt.Errorf("llm: negative max tokens %d", r.MaxTokens)
	}
	return nil
}

// #endregion request

// #region completer

// Completer is the hosted language-model collaborator.
// Implementations return "" with a nil error when the model produced no text.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(ctx context.Context, req Request) (string, error)

// Complete calls f.
func (f CompleterFunc) Complete(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// #endregion completer
