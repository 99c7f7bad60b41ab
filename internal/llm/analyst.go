package llm

// #region imports
import (
	"context"
	"fmt"
	"strings"
)

// #endregion imports

// #region analyst

// Analyst produces the secondary, non-conversational completions used for enrichment.
type Analyst struct {
	completer Completer
}

// NewAnalyst creates an Analyst backed by c.
func NewAnalyst(c Completer) *Analyst {
	return &Analyst{completer: c}
}

// EmotionalContext asks for a short analysis of the emotions in text.
// Returns "" when the model produced nothing.
func (a *Analyst) EmotionalContext(ctx context.Context, text string) (string, error) {
	out, err := a.completer.Complete(ctx, Request{
		Prompt:      emotionalContextPrompt(text),
		Temperature: 0.3,
		MaxTokens:   200,
	})
	if err != nil {
		return "", fmt.Errorf("emotional context: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// CopingStrategies asks for a few practical coping strategies for emotionalState.
func (a *Analyst) CopingStrategies(ctx context.Context, emotionalState string) (string, error) {
	out, err := a.completer.Complete(ctx, Request{
		Prompt:      copingStrategiesPrompt(emotionalState),
		Temperature: 0.6,
		MaxTokens:   300,
	})
	if err != nil {
		return "", fmt.Errorf("coping strategies: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// #endregion analyst
