package orchestrator

// #region imports
import (
	"context"
	"time"

	"github.com/danielpatrickdp/therapy-assistant/internal/category"
	"github.com/danielpatrickdp/therapy-assistant/internal/content"
	"github.com/danielpatrickdp/therapy-assistant/internal/scope"
)

// #endregion

// #region state

// State is one step of the per-turn state machine.
type State string

const (
	StateReceived          State = "received"
	StateScopeChecked      State = "scope_checked"
	StateRespondedDirect   State = "responded_direct"
	StateRespondedRedirect State = "responded_redirect"
	StateEnriched          State = "enriched"
	StateDone              State = "done"
)

// #endregion

// #region input-type

// InputType records which front end produced the utterance.
type InputType string

const (
	InputText  InputType = "text"
	InputAudio InputType = "audio"
	InputImage InputType = "image"
)

// #endregion

// #region history

// HistoryEntry is one prior exchange.
type HistoryEntry struct {
	User      string
	Assistant string
}

// #endregion

// #region turn-result

// TurnResult is the finished turn handed to the caller and the Recorder.
// Category, Bundle and Quote are set only after enrichment succeeded.
type TurnResult struct {
	TurnID           string
	Utterance        string
	InputType        InputType
	Reply            string
	Decision         scope.Decision
	States           []State
	LLMFailed        bool
	Category         *category.Category
	Bundle           *content.Bundle
	Quote            string
	EmotionalContext string
	CopingStrategies string
	Language         string
	ResponseTime     time.Duration
	CreatedAt        time.Time
}

// Redirected reports whether the reply came from the redirection pool.
func (r TurnResult) Redirected() bool {
	return r.Decision.OutOfScope
}

// Enriched reports whether category content was attached.
func (r TurnResult) Enriched() bool {
	return r.Category != nil
}

// CategoryName returns the category label, or "" when not enriched.
func (r TurnResult) CategoryName() string {
	if r.Category == nil {
		return ""
	}
	return r.Category.String()
}

// #endregion

// #region collaborators

// Analyst produces the secondary completions used during enrichment.
type Analyst interface {
	EmotionalContext(ctx context.Context, text string) (string, error)
	CopingStrategies(ctx context.Context, emotionalState string) (string, error)
}

// Recorder receives every finished turn, e.g. for persistence.
type Recorder interface {
	RecordTurn(ctx context.Context, turn TurnResult) error
}

// #endregion
