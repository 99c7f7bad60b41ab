package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/danielpatrickdp/therapy-assistant/internal/logging"
	"github.com/danielpatrickdp/therapy-assistant/internal/orchestrator"
	"github.com/danielpatrickdp/therapy-assistant/internal/store"
)

// #region recorder
// sessionRecorder persists finished turns for one session and writes the turn_log row.
type sessionRecorder struct {
	store *store.Store
	user  store.User

	mu     sync.Mutex
	lastID string
}

func newSessionRecorder(s *store.Store, user store.User) *sessionRecorder {
	return &sessionRecorder{store: s, user: user}
}

// RecordTurn implements orchestrator.Recorder.
func (r *sessionRecorder) RecordTurn(ctx context.Context, turn orchestrator.TurnResult) error {
	conv, err := r.store.SaveConversation(ctx, store.Conversation{
		UserID:           r.user.ID,
		SessionID:        r.user.SessionID,
		UserInput:        turn.Utterance,
		AIResponse:       turn.Reply,
		InputType:        string(turn.InputType),
		EmotionalContext: turn.EmotionalContext,
		Category:         turn.CategoryName(),
		CreatedAt:        turn.CreatedAt,
		ResponseTime:     turn.ResponseTime,
	})
	if err != nil {
		return fmt.Errorf("record turn: %w", err)
	}

	r.mu.Lock()
	r.lastID = conv.ID
	r.mu.Unlock()

	return logging.LogTurn(r.store.DB(), logging.TurnEntry{
		TurnID:    turn.TurnID,
		SessionID: r.user.SessionID,
		Decision:  turn.Decision.String(),
		Rule:      string(turn.Decision.Rule),
		Category:  turn.CategoryName(),
		Language:  turn.Language,
		LLMFailed: turn.LLMFailed,
		Elapsed:   turn.ResponseTime,
		CreatedAt: turn.CreatedAt,
	})
}

// LastConversationID is the id of the most recently stored exchange, if any.
func (r *sessionRecorder) LastConversationID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastID
}

// #endregion recorder
