package logging

import "time"

// #region turn-entry
// TurnEntry is a single row in the turn_log table.
type TurnEntry struct {
	TurnID    string
	SessionID string
	Decision  string // "in_scope" | "out_of_scope"
	Rule      string
	Category  string
	Language  string
	LLMFailed bool
	Elapsed   time.Duration
	CreatedAt time.Time
}

// #endregion turn-entry
