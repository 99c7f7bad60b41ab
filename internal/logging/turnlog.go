package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// #region log-turn
// LogTurn writes a provenance entry to the turn_log table.
func LogTurn(db *sql.DB, entry TurnEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO turn_log (turn_id, session_id, decision, rule, category, language, llm_failed, elapsed_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.TurnID,
		nullIfEmpty(entry.SessionID),
		entry.Decision,
		nullIfEmpty(entry.Rule),
		nullIfEmpty(entry.Category),
		nullIfEmpty(entry.Language),
		entry.LLMFailed,
		entry.Elapsed.Milliseconds(),
		entry.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("log turn: %w", err)
	}
	return nil
}

// #endregion log-turn

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers

// #region recent-turns
// RecentTurns reads the newest turn_log rows, newest first.
func RecentTurns(db *sql.DB, limit int) ([]TurnEntry, error) {
	rows, err := db.Query(
		`SELECT turn_id, session_id, decision, rule, category, language, llm_failed, elapsed_ms, created_at
		 FROM turn_log ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent turns: %w", err)
	}
	defer rows.Close()

	var entries []TurnEntry
	for rows.Next() {
		var e TurnEntry
		var session, rule, category, language sql.NullString
		var elapsed sql.NullInt64
		var created string
		if err := rows.Scan(&e.TurnID, &session, &e.Decision, &rule, &category, &language,
			&e.LLMFailed, &elapsed, &created); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		e.SessionID = session.String
		e.Rule = rule.String
		e.Category = category.String
		e.Language = language.String
		e.Elapsed = time.Duration(elapsed.Int64) * time.Millisecond
		e.CreatedAt, _ = time.Parse(timeLayout, created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion recent-turns
