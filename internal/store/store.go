package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id                  TEXT PRIMARY KEY,
	session_id          TEXT NOT NULL UNIQUE,
	created_at          TEXT NOT NULL,
	last_active         TEXT NOT NULL,
	total_conversations INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS conversations (
	id                 TEXT PRIMARY KEY,
	user_id            TEXT NOT NULL,
	session_id         TEXT NOT NULL,
	user_input         TEXT NOT NULL,
	ai_response        TEXT NOT NULL,
	input_type         TEXT NOT NULL,
	has_audio_response INTEGER NOT NULL DEFAULT 0,
	emotional_context  TEXT,
	category           TEXT,
	created_at         TEXT NOT NULL,
	response_time      REAL,
	FOREIGN KEY (user_id) REFERENCES users(id)
);

CREATE INDEX IF NOT EXISTS idx_conversations_session ON conversations(session_id, created_at);

CREATE TABLE IF NOT EXISTS user_feedback (
	id              TEXT PRIMARY KEY,
	conversation_id TEXT NOT NULL,
	user_id         TEXT NOT NULL,
	rating          INTEGER,
	feedback_text   TEXT,
	created_at      TEXT NOT NULL,
	FOREIGN KEY (conversation_id) REFERENCES conversations(id) ON DELETE CASCADE,
	FOREIGN KEY (user_id) REFERENCES users(id)
);

CREATE TABLE IF NOT EXISTS turn_log (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	turn_id     TEXT NOT NULL,
	session_id  TEXT,
	decision    TEXT NOT NULL,
	rule        TEXT,
	category    TEXT,
	language    TEXT,
	llm_failed  INTEGER NOT NULL DEFAULT 0,
	elapsed_ms  INTEGER,
	created_at  TEXT NOT NULL
);
`

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// #endregion schema

// #region store-struct
// Store persists users, conversations and feedback in SQLite.
type Store struct {
	db       *sql.DB
	validate *validator.Validate
	log      *logrus.Entry
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// Pragmas are per connection; keep one so foreign_keys sticks.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{
		db:       db,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      logrus.WithField("component", "store"),
	}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion db-accessor

// #region users
// GetOrCreateUser returns the user for sessionID, creating it on first sight.
// Existing users get last_active bumped.
func (s *Store) GetOrCreateUser(ctx context.Context, sessionID string) (User, error) {
	if sessionID == "" {
		return User{}, fmt.Errorf("get or create user: %w: empty session id", ErrInvalidRecord)
	}
	now := formatTime(time.Now())

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, session_id, created_at, last_active, total_conversations)
		 VALUES (?, ?, ?, ?, 0)
		 ON CONFLICT(session_id) DO UPDATE SET last_active = excluded.last_active`,
		uuid.New().String(), sessionID, now, now,
	)
	if err != nil {
		return User{}, fmt.Errorf("upsert user: %w", err)
	}
	s.log.WithField("session", sessionID).Debug("user touched")
	return s.userBySession(ctx, sessionID)
}

func (s *Store) userBySession(ctx context.Context, sessionID string) (User, error) {
	var u User
	var created, active string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, session_id, created_at, last_active, total_conversations
		 FROM users WHERE session_id = ?`, sessionID,
	).Scan(&u.ID, &u.SessionID, &created, &active, &u.TotalConversations)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, fmt.Errorf("user %s: %w", sessionID, ErrUserNotFound)
	}
	if err != nil {
		return User{}, fmt.Errorf("get user %s: %w", sessionID, err)
	}
	u.CreatedAt = parseTime(created)
	u.LastActive = parseTime(active)
	return u, nil
}

// ListUsers returns up to limit sessions, most recently active first.
func (s *Store) ListUsers(ctx context.Context, limit int) ([]User, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, created_at, last_active, total_conversations
		 FROM users ORDER BY last_active DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		var created, active string
		if err := rows.Scan(&u.ID, &u.SessionID, &created, &active, &u.TotalConversations); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		u.CreatedAt = parseTime(created)
		u.LastActive = parseTime(active)
		users = append(users, u)
	}
	return users, rows.Err()
}

// #endregion users

// #region save-conversation
// SaveConversation inserts an exchange and bumps the owner's counters atomically.
func (s *Store) SaveConversation(ctx context.Context, c Conversation) (Conversation, error) {
	if c.InputType == "" {
		c.InputType = InputText
	}
	if err := s.validate.Struct(c); err != nil {
		return Conversation{}, fmt.Errorf("save conversation: %w: %v", ErrInvalidRecord, err)
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Conversation{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE users SET total_conversations = total_conversations + 1, last_active = ?
		 WHERE id = ?`,
		formatTime(time.Now()), c.UserID,
	)
	if err != nil {
		return Conversation{}, fmt.Errorf("update user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Conversation{}, fmt.Errorf("save conversation for %s: %w", c.UserID, ErrUserNotFound)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO conversations (id, user_id, session_id, user_input, ai_response, input_type,
		 has_audio_response, emotional_context, category, created_at, response_time)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.SessionID, c.UserInput, c.AIResponse, c.InputType,
		c.HasAudioResponse, nullIfEmpty(c.EmotionalContext), nullIfEmpty(c.Category),
		formatTime(c.CreatedAt), nullIfZero(c.ResponseTime),
	)
	if err != nil {
		return Conversation{}, fmt.Errorf("insert conversation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Conversation{}, fmt.Errorf("commit: %w", err)
	}
	s.log.WithFields(logrus.Fields{
		"user":       c.UserID,
		"input_type": c.InputType,
	}).Info("saved conversation")
	return c, nil
}

// #endregion save-conversation

// #region list-conversations
// ListConversations returns up to limit of the most recent exchanges, oldest first.
func (s *Store) ListConversations(ctx context.Context, sessionID string, limit int) ([]Conversation, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, session_id, user_input, ai_response, input_type, has_audio_response,
		 emotional_context, category, created_at, response_time
		 FROM conversations WHERE session_id = ?
		 ORDER BY created_at DESC, rowid DESC LIMIT ?`, sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()

	var out []Conversation
	for rows.Next() {
		var c Conversation
		var emotional, cat sql.NullString
		var created string
		var responseTime sql.NullFloat64
		if err := rows.Scan(&c.ID, &c.UserID, &c.SessionID, &c.UserInput, &c.AIResponse,
			&c.InputType, &c.HasAudioResponse, &emotional, &cat, &created, &responseTime); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		c.EmotionalContext = emotional.String
		c.Category = cat.String
		c.CreatedAt = parseTime(created)
		if responseTime.Valid {
			c.ResponseTime = time.Duration(responseTime.Float64 * float64(time.Second))
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lo.Reverse(out), nil
}

// #endregion list-conversations

// #region feedback
// SaveFeedback records a rating and/or comment for a stored conversation.
func (s *Store) SaveFeedback(ctx context.Context, f Feedback) (Feedback, error) {
	if err := s.validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && lo.ContainsBy(verrs, func(fe validator.FieldError) bool {
			return fe.Field() == "Rating"
		}) {
			return Feedback{}, fmt.Errorf("save feedback: %w (got %d)", ErrInvalidRating, f.Rating)
		}
		return Feedback{}, fmt.Errorf("save feedback: %w: %v", ErrInvalidRecord, err)
	}

	var exists int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM conversations WHERE id = ?`, f.ConversationID,
	).Scan(&exists); err != nil {
		return Feedback{}, fmt.Errorf("check conversation: %w", err)
	}
	if exists == 0 {
		return Feedback{}, fmt.Errorf("feedback for %s: %w", f.ConversationID, ErrConversationNotFound)
	}

	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	var rating any
	if f.Rating != 0 {
		rating = f.Rating
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO user_feedback (id, conversation_id, user_id, rating, feedback_text, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		f.ID, f.ConversationID, f.UserID, rating, nullIfEmpty(f.Text), formatTime(f.CreatedAt),
	)
	if err != nil {
		return Feedback{}, fmt.Errorf("insert feedback: %w", err)
	}
	s.log.WithField("conversation", f.ConversationID).Info("saved feedback")
	return f, nil
}

// #endregion feedback

// #region stats
// UserStats summarises the session. ErrUserNotFound if it was never seen.
func (s *Store) UserStats(ctx context.Context, sessionID string) (Stats, error) {
	u, err := s.userBySession(ctx, sessionID)
	if err != nil {
		return Stats{}, err
	}
	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM conversations WHERE session_id = ?`, sessionID,
	).Scan(&total); err != nil {
		return Stats{}, fmt.Errorf("count conversations: %w", err)
	}
	return Stats{
		TotalConversations: total,
		UserSince:          u.CreatedAt,
		LastActive:         u.LastActive,
	}, nil
}

// #endregion stats

// #region clear
// ClearConversations deletes the session's history and resets its counter.
// Returns the number of conversations removed.
func (s *Store) ClearConversations(ctx context.Context, sessionID string) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM conversations WHERE session_id = ?`, sessionID)
	if err != nil {
		return 0, fmt.Errorf("delete conversations: %w", err)
	}
	removed, _ := res.RowsAffected()

	if _, err := tx.ExecContext(ctx,
		`UPDATE users SET total_conversations = 0 WHERE session_id = ?`, sessionID,
	); err != nil {
		return 0, fmt.Errorf("reset user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	s.log.WithFields(logrus.Fields{
		"session": sessionID,
		"removed": removed,
	}).Info("cleared conversations")
	return removed, nil
}

// #endregion clear

// #region helpers
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(timeLayout, s)
	return t
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullIfZero(d time.Duration) any {
	if d == 0 {
		return nil
	}
	return d.Seconds()
}

// #endregion helpers
