package store

import (
	"errors"
	"time"
)

// #region errors
var (
	// ErrUserNotFound is returned when no user row exists for a session.
	ErrUserNotFound = errors.New("store: user not found")
	// ErrConversationNotFound is returned when feedback targets an unknown conversation.
	ErrConversationNotFound = errors.New("store: conversation not found")
	// ErrInvalidRating is returned for ratings outside 1..5.
	ErrInvalidRating = errors.New("store: rating must be between 1 and 5")
	// ErrInvalidRecord is returned when a record fails field validation.
	ErrInvalidRecord = errors.New("store: invalid record")
)

// #endregion errors

// #region input-type
// Input types accepted in conversations.input_type.
const (
	InputText  = "text"
	InputAudio = "audio"
	InputImage = "image"
)

// DefaultHistoryLimit caps ListConversations when no limit is given.
const DefaultHistoryLimit = 50

// #endregion input-type

// #region user
// User is one browser/terminal session.
type User struct {
	ID                 string
	SessionID          string
	CreatedAt          time.Time
	LastActive         time.Time
	TotalConversations int
}

// #endregion user

// #region conversation
// Conversation is a single stored exchange.
type Conversation struct {
	ID               string
	UserID           string `validate:"required"`
	SessionID        string `validate:"required"`
	UserInput        string `validate:"required"`
	AIResponse       string `validate:"required"`
	InputType        string `validate:"oneof=text audio image"`
	HasAudioResponse bool
	EmotionalContext string
	Category         string
	CreatedAt        time.Time
	ResponseTime     time.Duration
}

// #endregion conversation

// #region feedback
// Feedback rates a stored conversation. Rating 0 means no rating was given.
type Feedback struct {
	ID             string
	ConversationID string `validate:"required"`
	UserID         string `validate:"required"`
	Rating         int    `validate:"omitempty,min=1,max=5"`
	Text           string
	CreatedAt      time.Time
}

// #endregion feedback

// #region stats
// Stats summarises a session.
type Stats struct {
	TotalConversations int
	UserSince          time.Time
	LastActive         time.Time
}

// #endregion stats
