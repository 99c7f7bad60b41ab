package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func tempDB(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func seedConversation(t *testing.T, s *Store, u User, input string) Conversation {
	t.Helper()
	c, err := s.SaveConversation(context.Background(), Conversation{
		UserID:     u.ID,
		SessionID:  u.SessionID,
		UserInput:  input,
		AIResponse: "reply to " + input,
	})
	require.NoError(t, err)
	return c
}

// #region users
func TestGetOrCreateUser(t *testing.T) {
	s := tempDB(t)
	ctx := context.Background()

	u1, err := s.GetOrCreateUser(ctx, "sess-1")
	require.NoError(t, err)
	require.NotEmpty(t, u1.ID)
	require.Equal(t, "sess-1", u1.SessionID)
	require.Zero(t, u1.TotalConversations)
	require.False(t, u1.CreatedAt.IsZero())

	u2, err := s.GetOrCreateUser(ctx, "sess-1")
	require.NoError(t, err)
	require.Equal(t, u1.ID, u2.ID, "same session maps to same user")
	require.Equal(t, u1.CreatedAt, u2.CreatedAt)
	require.False(t, u2.LastActive.Before(u1.LastActive))

	u3, err := s.GetOrCreateUser(ctx, "sess-2")
	require.NoError(t, err)
	require.NotEqual(t, u1.ID, u3.ID)
}

func TestGetOrCreateUser_EmptySession(t *testing.T) {
	s := tempDB(t)
	_, err := s.GetOrCreateUser(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidRecord)
}

func TestListUsers(t *testing.T) {
	s := tempDB(t)
	ctx := context.Background()

	_, err := s.GetOrCreateUser(ctx, "first")
	require.NoError(t, err)
	_, err = s.GetOrCreateUser(ctx, "second")
	require.NoError(t, err)

	users, err := s.ListUsers(ctx, 0)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "second", users[0].SessionID)

	users, err = s.ListUsers(ctx, 1)
	require.NoError(t, err)
	require.Len(t, users, 1)
}

// #endregion users

// #region conversations
func TestSaveConversation_Defaults(t *testing.T) {
	s := tempDB(t)
	ctx := context.Background()
	u, err := s.GetOrCreateUser(ctx, "sess")
	require.NoError(t, err)

	c, err := s.SaveConversation(ctx, Conversation{
		UserID:           u.ID,
		SessionID:        u.SessionID,
		UserInput:        "I feel anxious",
		AIResponse:       "That sounds hard.",
		EmotionalContext: "anxiety",
		Category:         "anxiety",
		ResponseTime:     1500 * time.Millisecond,
	})
	require.NoError(t, err)
	require.NotEmpty(t, c.ID)
	require.Equal(t, InputText, c.InputType)
	require.False(t, c.CreatedAt.IsZero())

	list, err := s.ListConversations(ctx, "sess", 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, c.ID, list[0].ID)
	require.Equal(t, "anxiety", list[0].EmotionalContext)
	require.Equal(t, "anxiety", list[0].Category)
	require.Equal(t, 1500*time.Millisecond, list[0].ResponseTime)

	u, err = s.GetOrCreateUser(ctx, "sess")
	require.NoError(t, err)
	require.Equal(t, 1, u.TotalConversations)
}

func TestSaveConversation_Validation(t *testing.T) {
	s := tempDB(t)
	ctx := context.Background()
	u, err := s.GetOrCreateUser(ctx, "sess")
	require.NoError(t, err)

	tests := []struct {
		name string
		c    Conversation
	}{
		{"missing input", Conversation{UserID: u.ID, SessionID: "sess", AIResponse: "r"}},
		{"missing response", Conversation{UserID: u.ID, SessionID: "sess", UserInput: "i"}},
		{"bad input type", Conversation{UserID: u.ID, SessionID: "sess", UserInput: "i", AIResponse: "r", InputType: "video"}},
		{"missing user", Conversation{SessionID: "sess", UserInput: "i", AIResponse: "r"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.SaveConversation(ctx, tt.c)
			require.ErrorIs(t, err, ErrInvalidRecord)
		})
	}
}

func TestSaveConversation_UnknownUser(t *testing.T) {
	s := tempDB(t)
	_, err := s.SaveConversation(context.Background(), Conversation{
		UserID: "ghost", SessionID: "sess", UserInput: "i", AIResponse: "r",
	})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestListConversations_ChronologicalAndLimited(t *testing.T) {
	s := tempDB(t)
	ctx := context.Background()
	u, err := s.GetOrCreateUser(ctx, "sess")
	require.NoError(t, err)

	for _, in := range []string{"one", "two", "three", "four"} {
		seedConversation(t, s, u, in)
	}

	all, err := s.ListConversations(ctx, "sess", 10)
	require.NoError(t, err)
	require.Len(t, all, 4)
	require.Equal(t, "one", all[0].UserInput)
	require.Equal(t, "four", all[3].UserInput)

	tail, err := s.ListConversations(ctx, "sess", 2)
	require.NoError(t, err)
	require.Len(t, tail, 2)
	require.Equal(t, "three", tail[0].UserInput)
	require.Equal(t, "four", tail[1].UserInput)

	none, err := s.ListConversations(ctx, "other", 10)
	require.NoError(t, err)
	require.Empty(t, none)
}

// #endregion conversations

// #region feedback
func TestSaveFeedback(t *testing.T) {
	s := tempDB(t)
	ctx := context.Background()
	u, err := s.GetOrCreateUser(ctx, "sess")
	require.NoError(t, err)
	c := seedConversation(t, s, u, "hello")

	f, err := s.SaveFeedback(ctx, Feedback{ConversationID: c.ID, UserID: u.ID, Rating: 5, Text: "helpful"})
	require.NoError(t, err)
	require.NotEmpty(t, f.ID)

	_, err = s.SaveFeedback(ctx, Feedback{ConversationID: c.ID, UserID: u.ID, Text: "no rating"})
	require.NoError(t, err)

	var rated, unrated int
	require.NoError(t, s.DB().QueryRow(`SELECT COUNT(*) FROM user_feedback WHERE rating IS NOT NULL`).Scan(&rated))
	require.NoError(t, s.DB().QueryRow(`SELECT COUNT(*) FROM user_feedback WHERE rating IS NULL`).Scan(&unrated))
	require.Equal(t, 1, rated)
	require.Equal(t, 1, unrated)
}

func TestSaveFeedback_InvalidRating(t *testing.T) {
	s := tempDB(t)
	ctx := context.Background()
	u, err := s.GetOrCreateUser(ctx, "sess")
	require.NoError(t, err)
	c := seedConversation(t, s, u, "hello")

	for _, rating := range []int{-1, 6, 100} {
		_, err := s.SaveFeedback(ctx, Feedback{ConversationID: c.ID, UserID: u.ID, Rating: rating})
		require.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
	}
}

func TestSaveFeedback_UnknownConversation(t *testing.T) {
	s := tempDB(t)
	ctx := context.Background()
	u, err := s.GetOrCreateUser(ctx, "sess")
	require.NoError(t, err)

	_, err = s.SaveFeedback(ctx, Feedback{ConversationID: "nope", UserID: u.ID, Rating: 3})
	require.ErrorIs(t, err, ErrConversationNotFound)
}

// #endregion feedback

// #region stats-and-clear
func TestUserStats(t *testing.T) {
	s := tempDB(t)
	ctx := context.Background()

	_, err := s.UserStats(ctx, "unknown")
	require.ErrorIs(t, err, ErrUserNotFound)

	u, err := s.GetOrCreateUser(ctx, "sess")
	require.NoError(t, err)
	seedConversation(t, s, u, "a")
	seedConversation(t, s, u, "b")

	stats, err := s.UserStats(ctx, "sess")
	require.NoError(t, err)
	require.Equal(t, 2, stats.TotalConversations)
	require.Equal(t, u.CreatedAt, stats.UserSince)
}

func TestClearConversations(t *testing.T) {
	s := tempDB(t)
	ctx := context.Background()
	u, err := s.GetOrCreateUser(ctx, "sess")
	require.NoError(t, err)
	c := seedConversation(t, s, u, "a")
	seedConversation(t, s, u, "b")
	_, err = s.SaveFeedback(ctx, Feedback{ConversationID: c.ID, UserID: u.ID, Rating: 4})
	require.NoError(t, err)

	other, err := s.GetOrCreateUser(ctx, "other")
	require.NoError(t, err)
	seedConversation(t, s, other, "keep")

	removed, err := s.ClearConversations(ctx, "sess")
	require.NoError(t, err)
	require.EqualValues(t, 2, removed)

	list, err := s.ListConversations(ctx, "sess", 0)
	require.NoError(t, err)
	require.Empty(t, list)

	u, err = s.GetOrCreateUser(ctx, "sess")
	require.NoError(t, err)
	require.Zero(t, u.TotalConversations)

	kept, err := s.ListConversations(ctx, "other", 0)
	require.NoError(t, err)
	require.Len(t, kept, 1)

	var feedback int
	require.NoError(t, s.DB().QueryRow(`SELECT COUNT(*) FROM user_feedback`).Scan(&feedback))
	require.Zero(t, feedback, "feedback cascades with its conversation")
}

// #endregion stats-and-clear

// #region misc
func TestNewStoreInvalidPath(t *testing.T) {
	_, err := NewStore(filepath.Join(string(os.PathSeparator), "nonexistent", "deep", "path", "test.db"))
	require.Error(t, err)
}

func TestTimeLayoutSortsLexically(t *testing.T) {
	a := formatTime(time.Date(2026, 1, 1, 0, 0, 5, 100_000_000, time.UTC))
	b := formatTime(time.Date(2026, 1, 1, 0, 0, 5, 120_000_000, time.UTC))
	require.Less(t, a, b)
	require.Equal(t, time.Date(2026, 1, 1, 0, 0, 5, 100_000_000, time.UTC), parseTime(a))
}

func TestNullHelpers(t *testing.T) {
	require.Nil(t, nullIfEmpty(""))
	require.Equal(t, "x", nullIfEmpty("x"))
	require.Nil(t, nullIfZero(0))
	require.Equal(t, 2.0, nullIfZero(2*time.Second))
}

// #endregion misc
