package orchestrator

// #region imports
import (
	"strings"

	"github.com/samber/lo"
)

// #endregion

// #region fixed-replies

const (
	// ApologyReply is sent when the completion service fails.
	ApologyReply = "I apologize, but I'm having trouble processing your message right now. " +
		"Please try again, and remember that if you're in crisis, please reach out to a " +
		"mental health professional or emergency services."

	// ListeningReply is sent when the completion service returns no text.
	ListeningReply = "I'm here to listen and support you. Could you share a bit more about what's on your mind?"
)

// #endregion

// #region conversation-context

// BuildContext renders the last n history exchanges plus the current utterance.
func BuildContext(history []HistoryEntry, utterance string, n int) string {
	if n < 0 {
		n = 0
	}
	tail := lo.Subset(history, -n, uint(n))

	lines := make([]string, 0, len(tail)*2+2)
	lines = append(lines, "Conversation:")
	for _, h := range tail {
		lines = append(lines, "User: "+h.User, "Assistant: "+h.Assistant)
	}
	lines = append(lines, "User: "+utterance)
	return strings.Join(lines, "\n")
}

// #endregion

// #region image-utterance

// ImageUtterance composes the utterance for an image turn from the user's
// description and the image analysis text.
func ImageUtterance(description, analysis string) string {
	return "[Image Context: " + description + "]\n[Image Analysis: " + analysis + "]"
}

// #endregion

// #region classifier-input

// classifierInput is the first line of the emotional-context summary,
// or the raw utterance when the summary is empty.
func classifierInput(summary, utterance string) string {
	first, _, _ := strings.Cut(strings.TrimSpace(summary), "\n")
	if first = strings.TrimSpace(first); first != "" {
		return first
	}
	return utterance
}

// #endregion
