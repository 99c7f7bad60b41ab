// Package export renders a session's conversation history as a plain-text download.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/danielpatrickdp/therapy-assistant/internal/store"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	header    = "AI Therapy Assistant - Conversation History"
	timestamp = "2006-01-02 15:04:05"
)

// #region write
// Write renders convs, oldest first, to w.
func Write(w io.Writer, sessionID string, exportedAt time.Time, convs []store.Conversation) error {
	bw := bufio.NewWriter(w)
	// A Caser keeps state between calls, so each export builds its own.
	titleCase := cases.Title(language.English)

	fmt.Fprintf(bw, "%s\n", header)
	fmt.Fprintf(bw, "Session ID: %s\n", sessionID)
	fmt.Fprintf(bw, "Export Date: %s\n", exportedAt.Format(timestamp))
	fmt.Fprintf(bw, "%s\n\n", strings.Repeat("=", 50))

	for i, c := range convs {
		fmt.Fprintf(bw, "Conversation %d\n", i+1)
		fmt.Fprintf(bw, "Time: %s\n", formatCreated(c.CreatedAt))
		fmt.Fprintf(bw, "Input Type: %s\n", titleCase.String(inputType(c.InputType)))
		fmt.Fprintf(bw, "You: %s\n", c.UserInput)
		fmt.Fprintf(bw, "Assistant: %s\n", c.AIResponse)
		if c.EmotionalContext != "" {
			fmt.Fprintf(bw, "Emotional Context: %s\n", c.EmotionalContext)
		}
		fmt.Fprintf(bw, "%s\n\n", strings.Repeat("-", 30))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// Text is Write into a string.
func Text(sessionID string, exportedAt time.Time, convs []store.Conversation) string {
	var b strings.Builder
	_ = Write(&b, sessionID, exportedAt, convs)
	return b.String()
}

// FileName is the suggested download name for an export taken at t.
func FileName(t time.Time) string {
	return fmt.Sprintf("therapy_chat_history_%s.txt", t.Format("20060102_150405"))
}

// #endregion write

// #region helpers
func formatCreated(t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	return t.Local().Format(timestamp)
}

func inputType(s string) string {
	if s == "" {
		return store.InputText
	}
	return s
}

// #endregion helpers
