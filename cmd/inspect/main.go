package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/danielpatrickdp/therapy-assistant/internal/logging"
	"github.com/danielpatrickdp/therapy-assistant/internal/store"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to therapy_assistant.db")
	last := flag.Int("last", 20, "show N most recent rows")
	session := flag.String("session", "", "show conversations for one session")
	turns := flag.Bool("turns", false, "show the turn log instead of sessions")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/therapy_assistant.db [--last N] [--session id | --turns] [--json]")
		os.Exit(2)
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	ctx := context.Background()
	switch {
	case *session != "":
		err = runSessionMode(ctx, os.Stdout, st, *session, *last, *jsonOut)
	case *turns:
		err = runTurnsMode(os.Stdout, st, *last, *jsonOut)
	default:
		err = runListMode(ctx, os.Stdout, st, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type sessionRow struct {
	SessionID     string `json:"session_id"`
	Conversations int    `json:"conversations"`
	UserSince     string `json:"user_since"`
	LastActive    string `json:"last_active"`
}

func runListMode(ctx context.Context, w io.Writer, st *store.Store, last int, jsonOut bool) error {
	users, err := st.ListUsers(ctx, last)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Fprintln(w, "no sessions found")
		return nil
	}

	rows := lo.Map(users, func(u store.User, _ int) sessionRow {
		return sessionRow{
			SessionID:     u.SessionID,
			Conversations: u.TotalConversations,
			UserSince:     u.CreatedAt.Format(time.DateTime),
			LastActive:    u.LastActive.Format(time.DateTime),
		}
	})
	if jsonOut {
		return printJSON(w, rows)
	}

	table := newTable(w, []string{"Session", "Conversations", "User Since", "Last Active"})
	for _, r := range rows {
		table.Append([]string{r.SessionID, fmt.Sprint(r.Conversations), r.UserSince, r.LastActive})
	}
	table.Render()
	return nil
}

// #endregion list-mode

// #region session-mode

type conversationRow struct {
	ID         string  `json:"id"`
	Time       string  `json:"time"`
	InputType  string  `json:"input_type"`
	Category   string  `json:"category,omitempty"`
	UserInput  string  `json:"user_input"`
	AIResponse string  `json:"ai_response"`
	Seconds    float64 `json:"response_seconds"`
}

func runSessionMode(ctx context.Context, w io.Writer, st *store.Store, session string, last int, jsonOut bool) error {
	stats, err := st.UserStats(ctx, session)
	if err != nil {
		return err
	}
	convs, err := st.ListConversations(ctx, session, last)
	if err != nil {
		return err
	}

	rows := lo.Map(convs, func(c store.Conversation, _ int) conversationRow {
		return conversationRow{
			ID:         c.ID,
			Time:       c.CreatedAt.Format(time.DateTime),
			InputType:  c.InputType,
			Category:   c.Category,
			UserInput:  c.UserInput,
			AIResponse: c.AIResponse,
			Seconds:    c.ResponseTime.Seconds(),
		}
	})
	if jsonOut {
		return printJSON(w, rows)
	}

	fmt.Fprintf(w, "Session %s: %d conversations, active since %s\n\n",
		session, stats.TotalConversations, stats.UserSince.Format(time.DateTime))
	table := newTable(w, []string{"ID", "Time", "Type", "Category", "You", "Assistant", "Secs"})
	for _, r := range rows {
		table.Append([]string{
			shortID(r.ID), r.Time, r.InputType, orDash(r.Category),
			truncate(r.UserInput, 40), truncate(r.AIResponse, 50), fmt.Sprintf("%.2f", r.Seconds),
		})
	}
	table.Render()
	return nil
}

// #endregion session-mode

// #region turns-mode

func runTurnsMode(w io.Writer, st *store.Store, last int, jsonOut bool) error {
	entries, err := logging.RecentTurns(st.DB(), last)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(w, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "no turns logged")
		return nil
	}

	table := newTable(w, []string{"Turn", "Session", "Decision", "Rule", "Category", "Lang", "LLM Failed", "ms"})
	for _, e := range entries {
		table.Append([]string{
			shortID(e.TurnID), shortID(e.SessionID), e.Decision, orDash(e.Rule), orDash(e.Category),
			orDash(e.Language), fmt.Sprint(e.LLMFailed), fmt.Sprint(e.Elapsed.Milliseconds()),
		})
	}
	table.Render()

	counts := lo.CountValuesBy(entries, func(e logging.TurnEntry) string { return e.Decision })
	fmt.Fprintf(w, "\nin_scope=%d out_of_scope=%d llm_failed=%d\n",
		counts["in_scope"], counts["out_of_scope"],
		lo.CountBy(entries, func(e logging.TurnEntry) bool { return e.LLMFailed }))
	return nil
}

// #endregion turns-mode

// #region helpers

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return orDash(id)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// #endregion helpers
