package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/danielpatrickdp/therapy-assistant/internal/codec"
	"github.com/danielpatrickdp/therapy-assistant/internal/config"
	"github.com/danielpatrickdp/therapy-assistant/internal/content"
	"github.com/danielpatrickdp/therapy-assistant/internal/export"
	"github.com/danielpatrickdp/therapy-assistant/internal/llm"
	"github.com/danielpatrickdp/therapy-assistant/internal/logging"
	"github.com/danielpatrickdp/therapy-assistant/internal/orchestrator"
	"github.com/danielpatrickdp/therapy-assistant/internal/scope"
	"github.com/danielpatrickdp/therapy-assistant/internal/store"
	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// #region main
func main() {
	session := flag.String("session", "", "session id to resume (default: new session)")
	flag.Parse()

	if err := run(*session); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(sessionID string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogFile); err != nil {
		return err
	}
	defer logging.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	st, err := store.NewStore(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	completer, closeCompleter, err := buildCompleter(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeCompleter()

	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	user, err := st.GetOrCreateUser(ctx, sessionID)
	if err != nil {
		return err
	}

	rec := newSessionRecorder(st, user)
	orch := orchestrator.New(orchestrator.Deps{
		Completer:   completer,
		Analyst:     llm.NewAnalyst(completer),
		Redirector:  scope.NewRedirector(nil),
		Recommender: content.NewRecommender(nil),
		Recorder:    rec,
		Log:         logging.Component("controller"),
	},
		orchestrator.WithTimeout(cfg.LLMTimeout),
		orchestrator.WithHistoryTurns(cfg.HistoryTurns),
		orchestrator.WithEnrichment(cfg.EnrichmentEnabled),
	)

	r := &repl{
		ctx:     ctx,
		cfg:     cfg,
		store:   st,
		user:    user,
		rec:     rec,
		orch:    orch,
		out:     os.Stdout,
		history: loadHistory(ctx, st, sessionID, cfg.HistoryLimit),
	}

	color.Cyan.Println("AI Therapy Assistant ready.")
	fmt.Printf("  Session: %s | DB: %s | Backend: %s\n", sessionID, cfg.DBPath, cfg.Backend)
	fmt.Println("Share what's on your mind (/help for commands, 'quit' to exit):")

	return r.loop(os.Stdin)
}

// #endregion main

// #region wiring
func buildCompleter(ctx context.Context, cfg config.Config) (llm.Completer, func(), error) {
	var (
		base    llm.Completer
		closeFn = func() {}
	)
	switch cfg.Backend {
	case config.BackendGRPC:
		client, err := codec.NewCodecClient(cfg.BridgeAddr)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to bridge at %s: %w", cfg.BridgeAddr, err)
		}
		base = client
		closeFn = func() { _ = client.Close() }
	default:
		g, err := llm.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, nil, err
		}
		base = g
	}
	retrying := llm.NewRetrying(base, uint64(cfg.LLMMaxRetries), cfg.LLMRetryBase, logging.Component("llm"))
	return retrying, closeFn, nil
}

func loadHistory(ctx context.Context, st *store.Store, sessionID string, limit int) []orchestrator.HistoryEntry {
	convs, err := st.ListConversations(ctx, sessionID, limit)
	if err != nil {
		log.WithError(err).Warn("could not load history")
		return nil
	}
	return lo.Map(convs, func(c store.Conversation, _ int) orchestrator.HistoryEntry {
		return orchestrator.HistoryEntry{User: c.UserInput, Assistant: c.AIResponse}
	})
}

// #endregion wiring

// #region repl
type repl struct {
	ctx     context.Context
	cfg     config.Config
	store   *store.Store
	user    store.User
	rec     *sessionRecorder
	orch    *orchestrator.Orchestrator
	out     io.Writer
	history []orchestrator.HistoryEntry
}

func (r *repl) loop(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		if err := r.ctx.Err(); err != nil {
			break
		}

		if cmd, ok := parseCommand(line); ok {
			if err := r.dispatch(cmd); err != nil {
				fmt.Fprintln(r.out, color.Red.Sprint(err.Error()))
			}
			continue
		}
		r.turn(orchestrator.InputText, line)
	}
	return scanner.Err()
}

func (r *repl) turn(inputType orchestrator.InputType, utterance string) {
	res := r.orch.HandleInput(r.ctx, inputType, utterance, r.history)
	r.history = append(r.history, orchestrator.HistoryEntry{User: utterance, Assistant: res.Reply})
	if len(r.history) > r.cfg.HistoryLimit {
		r.history = r.history[len(r.history)-r.cfg.HistoryLimit:]
	}
	renderTurn(r.out, res)
}

func (r *repl) dispatch(cmd command) error {
	switch cmd.name {
	case "help":
		fmt.Fprintln(r.out, helpText)
	case "image":
		desc, analysis, err := parseImage(cmd.args)
		if err != nil {
			return err
		}
		r.turn(orchestrator.InputImage, orchestrator.ImageUtterance(desc, analysis))
	case "audio":
		if cmd.args == "" {
			return errors.New("usage: /audio <transcript>")
		}
		r.turn(orchestrator.InputAudio, cmd.args)
	case "feedback":
		return r.feedback(cmd.args)
	case "stats":
		return r.stats()
	case "export":
		return r.export(cmd.args)
	case "clear":
		n, err := r.store.ClearConversations(r.ctx, r.user.SessionID)
		if err != nil {
			return err
		}
		r.history = nil
		fmt.Fprintf(r.out, "Cleared %d conversations.\n", n)
	default:
		return fmt.Errorf("unknown command /%s (try /help)", cmd.name)
	}
	return nil
}

func (r *repl) feedback(args string) error {
	convID := r.rec.LastConversationID()
	if convID == "" {
		return errors.New("nothing to rate yet")
	}
	rating, text, err := parseFeedback(args)
	if err != nil {
		return err
	}
	if _, err := r.store.SaveFeedback(r.ctx, store.Feedback{
		ConversationID: convID,
		UserID:         r.user.ID,
		Rating:         rating,
		Text:           text,
	}); err != nil {
		return err
	}
	fmt.Fprintln(r.out, color.Green.Sprint("Thank you for your feedback."))
	return nil
}

func (r *repl) stats() error {
	s, err := r.store.UserStats(r.ctx, r.user.SessionID)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Conversations: %d\nUser since:    %s\nLast active:   %s\n",
		s.TotalConversations,
		s.UserSince.Local().Format(time.DateTime),
		s.LastActive.Local().Format(time.DateTime))
	return nil
}

func (r *repl) export(path string) error {
	convs, err := r.store.ListConversations(r.ctx, r.user.SessionID, r.cfg.HistoryLimit)
	if err != nil {
		return err
	}
	if len(convs) == 0 {
		return errors.New("no conversation history to export")
	}
	now := time.Now()
	if path == "" {
		path = export.FileName(now)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	defer f.Close()
	if err := export.Write(f, r.user.SessionID, now, convs); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Exported %d conversations to %s\n", len(convs), path)
	return nil
}

// #endregion repl
