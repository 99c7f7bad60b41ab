package orchestrator

// #region imports
import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/danielpatrickdp/therapy-assistant/internal/category"
	"github.com/danielpatrickdp/therapy-assistant/internal/content"
	"github.com/danielpatrickdp/therapy-assistant/internal/llm"
	"github.com/danielpatrickdp/therapy-assistant/internal/scope"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// #endregion

// #region defaults

const (
	DefaultTimeout      = 8 * time.Second
	DefaultHistoryTurns = 3

	replyTemperature = 0.7
	replyMaxTokens   = 500
)

// #endregion

// #region deps

// Deps are the collaborators of an Orchestrator. Completer is required;
// the rest fall back to defaults or are skipped when nil.
type Deps struct {
	Completer   llm.Completer
	Analyst     Analyst
	Redirector  *scope.Redirector
	Recommender *content.Recommender
	Recorder    Recorder
	Log         *logrus.Entry
}

// Option tunes an Orchestrator.
type Option func(*Orchestrator)

// WithTimeout bounds each completion call.
func WithTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithHistoryTurns sets how many prior exchanges go into the prompt.
func WithHistoryTurns(n int) Option {
	return func(o *Orchestrator) {
		if n >= 0 {
			o.historyTurns = n
		}
	}
}

// WithEnrichment toggles the category/content step.
func WithEnrichment(enabled bool) Option {
	return func(o *Orchestrator) { o.enrich = enabled }
}

// #endregion

// #region orchestrator-struct

// Orchestrator runs one conversational turn: scope check, reply, enrichment, handoff.
// It holds no per-turn state and is safe for concurrent use.
type Orchestrator struct {
	completer    llm.Completer
	analyst      Analyst
	redirector   *scope.Redirector
	recommender  *content.Recommender
	recorder     Recorder
	log          *logrus.Entry
	timeout      time.Duration
	historyTurns int
	enrich       bool
	now          func() time.Time
}

// #endregion

// #region constructor

// New wires an Orchestrator.
func New(deps Deps, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		completer:    deps.Completer,
		analyst:      deps.Analyst,
		redirector:   deps.Redirector,
		recommender:  deps.Recommender,
		recorder:     deps.Recorder,
		log:          deps.Log,
		timeout:      DefaultTimeout,
		historyTurns: DefaultHistoryTurns,
		enrich:       true,
		now:          time.Now,
	}
	if o.redirector == nil {
		o.redirector = scope.NewRedirector(nil)
	}
	if o.recommender == nil {
		o.recommender = content.NewRecommender(nil)
	}
	if o.log == nil {
		o.log = logrus.NewEntry(logrus.StandardLogger())
	}
	o.log = o.log.WithField("component", "orch")
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// #endregion

// #region handle-turn

// HandleTurn processes a typed-text utterance. It never returns an error:
// completion failures become ApologyReply and enrichment failures leave
// the enrichment fields empty.
func (o *Orchestrator) HandleTurn(ctx context.Context, utterance string, history []HistoryEntry) TurnResult {
	return o.HandleInput(ctx, InputText, utterance, history)
}

// HandleInput is HandleTurn for an utterance produced by a given front end.
func (o *Orchestrator) HandleInput(ctx context.Context, inputType InputType, utterance string, history []HistoryEntry) TurnResult {
	start := o.now()
	res := TurnResult{
		TurnID:    uuid.New().String(),
		Utterance: utterance,
		InputType: inputType,
		Language:  detectLanguage(utterance),
		CreatedAt: start.UTC(),
	}
	res.States = append(res.States, StateReceived)

	res.Decision = scope.Classify(utterance)
	res.States = append(res.States, StateScopeChecked)

	if res.Decision.OutOfScope {
		res.Reply = o.redirector.Redirect()
		res.States = append(res.States, StateRespondedRedirect)
		o.log.WithFields(logrus.Fields{
			"turn":    res.TurnID,
			"rule":    res.Decision.Rule,
			"keyword": res.Decision.Keyword,
		}).Info("out of scope, redirected")
	} else {
		res.Reply, res.LLMFailed = o.reply(ctx, utterance, history)
		res.States = append(res.States, StateRespondedDirect)
		if o.enrich {
			o.enrichTurn(ctx, &res)
		}
	}

	res.ResponseTime = o.now().Sub(start)
	res.States = append(res.States, StateDone)

	o.log.WithFields(logrus.Fields{
		"turn":       res.TurnID,
		"decision":   res.Decision.String(),
		"category":   res.CategoryName(),
		"lang":       res.Language,
		"llm_failed": res.LLMFailed,
		"elapsed_ms": res.ResponseTime.Milliseconds(),
	}).Info("turn handled")

	o.handoff(ctx, res)
	return res
}

// #endregion

// #region reply

func (o *Orchestrator) reply(ctx context.Context, utterance string, history []HistoryEntry) (string, bool) {
	if o.completer == nil {
		o.log.Error("no completer configured")
		return ApologyReply, true
	}

	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	text, err := o.complete(callCtx, llm.Request{
		SystemPrompt: llm.SystemPrompt,
		Prompt:       BuildContext(history, utterance, o.historyTurns),
		Temperature:  replyTemperature,
		MaxTokens:    replyMaxTokens,
	})
	if err != nil {
		o.log.WithField("error", err.Error()).Error("completion failed")
		return ApologyReply, true
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ListeningReply, false
	}
	return text, false
}

// complete turns a panicking completer into an ordinary error.
func (o *Orchestrator) complete(ctx context.Context, req llm.Request) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("completer panic: %v", r)
		}
	}()
	return o.completer.Complete(ctx, req)
}

// #endregion

// #region enrich

// enrichTurn attaches category content. Analyst output is best effort;
// a panic anywhere in this step discards all enrichment fields.
func (o *Orchestrator) enrichTurn(ctx context.Context, res *TurnResult) {
	var (
		summary string
		coping  string
		cat     category.Category
		bundle  content.Bundle
	)

	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("enrichment panic: %v", r)
			}
		}()

		// Skip analyst calls when the service just failed the reply.
		if o.analyst != nil && !res.LLMFailed {
			summary = o.analyze(ctx, res.Utterance)
		}

		state := classifierInput(summary, res.Utterance)
		cat = category.Classify(state)
		bundle = o.recommender.Recommend(cat)

		if o.analyst != nil && summary != "" {
			coping = o.coping(ctx, state)
		}
		return nil
	}()
	if err != nil {
		o.log.WithFields(logrus.Fields{
			"turn":  res.TurnID,
			"error": err.Error(),
		}).Warn("enrichment failed")
		return
	}

	res.Category = &cat
	res.Bundle = &bundle
	res.Quote = bundle.Quote
	res.EmotionalContext = summary
	res.CopingStrategies = coping
	res.States = append(res.States, StateEnriched)
}

func (o *Orchestrator) analyze(ctx context.Context, utterance string) string {
	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	summary, err := o.analyst.EmotionalContext(callCtx, utterance)
	if err != nil {
		o.log.WithField("error", err.Error()).Warn("emotional analysis failed")
		return ""
	}
	return summary
}

func (o *Orchestrator) coping(ctx context.Context, state string) string {
	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	out, err := o.analyst.CopingStrategies(callCtx, state)
	if err != nil {
		o.log.WithField("error", err.Error()).Warn("coping strategies failed")
		return ""
	}
	return out
}

// #endregion

// #region handoff

func (o *Orchestrator) handoff(ctx context.Context, res TurnResult) {
	if o.recorder == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			o.log.WithFields(logrus.Fields{
				"turn":  res.TurnID,
				"panic": fmt.Sprint(r),
			}).Error("recorder panicked")
		}
	}()
	if err := o.recorder.RecordTurn(ctx, res); err != nil {
		o.log.WithFields(logrus.Fields{
			"turn":  res.TurnID,
			"error": err.Error(),
		}).Error("failed to record turn")
	}
}

// #endregion

// #region language

func detectLanguage(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return whatlanggo.Detect(text).Lang.Iso6391()
}

// #endregion
