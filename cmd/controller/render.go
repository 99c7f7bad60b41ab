package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/danielpatrickdp/therapy-assistant/internal/orchestrator"
	"github.com/gookit/color"
)

// #region render
var (
	replyStyle   = color.New(color.FgLightWhite, color.OpBold)
	noticeStyle  = color.New(color.FgYellow)
	contextStyle = color.New(color.FgCyan)
	quoteStyle   = color.New(color.FgMagenta, color.OpItalic)
	metaStyle    = color.New(color.FgGray)
)

// renderTurn prints the reply and any enrichment attached to it.
func renderTurn(w io.Writer, res orchestrator.TurnResult) {
	fmt.Fprintf(w, "\n%s\n", replyStyle.Sprint(res.Reply))

	if res.LLMFailed {
		fmt.Fprintln(w, noticeStyle.Sprint("(the assistant is having trouble reaching the language service)"))
	}

	if res.EmotionalContext != "" {
		fmt.Fprintf(w, "\n%s %s\n", contextStyle.Sprint("Emotional context:"), res.EmotionalContext)
	}
	if res.CopingStrategies != "" {
		fmt.Fprintf(w, "\n%s\n%s\n", contextStyle.Sprint("Coping strategies:"), res.CopingStrategies)
	}

	if res.Bundle != nil {
		fmt.Fprintf(w, "\n%s (%s)\n", contextStyle.Sprint("Something for you"), res.CategoryName())
		writeList(w, "Songs", res.Bundle.Songs)
		writeList(w, "Remedies", res.Bundle.Remedies)
		writeList(w, "A little smile", res.Bundle.Jokes)
	}
	if res.Quote != "" {
		fmt.Fprintf(w, "\n%s\n", quoteStyle.Sprint(res.Quote))
	}

	fmt.Fprintf(w, "\n%s\n\n", metaStyle.Sprintf("[%s] %s lang=%s %dms",
		shortID(res.TurnID), res.Decision.String(), orDash(res.Language), res.ResponseTime.Milliseconds()))
}

func writeList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s:\n", title)
	for _, it := range items {
		fmt.Fprintf(w, "    - %s\n", it)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// #endregion render
