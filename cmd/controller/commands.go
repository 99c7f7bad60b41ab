package main

import (
	"fmt"
	"strconv"
	"strings"
)

// #region commands
const helpText = `Commands:
  /image <description> | <analysis>   send an image turn
  /audio <transcript>                 send a transcribed audio turn
  /feedback [1-5] [comment]           rate the last reply
  /stats                              show session statistics
  /export [path]                      write the session history to a text file
  /clear                              delete this session's history
  /help                               show this help
  quit | exit                         leave`

type command struct {
	name string
	args string
}

// parseCommand splits "/name rest" lines. Plain text is not a command.
func parseCommand(line string) (command, bool) {
	if !strings.HasPrefix(line, "/") {
		return command{}, false
	}
	name, args, _ := strings.Cut(strings.TrimPrefix(line, "/"), " ")
	return command{name: strings.ToLower(name), args: strings.TrimSpace(args)}, true
}

// parseFeedback reads an optional leading rating followed by free text.
func parseFeedback(args string) (int, string, error) {
	first, rest, _ := strings.Cut(args, " ")
	if first == "" {
		return 0, "", fmt.Errorf("usage: /feedback [1-5] [comment]")
	}
	rating, err := strconv.Atoi(first)
	if err != nil {
		return 0, strings.TrimSpace(args), nil
	}
	return rating, strings.TrimSpace(rest), nil
}

// parseImage splits "description | analysis".
func parseImage(args string) (string, string, error) {
	desc, analysis, ok := strings.Cut(args, "|")
	desc, analysis = strings.TrimSpace(desc), strings.TrimSpace(analysis)
	if !ok || analysis == "" {
		return "", "", fmt.Errorf("usage: /image <description> | <analysis>")
	}
	return desc, analysis, nil
}

// #endregion commands
