package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	writerMu  sync.Mutex
	logWriter *lumberjack.Logger
)

// #region formatter
// LogFormatter renders entries as
// [2026-01-02 15:04:05] [info ] [orch] turn handled | category=anxiety, rule=none
type LogFormatter struct{}

// Format renders a single log entry.
func (f *LogFormatter) Format(entry *log.Entry) ([]byte, error) {
	buffer := entry.Buffer
	if buffer == nil {
		buffer = &bytes.Buffer{}
	}

	timestamp := entry.Time.Format("2006-01-02 15:04:05")
	message := strings.TrimRight(entry.Message, "\r\n")

	level := entry.Level.String()
	if level == "warning" {
		level = "warn"
	}

	component := "-"
	if c, ok := entry.Data["component"].(string); ok && c != "" {
		component = c
	}

	fmt.Fprintf(buffer, "[%s] [%-5s] [%s] %s", timestamp, level, component, message)

	keys := lo.Filter(lo.Keys(entry.Data), func(k string, _ int) bool { return k != "component" })
	if len(keys) > 0 {
		sort.Strings(keys)
		pairs := lo.Map(keys, func(k string, _ int) string {
			return fmt.Sprintf("%s=%v", k, entry.Data[k])
		})
		buffer.WriteString(" | ")
		buffer.WriteString(strings.Join(pairs, ", "))
	}
	buffer.WriteByte('\n')
	return buffer.Bytes(), nil
}

// #endregion formatter

// #region setup
// Setup configures the shared logrus instance. level defaults to info;
// a non-empty file routes output through a rotating writer instead of stderr.
func Setup(level, file string) error {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("logging: %w", err)
		}
		lvl = parsed
	}
	log.SetLevel(lvl)
	log.SetFormatter(&LogFormatter{})

	writerMu.Lock()
	defer writerMu.Unlock()

	if logWriter != nil {
		_ = logWriter.Close()
		logWriter = nil
	}
	if file == "" {
		log.SetOutput(os.Stderr)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return fmt.Errorf("logging: failed to create log directory: %w", err)
	}
	logWriter = &lumberjack.Logger{
		Filename:   file,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
	log.SetOutput(logWriter)
	return nil
}

// Output returns the writer currently receiving log lines.
func Output() io.Writer {
	return log.StandardLogger().Out
}

// Close flushes and releases the rotating file, if any.
func Close() error {
	writerMu.Lock()
	defer writerMu.Unlock()
	if logWriter == nil {
		return nil
	}
	err := logWriter.Close()
	logWriter = nil
	log.SetOutput(os.Stderr)
	return err
}

// Component returns a logger tagged with the component field.
func Component(name string) *log.Entry {
	return log.WithField("component", name)
}

// #endregion setup
