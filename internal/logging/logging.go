// Package logging provides the hyprbind logger: a log/slog logger whose
// logfmt output is written to a file and also retained in memory for the
// log overlay.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-logfmt/logfmt"
)

// DefaultLevel is used when no level or an unknown level is given.
const DefaultLevel = "info"

// retained is the number of recent messages kept in memory.
const retained = 200

var levels = map[string]slog.Level{
	"debug":      slog.LevelDebug,
	DefaultLevel: slog.LevelInfo,
	"warn":       slog.LevelWarn,
	"error":      slog.LevelError,
}

// ValidLevels returns valid strings for choosing a log level, default first.
func ValidLevels() []string {
	return []string{DefaultLevel, "debug", "error", "warn"}
}

// Message is one decoded log record.
type Message struct {
	Time       time.Time
	Level      string
	Message    string
	Attributes []Attr

	// Serial increases with every message the logger receives.
	Serial uint
}

// Attr is a key/value pair attached to a message.
type Attr struct {
	Key   string
	Value string
}

// String renders the message on a single line for display.
func (m Message) String() string {
	var b strings.Builder
	b.WriteString(m.Time.Format("15:04:05"))
	b.WriteString(" ")
	b.WriteString(m.Level)
	b.WriteString(" ")
	b.WriteString(m.Message)
	for _, a := range m.Attributes {
		fmt.Fprintf(&b, " %s=%s", a.Key, a.Value)
	}
	return b.String()
}

// Logger wraps slog. It is also the slog handler's writer: every record is
// forwarded to the output, then decoded back into a Message and retained.
type Logger struct {
	*slog.Logger

	mu       sync.Mutex
	out      io.Writer
	messages []Message
	serial   uint
}

// New constructs a Logger writing logfmt records to w at the given level.
// An unknown level falls back to info. A nil w discards output but still
// retains messages.
func New(w io.Writer, level string) *Logger {
	if w == nil {
		w = io.Discard
	}
	lvl, ok := levels[strings.ToLower(level)]
	if !ok {
		lvl = levels[DefaultLevel]
	}

	l := &Logger{out: w}
	handler := slog.NewTextHandler(l, &slog.HandlerOptions{Level: lvl})
	l.Logger = slog.New(handler)
	return l
}

// Discard returns a Logger that writes nowhere.
func Discard() *Logger {
	return New(io.Discard, "error")
}

// Write implements io.Writer for the slog handler.
func (l *Logger) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.out.Write(p); err != nil {
		return 0, err
	}

	d := logfmt.NewDecoder(bytes.NewReader(p))
	for d.ScanRecord() {
		msg := Message{Serial: l.serial}
		for d.ScanKeyval() {
			switch string(d.Key()) {
			case "time":
				parsed, err := time.Parse(time.RFC3339, string(d.Value()))
				if err != nil {
					return len(p), fmt.Errorf("parsing time: %w", err)
				}
				msg.Time = parsed
			case "level":
				msg.Level = string(d.Value())
			case "msg":
				msg.Message = string(d.Value())
			default:
				msg.Attributes = append(msg.Attributes, Attr{
					Key:   string(d.Key()),
					Value: string(d.Value()),
				})
			}
		}
		l.messages = append(l.messages, msg)
		l.serial++
	}
	if over := len(l.messages) - retained; over > 0 {
		l.messages = slices.Delete(l.messages, 0, over)
	}
	if d.Err() != nil {
		return len(p), d.Err()
	}
	return len(p), nil
}

// Messages returns the retained messages, oldest first.
func (l *Logger) Messages() []Message {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.messages)
}
