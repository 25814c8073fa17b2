package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Log level ordinals. The set is fixed; LevelNotSet suppresses nothing.
const (
	LevelNotSet   = 0
	LevelDebug    = 10
	LevelInfo     = 20
	LevelWarn     = 30
	LevelError    = 40
	LevelCritical = 50
)

func validLevel(level int) bool {
	switch level {
	case LevelNotSet, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelCritical:
		return true
	}
	return false
}

// slogLevel maps a level ordinal onto the slog scale. LevelCritical sits
// above slog.LevelError so that plain Error records are suppressed at 50.
func slogLevel(level int) slog.Level {
	switch level {
	case LevelNotSet:
		return slog.LevelDebug
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelError + 4
	}
}

// initLogging creates the application logger: named after the application,
// writing "[<name>] <message>" lines, with its level held in a LevelVar so
// later log_level sets take effect immediately.
func (a *Application) initLogging() {
	a.logLevel = new(slog.LevelVar)
	a.logLevel.Set(slogLevel(a.levelOrdinal))
	a.log = slog.New(newStreamHandler(a.logW, a.name, a.logLevel))
}

// SetLogLevel sets the log level ordinal and retargets the logger. Values
// outside the fixed set are rejected with a warning.
func (a *Application) SetLogLevel(level int) {
	if !validLevel(level) {
		a.log.Warn("ignoring invalid log level", "value", level)
		return
	}
	a.levelOrdinal = level
	a.logLevel.Set(slogLevel(level))
}

// LogLevel returns the current log level ordinal.
func (a *Application) LogLevel() int { return a.levelOrdinal }

// streamHandler is a slog.Handler with the fixed "[<name>] <message>" text
// format. Record attributes are appended as key=value pairs.
type streamHandler struct {
	mu    *sync.Mutex
	w     io.Writer
	name  string
	level *slog.LevelVar
	attrs string
}

func newStreamHandler(w io.Writer, name string, level *slog.LevelVar) *streamHandler {
	return &streamHandler{mu: &sync.Mutex{}, w: w, name: name, level: level}
}

func (h *streamHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *streamHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", h.name, r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(attr slog.Attr) bool {
		fmt.Fprintf(&b, " %s=%v", attr.Key, attr.Value)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *streamHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, attr := range attrs {
		fmt.Fprintf(&b, " %s=%v", attr.Key, attr.Value)
	}
	clone.attrs = b.String()
	return &clone
}

func (h *streamHandler) WithGroup(string) slog.Handler {
	// Groups are not used by this application's logging.
	return h
}
