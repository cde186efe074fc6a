package rtgizmo

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

type Logger interface {
	Level() Level
	SetLevel(level Level)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

type DefaultLogger struct {
	mu     sync.Mutex
	level  Level
	prefix string
	out    *log.Logger
	err    *log.Logger
}

func NewDefaultLogger(prefix string, level Level) *DefaultLogger {
	return newLogger(prefix, level, os.Stdout, os.Stderr)
}

func newLogger(prefix string, level Level, out, err io.Writer) *DefaultLogger {
	flags := log.LstdFlags | log.Lmicroseconds
	return &DefaultLogger{
		level:  level,
		prefix: prefix,
		out:    log.New(out, "", flags),
		err:    log.New(err, "", flags),
	}
}

func (l *DefaultLogger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

func (l *DefaultLogger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

func (l *DefaultLogger) enabled(level Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return level >= l.level
}

func (l *DefaultLogger) prefixf(level Level, format string, args ...any) string {
	if l.prefix != "" {
		return fmt.Sprintf("[%s] %s: %s", l.prefix, level, fmt.Sprintf(format, args...))
	}
	return fmt.Sprintf("%s: %s", level, fmt.Sprintf(format, args...))
}

func (l *DefaultLogger) Debugf(format string, args ...any) {
	if l.enabled(LevelDebug) {
		l.out.Print(l.prefixf(LevelDebug, format, args...))
	}
}

func (l *DefaultLogger) Infof(format string, args ...any) {
	if l.enabled(LevelInfo) {
		l.out.Print(l.prefixf(LevelInfo, format, args...))
	}
}

func (l *DefaultLogger) Warnf(format string, args ...any) {
	if l.enabled(LevelWarn) {
		l.err.Print(l.prefixf(LevelWarn, format, args...))
	}
}

func (l *DefaultLogger) Errorf(format string, args ...any) {
	l.err.Print(l.prefixf(LevelError, format, args...))
}

// LoggingModule installs a default logger as a resource. Install it first so
// later modules log through it.
type LoggingModule struct {
	Prefix string
	Level  Level
}

func (m LoggingModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewDefaultLogger(m.Prefix, m.Level))
}

type nopLogger struct{}

func NewNopLogger() Logger { return &nopLogger{} }

func (n *nopLogger) Level() Level                      { return LevelError }
func (n *nopLogger) SetLevel(level Level)              {}
func (n *nopLogger) Debugf(format string, args ...any) {}
func (n *nopLogger) Infof(format string, args ...any)  {}
func (n *nopLogger) Warnf(format string, args ...any)  {}
func (n *nopLogger) Errorf(format string, args ...any) {}

// Logger returns the installed logger, otherwise a no-op logger.
// Safe to call at any time; never returns nil.
func (app *App) Logger() Logger {
	if app == nil {
		return NewNopLogger()
	}
	if l, ok := Resource[DefaultLogger](app); ok {
		return l
	}
	return NewNopLogger()
}
