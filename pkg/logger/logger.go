package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Minimal leveled logger shared by the dictionary service and the seed tool.
// Init(level) picks the threshold; Component(name) tags lines with a subsystem.

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var (
	mu     sync.RWMutex
	logger *log.Logger = log.New(os.Stdout, "", 0)
	level  Level       = LevelInfo
)

// Init sets the global log level (case-insensitive: debug, info, warn, error, fatal).
// Call early during startup. Default level is Info.
func Init(l string) {
	mu.Lock()
	defer mu.Unlock()
	level = ParseLevel(l)
}

// ParseLevel maps a level name to a Level; unknown names map to LevelInfo.
func ParseLevel(l string) Level {
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	}
	return LevelInfo
}

// SetOutput redirects log output, returning the previous writer's logger so
// tests can restore it.
func SetOutput(w io.Writer) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	prev := logger
	logger = log.New(w, "", 0)
	return prev
}

// Restore reinstates a logger returned by SetOutput.
func Restore(l *log.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	}
	return "info"
}

func shouldLog(l Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return l >= level
}

func write(l Level, component, format string, v ...interface{}) {
	if l != LevelFatal && !shouldLog(l) {
		return
	}
	var b strings.Builder
	b.WriteString(time.Now().UTC().Format(time.RFC3339))
	b.WriteString(" [")
	b.WriteString(strings.ToUpper(l.String()))
	b.WriteString("] ")
	if component != "" {
		b.WriteString(component)
		b.WriteString(": ")
	}
	b.WriteString(fmt.Sprintf(format, v...))
	mu.RLock()
	out := logger
	mu.RUnlock()
	out.Print(b.String())
}

func Debugf(format string, v ...interface{}) { write(LevelDebug, "", format, v...) }
func Infof(format string, v ...interface{})  { write(LevelInfo, "", format, v...) }
func Warnf(format string, v ...interface{})  { write(LevelWarn, "", format, v...) }
func Errorf(format string, v ...interface{}) { write(LevelError, "", format, v...) }

func Fatalf(format string, v ...interface{}) {
	write(LevelFatal, "", format, v...)
	os.Exit(1)
}

func Info(v string)  { Infof("%s", v) }
func Warn(v string)  { Warnf("%s", v) }
func Error(v string) { Errorf("%s", v) }

// LevelString returns the current level as text.
func LevelString() string {
	mu.RLock()
	defer mu.RUnlock()
	return level.String()
}

// Logger writes through the package logger with a fixed component tag.
type Logger struct {
	component string
}

// Component returns a Logger whose lines are prefixed with name.
func Component(name string) Logger { return Logger{component: name} }

func (l Logger) Debugf(format string, v ...interface{}) { write(LevelDebug, l.component, format, v...) }
func (l Logger) Infof(format string, v ...interface{})  { write(LevelInfo, l.component, format, v...) }
func (l Logger) Warnf(format string, v ...interface{})  { write(LevelWarn, l.component, format, v...) }
func (l Logger) Errorf(format string, v ...interface{}) { write(LevelError, l.component, format, v...) }
