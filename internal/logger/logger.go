package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Level orders log severities; messages below a logger's level are dropped.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug:   "DEBUG",
	LevelInfo:    "INFO",
	LevelWarning: "WARNING",
	LevelError:   "ERROR",
}

// String returns the name written in the LEVEL field.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel converts a level name such as "warning" to a Level.
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "WARN" {
		name = "WARNING"
	}
	for level, n := range levelNames {
		if n == name {
			return level, nil
		}
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Logger provides structured logging in journald KEY=VALUE form.
// Passwords are never passed to it.
type Logger struct {
	writer io.Writer
	level  Level
}

// New creates a logger writing to stderr so stdout stays free for passwords.
func New() *Logger {
	return &Logger{
		writer: os.Stderr,
		level:  LevelDebug,
	}
}

// NewWithWriter creates a logger with a custom writer
func NewWithWriter(w io.Writer) *Logger {
	return &Logger{
		writer: w,
		level:  LevelDebug,
	}
}

// SetLevel sets the minimum level that is written.
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

// Info logs informational messages
func (l *Logger) Info(msg string, fields ...Field) {
	l.log(LevelInfo, msg, fields...)
}

// Error logs error messages
func (l *Logger) Error(msg string, fields ...Field) {
	l.log(LevelError, msg, fields...)
}

// Warn logs warning messages
func (l *Logger) Warn(msg string, fields ...Field) {
	l.log(LevelWarning, msg, fields...)
}

// Debug logs debug messages
func (l *Logger) Debug(msg string, fields ...Field) {
	l.log(LevelDebug, msg, fields...)
}

func (l *Logger) log(level Level, msg string, fields ...Field) {
	if level < l.level {
		return
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "LEVEL=%s MESSAGE=%s", level, msg)
	for _, field := range fields {
		fmt.Fprintf(&sb, " %s=%v", field.Key, field.Value)
	}
	_, _ = fmt.Fprintln(l.writer, sb.String())
}

// Field represents a key-value pair for structured logging
type Field struct {
	Key   string
	Value interface{}
}

// F creates a new field (shorthand)
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Common field constructors
func Action(value string) Field    { return F("ACTION", value) }
func Status(value string) Field    { return F("STATUS", value) }
func Length(value int) Field       { return F("LENGTH", value) }
func Count(value int) Field        { return F("COUNT", value) }
func Ceiling(value int) Field      { return F("SOFT_CEILING", value) }
func Source(value string) Field    { return F("SOURCE", value) }
func Format(value string) Field    { return F("FORMAT", value) }
func RequestID(value string) Field { return F("REQUEST_ID", value) }
func Error(value error) Field      { return F("ERROR", value) }
func Reason(value string) Field    { return F("REASON", value) }
