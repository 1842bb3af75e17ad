package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

// Logger wraps standard log with level-based output. Debug lines are
// dropped unless debug is enabled.
type Logger struct {
	info    *log.Logger
	warn    *log.Logger
	error   *log.Logger
	debug   *log.Logger
	verbose bool
}

// NewLogger creates a logger writing info/warn/debug to stdout and errors to stderr
func NewLogger(level string) *Logger {
	return NewLoggerTo(os.Stdout, os.Stderr, level)
}

// NewLoggerTo creates a logger on explicit writers
func NewLoggerTo(out, errOut io.Writer, level string) *Logger {
	flags := log.Lmsgprefix
	return &Logger{
		info:    log.New(out, "[INFO]  ", flags),
		warn:    log.New(out, "[WARN]  ", flags),
		error:   log.New(errOut, "[ERROR] ", flags),
		debug:   log.New(out, "[DEBUG] ", flags),
		verbose: strings.EqualFold(level, "debug"),
	}
}

// Discard returns a logger that writes nowhere, for tests
func Discard() *Logger {
	return NewLoggerTo(io.Discard, io.Discard, "")
}

// SetDebug toggles debug output
func (l *Logger) SetDebug(on bool) {
	l.verbose = on
}

func (l *Logger) prefix() string {
	return fmt.Sprintf(" %s ", time.Now().Format("15:04:05"))
}

func (l *Logger) Info(msg string, args ...interface{}) {
	l.info.Printf(l.prefix()+msg, args...)
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	l.warn.Printf(l.prefix()+msg, args...)
}

func (l *Logger) Error(msg string, args ...interface{}) {
	l.error.Printf(l.prefix()+msg, args...)
}

func (l *Logger) Debug(msg string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.debug.Printf(l.prefix()+msg, args...)
}
