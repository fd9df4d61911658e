package utils

import (
	"fmt"
	"io"
	"time"
)

// ANSI colour codes — make terminal output easier to read while debugging
const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	blue   = "\033[34m"
	cyan   = "\033[36m"
)

// Logger writes timestamped, colour-coded lines to a single destination.
// It is created once per scrape session and handed to every component,
// so tests can pass a logger backed by io.Discard instead of touching
// process-wide state.
type Logger struct {
	out io.Writer
}

func NewLogger(out io.Writer) *Logger {
	return &Logger{out: out}
}

func ts() string {
	return time.Now().Format("15:04:05")
}

func (l *Logger) Info(format string, a ...interface{}) {
	fmt.Fprintf(l.out, "%s[%s] [INFO]  %s%s\n", blue, ts(), fmt.Sprintf(format, a...), reset)
}

func (l *Logger) Success(format string, a ...interface{}) {
	fmt.Fprintf(l.out, "%s[%s] [OK]    %s%s\n", green, ts(), fmt.Sprintf(format, a...), reset)
}

func (l *Logger) Warn(format string, a ...interface{}) {
	fmt.Fprintf(l.out, "%s[%s] [WARN]  %s%s\n", yellow, ts(), fmt.Sprintf(format, a...), reset)
}

func (l *Logger) Error(format string, a ...interface{}) {
	fmt.Fprintf(l.out, "%s[%s] [ERROR] %s%s\n", red, ts(), fmt.Sprintf(format, a...), reset)
}

func (l *Logger) Section(title string) {
	fmt.Fprintf(l.out, "\n%s[%s] ══════════ %s ══════════%s\n\n", cyan, ts(), title, reset)
}
