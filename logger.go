package aprsparse

import (
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Logger is the interface the APRS-IS client logs connection lifecycle
// events through. The parser itself never logs: it is a pure function
// (spec.md §5).
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
}

// charmLogger adapts charmbracelet/log to Logger.
type charmLogger struct {
	l *charmlog.Logger
}

// NewLogger returns the default Logger, a charmbracelet/log logger
// writing structured, leveled output to stderr.
func NewLogger() Logger {
	return &charmLogger{l: charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		Prefix:          "aprsparse",
	})}
}

func (c *charmLogger) Debug(args ...interface{}) { c.log(c.l.Debug, args) }
func (c *charmLogger) Info(args ...interface{})  { c.log(c.l.Info, args) }
func (c *charmLogger) Warn(args ...interface{})  { c.log(c.l.Warn, args) }
func (c *charmLogger) Error(args ...interface{}) { c.log(c.l.Error, args) }

func (c *charmLogger) log(f func(msg interface{}, keyvals ...interface{}), args []interface{}) {
	if len(args) == 0 {
		return
	}
	f(args[0], args[1:]...)
}

// NopLogger discards everything; useful in tests.
type NopLogger struct{}

func (NopLogger) Debug(args ...interface{}) {}
func (NopLogger) Info(args ...interface{})  {}
func (NopLogger) Warn(args ...interface{})  {}
func (NopLogger) Error(args ...interface{}) {}
