package main

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/ZebulonRouseFrantzich/rosettafinder/internal/finder"
)

// charmLogger adapts a charmbracelet logger to finder.Logger.
type charmLogger struct {
	l *log.Logger
}

var _ finder.Logger = charmLogger{}

func (c charmLogger) Debug(msg string, keysAndValues ...interface{}) { c.l.Debug(msg, keysAndValues...) }
func (c charmLogger) Info(msg string, keysAndValues ...interface{})  { c.l.Info(msg, keysAndValues...) }
func (c charmLogger) Warn(msg string, keysAndValues ...interface{})  { c.l.Warn(msg, keysAndValues...) }
func (c charmLogger) Error(msg string, keysAndValues ...interface{}) { c.l.Error(msg, keysAndValues...) }

// newLogger writes leveled logs to w. Unknown levels fall back to warn.
func newLogger(w io.Writer, level string) charmLogger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	return charmLogger{l: log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "whichrosetta",
	})}
}
