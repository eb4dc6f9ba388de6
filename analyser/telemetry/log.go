package telemetry

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/nnir/tensorplan/analyser/config"
)

// Logger is a minimal level-gated wrapper around the standard library's
// log.Logger: messages below the configured level are dropped before
// formatting, everything else is tagged with its level and written through.
type Logger struct {
	level config.Level
	out   *log.Logger
}

// NewLogger builds a Logger writing to w (os.Stderr if nil) that drops
// messages below level.
func NewLogger(level config.Level, w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{level: level, out: log.New(w, "", log.LstdFlags)}
}

func (l *Logger) Debugf(format string, args ...any) { l.logf(config.LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any) { l.logf(config.LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any) { l.logf(config.LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.logf(config.LevelError, format, args...) }

func (l *Logger) logf(level config.Level, format string, args ...any) {
	if l == nil || level < l.level {
		return
	}
	l.out.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
}
