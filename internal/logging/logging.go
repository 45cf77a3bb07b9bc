// Package logging wraps logrus the way lxd-export/core/logger/logger.go
// wraps it: a small typed facade over *logrus.Logger so call sites pass a
// message and a field map rather than reaching into logrus directly.
// Unlike the teacher's file-backed SafeLogger, Helix logs to stderr (a
// session's diagnostics belong next to its prompt, not in a rotated file)
// and needs no extra mutex — logrus's own Logger is already safe for
// concurrent use from the reaper goroutine and the REPL.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Ctx is the field-map convention mirrored from the teacher's
// logger.Ctx{...} call sites throughout lxc/*.go.
type Ctx = logrus.Fields

// Logger is Helix's process-wide diagnostic logger.
type Logger struct {
	inner *logrus.Logger
}

// New builds a Logger writing to stderr with a plain text formatter.
// Default level is Warn, so an interactive session stays quiet; Verbose and
// Debug raise it, mirroring cmd/helix's -v/--debug flags.
func New() *Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.WarnLevel)
	return &Logger{inner: l}
}

// SetVerbose raises the level to Info.
func (l *Logger) SetVerbose() {
	l.inner.SetLevel(logrus.InfoLevel)
}

// SetDebug raises the level to Debug.
func (l *Logger) SetDebug() {
	l.inner.SetLevel(logrus.DebugLevel)
}

func (l *Logger) Debug(msg string, fields Ctx) { l.inner.WithFields(fields).Debug(msg) }
func (l *Logger) Info(msg string, fields Ctx)  { l.inner.WithFields(fields).Info(msg) }
func (l *Logger) Warn(msg string, fields Ctx)  { l.inner.WithFields(fields).Warn(msg) }
func (l *Logger) Error(msg string, fields Ctx) { l.inner.WithFields(fields).Error(msg) }
