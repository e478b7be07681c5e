package logging

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Interface is the leveled logging surface handed to components that log.
type Interface interface {
	Statusf(msg string, args ...any)
	Debugf(msg string, args ...any)
	Infof(msg string, args ...any)
	Warnf(msg string, args ...any)
	Errorf(msg string, args ...any)
	Criticalf(msg string, args ...any)
}

var _ Interface = (*Logger)(nil)

// Logger dispatches records to its sinks. Build one with New, early and
// once, then pass it to everything that logs.
type Logger struct {
	name      string
	sessionID string
	path      string
	start     time.Time
	now       func() time.Time
	levels    *LevelTable
	threshold atomic.Int64
	errOut    io.Writer

	mu      sync.Mutex
	sinks   []Sink
	restore func()
}

func newLogger(name string, levels *LevelTable, now func() time.Time) *Logger {
	return &Logger{
		name:   name,
		start:  now(),
		now:    now,
		levels: levels,
		errOut: os.Stderr,
	}
}

// Name returns the logger's name.
func (l *Logger) Name() string { return l.name }

// SessionID identifies this logger instance.
func (l *Logger) SessionID() string { return l.sessionID }

// Path returns the log file the logger appends to.
func (l *Logger) Path() string { return l.path }

// Levels returns the severity-name table used to render records.
func (l *Logger) Levels() *LevelTable { return l.levels }

// Threshold returns the logger-wide minimum severity.
func (l *Logger) Threshold() Severity {
	return Severity(l.threshold.Load())
}

// SetThreshold changes the logger-wide minimum severity. Sink thresholds are
// left as they are.
func (l *Logger) SetThreshold(sev Severity) {
	l.threshold.Store(int64(sev))
}

// AddSink appends s to the sinks that receive records.
func (l *Logger) AddSink(s Sink) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sinks = append(l.sinks, s)
}

// Sinks returns the attached sinks in order.
func (l *Logger) Sinks() []Sink {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Sink(nil), l.sinks...)
}

// Enabled reports whether a record at sev would be dispatched. A threshold
// at or below DisabledLevel suppresses everything.
func (l *Logger) Enabled(sev Severity) bool {
	threshold := l.Threshold()
	return threshold > DisabledLevel && sev >= threshold
}

// Statusf logs raw GnuPG status output at StatusLevel.
func (l *Logger) Statusf(msg string, args ...any) {
	l.log(1, StatusLevel, msg, args)
}

// Debugf logs at DebugLevel.
func (l *Logger) Debugf(msg string, args ...any) {
	l.log(1, DebugLevel, msg, args)
}

// Infof logs at InfoLevel.
func (l *Logger) Infof(msg string, args ...any) {
	l.log(1, InfoLevel, msg, args)
}

// Warnf logs at WarnLevel.
func (l *Logger) Warnf(msg string, args ...any) {
	l.log(1, WarnLevel, msg, args)
}

// Errorf logs at ErrorLevel.
func (l *Logger) Errorf(msg string, args ...any) {
	l.log(1, ErrorLevel, msg, args)
}

// Criticalf logs at CriticalLevel.
func (l *Logger) Criticalf(msg string, args ...any) {
	l.log(1, CriticalLevel, msg, args)
}

// Logf logs at an arbitrary severity.
func (l *Logger) Logf(sev Severity, msg string, args ...any) {
	l.log(1, sev, msg, args)
}

// log builds the record; skip counts frames between log and the user's call.
// A negative skip leaves the caller unresolved.
func (l *Logger) log(skip int, sev Severity, msg string, args []any) {
	if !l.Enabled(sev) {
		return
	}

	now := l.now()
	r := Record{
		Time:      now,
		Elapsed:   now.Sub(l.start),
		Severity:  sev,
		LevelName: l.levels.Name(sev),
		Template:  msg,
		Args:      args,
	}
	if skip >= 0 {
		r.Line, r.Function = caller(skip + 1)
	} else {
		r.Function = "stdlog"
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.sinks {
		if !s.Enabled(sev) {
			continue
		}
		if err := s.Write(r); err != nil {
			fmt.Fprintf(l.errOut, "gpglog: dropping record for %T: %v\n", s, err)
		}
	}
}

// captureMu guards the chain of stdlogCapture values installed in the log
// package.
var captureMu sync.Mutex

// CaptureStandardLog routes the standard library log package into WARNING
// records until the returned function is called. Captures may be released in
// any order; the log package always ends up at the newest capture still
// active, or at its original output once all are released.
func (l *Logger) CaptureStandardLog() func() {
	captureMu.Lock()
	defer captureMu.Unlock()

	c := &stdlogCapture{l: l, prev: log.Writer(), flags: log.Flags(), prefix: log.Prefix()}
	log.SetFlags(0)
	log.SetPrefix("")
	log.SetOutput(c)

	var once sync.Once
	return func() { once.Do(c.release) }
}

type stdlogCapture struct {
	l        *Logger
	prev     io.Writer
	flags    int
	prefix   string
	released bool
}

func (c *stdlogCapture) Write(p []byte) (int, error) {
	msg := string(bytes.TrimRight(p, "\n"))
	c.l.log(-1, WarnLevel, msg, nil)
	return len(p), nil
}

// release stops c capturing. When a later capture is installed on top of c,
// the log package is left alone and that capture skips c on its own release.
func (c *stdlogCapture) release() {
	captureMu.Lock()
	defer captureMu.Unlock()

	c.released = true
	if log.Writer() != io.Writer(c) {
		return
	}

	target := c
	for {
		prev, ok := target.prev.(*stdlogCapture)
		if !ok || !prev.released {
			break
		}
		target = prev
	}
	log.SetOutput(target.prev)
	log.SetFlags(target.flags)
	log.SetPrefix(target.prefix)
}

// Close restores the standard log output if it was captured and closes
// every sink.
func (l *Logger) Close() error {
	l.mu.Lock()
	restore := l.restore
	l.restore = nil
	sinks := l.sinks
	l.sinks = nil
	l.mu.Unlock()

	if restore != nil {
		restore()
	}
	var firstErr error
	for _, s := range sinks {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
