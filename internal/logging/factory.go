package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	kerrors "github.com/PolarWolf314/gpglog/internal/errors"
	"github.com/google/uuid"
)

const (
	// DefaultName names the logger built by New.
	DefaultName = "gnupg"
	// DefaultBaseName is the file name suffix after the timestamp.
	DefaultBaseName = "test_gnupg.log"
	// DefaultSubdir is the directory under the working directory holding log files.
	DefaultSubdir = "tests"

	fileTimestamp = "2006-01-02_150405"
)

type options struct {
	name       string
	workDir    string
	dir        string
	baseName   string
	now        func() time.Time
	stdout     io.Writer
	stderr     io.Writer
	colors     ColorMap
	levels     *LevelTable
	captureLog bool
}

// Option customizes New.
type Option func(*options)

// WithName sets the logger name.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithWorkDir resolves the tests/ directory against dir instead of the
// process working directory.
func WithWorkDir(dir string) Option {
	return func(o *options) { o.workDir = dir }
}

// WithDirectory places the log file directly in dir.
func WithDirectory(dir string) Option {
	return func(o *options) { o.dir = dir }
}

// WithBaseName changes the part of the file name after the timestamp.
func WithBaseName(name string) Option {
	return func(o *options) { o.baseName = name }
}

// WithClock replaces time.Now for the file timestamp, elapsed times and the
// startup record.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithStdout redirects the startup notice.
func WithStdout(w io.Writer) Option {
	return func(o *options) { o.stdout = w }
}

// WithStderr redirects the console sink.
func WithStderr(w io.Writer) Option {
	return func(o *options) { o.stderr = w }
}

// WithColors overrides console palette entries on top of ConsoleColors.
func WithColors(m ColorMap) Option {
	return func(o *options) { o.colors = m }
}

// WithLevels shares a severity-name table between loggers.
func WithLevels(t *LevelTable) Option {
	return func(o *options) { o.levels = t }
}

// WithoutStandardLogCapture leaves the standard log package untouched.
func WithoutStandardLogCapture() Option {
	return func(o *options) { o.captureLog = false }
}

// LogFilePath returns <dir>/<YYYY-MM-DD_HHMMSS>_<baseName>.
func LogFilePath(dir, baseName string, t time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s", t.Format(fileTimestamp), baseName))
}

// New builds the process logger at threshold.
//
// The file sink is always created in <cwd>/tests; that directory must
// already exist. Above DisabledLevel a console sink on stderr is attached
// and the standard log package is captured; otherwise a DiscardSink is
// attached and nothing is recorded. Each call returns an independent Logger.
func New(threshold Severity, opts ...Option) (*Logger, error) {
	o := options{
		name:       DefaultName,
		baseName:   DefaultBaseName,
		now:        time.Now,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		captureLog: true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	dir := o.dir
	if dir == "" {
		workDir := o.workDir
		if workDir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get working directory: %w", err)
			}
			workDir = wd
		}
		dir = filepath.Join(workDir, DefaultSubdir)
	}

	levels := o.levels
	if levels == nil {
		levels = NewLevelTable()
	}
	levels.Register(StatusLevel, "STATUS")

	l := newLogger(o.name, levels, o.now)
	l.sessionID = uuid.New().String()
	l.errOut = o.stderr
	l.path = LogFilePath(dir, o.baseName, l.start)

	formatter := TextFormatter{}
	file, err := OpenFileSink(l.path, threshold, formatter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrLogFileOpen, err)
	}
	l.AddSink(file)

	if threshold > DisabledLevel {
		if o.captureLog {
			l.restore = l.CaptureStandardLog()
		}
		console := NewConsoleSink(o.stderr, threshold, formatter)
		console.SetColors(ConsoleColors())
		if o.colors != nil {
			console.SetColors(o.colors)
		}
		l.AddSink(console)
		fmt.Fprintln(o.stdout, "Starting the logger...")
	} else {
		l.AddSink(DiscardSink{})
		fmt.Fprintln(o.stdout, "GnuPG logging disabled...")
	}

	l.SetThreshold(threshold)
	l.Infof("Log opened: %s UTC", l.now().UTC().Format(time.ANSIC))
	return l, nil
}
