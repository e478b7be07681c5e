package logging

import (
	"io"
	"os"
	"sync"
)

// Sink is a destination for records. Each sink applies its own threshold.
type Sink interface {
	// Enabled reports whether the sink accepts records at sev.
	Enabled(sev Severity) bool
	// Write formats and emits r.
	Write(r Record) error
	Close() error
}

// FileSink appends formatted records to a file.
type FileSink struct {
	mu        sync.Mutex
	file      *os.File
	path      string
	threshold Severity
	formatter Formatter
}

// OpenFileSink opens path for appending, creating the file but never its
// parent directory.
func OpenFileSink(path string, threshold Severity, formatter Formatter) (*FileSink, error) {
	// #nosec G302 G304 -- log files are meant to be read by the developer running the suite.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &FileSink{file: f, path: path, threshold: threshold, formatter: formatter}, nil
}

// Path returns the file the sink appends to.
func (s *FileSink) Path() string {
	return s.path
}

// Enabled reports whether sev meets the sink threshold.
func (s *FileSink) Enabled(sev Severity) bool {
	return sev >= s.threshold
}

// Write appends the formatted record as one line.
func (s *FileSink) Write(r Record) error {
	line := s.formatter.Format(r) + "\n"
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.file, line)
	return err
}

// Close closes the underlying file.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}

// DiscardSink swallows every record.
type DiscardSink struct{}

func (DiscardSink) Enabled(Severity) bool { return false }
func (DiscardSink) Write(Record) error    { return nil }
func (DiscardSink) Close() error          { return nil }
