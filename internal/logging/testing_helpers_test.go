package logging

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// memorySink records everything at or above its threshold.
type memorySink struct {
	mu        sync.Mutex
	threshold Severity
	records   []Record
}

func (s *memorySink) Enabled(sev Severity) bool { return sev >= s.threshold }

func (s *memorySink) Write(r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
	return nil
}

func (s *memorySink) Close() error { return nil }

func (s *memorySink) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Record(nil), s.records...)
}

func fixedClock() time.Time {
	return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
}

// newWorkDir returns a temp directory containing the tests/ subdirectory.
func newWorkDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, DefaultSubdir), 0755); err != nil {
		t.Fatalf("Failed to create tests directory: %v", err)
	}
	return dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
