package logging

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// LevelTable maps severities to the names rendered in records. It starts
// with the standard levels; STATUS is added by Register, which New calls.
// A table may be shared between loggers with WithLevels.
type LevelTable struct {
	mu    sync.RWMutex
	names map[Severity]string
}

// NewLevelTable returns a table holding DISABLED, DEBUG, INFO, WARNING,
// ERROR and CRITICAL.
func NewLevelTable() *LevelTable {
	t := &LevelTable{names: make(map[Severity]string, len(standardNames))}
	for sev, name := range standardNames {
		if sev == StatusLevel {
			continue
		}
		t.names[sev] = name
	}
	return t
}

// Register associates name with sev. Registering the same pair again is a
// no-op; registering a new name for an existing severity replaces it.
func (t *LevelTable) Register(sev Severity, name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.names[sev] = name
}

// Name returns the registered name of sev, or "Level N" when unregistered.
func (t *LevelTable) Name(sev Severity) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if name, ok := t.names[sev]; ok {
		return name
	}
	return fmt.Sprintf("Level %d", int(sev))
}

// Lookup finds the severity registered under name (case-insensitive).
func (t *LevelTable) Lookup(name string) (Severity, bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	t.mu.RLock()
	defer t.mu.RUnlock()
	for sev, n := range t.names {
		if strings.ToUpper(n) == upper {
			return sev, true
		}
	}
	return DisabledLevel, false
}

// Parse resolves s against the registered names first, then falls back to
// ParseSeverity.
func (t *LevelTable) Parse(s string) (Severity, error) {
	if sev, ok := t.Lookup(s); ok {
		return sev, nil
	}
	return ParseSeverity(s)
}

// Levels returns every registered severity in ascending order.
func (t *LevelTable) Levels() []Severity {
	t.mu.RLock()
	defer t.mu.RUnlock()
	levels := make([]Severity, 0, len(t.names))
	for sev := range t.names {
		levels = append(levels, sev)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })
	return levels
}
