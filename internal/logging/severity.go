package logging

import (
	"fmt"
	"strconv"
	"strings"

	kerrors "github.com/PolarWolf314/gpglog/internal/errors"
)

// Severity ranks a record. Higher values are more severe.
type Severity int

const (
	DisabledLevel Severity = 0

	// StatusLevel carries raw GnuPG status-fd output. It sits below DebugLevel
	// so enabling debug also enables status records.
	StatusLevel   Severity = 9
	DebugLevel    Severity = 10
	InfoLevel     Severity = 20
	WarnLevel     Severity = 30
	ErrorLevel    Severity = 40
	CriticalLevel Severity = 50
)

var standardNames = map[Severity]string{
	DisabledLevel: "DISABLED",
	StatusLevel:   "STATUS",
	DebugLevel:    "DEBUG",
	InfoLevel:     "INFO",
	WarnLevel:     "WARNING",
	ErrorLevel:    "ERROR",
	CriticalLevel: "CRITICAL",
}

// aliases are accepted when parsing but never rendered.
var aliases = map[string]Severity{
	"NOTSET": DisabledLevel,
	"OFF":    DisabledLevel,
	"GNUPG":  StatusLevel,
	"WARN":   WarnLevel,
	"FATAL":  CriticalLevel,
}

func (s Severity) String() string {
	if name, ok := standardNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Level %d", int(s))
}

// ParseSeverity resolves a level given either as a name (case-insensitive)
// or as an integer. Integers outside the known set are accepted as-is.
func ParseSeverity(s string) (Severity, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return DisabledLevel, fmt.Errorf("%w: empty level", kerrors.ErrInvalidSeverity)
	}

	upper := strings.ToUpper(trimmed)
	for sev, name := range standardNames {
		if name == upper {
			return sev, nil
		}
	}
	if sev, ok := aliases[upper]; ok {
		return sev, nil
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return DisabledLevel, fmt.Errorf("%w: %q", kerrors.ErrInvalidSeverity, s)
	}
	return Severity(n), nil
}
