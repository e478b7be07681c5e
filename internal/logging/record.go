package logging

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// Layout is the fixed record layout shared by the file and console sinks:
// elapsed milliseconds, source line, function, level name, message.
const Layout = "%-4d L%-4d:%-18.18s %-7.7s %s"

// Record is one log event.
type Record struct {
	Time      time.Time
	Elapsed   time.Duration
	Severity  Severity
	LevelName string
	Template  string
	Args      []any
	Line      int
	Function  string
}

// Message renders the template. Templates without arguments are used
// verbatim so a literal '%' survives.
func (r Record) Message() string {
	if len(r.Args) == 0 {
		return r.Template
	}
	return fmt.Sprintf(r.Template, r.Args...)
}

// Formatter turns a record into a single line without the trailing newline.
type Formatter interface {
	Format(r Record) string
}

// TextFormatter renders records with Layout.
type TextFormatter struct{}

func (TextFormatter) Format(r Record) string {
	return fmt.Sprintf(Layout, r.Elapsed.Milliseconds(), r.Line, r.Function, r.LevelName, r.Message())
}

// caller reports the line and bare function name skip frames above its own caller.
func caller(skip int) (int, string) {
	pc, _, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return 0, "?"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return line, "?"
	}
	return line, shortFuncName(fn.Name())
}

// shortFuncName reduces "example.com/pkg.(*T).Method" to "Method". The
// runtime spells type parameters as "[...]", which is dropped first.
func shortFuncName(name string) string {
	name = strings.ReplaceAll(name, "[...]", "")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
