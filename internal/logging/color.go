package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	kerrors "github.com/PolarWolf314/gpglog/internal/errors"
	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// ColorSpec is the (background, foreground, bold) triple for one severity.
// Empty color names leave the terminal default in place.
type ColorSpec struct {
	Background string
	Foreground string
	Bold       bool
}

// ColorMap assigns console colors per severity.
type ColorMap map[Severity]ColorSpec

var foregrounds = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

var backgrounds = map[string]color.Attribute{
	"black":   color.BgBlack,
	"red":     color.BgRed,
	"green":   color.BgGreen,
	"yellow":  color.BgYellow,
	"blue":    color.BgBlue,
	"magenta": color.BgMagenta,
	"cyan":    color.BgCyan,
	"white":   color.BgWhite,
}

// Validate checks both color names.
func (c ColorSpec) Validate() error {
	if _, ok := backgrounds[c.Background]; c.Background != "" && !ok {
		return fmt.Errorf("%w: background %q", kerrors.ErrInvalidColor, c.Background)
	}
	if _, ok := foregrounds[c.Foreground]; c.Foreground != "" && !ok {
		return fmt.Errorf("%w: foreground %q", kerrors.ErrInvalidColor, c.Foreground)
	}
	return nil
}

// String renders the triple as "bg=<name> fg=<name> bold=<bool>".
func (c ColorSpec) String() string {
	bg, fg := c.Background, c.Foreground
	if bg == "" {
		bg = "-"
	}
	if fg == "" {
		fg = "-"
	}
	return fmt.Sprintf("bg=%s fg=%s bold=%t", bg, fg, c.Bold)
}

func (c ColorSpec) attributes() []color.Attribute {
	var attrs []color.Attribute
	if a, ok := backgrounds[c.Background]; ok {
		attrs = append(attrs, a)
	}
	if a, ok := foregrounds[c.Foreground]; ok {
		attrs = append(attrs, a)
	}
	if c.Bold {
		attrs = append(attrs, color.Bold)
	}
	return attrs
}

// Sprint renders text with the receiver's attributes regardless of terminal detection.
func (c ColorSpec) Sprint(text string) string {
	col := color.New(c.attributes()...)
	col.EnableColor()
	return col.Sprint(text)
}

// DefaultColors returns the base severity palette of a colorizing stream
// handler, where DEBUG is blue. ConsoleColors hands blue to STATUS.
func DefaultColors() ColorMap {
	return ColorMap{
		DebugLevel:    {Foreground: "blue"},
		InfoLevel:     {Foreground: "white"},
		WarnLevel:     {Foreground: "yellow"},
		ErrorLevel:    {Foreground: "red"},
		CriticalLevel: {Background: "red", Foreground: "white", Bold: true},
	}
}

// ConsoleColors returns DefaultColors with STATUS and DEBUG told apart, which
// is the palette New installs on the console sink.
func ConsoleColors() ColorMap {
	m := DefaultColors()
	m[StatusLevel] = ColorSpec{Foreground: "blue"}
	m[DebugLevel] = ColorSpec{Foreground: "cyan"}
	return m
}

// ConsoleSink writes formatted records to a stream, colorized when the
// stream is a terminal.
type ConsoleSink struct {
	mu        sync.Mutex
	out       io.Writer
	threshold Severity
	formatter Formatter
	colors    ColorMap
	colorize  bool
}

// NewConsoleSink wraps w. Color is enabled only when w is a terminal and
// NO_COLOR is unset; SetColorize overrides the detection.
func NewConsoleSink(w io.Writer, threshold Severity, formatter Formatter) *ConsoleSink {
	s := &ConsoleSink{
		out:       w,
		threshold: threshold,
		formatter: formatter,
		colors:    DefaultColors(),
	}
	if f, ok := w.(*os.File); ok {
		fd := f.Fd()
		s.colorize = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		s.out = colorable.NewColorable(f)
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		s.colorize = false
	}
	return s
}

// SetColors overrides entries of the palette. Severities absent from m keep
// their current colors.
func (s *ConsoleSink) SetColors(m ColorMap) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for sev, spec := range m {
		s.colors[sev] = spec
	}
}

// Colors returns a copy of the palette.
func (s *ConsoleSink) Colors() ColorMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := make(ColorMap, len(s.colors))
	for sev, spec := range s.colors {
		m[sev] = spec
	}
	return m
}

// SetColorize forces color on or off.
func (s *ConsoleSink) SetColorize(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.colorize = on
}

// Enabled reports whether sev meets the sink threshold.
func (s *ConsoleSink) Enabled(sev Severity) bool {
	return sev >= s.threshold
}

// Write emits the formatted record, colored per line when colorizing.
func (s *ConsoleSink) Write(r Record) error {
	line := s.formatter.Format(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.colorize {
		if spec, ok := s.colors[r.Severity]; ok {
			line = colorizeLines(line, spec)
		}
	}
	_, err := io.WriteString(s.out, line+"\n")
	return err
}

// Close leaves the stream open; it belongs to the caller.
func (s *ConsoleSink) Close() error {
	return nil
}

// colorizeLines colors each line on its own so escape codes never span a newline.
func colorizeLines(text string, spec ColorSpec) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = spec.Sprint(l)
		}
	}
	return strings.Join(lines, "\n")
}
