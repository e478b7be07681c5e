// Package ui provides semantic text formatting for gpglog's human-facing
// output: the startup summary, the levels table and command results.
//
// Log records never pass through this package; the console sink in
// internal/logging colors them by severity. ui only decorates what the CLI
// prints to stdout.
//
// # Semantic Formatters
//
//	ui.Code.Sprint("gpglog status --level STATUS")
//	ui.Path.Sprint("tests/2024-01-02_030405_test_gnupg.log")
//	ui.Level.Sprint("STATUS")
//	ui.Success.Sprint("✓")
//	ui.Warning.Sprint("logging disabled")
//	ui.Muted.Sprint("session 0b6f…")
//
// # Color Behavior
//
// Colors are disabled when NO_COLOR is set or when fatih/color decides the
// terminal cannot render them. Without color, Code gains `backticks`,
// Level gains [brackets] and Muted gains (parentheses).
package ui
