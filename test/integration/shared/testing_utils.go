// Package shared contains testing utilities shared between integration tests.
// This file provides common functions for setting up a working directory with
// a tests/ subdirectory, running the CLI, and reading back log files.
package shared

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/gpglog/cmd"
	"github.com/PolarWolf314/gpglog/internal/logging"
	"github.com/spf13/cobra"
)

// SetupTestEnvironment changes into a fresh temporary directory containing
// tests/ and returns its path. NO_COLOR is set so output is plain. The
// original directory is restored on cleanup.
func SetupTestEnvironment(t *testing.T) string {
	t.Helper()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	t.Setenv("NO_COLOR", "1")

	tempDir := t.TempDir()
	if err := os.Mkdir(filepath.Join(tempDir, logging.DefaultSubdir), 0755); err != nil {
		t.Fatalf("Failed to create tests directory: %v", err)
	}

	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		cmd.ResetGlobalState()
	})

	return tempDir
}

// CaptureOutput captures both stdout and stderr during function execution.
func CaptureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stdoutReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stderrReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// CreateTestCLI returns the root command wired to the given streams and
// arguments, with flag state from earlier tests cleared.
func CreateTestCLI(args []string, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd.ResetGlobalState()

	rootCmd := cmd.GetRootCmd()
	setStreams(rootCmd, stdin, stdout, stderr)
	rootCmd.SetArgs(args)
	return rootCmd
}

// setStreams applies the streams to c and its subcommands. A nil stream
// restores the process default.
func setStreams(c *cobra.Command, stdin io.Reader, stdout, stderr io.Writer) {
	c.SetIn(stdin)
	c.SetOut(stdout)
	c.SetErr(stderr)
	for _, sub := range c.Commands() {
		setStreams(sub, stdin, stdout, stderr)
	}
}

// LogFiles returns the log files written under dir/tests.
func LogFiles(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, logging.DefaultSubdir, "*_"+logging.DefaultBaseName))
	if err != nil {
		t.Fatalf("Failed to list log files: %v", err)
	}
	return matches
}

// ReadSingleLog asserts exactly one log file exists under dir/tests and
// returns its contents.
func ReadSingleLog(t *testing.T, dir string) string {
	t.Helper()
	files := LogFiles(t, dir)
	if len(files) != 1 {
		t.Fatalf("Expected exactly one log file, found %d: %v", len(files), files)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(data)
}

// CountLines returns the number of non-empty lines in s containing substr.
func CountLines(s, substr string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		if line != "" && strings.Contains(line, substr) {
			n++
		}
	}
	return n
}
