package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/gpglog/internal/configs"
	kerrors "github.com/PolarWolf314/gpglog/internal/errors"
	"github.com/PolarWolf314/gpglog/internal/logging"
	"github.com/PolarWolf314/gpglog/test/integration/shared"
)

func TestConfigInitWritesDefaults(t *testing.T) {
	tempDir := shared.SetupTestEnvironment(t)

	var stdout bytes.Buffer
	cli := shared.CreateTestCLI([]string{"config", "init"}, nil, &stdout, &bytes.Buffer{})
	if err := cli.Execute(); err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	path := filepath.Join(tempDir, configs.DefaultConfigName)
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected %s to be written: %v", path, err)
	}
	if !strings.Contains(string(content), `level = "DISABLED"`) {
		t.Errorf("Expected disabled level in file, got:\n%s", content)
	}
	if !strings.Contains(string(content), `base_name = "test_gnupg.log"`) {
		t.Errorf("Expected default base name in file, got:\n%s", content)
	}

	out := stdout.String()
	if !strings.Contains(out, "Wrote ") || !strings.Contains(out, "[DISABLED]") {
		t.Errorf("Expected confirmation in output, got %q", out)
	}
	if !strings.Contains(out, "Run `gpglog status` to start recording") {
		t.Errorf("Expected usage hint in output, got %q", out)
	}

	if files := shared.LogFiles(t, tempDir); len(files) != 0 {
		t.Errorf("config init should not open a log, got %v", files)
	}
}

func TestConfigInitStoresFlags(t *testing.T) {
	tempDir := shared.SetupTestEnvironment(t)

	cli := shared.CreateTestCLI([]string{"config", "init", "--level", "9", "--dir", "logs"}, nil, &bytes.Buffer{}, &bytes.Buffer{})
	if err := cli.Execute(); err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	config, err := configs.LoadConfig(filepath.Join(tempDir, configs.DefaultConfigName))
	if err != nil {
		t.Fatalf("Written config should load, got %v", err)
	}
	if config.Logging.Level.Severity() != logging.StatusLevel {
		t.Errorf("Level = %s, want STATUS", config.Logging.Level.Severity())
	}
	if config.Logging.Directory != "logs" {
		t.Errorf("Directory = %q, want logs", config.Logging.Directory)
	}
}

func TestConfigInitThenStatusUsesFileLevel(t *testing.T) {
	tempDir := shared.SetupTestEnvironment(t)

	initCLI := shared.CreateTestCLI([]string{"config", "init", "--level", "STATUS"}, nil, &bytes.Buffer{}, &bytes.Buffer{})
	if err := initCLI.Execute(); err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	statusCLI := shared.CreateTestCLI([]string{"status"}, strings.NewReader("[GNUPG:] NEWSIG\n"), &bytes.Buffer{}, &bytes.Buffer{})
	if err := statusCLI.Execute(); err != nil {
		t.Fatalf("status failed: %v", err)
	}

	content := shared.ReadSingleLog(t, tempDir)
	if got := shared.CountLines(content, "STATUS  [GNUPG:] NEWSIG"); got != 1 {
		t.Errorf("Expected the level from gpglog.toml to record 1 status line, got %d in:\n%s", got, content)
	}
}

func TestConfigInitKeepsExistingFile(t *testing.T) {
	tempDir := shared.SetupTestEnvironment(t)

	path := filepath.Join(tempDir, configs.DefaultConfigName)
	original := "[logging]\nlevel = \"DEBUG\"\n"
	if err := os.WriteFile(path, []byte(original), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cli := shared.CreateTestCLI([]string{"config", "init"}, nil, &bytes.Buffer{}, &bytes.Buffer{})
	err := cli.Execute()
	if !errors.Is(err, kerrors.ErrConfigExists) {
		t.Fatalf("Expected ErrConfigExists, got %v", err)
	}
	if !strings.Contains(err.Error(), "`--force`") {
		t.Errorf("Error should suggest --force, got %v", err)
	}

	content, _ := os.ReadFile(path)
	if string(content) != original {
		t.Errorf("Existing config should be untouched, got:\n%s", content)
	}
}

func TestConfigInitForceOverwrites(t *testing.T) {
	tempDir := shared.SetupTestEnvironment(t)

	path := filepath.Join(tempDir, configs.DefaultConfigName)
	if err := os.WriteFile(path, []byte("[logging]\nlevel = \"DEBUG\"\n"), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cli := shared.CreateTestCLI([]string{"config", "init", "--force", "--level", "ERROR"}, nil, &bytes.Buffer{}, &bytes.Buffer{})
	if err := cli.Execute(); err != nil {
		t.Fatalf("config init --force failed: %v", err)
	}

	config, err := configs.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Logging.Level.Severity() != logging.ErrorLevel {
		t.Errorf("Level = %s, want ERROR", config.Logging.Level.Severity())
	}
}

func TestConfigInitExplicitPath(t *testing.T) {
	tempDir := shared.SetupTestEnvironment(t)

	path := filepath.Join(tempDir, "conf", "custom.toml")
	cli := shared.CreateTestCLI([]string{"config", "init", "--config", path}, nil, &bytes.Buffer{}, &bytes.Buffer{})
	if err := cli.Execute(); err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	if _, err := configs.LoadConfig(path); err != nil {
		t.Errorf("Config at explicit path should load, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(tempDir, configs.DefaultConfigName)); !os.IsNotExist(err) {
		t.Errorf("Default config should not be written when --config is given")
	}
}
