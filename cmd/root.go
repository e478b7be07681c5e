package cmd

import (
	"os"

	"github.com/PolarWolf314/gpglog/internal/configs"
	"github.com/PolarWolf314/gpglog/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	configPath string
	logDir     string
	levelFlag  = severityValue{sev: logging.DisabledLevel}

	// RootCmd is the top-level gpglog command.
	RootCmd = &cobra.Command{
		Use:   "gpglog",
		Short: "gpglog - leveled, colorized logging for GnuPG status output",
		Long: `gpglog records GnuPG diagnostics in a timestamped log file under ./tests
and, when a level is set, mirrors them in color on stderr.

Levels (lowest to highest):
  0   DISABLED  nothing is recorded
  9   STATUS    raw GnuPG status-fd lines
  10  DEBUG
  20  INFO
  30  WARNING
  40  ERROR
  50  CRITICAL

Examples:
  # Record gpg's status stream
  gpg --status-fd 1 --verify file.sig | gpglog status --level STATUS

  # Emit a single record
  gpglog emit WARNING "key expires in 3 days" --level INFO

  # Show the level table and console colors
  gpglog levels

  # Write a gpglog.toml that enables status lines
  gpglog config init --level STATUS`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a gpglog.toml config file")
	RootCmd.PersistentFlags().StringVar(&logDir, "dir", "", "directory for the log file (default ./tests)")
	RootCmd.PersistentFlags().VarP(&levelFlag, "level", "l", "lowest severity to record, as a name or number")

	RootCmd.AddCommand(statusCmd)
	RootCmd.AddCommand(emitCmd)
	RootCmd.AddCommand(levelsCmd)
	RootCmd.AddCommand(bannerCmd)
	RootCmd.AddCommand(configCmd)
}

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	configPath = ""
	logDir = ""
	levelFlag = severityValue{sev: logging.DisabledLevel}
	resetConfigState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears Changed on every flag so tests do not leak into each other.
func resetCobraFlagState(c *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		flag.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetCobraFlagState(sub)
	}
}

// loadConfig reads --config, or gpglog.toml in the working directory.
func loadConfig() (*configs.Config, error) {
	path := configPath
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path = configs.FindConfig(wd)
		}
	}
	return configs.LoadConfig(path)
}

// newLogger builds the command's logger. Flags override the config file.
func newLogger(cmd *cobra.Command) (*logging.Logger, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, err
	}

	threshold := config.Logging.Level.Severity()
	if cmd.Flags().Changed("level") {
		threshold = levelFlag.sev
	}

	opts, err := config.Logging.Options()
	if err != nil {
		return nil, err
	}
	if logDir != "" {
		opts = append(opts, logging.WithDirectory(logDir))
	}
	opts = append(opts,
		logging.WithStdout(cmd.OutOrStdout()),
		logging.WithStderr(cmd.ErrOrStderr()),
	)

	return logging.New(threshold, opts...)
}
