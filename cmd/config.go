package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/gpglog/internal/configs"
	kerrors "github.com/PolarWolf314/gpglog/internal/errors"
	"github.com/PolarWolf314/gpglog/internal/ui"
	"github.com/spf13/cobra"
)

var (
	configInitForce bool

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage the gpglog.toml configuration file",
		Long: `Provides commands for managing gpglog.toml, the optional file that sets
the default level, log directory, file name and console colors.

Examples:
  # Write a config that records status lines by default
  gpglog config init --level STATUS`,
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Write a default gpglog.toml",
		Long: `Writes gpglog.toml in the working directory, or at --config when given.
--level and --dir are stored in the file. An existing file is kept unless
--force is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("failed to get working directory: %w", err)
				}
				path = configs.FindConfig(wd)
				if path == "" {
					path = filepath.Join(wd, configs.DefaultConfigName)
				}
			}

			if _, err := os.Stat(path); err == nil && !configInitForce {
				return fmt.Errorf("%w: %s (use %s to overwrite)", kerrors.ErrConfigExists, path, ui.Code.Sprint("--force"))
			}

			config := configs.DefaultConfig()
			if cmd.Flags().Changed("level") {
				config.Logging.Level = configs.Level(levelFlag.sev)
			}
			config.Logging.Directory = logDir

			if err := configs.SaveConfig(path, config); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Wrote %s at level %s\n", ui.Success.Sprint("✓"), ui.Path.Sprint(path), ui.Level.Sprint(config.Logging.Level.Severity().String()))
			fmt.Fprintf(out, "Run %s to start recording\n", ui.Code.Sprint("gpglog status"))
			return nil
		},
	}
)

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
}

// resetConfigState resets the config command's global state for testing.
func resetConfigState() {
	configInitForce = false
}
