package cmd

import (
	"fmt"

	"github.com/PolarWolf314/gpglog/internal/logging"
	"github.com/PolarWolf314/gpglog/internal/ui"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List severities and their console colors",
	Long: `Lists every severity with its number, name and the console color triple
(background, foreground, bold) used on stderr. Color overrides from the
config file are applied.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig()
		if err != nil {
			return err
		}
		overrides, err := config.Logging.ColorMap()
		if err != nil {
			return err
		}

		table := logging.NewLevelTable()
		table.Register(logging.StatusLevel, "STATUS")
		colors := logging.ConsoleColors()
		for sev, spec := range overrides {
			colors[sev] = spec
		}

		out := cmd.OutOrStdout()
		for _, sev := range table.Levels() {
			name := fmt.Sprintf("%-8s", table.Name(sev))
			spec, ok := colors[sev]
			if !ok {
				fmt.Fprintf(out, "%3d  %s\n", int(sev), ui.Level.Sprint(name))
				continue
			}
			fmt.Fprintf(out, "%3d  %s  %s\n", int(sev), ui.Level.Sprint(name), ui.Muted.Sprint(spec.String()))
		}
		return nil
	},
}
