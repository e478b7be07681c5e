package cmd

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/gpglog/internal/ui"
	"github.com/spf13/cobra"
)

var emitCmd = &cobra.Command{
	Use:   "emit <level> <message...>",
	Short: "Record a single message at the given level",
	Long: `Records one message at a level given as a name (STATUS, DEBUG, INFO,
WARNING, ERROR, CRITICAL) or a number.

Examples:
  gpglog emit INFO "imported 3 keys" --level DEBUG
  gpglog emit 25 "between INFO and WARNING" --level 20`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer log.Close()

		sev, err := log.Levels().Parse(args[0])
		if err != nil {
			return err
		}
		message := strings.Join(args[1:], " ")
		log.Logf(sev, "%s", message)

		if !log.Enabled(sev) {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Sprintf("%s suppressed at level %s", log.Levels().Name(sev), log.Threshold()))
		}
		return nil
	},
}
