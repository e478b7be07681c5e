package cmd

import (
	"fmt"

	"github.com/PolarWolf314/gpglog/internal/ui"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var bannerCmd = &cobra.Command{
	Use:   "banner",
	Short: "Open a log and print where it is being written",
	Long: `Opens the log exactly as the other commands do, then prints the log
file path, the session ID and the active level.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer log.Close()

		out := cmd.OutOrStdout()
		fmt.Fprint(out, ui.EnsureNewline(figure.NewFigure("gpglog", "", true).String()))
		fmt.Fprintf(out, "Log file:  %s\n", ui.Path.Sprint(log.Path()))
		fmt.Fprintf(out, "Level:     %s\n", ui.Level.Sprint(log.Threshold().String()))
		fmt.Fprintf(out, "Session:   %s\n", ui.Muted.Sprint(log.SessionID()))
		log.Debugf("banner shown for session %s", log.SessionID())
		return nil
	},
}
