package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PolarWolf314/gpglog/internal/logging"
	"github.com/PolarWolf314/gpglog/internal/ui"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Record raw GnuPG status lines read from stdin",
	Long: `Reads GnuPG status-fd output from stdin and records each line at the
STATUS level, unparsed. Blank lines are skipped.

STATUS (9) sits below DEBUG, so status lines are recorded with --level STATUS
but dropped with --level DEBUG or higher.

Examples:
  gpg --status-fd 1 --decrypt secret.gpg | gpglog status --level STATUS
  gpglog status --level 9 < status.txt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer log.Close()

		n, err := logStatusLines(log, cmd.InOrStdin())
		if err != nil {
			log.Errorf("reading status stream: %v", err)
			return fmt.Errorf("failed to read status stream: %w", err)
		}
		log.Debugf("read %d status lines", n)

		out := cmd.OutOrStdout()
		if !log.Enabled(logging.StatusLevel) {
			fmt.Fprintln(out, ui.Warning.Sprintf("%d status lines read but not recorded at level %s", n, log.Threshold()))
			fmt.Fprintf(out, "Rerun with %s to record them\n", ui.Code.Sprint("--level STATUS"))
			return nil
		}
		fmt.Fprintf(out, "%s Recorded %d status lines in %s\n", ui.Success.Sprint("✓"), n, ui.Path.Sprint(log.Path()))
		return nil
	},
}

// logStatusLines records every non-blank line of r at STATUS and returns
// how many were seen. Lines have no length limit.
func logStatusLines(log logging.Interface, r io.Reader) (int, error) {
	reader := bufio.NewReader(r)
	n := 0
	for {
		raw, err := reader.ReadString('\n')
		line := strings.TrimRight(strings.TrimSuffix(raw, "\n"), "\r")
		if strings.TrimSpace(line) != "" {
			log.Statusf("%s", line)
			n++
		}
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
	}
}
