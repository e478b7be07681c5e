package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/gpglog/cmd"
	"github.com/PolarWolf314/gpglog/internal/ui"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error.Sprint("Error:"), err)
		os.Exit(1)
	}
}
