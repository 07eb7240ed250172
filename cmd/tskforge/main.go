// Package main is the entry point for the tskforge CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tskforge/cli/internal/cmd"
	tskerrors "github.com/tskforge/cli/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		// An ExitError carries its own code; anything else maps through
		// the sentinel errors.
		var exitErr *tskerrors.ExitError
		if errors.As(err, &exitErr) && exitErr.Printed {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(tskerrors.ExitCodeFromError(err))
	}
}
