// Package cli hosts the favcheck command tree.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes of the favcheck binary.
const (
	ExitOK = iota
	// ExitFailures means the run completed but at least one scenario failed.
	ExitFailures
	// ExitError means the run could not start or was aborted.
	ExitError
)

// errRunFailed marks a completed run with failing scenarios; it selects the
// exit code without printing a second diagnostic.
var errRunFailed = errors.New("one or more scenarios failed")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "favcheck",
		Short: "Black-box conformance suite for the favorites HTTP API",
		Long: `favcheck drives a favorites HTTP API through its documented contract:
session acquisition, form-encoded spot creation, boundary and alphabet
validation, color tokens, credential expiry, and id monotonicity.

It can also serve a local reference implementation of the contract to
validate the harness itself or to dry-run scenario files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newScenariosCmd())

	return root
}

// Execute runs the command tree and maps the outcome to an exit code.
func Execute() int {
	err := newRootCmd().Execute()
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, errRunFailed) {
		return ExitFailures
	}
	fmt.Fprintln(os.Stderr, "favcheck:", err)
	return ExitError
}
