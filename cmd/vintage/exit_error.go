// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"vintage-cli/internal/issue"

	"github.com/spf13/cobra"
)

const (
	// ExitDiscoveryFailed is returned when discovery could not select classes.
	ExitDiscoveryFailed = 1
	// ExitUsage is returned for invalid flags or arguments.
	ExitUsage = 2
	// ExitDiagnostics is returned by --strict when diagnostics were reported.
	ExitDiagnostics = 3
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// reportExitError prints an ExitError with its suggestions and silences
// cobra's own error line. Other errors pass through untouched.
func reportExitError(cmd *cobra.Command, app *App, err error, verbose bool) error {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err != nil {
		fmt.Fprintf(app.Stderr, "\n%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(exitErr.Err, verbose))
		var ae *issue.ActionableError
		if errors.As(exitErr.Err, &ae) && ae.Issue != 0 {
			if verbose {
				renderIssue(app, ae.Issue)
			} else {
				fmt.Fprintln(app.Stderr, SubtitleStyle.Render(fmt.Sprintf("See 'vintage issue %d' for details.", ae.Issue)))
			}
		}
		cmd.SilenceErrors = true
	}
	return err
}
