// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strconv"

	"vintage-cli/internal/issue"

	"github.com/spf13/cobra"
)

// newIssueCommand creates `vintage issue`, which browses the issue catalog.
func newIssueCommand(app *App) *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "issue [id]",
		Short: "Explain a known problem and how to fix it",
		Long: `Explain a known problem and how to fix it.

Without an argument, lists every catalog entry. Errors that link to an entry
print its id; pass it here for the full guidance.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, i := range issue.Values() {
					fmt.Fprintf(app.Stdout, "%s  %s\n", CmdStyle.Render(fmt.Sprintf("%2d", i.Id())), i.Title())
				}
				return nil
			}

			n, err := strconv.Atoi(args[0])
			if err != nil {
				return &ExitError{Code: ExitUsage, Err: fmt.Errorf("issue id must be a number, got %q", args[0])}
			}
			i := issue.Get(issue.Id(n))
			if i == nil {
				return &ExitError{Code: ExitUsage, Err: fmt.Errorf("unknown issue %d", n)}
			}

			rendered, err := i.Render(style)
			if err != nil {
				return fmt.Errorf("failed to render issue %d: %w", n, err)
			}
			_, err = fmt.Fprint(app.Stdout, rendered)
			return err
		},
	}
	cmd.Flags().StringVar(&style, "style", "auto", "glamour style: auto, dark, light, notty or ascii")

	return cmd
}

// renderIssue prints a catalog entry on stderr.
func renderIssue(app *App, id issue.Id) {
	if i := issue.Get(id); i != nil {
		if rendered, err := i.Render("auto"); err == nil {
			fmt.Fprint(app.Stderr, rendered)
		}
	}
}
