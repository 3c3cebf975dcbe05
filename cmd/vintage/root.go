// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"vintage-cli/internal/config"
	"vintage-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

type (
	// App holds the dependencies shared by every command.
	App struct {
		Config config.Provider
		Stdout io.Writer
		Stderr io.Writer
	}

	// rootFlags are the persistent flags of the root command.
	rootFlags struct {
		verbose bool
		cfgFile string
	}
)

// NewApp creates an App writing to the process's standard streams.
func NewApp() *App {
	return &App{
		Config: config.NewProvider(),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// NewRootCommand builds the command tree.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "vintage",
		Short: "Discover legacy test classes as a descriptor tree",
		Long: TitleStyle.Render("vintage") + SubtitleStyle.Render(" - Discover legacy test classes as a descriptor tree") + `

vintage reads class manifests (CUE files describing legacy test classes),
asks the legacy runner rules what each class would run, and prints the
result as a tree of containers and tests with stable unique IDs.

` + SubtitleStyle.Render("Examples:") + `
  vintage discover --root build/classes           Discover everything below a directory
  vintage discover --class org.example.MyTest     Discover a single class
  vintage discover --package org.example -o json  Export one package as JSON
  vintage config show                             Show current configuration`,
		SilenceUsage: true,
	}

	rootCmd.SetOut(app.Stdout)
	rootCmd.SetErr(app.Stderr)

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&flags.cfgFile, "config", "", "config file (default is $HOME/.config/vintage/config.cue)")

	rootCmd.AddCommand(newDiscoverCommand(app, flags))
	rootCmd.AddCommand(newConfigCommand(app, flags))
	rootCmd.AddCommand(newIssueCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI. It is called by main.main().
func Execute() {
	app := NewApp()
	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// loadConfig loads configuration honoring --config.
func (app *App) loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Loaded, error) {
	return app.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: flags.cfgFile})
}

// newLogger creates the CLI logger. Verbose mode lowers the level to debug.
func (app *App) newLogger(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(app.Stderr, log.Options{
		Prefix: "vintage",
		Level:  level,
	})
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
