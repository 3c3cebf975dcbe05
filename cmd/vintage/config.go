// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"vintage-cli/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `vintage config` command tree.
func newConfigCommand(app *App, root *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage vintage configuration",
		Long: `Manage vintage configuration.

Configuration is stored in:
  - Linux: ~/.config/vintage/config.cue
  - macOS: ~/Library/Application Support/vintage/config.cue
  - Windows: %APPDATA%\vintage\config.cue

When that file is missing, a config.cue in the working directory is used.
Every key can also be set from the environment, e.g. VINTAGE_PARALLELISM=4.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := app.loadConfig(cmd, root)
			if err != nil {
				return reportExitError(cmd, app, &ExitError{Code: ExitUsage, Err: err}, root.verbose)
			}
			showConfig(app.Stdout, loaded)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := app.loadConfig(cmd, root)
			if err != nil {
				return reportExitError(cmd, app, &ExitError{Code: ExitUsage, Err: err}, root.verbose)
			}
			_, err = fmt.Fprint(app.Stdout, config.GenerateCUE(loaded.Config))
			return err
		},
	})

	var initDir string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.CreateDefaultConfig(initDir)
			if err != nil {
				return fmt.Errorf("failed to create config: %w", err)
			}
			fmt.Fprintf(app.Stdout, "%s Configuration at %s\n", SuccessStyle.Render("✓"), path)
			return nil
		},
	}
	initCmd.Flags().StringVar(&initDir, "dir", "", "directory to create config.cue in (default is the platform config directory)")
	cfgCmd.AddCommand(initCmd)

	return cfgCmd
}

func showConfig(w io.Writer, loaded *config.Loaded) {
	keyStyle := CmdStyle
	valueStyle := SuccessStyle
	cfg := loaded.Config

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if loaded.Path != "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), loaded.Path)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("engine_prefix"), valueStyle.Render(string(cfg.EnginePrefix)))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("parallelism"), valueStyle.Render(fmt.Sprintf("%d", cfg.Parallelism)))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("manifest_cache_size"), valueStyle.Render(fmt.Sprintf("%d", cfg.ManifestCacheSize)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("classpath"))
	if len(cfg.Classpath) == 0 {
		fmt.Fprintf(w, "  %s\n", SubtitleStyle.Render("(none configured)"))
	} else {
		for _, root := range cfg.Classpath {
			fmt.Fprintf(w, "  - %s\n", valueStyle.Render(string(root)))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))
	fmt.Fprintf(w, "  format: %s\n", valueStyle.Render(string(cfg.UI.Format)))
}
