// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vintage-cli/internal/classpath"
	"vintage-cli/internal/config"
	"vintage-cli/internal/discovery"
	"vintage-cli/internal/issue"
	"vintage-cli/internal/watch"
	"vintage-cli/pkg/legacy"
	"vintage-cli/pkg/plan"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/exp/slices"
)

// discoverFlags are the flags of `vintage discover`.
type discoverFlags struct {
	classes    []string
	packages   []string
	roots      []string
	filters    []string
	categories []string
	classpath  []string
	format     string
	prefix     string
	parallel   int
	strict     bool
	watch      bool
}

// discoverSettings are the effective values after merging config and flags.
type discoverSettings struct {
	classpath []string
	format    config.OutputFormat
	prefix    string
	parallel  int
	cacheSize int
	verbose   bool
}

func newDiscoverCommand(app *App, root *rootFlags) *cobra.Command {
	f := &discoverFlags{}

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Discover test classes and print the descriptor tree",
		Long: `Discover test classes and print the descriptor tree.

Selectors are combined in order; a class selected twice is reported once.
With no selector, every class on the configured classpath is discovered.
Filters apply to top-level classes and must all match.`,
		Example: `  vintage discover --root build/classes
  vintage discover --class org.example.CalculatorTest --format json
  vintage discover --package org.example --filter '.*IntegrationTest'
  vintage discover --root build/classes --category org.example.Fast -o yaml
  vintage discover --root build/classes --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportExitError(cmd, app, runDiscover(cmd, app, root, f), root.verbose)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVar(&f.classes, "class", nil, "select a class by fully qualified name (repeatable)")
	flags.StringArrayVar(&f.packages, "package", nil, "select every class of a package, sub-packages excluded (repeatable)")
	flags.StringArrayVar(&f.roots, "root", nil, "select every class below a directory (repeatable)")
	flags.StringArrayVar(&f.filters, "filter", nil, "keep classes whose fully qualified name matches the regexp (repeatable, ANDed)")
	flags.StringArrayVar(&f.categories, "category", nil, "keep classes declaring the category (repeatable, ANDed)")
	flags.StringArrayVar(&f.classpath, "classpath", nil, "classpath root used for class and package lookups (repeatable, replaces config)")
	flags.StringVarP(&f.format, "format", "o", "", "output format: text, json, yaml or toml (default from config)")
	flags.StringVar(&f.prefix, "prefix", "", "engine prefix of unique IDs (default from config)")
	flags.IntVar(&f.parallel, "parallel", 0, "number of classes built concurrently (default from config)")
	flags.BoolVar(&f.strict, "strict", false, "exit with status 3 when diagnostics are reported")
	flags.BoolVarP(&f.watch, "watch", "w", false, "rediscover whenever a manifest below the roots or classpath changes")

	return cmd
}

func runDiscover(cmd *cobra.Command, app *App, root *rootFlags, f *discoverFlags) error {
	loaded, err := app.loadConfig(cmd, root)
	if err != nil {
		return &ExitError{Code: ExitUsage, Err: err}
	}

	settings, err := resolveSettings(loaded.Config, root, f, cmd.Flags())
	if err != nil {
		return &ExitError{Code: ExitUsage, Err: err}
	}

	spec, err := buildSpecification(f, settings.classpath)
	if err != nil {
		return &ExitError{Code: ExitUsage, Err: err}
	}

	logger := app.newLogger(settings.verbose)
	catalog, err := classpath.New(settings.classpath,
		classpath.WithCacheSize(settings.cacheSize),
		classpath.WithLogger(logger.WithPrefix("classpath")))
	if err != nil {
		return err
	}

	engine := discovery.NewEngine(catalog,
		discovery.WithPrefix(settings.prefix),
		discovery.WithParallelism(settings.parallel),
		discovery.WithLogger(logger.WithPrefix("discovery")))

	result, err := discoverOnce(cmd.Context(), app, engine, spec, settings)
	if err != nil {
		return &ExitError{Code: ExitDiscoveryFailed, Err: discoveryError(err)}
	}

	if f.watch {
		return watchManifests(cmd.Context(), app, engine, spec, settings, logger, watchRoots(f.roots, settings.classpath))
	}

	if f.strict && len(result.Diagnostics) > 0 {
		return &ExitError{
			Code: ExitDiagnostics,
			Err:  fmt.Errorf("%d diagnostic(s) reported", len(result.Diagnostics)),
		}
	}
	return nil
}

// discoverOnce runs one discovery and prints the tree and diagnostics.
func discoverOnce(ctx context.Context, app *App, engine *discovery.Engine, spec *plan.Specification, settings *discoverSettings) (*discovery.Result, error) {
	result, err := engine.Discover(ctx, spec)
	if err != nil {
		return nil, err
	}
	if err := writeResult(app.Stdout, result.Root, settings.format, settings.verbose); err != nil {
		return nil, err
	}
	writeDiagnostics(app.Stderr, result.Diagnostics, settings.verbose)
	return result, nil
}

// watchManifests repeats the discovery from scratch whenever a manifest
// below roots changes, until ctx is cancelled.
func watchManifests(ctx context.Context, app *App, engine *discovery.Engine, spec *plan.Specification,
	settings *discoverSettings, logger *log.Logger, roots []string,
) error {
	if len(roots) == 0 {
		return &ExitError{Code: ExitUsage, Err: errors.New("--watch needs --root or a configured classpath")}
	}

	w, err := watch.New(watch.Config{
		Roots: roots,
		Match: func(path string) bool {
			return strings.HasSuffix(path, legacy.ManifestExt)
		},
		Logger: logger.WithPrefix("watch"),
		OnChange: func(ctx context.Context, changed []string) error {
			fmt.Fprintln(app.Stderr, SubtitleStyle.Render(fmt.Sprintf("\n%d manifest(s) changed, rediscovering", len(changed))))
			if _, err := discoverOnce(ctx, app, engine, spec, settings); err != nil {
				fmt.Fprintf(app.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(discoveryError(err), settings.verbose))
			}
			return nil
		},
	})
	if err != nil {
		return &ExitError{Code: ExitUsage, Err: err}
	}

	fmt.Fprintln(app.Stderr, SubtitleStyle.Render("Watching for manifest changes. Press Ctrl+C to stop."))
	return w.Run(ctx)
}

// watchRoots merges selected roots and the classpath, dropping duplicates.
func watchRoots(selected, cp []string) []string {
	var roots []string
	seen := make(map[string]bool)
	for _, root := range append(slices.Clone(selected), cp...) {
		if !seen[root] {
			seen[root] = true
			roots = append(roots, root)
		}
	}
	return roots
}

// resolveSettings merges configuration with explicitly set flags.
func resolveSettings(cfg *config.Config, root *rootFlags, f *discoverFlags, flags *pflag.FlagSet) (*discoverSettings, error) {
	s := &discoverSettings{
		classpath: cfg.ClasspathStrings(),
		format:    cfg.UI.Format,
		prefix:    string(cfg.EnginePrefix),
		parallel:  cfg.Parallelism,
		cacheSize: cfg.ManifestCacheSize,
		verbose:   root.verbose || cfg.UI.Verbose,
	}

	if flags.Changed("classpath") {
		s.classpath = f.classpath
	}
	if flags.Changed("format") {
		format := config.OutputFormat(f.format)
		if valid, errs := format.IsValid(); !valid {
			return nil, errs[0]
		}
		s.format = format
	}
	if flags.Changed("prefix") {
		prefix := config.EnginePrefix(f.prefix)
		if valid, errs := prefix.IsValid(); !valid {
			return nil, errs[0]
		}
		s.prefix = f.prefix
	}
	if flags.Changed("parallel") {
		if f.parallel < 1 {
			return nil, fmt.Errorf("--parallel must be at least 1, got %d", f.parallel)
		}
		s.parallel = f.parallel
	}

	return s, nil
}

// buildSpecification turns selector and filter flags into a plan.
func buildSpecification(f *discoverFlags, cp []string) (*plan.Specification, error) {
	var selectors []plan.Selector
	for _, name := range f.classes {
		selectors = append(selectors, plan.ForClass(name))
	}
	for _, pkg := range f.packages {
		selectors = append(selectors, plan.ForPackage(pkg))
	}
	if len(f.roots) > 0 {
		selectors = append(selectors, plan.AllTests(f.roots...))
	}

	if len(selectors) == 0 {
		if len(cp) == 0 {
			return nil, issue.NewErrorContext().
				WithOperation("build discovery plan").
				WithSuggestion("Select classes with --class, --package or --root").
				WithSuggestion("Or configure a classpath and run without selectors").
				WithIssue(issue.InvalidSelectorId).
				Wrap(errors.New("nothing to discover")).
				BuildError()
		}
		selectors = append(selectors, plan.AllTests(cp...))
	}

	spec := plan.Build(selectors...)
	for _, pattern := range f.filters {
		filter, err := plan.ClassNameMatches(pattern)
		if err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("compile class filter").
				WithResource(pattern).
				WithSuggestion("Use Go regular expression syntax; the pattern must match the whole class name").
				WithIssue(issue.InvalidFilterPatternId).
				Wrap(err).
				BuildError()
		}
		spec.FilterWith(filter)
	}
	for _, category := range f.categories {
		spec.FilterWith(plan.HasCategory(category))
	}

	return spec, nil
}

// discoveryError attaches guidance to selection failures.
func discoveryError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	ctx := issue.NewErrorContext().WithOperation("discover tests")

	var notFound *classpath.ClassNotFoundError
	var badRoot *classpath.InvalidRootError
	switch {
	case errors.As(err, &notFound):
		ctx.WithResource(notFound.Name).
			WithSuggestion("Check the fully qualified class name").
			WithSuggestion("Add the directory holding its manifest with --classpath").
			WithIssue(issue.ClassNotFoundId)
	case errors.As(err, &badRoot):
		ctx.WithResource(badRoot.Root).
			WithSuggestion("Verify the directory exists and is readable").
			WithIssue(issue.ClasspathRootInvalidId)
	case errors.Is(err, plan.ErrInvalidSelector):
		ctx.WithSuggestion("Class and package names are dotted names without empty segments").
			WithIssue(issue.InvalidSelectorId)
	}

	return ctx.Wrap(err).BuildError()
}
