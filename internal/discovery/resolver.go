// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"context"
	"fmt"
	"io"

	"vintage-cli/internal/classpath"
	"vintage-cli/internal/runner"
	"vintage-cli/pkg/legacy"
	"vintage-cli/pkg/plan"

	"github.com/charmbracelet/log"
)

type (
	// ClassSource is the catalog the resolver selects classes from.
	ClassSource interface {
		Lookup(name string) (legacy.Class, error)
		ClassesInPackage(pkg string) (*classpath.Scan, error)
		ScanRoots(roots ...string) (*classpath.Scan, error)
	}

	// Resolver turns plan selectors into an ordered, duplicate-free list of
	// candidate classes.
	Resolver struct {
		source  ClassSource
		builder *runner.Builder
		logger  *log.Logger
	}

	// Candidates is the resolver output.
	Candidates struct {
		// Classes in selector order, first occurrence wins.
		Classes []legacy.Class
		// Diagnostics for manifests skipped while scanning.
		Diagnostics []Diagnostic

		// seen holds every class scanned during resolution, candidate or not,
		// so suite members declared under a selected root can be resolved.
		seen map[string]legacy.Class
	}

	// runLookup resolves suite members against the classes seen in this run
	// first and the catalog second.
	runLookup struct {
		seen     map[string]legacy.Class
		fallback runner.ClassLookup
	}
)

// NewResolver creates a Resolver. A nil logger discards output.
func NewResolver(source ClassSource, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Resolver{
		source:  source,
		builder: runner.NewBuilder(source),
		logger:  logger,
	}
}

// Resolve selects the candidate classes for spec. A missing class or an
// unusable root fails the call; manifests that fail to parse are reported as
// diagnostics and the remaining classes are still resolved.
func (r *Resolver) Resolve(ctx context.Context, spec *plan.Specification) (*Candidates, error) {
	out := &Candidates{seen: make(map[string]legacy.Class)}
	picked := make(map[string]bool)
	reported := make(map[string]bool)

	for _, sel := range spec.Selectors() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		classes, skipped, err := r.selectClasses(sel)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", sel, err)
		}

		for _, s := range skipped {
			if reported[s.Path] {
				continue
			}
			reported[s.Path] = true
			out.Diagnostics = append(out.Diagnostics, NewDiagnosticWithCause(
				SeverityWarning, CodeManifestSkipped,
				"manifest skipped: failed to parse", s.Path, s.Err))
		}

		for _, c := range classes {
			if _, ok := out.seen[c.Name]; !ok {
				out.seen[c.Name] = c
			}
			if picked[c.Name] {
				continue
			}
			if !r.isCandidate(c) {
				continue
			}
			picked[c.Name] = true
			out.Classes = append(out.Classes, c)
			r.logger.Debug("resolved candidate", "class", c.Name, "selector", sel.String())
		}
	}

	return out, nil
}

func (r *Resolver) selectClasses(sel plan.Selector) ([]legacy.Class, []classpath.SkippedManifest, error) {
	switch s := sel.(type) {
	case plan.ClassSelector:
		c, err := r.source.Lookup(s.Name)
		if err != nil {
			return nil, nil, err
		}
		return []legacy.Class{c}, nil, nil
	case plan.PackageSelector:
		scan, err := r.source.ClassesInPackage(s.Name)
		if err != nil {
			return nil, nil, err
		}
		return scan.Classes, scan.Skipped, nil
	case plan.RootSelector:
		scan, err := r.source.ScanRoots(s.Roots...)
		if err != nil {
			return nil, nil, err
		}
		return scan.Classes, scan.Skipped, nil
	default:
		return nil, nil, &plan.InvalidSelectorError{Selector: sel, Reason: "unsupported selector type"}
	}
}

func (r *Resolver) isCandidate(c legacy.Class) bool {
	switch {
	case c.IsForeign():
		r.logger.Debug("class is run by another engine", "class", c.Name, "runWith", c.RunWith)
		return false
	case !r.builder.HasTestElements(c):
		r.logger.Debug("class has no test elements", "class", c.Name)
		return false
	default:
		return true
	}
}

// Lookup implements runner.ClassLookup.
func (l *runLookup) Lookup(name string) (legacy.Class, error) {
	if c, ok := l.seen[name]; ok {
		return c, nil
	}
	return l.fallback.Lookup(name)
}
