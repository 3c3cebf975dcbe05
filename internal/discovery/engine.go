// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"context"
	"errors"
	"fmt"
	"io"

	"vintage-cli/internal/runner"
	"vintage-cli/pkg/descriptor"
	"vintage-cli/pkg/legacy"
	"vintage-cli/pkg/plan"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultPrefix is the engine prefix of top-level unique IDs.
	DefaultPrefix = "junit4"
	// DefaultDisplayName is the display name of the engine root.
	DefaultDisplayName = "JUnit Vintage"
	// DefaultParallelism builds candidates one at a time.
	DefaultParallelism = 1
)

// ErrNilSpecification is returned when Discover is called without a plan.
var ErrNilSpecification = errors.New("discovery specification is nil")

type (
	// Engine runs discovery against a class source.
	Engine struct {
		source      ClassSource
		prefix      string
		displayName string
		parallelism int
		logger      *log.Logger
	}

	// Option configures an Engine.
	Option func(*Engine)

	// Result bundles the discovered tree with the diagnostics produced while
	// building it. Diagnostics include skipped manifests and candidates whose
	// runner could not be built; the CLI decides how to render them.
	Result struct {
		Root        *descriptor.Engine
		Diagnostics []Diagnostic
	}

	// slot is the per-candidate output, indexed by resolver order.
	slot struct {
		tree       *descriptor.Descriptor
		diagnostic *Diagnostic
	}
)

// WithPrefix sets the engine prefix. Empty values are ignored.
func WithPrefix(prefix string) Option {
	return func(e *Engine) {
		if prefix != "" {
			e.prefix = prefix
		}
	}
}

// WithDisplayName sets the display name of the engine root.
func WithDisplayName(name string) Option {
	return func(e *Engine) {
		if name != "" {
			e.displayName = name
		}
	}
}

// WithParallelism bounds how many candidates are built concurrently.
// Values below one are treated as one.
func WithParallelism(n int) Option {
	return func(e *Engine) {
		e.parallelism = max(n, 1)
	}
}

// WithLogger sets the logger; the default discards output.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an Engine that selects classes from source.
func NewEngine(source ClassSource, opts ...Option) *Engine {
	e := &Engine{
		source:      source,
		prefix:      DefaultPrefix,
		displayName: DefaultDisplayName,
		parallelism: DefaultParallelism,
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Prefix returns the engine prefix.
func (e *Engine) Prefix() string { return e.prefix }

// Discover resolves the candidates selected by spec, builds and translates
// each one, and applies the plan's class filters. Every call builds a fresh
// tree; nothing is shared with earlier results.
func (e *Engine) Discover(ctx context.Context, spec *plan.Specification) (*Result, error) {
	if spec == nil {
		return nil, ErrNilSpecification
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	candidates, err := NewResolver(e.source, e.logger).Resolve(ctx, spec)
	if err != nil {
		return nil, err
	}

	slots, err := e.buildAll(ctx, candidates)
	if err != nil {
		return nil, err
	}

	root := descriptor.NewEngine(e.prefix, e.displayName)
	diagnostics := candidates.Diagnostics
	for _, s := range slots {
		if s.diagnostic != nil {
			diagnostics = append(diagnostics, *s.diagnostic)
			continue
		}
		root.AddChild(s.tree)
	}

	ApplyFilters(root, spec.Filters())

	containers, tests := root.Count()
	e.logger.Debug("discovery finished",
		"plan", spec.String(),
		"classes", len(root.Children()),
		"containers", containers,
		"tests", tests,
		"diagnostics", len(diagnostics))

	return &Result{Root: root, Diagnostics: diagnostics}, nil
}

// buildAll runs runner construction and translation for every candidate.
// Slots are filled by index, so the output order is the resolver order for
// any parallelism.
func (e *Engine) buildAll(ctx context.Context, candidates *Candidates) ([]slot, error) {
	builder := runner.NewBuilder(&runLookup{seen: candidates.seen, fallback: e.source})
	translator := NewTranslator(e.prefix)
	slots := make([]slot, len(candidates.Classes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.parallelism)

	for i, c := range candidates.Classes {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			slots[i] = e.buildOne(builder, translator, c)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// A cancellation observed by the loop stops scheduling without an error
	// from any goroutine.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slots, nil
}

func (e *Engine) buildOne(builder *runner.Builder, translator *Translator, c legacy.Class) slot {
	outcome, err := builder.Build(c)
	if err != nil {
		e.logger.Debug("skipping candidate", "class", c.Name, "error", err)
		d := NewDiagnosticWithCause(SeverityWarning, CodeCandidateSkipped,
			fmt.Sprintf("class %s skipped: runner construction failed", c.Name), c.Origin, err)
		return slot{diagnostic: &d}
	}
	e.logger.Debug("built runner", "class", c.Name, "outcome", outcome.Kind().String())
	return slot{tree: translator.Translate(c, outcome)}
}
