// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"vintage-cli/internal/config"
	"vintage-cli/internal/testutil"
)

// calculatorManifest declares two test classes and one plain class.
const calculatorManifest = `
pkg: "org.example"
classes: [{
	name:       "CalculatorTest"
	categories: ["org.example.Fast"]
	methods: [{name: "adds"}, {name: "subtracts"}]
}, {
	name: "SlowTest"
	methods: [{name: "waits"}]
}, {
	name:  "Helper"
	style: "plain"
	methods: [{name: "help"}]
}]
`

// staticProvider returns a fixed configuration.
type staticProvider struct {
	loaded *config.Loaded
	err    error
}

func (p *staticProvider) Load(context.Context, config.LoadOptions) (*config.Loaded, error) {
	return p.loaded, p.err
}

// newTestApp creates an App with captured output and cfg as configuration.
func newTestApp(cfg *config.Config) (app *App, stdout, stderr *bytes.Buffer) {
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	app = &App{
		Config: &staticProvider{loaded: &config.Loaded{Config: cfg}},
		Stdout: stdout,
		Stderr: stderr,
	}
	return app, stdout, stderr
}

// execute runs the root command with args.
func execute(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCommand(app)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

// classpathDir writes the calculator manifest into a fresh directory.
func classpathDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testutil.MustWriteFile(t, dir, "org/example/calculator.cue", calculatorManifest)
	return dir
}

// syncBuffer is a bytes.Buffer safe for a writer goroutine and a polling reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
