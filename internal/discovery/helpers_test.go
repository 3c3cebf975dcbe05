// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"context"
	"testing"

	"vintage-cli/internal/classpath"
	"vintage-cli/internal/testutil"
	"vintage-cli/pkg/descriptor"
	"vintage-cli/pkg/plan"
)

const samplesPkg = "org.example.vintage"

// samplesManifest declares the sample classes used throughout the tests.
const samplesManifest = `
pkg: "org.example.vintage"
classes: [{
	name:       "PlainJUnit4TestCaseWithSingleTestWhichFails"
	categories: ["org.example.vintage.Plain"]
	methods: [{name: "failingTest", categories: ["org.example.vintage.Failing"]}]
}, {
	name:       "PlainJUnit4TestCaseWithFiveTests"
	categories: ["org.example.vintage.Plain"]
	methods: [
		{name: "abortedTest"},
		{name: "failingTest", categories: ["org.example.vintage.Failing"]},
		{name: "ignoredTest1_withoutReason", ignored: true, categories: ["org.example.vintage.Skipped"]},
		{name: "ignoredTest2_withReason", ignored: true, reason: "a custom reason", categories: ["org.example.vintage.SkippedWithReason"]},
		{name: "successfulTest"},
	]
}, {
	name:    "IgnoredJUnit4TestCase"
	ignored: true
	reason:  "complete class is ignored"
	methods: [{name: "failingTest"}]
}, {
	name:    "JUnit4TestCaseWithOverloadedMethod"
	runner:  "theories"
	methods: [{name: "theory", parameters: ["int"]}, {name: "theory", parameters: ["java.lang.String"]}]
}, {
	name:    "PlainJUnit3TestCaseWithSingleTestWhichFails"
	style:   "junit3"
	methods: [{name: "setUp"}, {name: "test"}]
}, {
	name:    "JUnit3SuiteWithSingleTestCaseWithSingleTestWhichFails"
	style:   "junit3-suite"
	members: ["PlainJUnit3TestCaseWithSingleTestWhichFails"]
}, {
	name:    "JUnit4SuiteWithJUnit3SuiteWithSingleTestCase"
	style:   "suite"
	members: ["JUnit3SuiteWithSingleTestCaseWithSingleTestWhichFails"]
}, {
	name:    "PlainOldJavaClassWithoutAnyTest"
	style:   "plain"
	methods: [{name: "doSomething"}]
}, {
	name:    "TestCaseRunWithPlatform"
	runWith: "platform"
	methods: [{name: "test"}]
}]
`

// fqn qualifies a sample class name.
func fqn(simple string) string { return samplesPkg + "." + simple }

// newSamplesEngine writes the sample manifest into a fresh classpath root
// and returns an engine over it together with the root.
func newSamplesEngine(t *testing.T, opts ...Option) (*Engine, string) {
	t.Helper()
	root := t.TempDir()
	testutil.MustWriteFile(t, root, "org/example/vintage/samples.cue", samplesManifest)
	return newTestEngine(t, []string{root}, opts...), root
}

func newTestEngine(t *testing.T, cp []string, opts ...Option) *Engine {
	t.Helper()
	catalog, err := classpath.New(cp)
	if err != nil {
		t.Fatalf("classpath.New() error = %v", err)
	}
	return NewEngine(catalog, opts...)
}

func mustDiscover(t *testing.T, e *Engine, spec *plan.Specification) *Result {
	t.Helper()
	result, err := e.Discover(context.Background(), spec)
	if err != nil {
		t.Fatalf("Discover(%s) error = %v", spec, err)
	}
	return result
}

// onlyChild fails unless d has exactly one child.
func onlyChild(t *testing.T, d *descriptor.Descriptor) *descriptor.Descriptor {
	t.Helper()
	children := d.Children()
	if len(children) != 1 {
		t.Fatalf("%s has %d children, want 1", d.UniqueID(), len(children))
	}
	return children[0]
}

func assertNode(t *testing.T, d *descriptor.Descriptor, id, display string, container, test bool) {
	t.Helper()
	if d.UniqueID() != id {
		t.Errorf("UniqueID() = %q, want %q", d.UniqueID(), id)
	}
	if d.DisplayName() != display {
		t.Errorf("DisplayName() of %s = %q, want %q", id, d.DisplayName(), display)
	}
	if d.IsContainer() != container {
		t.Errorf("IsContainer() of %s = %v, want %v", id, d.IsContainer(), container)
	}
	if d.IsTest() != test {
		t.Errorf("IsTest() of %s = %v, want %v", id, d.IsTest(), test)
	}
}

func tagStrings(d *descriptor.Descriptor) []string {
	tags := d.Tags()
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = string(tag)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func displayNames(ds []*descriptor.Descriptor) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.DisplayName()
	}
	return out
}

func hasDiagnostic(diags []Diagnostic, code DiagnosticCode) bool {
	for _, d := range diags {
		if d.Code == code {
			return true
		}
	}
	return false
}
