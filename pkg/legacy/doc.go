// SPDX-License-Identifier: MPL-2.0

// Package legacy models the boundary to the legacy hierarchical test-runner
// framework.
//
// The framework's own view of a test class is a Class (identity plus the
// declared metadata a reflective runner would read), and the result of
// constructing a runner for it is an Outcome holding a native Description
// tree. Discovery consumes only the label and child structure of that tree.
//
// Classes are declared in CUE manifests, one or more classes per file:
//
//	pkg: "org.example.samples"
//	classes: [{
//		name:       "PlainTestCase"
//		categories: ["org.example.Categories.Plain"]
//		methods: [{name: "failingTest", categories: ["org.example.Categories.Failing"]}]
//	}]
package legacy
