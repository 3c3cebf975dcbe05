// SPDX-License-Identifier: MPL-2.0

// Package plan describes what to discover: an ordered set of selectors
// (single class, package, classpath root) and class filters that must all
// accept a candidate.
//
//	spec := plan.Build(plan.AllTests("build/classes"))
//	spec.FilterWith(plan.MustClassNameMatches(".*JUnit4.*"))
//	spec.FilterWith(plan.MustClassNameMatches(".*Plain.*"))
package plan
