// SPDX-License-Identifier: MPL-2.0

// Package runner reproduces the legacy framework's runner construction: given
// a declared class it decides whether the class has test elements and builds
// the native description tree the framework would report for it.
//
// Rules, in the order the framework applies them:
//   - a class claimed by another engine is rejected;
//   - an ignored class collapses to a single skipped leaf;
//   - suites describe each member class, recursively;
//   - junit3 classes describe their test-prefixed methods;
//   - junit4 classes describe every method through the default, theories or
//     parameterized runner.
package runner
