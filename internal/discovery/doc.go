// SPDX-License-Identifier: MPL-2.0

// Package discovery turns a discovery plan into a descriptor tree.
//
// A run has four stages that share no state across calls:
//   - resolver.go: selects candidate classes from the catalog and drops
//     duplicates, plain classes and classes owned by another engine;
//   - the runner package builds each candidate's native description tree;
//   - translate.go: converts native trees into descriptors with stable,
//     hierarchical unique IDs and inherited tags;
//   - filter.go: drops top-level subtrees rejected by the plan's class filters.
//
// engine.go wires the stages together. Problems with single candidates or
// manifests are returned as Diagnostics; only selection failures abort a run.
package discovery
