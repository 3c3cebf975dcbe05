// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for vintage.
//
// This package implements the Cobra command hierarchy: discover, which runs
// one discovery and prints the descriptor tree, config, which inspects and
// initializes configuration, and issue, which browses the issue catalog.
package cmd
