// SPDX-License-Identifier: MPL-2.0

// Package benchmark provides benchmarks for PGO profile generation.
// These benchmarks cover the hot paths of a discovery run:
//   - CUE manifest parsing and schema validation
//   - Classpath scanning with and without the manifest cache
//   - Native tree construction and translation
//   - End-to-end discovery, sequential and parallel
//
// To generate a profile, run:
//
//	go test ./internal/benchmark -bench . -cpuprofile default.pgo
package benchmark
