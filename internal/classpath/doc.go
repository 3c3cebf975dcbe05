// SPDX-License-Identifier: MPL-2.0

// Package classpath locates legacy class manifests on disk and indexes the
// classes they declare.
//
// A classpath root is a directory tree of *.cue manifests. Roots are walked
// in lexical order and classes are reported in declaration order, so
// repeated scans of an unchanged tree yield the same sequence. Parsed
// manifests are cached by path and invalidated by size and modification
// time.
package classpath
