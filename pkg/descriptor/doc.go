// SPDX-License-Identifier: MPL-2.0

// Package descriptor defines the generic test descriptor tree produced by
// discovery and consumed by execution and reporting layers.
//
// A Descriptor is built once per discovery run and treated as read-only
// afterwards: accessors return copies of internal collections.
package descriptor
