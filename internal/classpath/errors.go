// SPDX-License-Identifier: MPL-2.0

package classpath

import (
	"errors"
	"fmt"
)

var (
	// ErrClassNotFound is the sentinel wrapped by ClassNotFoundError.
	ErrClassNotFound = errors.New("class not found")
	// ErrInvalidRoot is the sentinel wrapped by InvalidRootError.
	ErrInvalidRoot = errors.New("invalid classpath root")
)

type (
	// ClassNotFoundError is returned when no root declares the class.
	ClassNotFoundError struct {
		Name string
	}

	// InvalidRootError is returned when a root cannot be walked.
	InvalidRootError struct {
		Root  string
		Cause error
	}

	// SkippedManifest records a manifest that could not be parsed. The rest
	// of the scan proceeds without it.
	SkippedManifest struct {
		Path string
		Err  error
	}
)

// Error implements the error interface for ClassNotFoundError.
func (e *ClassNotFoundError) Error() string {
	return fmt.Sprintf("class %s not found on the classpath", e.Name)
}

// Unwrap returns ErrClassNotFound for errors.Is() compatibility.
func (e *ClassNotFoundError) Unwrap() error { return ErrClassNotFound }

// Error implements the error interface for InvalidRootError.
func (e *InvalidRootError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("invalid classpath root %s", e.Root)
	}
	return fmt.Sprintf("invalid classpath root %s: %v", e.Root, e.Cause)
}

// Unwrap returns ErrInvalidRoot for errors.Is() compatibility. The
// underlying cause stays reachable through errors.As on the error itself.
func (e *InvalidRootError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrInvalidRoot}
	}
	return []error{ErrInvalidRoot, e.Cause}
}
