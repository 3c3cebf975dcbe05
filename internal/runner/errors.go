// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTestElements is returned for classes without test methods or members.
	ErrNoTestElements = errors.New("no test elements")
	// ErrUnknownRunner is returned for a runner name the framework does not know.
	ErrUnknownRunner = errors.New("unknown runner")
	// ErrSuiteCycle is returned when a suite contains itself, directly or not.
	ErrSuiteCycle = errors.New("suite cycle")
	// ErrForeignClass is returned for classes owned by another engine.
	ErrForeignClass = errors.New("class is run by another engine")
	// ErrNoParameterSets is returned for a parameterized class without data.
	ErrNoParameterSets = errors.New("no parameter sets")
)

// InitializationError reports that the runner for Class could not be built.
type InitializationError struct {
	Class string
	Cause error
}

// Error implements the error interface.
func (e *InitializationError) Error() string {
	return fmt.Sprintf("cannot initialize runner for %s: %v", e.Class, e.Cause)
}

// Unwrap returns the cause for errors.Is/As.
func (e *InitializationError) Unwrap() error { return e.Cause }
