// SPDX-License-Identifier: MPL-2.0

package legacy

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// StyleJUnit4 is an annotation-driven test class run by the default
	// block runner or the runner named in Class.Runner.
	StyleJUnit4 Style = "junit4"
	// StyleJUnit3 is a TestCase subclass; only methods prefixed with "test"
	// are test methods.
	StyleJUnit3 Style = "junit3"
	// StyleJUnit3Suite is a class exposing a static suite() of other classes.
	StyleJUnit3Suite Style = "junit3-suite"
	// StyleSuite is an annotation-declared suite of member classes.
	StyleSuite Style = "suite"
	// StylePlain is an ordinary class with no test elements.
	StylePlain Style = "plain"

	// RunnerDefault selects the framework's block runner.
	RunnerDefault = ""
	// RunnerTheories describes every theory method, overloads included.
	RunnerTheories = "theories"
	// RunnerParameterized describes one container per parameter set.
	RunnerParameterized = "parameterized"

	// RunWithPlatform marks a class claimed by the newer engine itself.
	RunWithPlatform = "platform"

	junit3MethodPrefix = "test"
)

// ErrInvalidClassName is the sentinel wrapped by InvalidClassNameError.
var ErrInvalidClassName = errors.New("invalid class name")

type (
	// Style is the structural kind of a legacy class.
	Style string

	// InvalidClassNameError is returned when a fully qualified name is empty
	// or contains an empty segment.
	InvalidClassNameError struct {
		Value string
	}

	// Method is a declared method of a legacy class.
	Method struct {
		// Name is the method name as the framework reports it.
		Name string `json:"name"`
		// Parameters lists parameter type names; overloads differ only here.
		Parameters []string `json:"parameters,omitempty"`
		// Ignored marks the method as skipped.
		Ignored bool `json:"ignored,omitempty"`
		// IgnoreReason is the optional reason attached to Ignored.
		IgnoreReason string `json:"reason,omitempty"`
		// Categories are the fully qualified names of category markers.
		Categories []string `json:"categories,omitempty"`
	}

	// Class is the identity and declared metadata of a legacy class.
	Class struct {
		// Name is the fully qualified class name.
		Name string
		// Package is the dotted package of the class; empty for the default package.
		Package string
		Style   Style
		Runner  string
		// RunWith names a foreign engine that owns the class.
		RunWith       string
		Ignored       bool
		IgnoreReason  string
		Categories    []string
		Methods       []Method
		Members       []string
		ParameterSets int
		// Origin is the manifest file the class was declared in.
		Origin string
	}
)

// Error implements the error interface for InvalidClassNameError.
func (e *InvalidClassNameError) Error() string {
	return fmt.Sprintf("invalid class name %q: must be a dotted name with non-empty segments", e.Value)
}

// Unwrap returns ErrInvalidClassName for errors.Is() compatibility.
func (e *InvalidClassNameError) Unwrap() error { return ErrInvalidClassName }

// QualifiedName joins a package and a simple class name.
func QualifiedName(pkg, simpleName string) string {
	if pkg == "" {
		return simpleName
	}
	return pkg + "." + simpleName
}

// ValidateClassName reports whether name is a usable fully qualified name.
func ValidateClassName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &InvalidClassNameError{Value: name}
	}
	for _, segment := range strings.Split(name, ".") {
		if segment == "" || strings.TrimSpace(segment) != segment {
			return &InvalidClassNameError{Value: name}
		}
	}
	return nil
}

// SourceName returns the fully qualified name; it lets a Class act as the
// source of a top-level descriptor.
func (c Class) SourceName() string { return c.Name }

// SimpleName returns the last segment of the fully qualified name.
func (c Class) SimpleName() string {
	if i := strings.LastIndex(c.Name, "."); i >= 0 {
		return c.Name[i+1:]
	}
	return c.Name
}

// IsForeign reports whether another engine claims the class.
func (c Class) IsForeign() bool {
	return c.RunWith == RunWithPlatform
}

// TestMethods returns the methods the framework treats as tests for the
// class style, in declaration order.
func (c Class) TestMethods() []Method {
	switch c.Style {
	case StylePlain, StyleSuite, StyleJUnit3Suite:
		return nil
	case StyleJUnit3:
		var methods []Method
		for _, m := range c.Methods {
			if strings.HasPrefix(m.Name, junit3MethodPrefix) {
				methods = append(methods, m)
			}
		}
		return methods
	default:
		return c.Methods
	}
}

// IsSuite reports whether the class aggregates other classes.
func (c Class) IsSuite() bool {
	return c.Style == StyleSuite || c.Style == StyleJUnit3Suite
}
