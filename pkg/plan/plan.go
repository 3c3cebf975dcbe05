// SPDX-License-Identifier: MPL-2.0

package plan

import (
	"errors"
	"fmt"
	"strings"

	"vintage-cli/pkg/legacy"
)

// ErrInvalidSelector is the sentinel wrapped by InvalidSelectorError.
var ErrInvalidSelector = errors.New("invalid selector")

type (
	// InvalidSelectorError is returned by Validate for a selector that can
	// never resolve.
	InvalidSelectorError struct {
		Selector Selector
		Reason   string
	}

	// Specification is the input of one discovery run. Selectors are fixed
	// at Build time; filters are added with FilterWith.
	Specification struct {
		selectors []Selector
		filters   []ClassFilter
	}
)

// Error implements the error interface for InvalidSelectorError.
func (e *InvalidSelectorError) Error() string {
	return fmt.Sprintf("invalid selector %s: %s", e.Selector, e.Reason)
}

// Unwrap returns ErrInvalidSelector for errors.Is() compatibility.
func (e *InvalidSelectorError) Unwrap() error { return ErrInvalidSelector }

// Build creates a Specification from selectors. Identical selectors are
// kept once, in first-seen order.
func Build(selectors ...Selector) *Specification {
	s := &Specification{}
	seen := make(map[string]bool, len(selectors))
	for _, sel := range selectors {
		if sel == nil {
			continue
		}
		key := sel.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		s.selectors = append(s.selectors, sel)
	}
	return s
}

// FilterWith adds a filter. Filters combine with AND.
func (s *Specification) FilterWith(f ClassFilter) *Specification {
	if f != nil {
		s.filters = append(s.filters, f)
	}
	return s
}

// Selectors returns the selectors in order.
func (s *Specification) Selectors() []Selector {
	return append([]Selector(nil), s.selectors...)
}

// Filters returns the filters in the order they were added.
func (s *Specification) Filters() []ClassFilter {
	return append([]ClassFilter(nil), s.filters...)
}

// Accept reports whether c passes every filter. An empty filter set accepts
// everything.
func (s *Specification) Accept(c legacy.Class) bool {
	for _, f := range s.filters {
		if !f.Accept(c) {
			return false
		}
	}
	return true
}

// Validate checks selectors for values that can never resolve.
func (s *Specification) Validate() error {
	var errs []error
	for _, sel := range s.selectors {
		switch v := sel.(type) {
		case ClassSelector:
			if err := legacy.ValidateClassName(v.Name); err != nil {
				errs = append(errs, &InvalidSelectorError{Selector: sel, Reason: err.Error()})
			}
		case PackageSelector:
			if v.Name != "" {
				if err := legacy.ValidateClassName(v.Name); err != nil {
					errs = append(errs, &InvalidSelectorError{Selector: sel, Reason: "malformed package name"})
				}
			}
		case RootSelector:
			if len(v.Roots) == 0 {
				errs = append(errs, &InvalidSelectorError{Selector: sel, Reason: "no roots given"})
			}
			for _, root := range v.Roots {
				if strings.TrimSpace(root) == "" {
					errs = append(errs, &InvalidSelectorError{Selector: sel, Reason: "empty root path"})
				}
			}
		}
	}
	return errors.Join(errs...)
}

// String summarizes the specification for logs.
func (s *Specification) String() string {
	parts := make([]string, 0, len(s.selectors))
	for _, sel := range s.selectors {
		parts = append(parts, sel.String())
	}
	return fmt.Sprintf("selectors=[%s] filters=%d", strings.Join(parts, " "), len(s.filters))
}
