// SPDX-License-Identifier: MPL-2.0

package plan

import (
	"fmt"
	"regexp"

	"vintage-cli/pkg/legacy"
)

type (
	// ClassFilter decides whether a discovered class is kept.
	ClassFilter interface {
		Accept(c legacy.Class) bool
		String() string
	}

	classNameFilter struct {
		pattern string
		re      *regexp.Regexp
	}

	categoryFilter struct {
		category string
	}

	funcFilter struct {
		description string
		fn          func(legacy.Class) bool
	}
)

// ClassNameMatches keeps classes whose fully qualified name matches pattern
// as a whole.
func ClassNameMatches(pattern string) (ClassFilter, error) {
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("invalid class name pattern %q: %w", pattern, err)
	}
	return &classNameFilter{pattern: pattern, re: re}, nil
}

// MustClassNameMatches is like ClassNameMatches but panics on an invalid
// pattern.
func MustClassNameMatches(pattern string) ClassFilter {
	f, err := ClassNameMatches(pattern)
	if err != nil {
		panic(err)
	}
	return f
}

// HasCategory keeps classes that declare the given category marker.
func HasCategory(category string) ClassFilter {
	return &categoryFilter{category: category}
}

// FilterFunc adapts a predicate; description is used by String.
func FilterFunc(description string, fn func(legacy.Class) bool) ClassFilter {
	return &funcFilter{description: description, fn: fn}
}

func (f *classNameFilter) Accept(c legacy.Class) bool { return f.re.MatchString(c.Name) }

func (f *classNameFilter) String() string { return fmt.Sprintf("class name matches %q", f.pattern) }

func (f *categoryFilter) Accept(c legacy.Class) bool {
	for _, category := range c.Categories {
		if category == f.category {
			return true
		}
	}
	return false
}

func (f *categoryFilter) String() string { return "has category " + f.category }

func (f *funcFilter) Accept(c legacy.Class) bool { return f.fn(c) }

func (f *funcFilter) String() string { return f.description }
