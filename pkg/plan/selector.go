// SPDX-License-Identifier: MPL-2.0

package plan

import (
	"fmt"
	"strings"
)

type (
	// Selector picks candidate classes. It is one of ClassSelector,
	// PackageSelector or RootSelector.
	Selector interface {
		fmt.Stringer
		selector()
	}

	// ClassSelector selects a single class by fully qualified name.
	ClassSelector struct {
		Name string
	}

	// PackageSelector selects the classes of one package, excluding
	// sub-packages.
	PackageSelector struct {
		Name string
	}

	// RootSelector selects every class reachable from the given roots.
	RootSelector struct {
		Roots []string
	}
)

// ForClass selects a single class.
func ForClass(name string) Selector {
	return ClassSelector{Name: name}
}

// ForPackage selects the classes of a package.
func ForPackage(name string) Selector {
	return PackageSelector{Name: name}
}

// AllTests selects every class under the given classpath roots.
func AllTests(roots ...string) Selector {
	return RootSelector{Roots: append([]string(nil), roots...)}
}

func (ClassSelector) selector()   {}
func (PackageSelector) selector() {}
func (RootSelector) selector()    {}

// String implements fmt.Stringer.
func (s ClassSelector) String() string { return "class:" + s.Name }

// String implements fmt.Stringer.
func (s PackageSelector) String() string { return "package:" + s.Name }

// String implements fmt.Stringer.
func (s RootSelector) String() string { return "roots:" + strings.Join(s.Roots, ",") }
