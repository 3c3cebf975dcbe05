// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"fmt"
	"strings"

	"vintage-cli/pkg/legacy"
)

type (
	// ClassLookup resolves suite members by fully qualified name.
	ClassLookup interface {
		Lookup(name string) (legacy.Class, error)
	}

	// Builder constructs native description trees.
	Builder struct {
		lookup ClassLookup
	}

	// build carries the suites currently under construction, for cycle
	// detection.
	build struct {
		lookup ClassLookup
		active []string
	}
)

// NewBuilder creates a Builder that resolves suite members through lookup.
func NewBuilder(lookup ClassLookup) *Builder {
	return &Builder{lookup: lookup}
}

// HasTestElements reports whether the framework would find anything to run
// in c. Suite members are not resolved here.
func (b *Builder) HasTestElements(c legacy.Class) bool {
	switch {
	case c.IsForeign():
		return false
	case c.Style == legacy.StylePlain:
		return false
	case c.IsSuite():
		return len(c.Members) > 0
	default:
		return len(c.TestMethods()) > 0
	}
}

// Build constructs the runner outcome for c.
func (b *Builder) Build(c legacy.Class) (legacy.Outcome, error) {
	if c.IsForeign() {
		return legacy.Outcome{}, &InitializationError{Class: c.Name, Cause: ErrForeignClass}
	}
	if c.Ignored && b.HasTestElements(c) {
		return legacy.Collapsed(), nil
	}

	st := &build{lookup: b.lookup}
	root, err := st.describe(c)
	if err != nil {
		return legacy.Outcome{}, err
	}
	return legacy.Normal(root), nil
}

func (st *build) describe(c legacy.Class) (legacy.Description, error) {
	if c.IsForeign() {
		return nil, &InitializationError{Class: c.Name, Cause: ErrForeignClass}
	}

	switch c.Style {
	case legacy.StyleSuite, legacy.StyleJUnit3Suite:
		return st.describeSuite(c)
	case legacy.StyleJUnit3:
		return st.describeMethods(c, c.TestMethods())
	case legacy.StyleJUnit4:
		return st.describeJUnit4(c)
	default:
		return nil, &InitializationError{Class: c.Name, Cause: ErrNoTestElements}
	}
}

func (st *build) describeJUnit4(c legacy.Class) (legacy.Description, error) {
	switch c.Runner {
	case legacy.RunnerDefault, legacy.RunnerTheories:
		return st.describeMethods(c, c.TestMethods())
	case legacy.RunnerParameterized:
		return st.describeParameterized(c)
	default:
		return nil, &InitializationError{
			Class: c.Name,
			Cause: fmt.Errorf("%w: %q", ErrUnknownRunner, c.Runner),
		}
	}
}

func (st *build) describeMethods(c legacy.Class, methods []legacy.Method) (legacy.Description, error) {
	if len(methods) == 0 {
		return nil, &InitializationError{Class: c.Name, Cause: ErrNoTestElements}
	}

	node := classNode(c)
	for _, m := range methods {
		node.AddChild(&legacy.Node{
			Label:       legacy.MethodLabel(m.Name, c.Name),
			Class:       c.Name,
			Method:      m.Name,
			Categorized: m.Categories,
		})
	}
	return node, nil
}

func (st *build) describeParameterized(c legacy.Class) (legacy.Description, error) {
	methods := c.TestMethods()
	if len(methods) == 0 {
		return nil, &InitializationError{Class: c.Name, Cause: ErrNoTestElements}
	}
	if c.ParameterSets == 0 {
		return nil, &InitializationError{Class: c.Name, Cause: ErrNoParameterSets}
	}

	node := classNode(c)
	for i := 0; i < c.ParameterSets; i++ {
		index := fmt.Sprintf("[%d]", i)
		set := &legacy.Node{Label: index, Class: c.Name}
		for _, m := range methods {
			set.AddChild(&legacy.Node{
				Label:       legacy.MethodLabel(m.Name+index, c.Name),
				Class:       c.Name,
				Method:      m.Name + index,
				Categorized: m.Categories,
			})
		}
		node.AddChild(set)
	}
	return node, nil
}

func (st *build) describeSuite(c legacy.Class) (legacy.Description, error) {
	if len(c.Members) == 0 {
		return nil, &InitializationError{Class: c.Name, Cause: ErrNoTestElements}
	}
	for _, name := range st.active {
		if name == c.Name {
			chain := strings.Join(append(st.active, c.Name), " -> ")
			return nil, &InitializationError{Class: c.Name, Cause: fmt.Errorf("%w: %s", ErrSuiteCycle, chain)}
		}
	}

	st.active = append(st.active, c.Name)
	defer func() { st.active = st.active[:len(st.active)-1] }()

	members := make([]legacy.Description, 0, len(c.Members))
	for _, name := range c.Members {
		member, err := st.describeMember(c, name)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	node := classNode(c)
	if c.Style == legacy.StyleJUnit3Suite {
		node.Label = suiteSummary(members)
	}
	node.Nested = members
	return node, nil
}

func (st *build) describeMember(suite legacy.Class, name string) (legacy.Description, error) {
	if st.lookup == nil {
		return nil, &InitializationError{Class: suite.Name, Cause: fmt.Errorf("cannot resolve member %s: no class lookup", name)}
	}
	member, err := st.lookup.Lookup(name)
	if err != nil {
		return nil, &InitializationError{Class: suite.Name, Cause: err}
	}
	// An ignored member is still described, as a childless class node.
	if member.Ignored && !member.IsForeign() {
		return classNode(member), nil
	}
	return st.describe(member)
}

// suiteSummary mirrors the label the framework gives an unnamed junit3 suite.
func suiteSummary(members []legacy.Description) string {
	count := 0
	for _, m := range members {
		count += legacy.CountTests(m)
	}
	example := ""
	if len(members) > 0 {
		example = fmt.Sprintf(" [example: %s]", members[0].DisplayName())
	}
	return fmt.Sprintf("TestSuite with %d tests%s", count, example)
}

func classNode(c legacy.Class) *legacy.Node {
	return &legacy.Node{
		Label:       c.Name,
		Class:       c.Name,
		Categorized: c.Categories,
	}
}
