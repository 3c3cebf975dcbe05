// SPDX-License-Identifier: MPL-2.0

package legacy

import "fmt"

const (
	// OutcomeNormal means the runner produced a description tree.
	OutcomeNormal OutcomeKind = iota
	// OutcomeCollapsed means the whole class is skipped and has no usable
	// children; it is reported as a single leaf.
	OutcomeCollapsed
)

type (
	// Description is a node of the framework's native description tree.
	Description interface {
		// DisplayName is the native label, e.g. "failingTest(org.example.Plain)".
		DisplayName() string
		// ClassName is the class the node was described from.
		ClassName() string
		// MethodName is the bare method name, empty for class and suite nodes.
		MethodName() string
		// Categories are the category markers declared on the described element.
		Categories() []string
		// Children are the nested descriptions in emission order.
		Children() []Description
	}

	// Node is the framework's concrete Description.
	Node struct {
		Label       string
		Class       string
		Method      string
		Categorized []string
		Nested      []Description
	}

	// OutcomeKind distinguishes the two results of runner construction.
	OutcomeKind int

	// Outcome is the result of constructing a runner for a class.
	Outcome struct {
		kind OutcomeKind
		root Description
	}
)

// DisplayName implements Description.
func (n *Node) DisplayName() string { return n.Label }

// ClassName implements Description.
func (n *Node) ClassName() string { return n.Class }

// MethodName implements Description.
func (n *Node) MethodName() string { return n.Method }

// Categories implements Description.
func (n *Node) Categories() []string { return n.Categorized }

// Children implements Description.
func (n *Node) Children() []Description { return n.Nested }

// AddChild appends a nested description.
func (n *Node) AddChild(child Description) {
	n.Nested = append(n.Nested, child)
}

// IsLeaf reports whether d has no children.
func IsLeaf(d Description) bool {
	return len(d.Children()) == 0
}

// CountTests returns the number of leaves below (and including) d.
func CountTests(d Description) int {
	if IsLeaf(d) {
		return 1
	}
	total := 0
	for _, child := range d.Children() {
		total += CountTests(child)
	}
	return total
}

// MethodLabel formats a method description label the way the framework does.
func MethodLabel(method, className string) string {
	return fmt.Sprintf("%s(%s)", method, className)
}

// Normal wraps a description tree.
func Normal(root Description) Outcome {
	return Outcome{kind: OutcomeNormal, root: root}
}

// Collapsed reports a whole-class skip.
func Collapsed() Outcome {
	return Outcome{kind: OutcomeCollapsed}
}

// Kind returns the outcome variant.
func (o Outcome) Kind() OutcomeKind { return o.kind }

// Root returns the description tree; nil for collapsed outcomes.
func (o Outcome) Root() Description { return o.root }

// String returns a human-readable variant name.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNormal:
		return "normal"
	case OutcomeCollapsed:
		return "collapsed"
	default:
		return "unknown"
	}
}
