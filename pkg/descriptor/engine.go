// SPDX-License-Identifier: MPL-2.0

package descriptor

// Engine is the root of one discovery run. Its unique ID is the engine
// prefix and its children are the top-level class subtrees.
type Engine struct {
	*Descriptor
}

// NewEngine creates an empty engine root.
func NewEngine(prefix, displayName string) *Engine {
	return &Engine{Descriptor: New(prefix, displayName, TypeContainer)}
}

// Retain keeps only the top-level children for which keep returns true,
// preserving their order.
func (e *Engine) Retain(keep func(*Descriptor) bool) {
	kept := e.children[:0]
	for _, child := range e.children {
		if keep(child) {
			kept = append(kept, child)
		}
	}
	for i := len(kept); i < len(e.children); i++ {
		e.children[i] = nil
	}
	e.children = kept
}

// Count returns the number of containers and tests below the root.
func (e *Engine) Count() (containers, tests int) {
	for _, child := range e.children {
		child.Walk(func(node *Descriptor, _ int) bool {
			if node.IsContainer() {
				containers++
			}
			if node.IsTest() {
				tests++
			}
			return true
		})
	}
	return containers, tests
}

// Find returns the descriptor with the given unique ID, or nil.
func (e *Engine) Find(uniqueID string) *Descriptor {
	var found *Descriptor
	e.Walk(func(node *Descriptor, _ int) bool {
		if found != nil {
			return false
		}
		if node.uniqueID == uniqueID {
			found = node
			return false
		}
		return true
	})
	return found
}
