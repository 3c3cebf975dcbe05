// SPDX-License-Identifier: MPL-2.0

package descriptor

import (
	"golang.org/x/exp/slices"
)

const (
	// TypeContainer is a node that only groups children.
	TypeContainer Type = iota + 1
	// TypeTest is an executable leaf.
	TypeTest
	// TypeContainerAndTest is both executable and grouping.
	TypeContainerAndTest
)

// Separator joins unique ID segments.
const Separator = "/"

type (
	// Type classifies a descriptor. The zero value is invalid so that no
	// descriptor can be neither container nor test.
	Type int

	// Tag is an opaque grouping identifier, e.g. the fully qualified name
	// of a category marker.
	Tag string

	// Source identifies what a descriptor was discovered from.
	Source interface {
		SourceName() string
	}

	// Descriptor is a node of the discovered tree.
	Descriptor struct {
		uniqueID    string
		displayName string
		typ         Type
		tags        map[Tag]struct{}
		children    []*Descriptor
		source      Source
	}
)

// New creates a descriptor. It panics on an invalid Type.
func New(uniqueID, displayName string, typ Type) *Descriptor {
	if typ < TypeContainer || typ > TypeContainerAndTest {
		panic("descriptor: invalid type")
	}
	return &Descriptor{
		uniqueID:    uniqueID,
		displayName: displayName,
		typ:         typ,
		tags:        make(map[Tag]struct{}),
	}
}

// UniqueID returns the hierarchical identifier.
func (d *Descriptor) UniqueID() string { return d.uniqueID }

// DisplayName returns the human-readable name; it need not be unique.
func (d *Descriptor) DisplayName() string { return d.displayName }

// Type returns the classification.
func (d *Descriptor) Type() Type { return d.typ }

// IsContainer reports whether the descriptor groups children.
func (d *Descriptor) IsContainer() bool {
	return d.typ == TypeContainer || d.typ == TypeContainerAndTest
}

// IsTest reports whether the descriptor is executable.
func (d *Descriptor) IsTest() bool {
	return d.typ == TypeTest || d.typ == TypeContainerAndTest
}

// Tags returns the tag set sorted lexically.
func (d *Descriptor) Tags() []Tag {
	tags := make([]Tag, 0, len(d.tags))
	for tag := range d.tags {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// HasTag reports whether tag is in the tag set.
func (d *Descriptor) HasTag(tag Tag) bool {
	_, ok := d.tags[tag]
	return ok
}

// Children returns the children in discovery order.
func (d *Descriptor) Children() []*Descriptor {
	return slices.Clone(d.children)
}

// Source returns what the descriptor was discovered from, or nil.
func (d *Descriptor) Source() Source { return d.source }

// AddTags adds tags; duplicates are ignored.
func (d *Descriptor) AddTags(tags ...Tag) {
	for _, tag := range tags {
		d.tags[tag] = struct{}{}
	}
}

// AddChild appends a child.
func (d *Descriptor) AddChild(child *Descriptor) {
	d.children = append(d.children, child)
}

// SetSource records what the descriptor was discovered from.
func (d *Descriptor) SetSource(src Source) {
	d.source = src
}

// Walk visits d and its descendants depth-first, parents before children.
// Returning false from fn skips the subtree below the visited node.
func (d *Descriptor) Walk(fn func(node *Descriptor, depth int) bool) {
	d.walk(fn, 0)
}

func (d *Descriptor) walk(fn func(node *Descriptor, depth int) bool, depth int) {
	if !fn(d, depth) {
		return
	}
	for _, child := range d.children {
		child.walk(fn, depth+1)
	}
}

// String returns the unique ID.
func (d *Descriptor) String() string { return d.uniqueID }

// String returns a human-readable type name.
func (t Type) String() string {
	switch t {
	case TypeContainer:
		return "container"
	case TypeTest:
		return "test"
	case TypeContainerAndTest:
		return "container+test"
	default:
		return "invalid"
	}
}
