// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"fmt"

	"vintage-cli/pkg/descriptor"
	"vintage-cli/pkg/legacy"
)

// Translator converts native description trees into descriptors. Its prefix
// is fixed at construction and shared by every tree it translates.
type Translator struct {
	prefix string
}

// NewTranslator creates a Translator for the given engine prefix.
func NewTranslator(prefix string) *Translator {
	return &Translator{prefix: prefix}
}

// Prefix returns the engine prefix used for top-level IDs.
func (t *Translator) Prefix() string { return t.prefix }

// TopLevelID returns the unique ID of the descriptor for class name.
func (t *Translator) TopLevelID(className string) string {
	return t.prefix + ":" + className
}

// Translate builds the descriptor subtree for c. A collapsed outcome yields
// a single test leaf named after the class.
func (t *Translator) Translate(c legacy.Class, outcome legacy.Outcome) *descriptor.Descriptor {
	id := t.TopLevelID(c.Name)

	if outcome.Kind() == legacy.OutcomeCollapsed || outcome.Root() == nil {
		d := descriptor.New(id, c.Name, descriptor.TypeTest)
		d.AddTags(toTags(c.Categories)...)
		d.SetSource(c)
		return d
	}

	root := outcome.Root()
	d := descriptor.New(id, root.DisplayName(), nodeType(root))
	d.AddTags(toTags(c.Categories)...)
	d.AddTags(toTags(root.Categories())...)
	d.SetSource(c)

	translateChildren(d, root)
	return d
}

func translateChildren(parent *descriptor.Descriptor, native legacy.Description) {
	children := native.Children()
	segments := siblingSegments(children)
	inherited := parent.Tags()

	for i, child := range children {
		display := child.MethodName()
		if display == "" {
			display = child.DisplayName()
		}

		d := descriptor.New(parent.UniqueID()+descriptor.Separator+segments[i], display, nodeType(child))
		d.AddTags(inherited...)
		d.AddTags(toTags(child.Categories())...)
		parent.AddChild(d)

		translateChildren(d, child)
	}
}

// siblingSegments returns the ID segment of each child. Labels shared by
// several siblings get [0], [1], ... in order of appearance; a suffixed
// segment that equals another sibling's literal label takes the next free
// index instead.
func siblingSegments(children []legacy.Description) []string {
	counts := make(map[string]int, len(children))
	for _, child := range children {
		counts[child.DisplayName()]++
	}

	used := make(map[string]bool, len(children))
	for label, n := range counts {
		if n == 1 {
			used[label] = true
		}
	}

	next := make(map[string]int)
	segments := make([]string, len(children))
	for i, child := range children {
		label := child.DisplayName()
		if counts[label] == 1 {
			segments[i] = label
			continue
		}
		for {
			segment := fmt.Sprintf("%s[%d]", label, next[label])
			next[label]++
			if !used[segment] {
				used[segment] = true
				segments[i] = segment
				break
			}
		}
	}
	return segments
}

func nodeType(d legacy.Description) descriptor.Type {
	if legacy.IsLeaf(d) {
		return descriptor.TypeTest
	}
	return descriptor.TypeContainer
}

func toTags(categories []string) []descriptor.Tag {
	tags := make([]descriptor.Tag, 0, len(categories))
	for _, c := range categories {
		if c != "" {
			tags = append(tags, descriptor.Tag(c))
		}
	}
	return tags
}
