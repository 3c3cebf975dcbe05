// SPDX-License-Identifier: MPL-2.0

package descriptor

// Snapshot is a plain, serializable copy of a descriptor subtree used by the
// JSON, YAML and TOML exports.
type Snapshot struct {
	UniqueID    string     `json:"uniqueId" yaml:"uniqueId" toml:"uniqueId"`
	DisplayName string     `json:"displayName" yaml:"displayName" toml:"displayName"`
	Type        string     `json:"type" yaml:"type" toml:"type"`
	Tags        []string   `json:"tags,omitempty" yaml:"tags,omitempty" toml:"tags,omitempty"`
	Children    []Snapshot `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// Snapshot copies d and its descendants.
func (d *Descriptor) Snapshot() Snapshot {
	s := Snapshot{
		UniqueID:    d.uniqueID,
		DisplayName: d.displayName,
		Type:        d.typ.String(),
	}
	for _, tag := range d.Tags() {
		s.Tags = append(s.Tags, string(tag))
	}
	for _, child := range d.children {
		s.Children = append(s.Children, child.Snapshot())
	}
	return s
}
