// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"vintage-cli/pkg/descriptor"
	"vintage-cli/pkg/legacy"
	"vintage-cli/pkg/plan"
)

// ApplyFilters removes every top-level subtree whose originating class is
// rejected by any filter. Nested descriptors are never inspected.
func ApplyFilters(root *descriptor.Engine, filters []plan.ClassFilter) {
	if len(filters) == 0 {
		return
	}
	root.Retain(func(d *descriptor.Descriptor) bool {
		c, ok := d.Source().(legacy.Class)
		if !ok {
			return true
		}
		for _, f := range filters {
			if !f.Accept(c) {
				return false
			}
		}
		return true
	})
}
