// SPDX-License-Identifier: MPL-2.0

package legacy

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"vintage-cli/pkg/cueutil"
)

const (
	// ManifestExt is the file extension of class manifests.
	ManifestExt = ".cue"

	manifestDefinition = "#Manifest"
)

//go:embed manifest_schema.cue
var manifestSchema []byte

// ErrDuplicateClass is the sentinel wrapped by DuplicateClassError.
var ErrDuplicateClass = errors.New("duplicate class")

type (
	// DuplicateClassError is returned when a manifest declares the same
	// class twice.
	DuplicateClassError struct {
		Name string
		Path string
	}

	manifestDoc struct {
		Pkg     string     `json:"pkg"`
		Classes []classDoc `json:"classes"`
	}

	classDoc struct {
		Name          string   `json:"name"`
		Style         Style    `json:"style"`
		Runner        string   `json:"runner"`
		RunWith       string   `json:"runWith"`
		Ignored       bool     `json:"ignored"`
		Reason        string   `json:"reason"`
		Categories    []string `json:"categories"`
		Methods       []Method `json:"methods"`
		Members       []string `json:"members"`
		ParameterSets int      `json:"parameterSets"`
	}
)

// Error implements the error interface for DuplicateClassError.
func (e *DuplicateClassError) Error() string {
	return fmt.Sprintf("class %s declared more than once in %s", e.Name, e.Path)
}

// Unwrap returns ErrDuplicateClass for errors.Is() compatibility.
func (e *DuplicateClassError) Unwrap() error { return ErrDuplicateClass }

// ParseManifest decodes the classes declared in a manifest document, in
// declaration order.
func ParseManifest(path string, data []byte) ([]Class, error) {
	result, err := cueutil.ParseAndDecode[manifestDoc](manifestSchema, data, manifestDefinition,
		cueutil.WithFilename(path))
	if err != nil {
		return nil, err
	}

	doc := result.Value
	classes := make([]Class, 0, len(doc.Classes))
	seen := make(map[string]bool, len(doc.Classes))
	for _, cd := range doc.Classes {
		name := QualifiedName(doc.Pkg, cd.Name)
		if seen[name] {
			return nil, &DuplicateClassError{Name: name, Path: path}
		}
		seen[name] = true

		classes = append(classes, Class{
			Name:          name,
			Package:       doc.Pkg,
			Style:         cd.Style,
			Runner:        cd.Runner,
			RunWith:       cd.RunWith,
			Ignored:       cd.Ignored,
			IgnoreReason:  cd.Reason,
			Categories:    cd.Categories,
			Methods:       cd.Methods,
			Members:       qualifyMembers(doc.Pkg, cd.Members),
			ParameterSets: cd.ParameterSets,
			Origin:        path,
		})
	}
	return classes, nil
}

func qualifyMembers(pkg string, members []string) []string {
	if len(members) == 0 {
		return nil
	}
	qualified := make([]string, len(members))
	for i, m := range members {
		if strings.Contains(m, ".") {
			qualified[i] = m
		} else {
			qualified[i] = QualifiedName(pkg, m)
		}
	}
	return qualified
}
