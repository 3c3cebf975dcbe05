// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"
)

const testSchema = `
#Doc: {
	name:  string & !=""
	count: int & >=0 | *0
	tags?: [...string]
}
`

type testDoc struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Tags  []string `json:"tags"`
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	t.Run("valid document decodes with defaults", func(t *testing.T) {
		t.Parallel()

		result, err := ParseAndDecode[testDoc]([]byte(testSchema), []byte(`name: "a", tags: ["x"]`), "#Doc")
		if err != nil {
			t.Fatalf("ParseAndDecode() error = %v", err)
		}
		if result.Value.Name != "a" {
			t.Errorf("Name = %q, want %q", result.Value.Name, "a")
		}
		if result.Value.Count != 0 {
			t.Errorf("Count = %d, want 0", result.Value.Count)
		}
		if len(result.Value.Tags) != 1 || result.Value.Tags[0] != "x" {
			t.Errorf("Tags = %v, want [x]", result.Value.Tags)
		}
	})

	t.Run("schema violation names the file and field", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[testDoc]([]byte(testSchema), []byte(`name: "a", count: -1`), "#Doc", WithFilename("Doc.cue"))
		if err == nil {
			t.Fatal("expected validation error")
		}
		if !strings.Contains(err.Error(), "Doc.cue") {
			t.Errorf("error should name the file, got: %v", err)
		}
		if !strings.Contains(err.Error(), "count") {
			t.Errorf("error should name the field, got: %v", err)
		}
	})

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()

		if _, err := ParseAndDecode[testDoc]([]byte(testSchema), []byte(`name: `), "#Doc"); err == nil {
			t.Fatal("expected syntax error")
		}
	})

	t.Run("oversized document", func(t *testing.T) {
		t.Parallel()

		data := []byte(`name: "` + strings.Repeat("a", 64) + `"`)
		if _, err := ParseAndDecode[testDoc]([]byte(testSchema), data, "#Doc", WithMaxFileSize(16)); err == nil {
			t.Fatal("expected size error")
		}
	})

	t.Run("missing definition is an internal error", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[testDoc]([]byte(testSchema), []byte(`name: "a"`), "#Missing")
		if err == nil || !strings.Contains(err.Error(), "internal error") {
			t.Fatalf("error = %v, want internal error", err)
		}
	})
}
