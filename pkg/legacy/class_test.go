// SPDX-License-Identifier: MPL-2.0

package legacy

import (
	"errors"
	"testing"
)

func TestValidateClassName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"qualified", "org.example.Plain", false},
		{"default package", "Plain", false},
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"empty segment", "org..Plain", true},
		{"trailing dot", "org.example.", true},
		{"padded segment", "org. example", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateClassName(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateClassName(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidClassName) {
				t.Errorf("error should wrap ErrInvalidClassName, got %v", err)
			}
		})
	}
}

func TestClass_TestMethods(t *testing.T) {
	t.Parallel()

	methods := []Method{{Name: "testOne"}, {Name: "helper"}, {Name: "testTwo"}}

	tests := []struct {
		name  string
		class Class
		want  []string
	}{
		{"junit4 keeps all", Class{Style: StyleJUnit4, Methods: methods}, []string{"testOne", "helper", "testTwo"}},
		{"junit3 keeps test prefix", Class{Style: StyleJUnit3, Methods: methods}, []string{"testOne", "testTwo"}},
		{"plain has none", Class{Style: StylePlain, Methods: methods}, nil},
		{"suite has none", Class{Style: StyleSuite, Methods: methods}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.class.TestMethods()
			if len(got) != len(tt.want) {
				t.Fatalf("TestMethods() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i].Name != tt.want[i] {
					t.Errorf("TestMethods()[%d] = %q, want %q", i, got[i].Name, tt.want[i])
				}
			}
		})
	}
}

func TestClass_Names(t *testing.T) {
	t.Parallel()

	c := Class{Name: "org.example.Outer$Inner", RunWith: RunWithPlatform}
	if c.SimpleName() != "Outer$Inner" {
		t.Errorf("SimpleName() = %q", c.SimpleName())
	}
	if c.SourceName() != c.Name {
		t.Errorf("SourceName() = %q, want %q", c.SourceName(), c.Name)
	}
	if !c.IsForeign() {
		t.Error("class run with the platform should be foreign")
	}
	if QualifiedName("", "A") != "A" || QualifiedName("p", "A") != "p.A" {
		t.Error("QualifiedName mismatch")
	}
}

func TestCountTests(t *testing.T) {
	t.Parallel()

	root := &Node{Label: "Suite"}
	inner := &Node{Label: "Inner"}
	inner.AddChild(&Node{Label: "a(Inner)"})
	inner.AddChild(&Node{Label: "b(Inner)"})
	root.AddChild(inner)
	root.AddChild(&Node{Label: "c(Suite)"})

	if got := CountTests(root); got != 3 {
		t.Errorf("CountTests() = %d, want 3", got)
	}
	if !IsLeaf(&Node{}) {
		t.Error("node without children should be a leaf")
	}
	if Collapsed().Kind() != OutcomeCollapsed || Collapsed().Root() != nil {
		t.Error("Collapsed() should carry no root")
	}
	if Normal(root).Root() != root {
		t.Error("Normal() should carry its root")
	}
}
