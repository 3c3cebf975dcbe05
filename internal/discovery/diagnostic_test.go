// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"strings"
	"testing"
)

func TestSeverity_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		severity Severity
		want     bool
		wantErr  bool
	}{
		{SeverityWarning, true, false},
		{SeverityError, true, false},
		{"", false, true},
		{"invalid", false, true},
		{"WARNING", false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			t.Parallel()
			isValid, errs := tt.severity.IsValid()
			if isValid != tt.want {
				t.Errorf("Severity(%q).IsValid() = %v, want %v", tt.severity, isValid, tt.want)
			}
			if tt.wantErr {
				if len(errs) == 0 {
					t.Fatalf("Severity(%q).IsValid() returned no errors, want error", tt.severity)
				}
				if !errors.Is(errs[0], ErrInvalidSeverity) {
					t.Errorf("error should wrap ErrInvalidSeverity, got: %v", errs[0])
				}
			} else if len(errs) > 0 {
				t.Errorf("Severity(%q).IsValid() returned unexpected errors: %v", tt.severity, errs)
			}
		})
	}
}

func TestDiagnosticCode_IsValid(t *testing.T) {
	t.Parallel()

	for _, code := range []DiagnosticCode{CodeManifestSkipped, CodeCandidateSkipped} {
		isValid, errs := code.IsValid()
		if !isValid || len(errs) > 0 {
			t.Errorf("DiagnosticCode(%q).IsValid() = %v, %v; want true, nil", code, isValid, errs)
		}
	}

	for _, code := range []DiagnosticCode{"", "invalid", "MANIFEST_SKIPPED"} {
		isValid, errs := code.IsValid()
		if isValid {
			t.Errorf("DiagnosticCode(%q).IsValid() = true, want false", code)
		}
		if len(errs) == 0 {
			t.Fatalf("DiagnosticCode(%q).IsValid() returned no errors, want error", code)
		}
		if !errors.Is(errs[0], ErrInvalidDiagnosticCode) {
			t.Errorf("error should wrap ErrInvalidDiagnosticCode, got: %v", errs[0])
		}
	}
}

func TestNewDiagnostic(t *testing.T) {
	t.Parallel()

	d := NewDiagnostic(SeverityWarning, CodeCandidateSkipped, "test message")

	if d.Severity != SeverityWarning {
		t.Errorf("Severity = %q, want %q", d.Severity, SeverityWarning)
	}
	if d.Code != CodeCandidateSkipped {
		t.Errorf("Code = %q, want %q", d.Code, CodeCandidateSkipped)
	}
	if d.Message != "test message" {
		t.Errorf("Message = %q, want %q", d.Message, "test message")
	}
	if d.Path != "" || d.Cause != nil {
		t.Errorf("Path, Cause = %q, %v; want empty", d.Path, d.Cause)
	}
}

func TestNewDiagnosticWithCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("underlying error")
	d := NewDiagnosticWithCause(SeverityError, CodeManifestSkipped, "parse failed", "/classes/a.cue", cause)

	if d.Path != "/classes/a.cue" {
		t.Errorf("Path = %q, want %q", d.Path, "/classes/a.cue")
	}
	if !errors.Is(d.Cause, cause) {
		t.Errorf("Cause = %v, want %v", d.Cause, cause)
	}

	s := d.String()
	for _, want := range []string{"error", "[manifest_skipped]", "parse failed", "/classes/a.cue", "underlying error"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestNewDiagnosticWithPath(t *testing.T) {
	t.Parallel()

	d := NewDiagnosticWithPath(SeverityWarning, CodeManifestSkipped, "skipped", "/some/path")
	if d.Path != "/some/path" {
		t.Errorf("Path = %q, want %q", d.Path, "/some/path")
	}
	if d.Cause != nil {
		t.Errorf("Cause = %v, want nil", d.Cause)
	}
}

func TestDiagnosticCode_String(t *testing.T) {
	t.Parallel()

	if got := CodeCandidateSkipped.String(); got != "candidate_skipped" {
		t.Errorf("CodeCandidateSkipped.String() = %q, want %q", got, "candidate_skipped")
	}
	if got := DiagnosticCode("").String(); got != "" {
		t.Errorf("DiagnosticCode(\"\").String() = %q, want %q", got, "")
	}
}
