package analysis

import (
	"strings"
	"testing"
)

func TestAnalyze_Sections(t *testing.T) {
	svc := New()

	r := svc.Analyze("Section 1. Scope\nThis act applies nationwide.\n" +
		"Section 2. Definitions\nTerms are defined below.\n")

	if len(r.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(r.Sections))
	}
	if r.DocumentType != "legal_document" {
		t.Errorf("unexpected type: %s", r.DocumentType)
	}
}

func TestAnalyze_Classification(t *testing.T) {
	svc := New()

	tests := []struct {
		text string
		want string
	}{
		{"The Constitution guarantees equality.", "constitutional_text"},
		{"This agreement is entered into by the parties.", "contract"},
		{"In Smith v. Jones the court held otherwise.", "case_law"},
		{"Miscellaneous legal prose.", "legal_document"},
	}
	for _, tt := range tests {
		if got := svc.Analyze(tt.text).DocumentType; got != tt.want {
			t.Errorf("Analyze(%q).DocumentType = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestAnalyze_SummaryBounded(t *testing.T) {
	svc := New()

	r := svc.Analyze(strings.Repeat("lengthy legal prose ", 50))
	if len(r.Summary) > summaryLen+len("...") {
		t.Errorf("summary too long: %d bytes", len(r.Summary))
	}
	if !strings.HasSuffix(r.Summary, "...") {
		t.Errorf("expected truncated summary to end with ellipsis: %q", r.Summary)
	}
}

func TestAnalyze_Citations(t *testing.T) {
	svc := New()

	r := svc.Analyze("As held in Roe v. Wade 410 U.S. 113 (1973), precedent controls.")
	if len(r.Citations) != 1 {
		t.Fatalf("expected 1 citation, got %d: %v", len(r.Citations), r.Citations)
	}
}
