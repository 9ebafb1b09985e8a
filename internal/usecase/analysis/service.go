// Package analysis inspects a legal document's structure: cleaned text,
// numbered sections, and case citations, plus a heuristic type guess.
package analysis

import (
	"strings"

	"github.com/legalmind-ai/legalmind/internal/textutil"
)

// Report summarizes a single document analysis.
type Report struct {
	DocumentType string
	Summary      string
	Sections     []textutil.Section
	Citations    []string
}

// Service performs document analysis. Stateless; safe for concurrent use.
type Service struct{}

// New creates an analysis service.
func New() *Service { return &Service{} }

// summaryLen bounds the leading excerpt used as the summary.
const summaryLen = 200

// Analyze cleans the document, extracts sections and citations, and guesses
// the document type from keyword cues. The guess is heuristic and defaults
// to "legal_document".
func (s *Service) Analyze(documentText string) Report {
	cleaned := textutil.Clean(documentText)

	summary := cleaned
	if len(summary) > summaryLen {
		summary = summary[:summaryLen] + "..."
	}

	return Report{
		DocumentType: classify(cleaned),
		Summary:      summary,
		Sections:     textutil.ExtractSections(documentText),
		Citations:    textutil.ExtractCaseCitations(documentText),
	}
}

func classify(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "constitution"):
		return "constitutional_text"
	case strings.Contains(lower, "agreement") || strings.Contains(lower, "contract"):
		return "contract"
	case strings.Contains(lower, " v. "):
		return "case_law"
	default:
		return "legal_document"
	}
}
