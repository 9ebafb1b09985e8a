// Package textutil provides cleaning and parsing helpers for legal text:
// whitespace normalization, citation normalization, section extraction, and
// case-citation extraction.
package textutil

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	pageMarkerRe = regexp.MustCompile(`Page \d+ of \d+`)

	// Common citation layouts, normalized to canonical spacing.
	uscRe   = regexp.MustCompile(`(\d+)\s+U\.S\.C\.\s+§\s*(\d+)`)
	fedRe   = regexp.MustCompile(`(\d+)\s+F\.\s*(\d+)\s*\((\d{4})\)`)
	sctRe   = regexp.MustCompile(`(\d+)\s+S\.\s*Ct\.\s*(\d+)\s*\((\d{4})\)`)
	caseRes = []*regexp.Regexp{
		regexp.MustCompile(`\b[A-Z][a-z]+ v\. [A-Z][a-z]+(?: [A-Z][a-z]+)*,? \d+ [A-Z.]+ \d+ \(\d{4}\)`),
		regexp.MustCompile(`\b[A-Z][a-z]+ v\. [A-Z][a-z]+(?: [A-Z][a-z]+)*,? \d+ F\. ?\d+ \(\d{4}\)`),
		regexp.MustCompile(`\b[A-Z][a-z]+ v\. [A-Z][a-z]+(?: [A-Z][a-z]+)*,? \d+ S\. ?Ct\. ?\d+ \(\d{4}\)`),
	}

	// Section headers like "Section 1. Title" or "1.2 Subsection".
	sectionRe = regexp.MustCompile(`(?i)^(?:Section\s+)?(\d+(?:\.\d+)*)\.?\s+(.+)$`)
)

// Section is a numbered block of a legal document.
type Section struct {
	Number  string
	Title   string
	Content string
}

// Clean normalizes whitespace, strips page markers, and canonicalizes
// citation spacing. Section extraction runs on the raw text, not the
// cleaned one, because cleaning collapses the line structure it needs.
func Clean(text string) string {
	text = pageMarkerRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = NormalizeCitations(text)
	return strings.TrimSpace(text)
}

// NormalizeCitations rewrites common citation forms to canonical spacing.
func NormalizeCitations(text string) string {
	text = uscRe.ReplaceAllString(text, "$1 U.S.C. § $2")
	text = fedRe.ReplaceAllString(text, "$1 F.$2 ($3)")
	text = sctRe.ReplaceAllString(text, "$1 S. Ct. $2 ($3)")
	return text
}

// ExtractSections parses numbered section headers and collects the lines
// under each until the next header.
func ExtractSections(text string) []Section {
	var sections []Section
	var current *Section

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := sectionRe.FindStringSubmatch(line); m != nil {
			if current != nil {
				sections = append(sections, *current)
			}
			current = &Section{Number: m[1], Title: m[2]}
			continue
		}
		if current != nil {
			current.Content += line + "\n"
		}
	}
	if current != nil {
		sections = append(sections, *current)
	}
	return sections
}

// ExtractCaseCitations returns the distinct case citations found in text,
// in order of first appearance.
func ExtractCaseCitations(text string) []string {
	seen := make(map[string]struct{})
	var citations []string
	for _, re := range caseRes {
		for _, m := range re.FindAllString(text, -1) {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			citations = append(citations, m)
		}
	}
	return citations
}
