package domain

import "strings"

// Document is a single corpus text, immutable after load.
// ID is the source filename, unique within a store snapshot.
type Document struct {
	ID   string
	Text string
}

// minTermLen filters out short stopword-like tokens ("a", "is", "to").
const minTermLen = 3

// Query is a parsed question: the raw string plus its lowercase term set.
// Term order is irrelevant; duplicates are collapsed.
type Query struct {
	Raw   string
	terms map[string]struct{}
}

// NewQuery tokenizes raw on whitespace, lowercases, and keeps tokens of
// length >= 3. A query made entirely of short tokens has an empty term set
// and can only match via the exact-phrase bonus.
func NewQuery(raw string) Query {
	terms := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(raw)) {
		if len(tok) >= minTermLen {
			terms[tok] = struct{}{}
		}
	}
	return Query{Raw: raw, terms: terms}
}

// Terms returns the term set. Callers must not mutate it.
func (q Query) Terms() map[string]struct{} { return q.terms }

// ScoredResult is one ranked hit: the winning passage of a document and its
// relevance score. Produced per query, never cached.
type ScoredResult struct {
	DocumentID string
	Passage    string
	Score      int
}
