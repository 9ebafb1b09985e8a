// Package scoring implements the relevance heuristic: a cheap, explainable
// additive score over exact-phrase and per-term substring matches. No
// stemming, no term frequency, no length normalization.
package scoring

import (
	"strings"

	"github.com/legalmind-ai/legalmind/internal/domain"
)

// Default weights. Tuning constants with no deeper rationale; kept
// configurable rather than hard-coded.
const (
	DefaultPhraseWeight      = 100
	DefaultTermWeight        = 10
	DefaultFallbackPrefixLen = 500
)

// Weights parameterizes the scorer.
type Weights struct {
	// Phrase is added once when the full lowercased query appears verbatim.
	Phrase int
	// Term is added per query term found as a substring.
	Term int
	// FallbackPrefixLen bounds the passage returned when only the whole
	// document matches (phrase spanning a passage boundary).
	FallbackPrefixLen int
}

// DefaultWeights returns the stock 100/10 weighting.
func DefaultWeights() Weights {
	return Weights{
		Phrase:            DefaultPhraseWeight,
		Term:              DefaultTermWeight,
		FallbackPrefixLen: DefaultFallbackPrefixLen,
	}
}

// Score computes the relevance of text for q. Pure and deterministic:
// same inputs always produce the same non-negative score.
func (w Weights) Score(q domain.Query, text string) int {
	lower := strings.ToLower(text)
	score := 0

	if phrase := strings.ToLower(q.Raw); phrase != "" && strings.Contains(lower, phrase) {
		score += w.Phrase
	}
	for term := range q.Terms() {
		if strings.Contains(lower, term) {
			score += w.Term
		}
	}
	return score
}

// BestPassage scores each blank-line-delimited passage of text and returns
// the highest-scoring one (earliest wins ties). If no single passage scores
// but the document as a whole does — the phrase straddles a passage
// boundary — it falls back to the whole-document score with a bounded
// prefix as the passage. Returns ("", 0) when nothing matches.
func (w Weights) BestPassage(q domain.Query, text string) (string, int) {
	var best string
	bestScore := 0
	for _, p := range SplitPassages(text) {
		if s := w.Score(q, p); s > bestScore {
			best, bestScore = p, s
		}
	}
	if bestScore > 0 {
		return best, bestScore
	}

	if s := w.Score(q, text); s > 0 {
		return prefix(strings.TrimSpace(text), w.FallbackPrefixLen), s
	}
	return "", 0
}

// SplitPassages splits text on blank-line boundaries, trimming each block
// and dropping empty ones.
func SplitPassages(text string) []string {
	blocks := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n")
	passages := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if trimmed := strings.TrimSpace(b); trimmed != "" {
			passages = append(passages, trimmed)
		}
	}
	return passages
}

func prefix(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
