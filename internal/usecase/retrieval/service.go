// Package retrieval ranks corpus documents against natural-language
// questions and formats answers.
package retrieval

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/legalmind-ai/legalmind/internal/domain"
	"github.com/legalmind-ai/legalmind/internal/scoring"
)

// NoInformationMessage is returned by Answer when nothing in the corpus
// matches. Fixed wording: clients and tests rely on it.
const NoInformationMessage = "I don't have specific information about that question in my database. " +
	"Please try rephrasing your question or ask about fundamental rights, " +
	"constitutional law, or legal procedures."

// minSentenceLen filters out fragments when collecting related sentences.
const minSentenceLen = 20

// defaultSuggestions is returned by Related when no sentence mentions the
// topic. Best-effort filler, not retrieval output.
var defaultSuggestions = []string{
	"What are the fundamental rights?",
	"What is the right to equality?",
	"What is the right to freedom of speech and expression?",
	"What is the right to constitutional remedies?",
	"What are the directive principles of state policy?",
}

// Service is the retrieval orchestrator: it scores every document in the
// source, selects winning passages, and formats user-facing answers.
// Scoring is pure and the source snapshot is immutable, so any number of
// calls may run concurrently.
type Service struct {
	source  DocumentSource
	weights scoring.Weights
	logger  *zap.Logger
}

// New creates a retrieval service over source with the given weights.
func New(source DocumentSource, weights scoring.Weights, logger *zap.Logger) *Service {
	return &Service{source: source, weights: weights, logger: logger}
}

// Search returns the k highest-scoring results across the corpus, sorted by
// descending score. The sort is stable: equal scores keep corpus insertion
// order, which makes results reproducible for an unchanged store. An empty
// result is a normal outcome, never an error.
func (s *Service) Search(question string, k int) []domain.ScoredResult {
	q := domain.NewQuery(question)

	var results []domain.ScoredResult
	for _, doc := range s.source.Documents() {
		passage, score := s.weights.BestPassage(q, doc.Text)
		if score > 0 {
			results = append(results, domain.ScoredResult{
				DocumentID: doc.ID,
				Passage:    passage,
				Score:      score,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if k >= 0 && len(results) > k {
		results = results[:k]
	}

	s.logger.Debug("search completed",
		zap.String("question", question),
		zap.Int("results", len(results)),
	)
	return results
}

// Answer returns a human-readable answer to question: the best passage with
// its source attribution, or the fixed no-information message when nothing
// scores.
func (s *Service) Answer(question string) string {
	results := s.Search(question, 1)
	if len(results) == 0 {
		return NoInformationMessage
	}
	top := results[0]
	return fmt.Sprintf("Relevant info from %s\n\n%s", top.DocumentID, top.Passage)
}

// Related collects up to limit sentences mentioning topic across the
// corpus. This is a substring heuristic, not ranked retrieval: the
// sentences are merely candidates for follow-up questions. When nothing
// mentions the topic it falls back to canned suggestions.
func (s *Service) Related(topic string, limit int) []string {
	if limit <= 0 {
		limit = len(defaultSuggestions)
	}
	needle := strings.ToLower(topic)

	var related []string
	for _, doc := range s.source.Documents() {
		for _, sentence := range splitSentences(doc.Text) {
			if len(sentence) < minSentenceLen {
				continue
			}
			if strings.Contains(strings.ToLower(sentence), needle) {
				related = append(related, sentence)
				if len(related) == limit {
					return related
				}
			}
		}
	}
	if len(related) == 0 {
		if limit < len(defaultSuggestions) {
			return defaultSuggestions[:limit]
		}
		return defaultSuggestions
	}
	return related
}

// splitSentences breaks text on sentence terminators. Crude on
// abbreviations, which is acceptable for a best-effort suggestion list.
func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}
