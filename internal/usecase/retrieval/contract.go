package retrieval

import "github.com/legalmind-ai/legalmind/internal/domain"

// DocumentSource provides the corpus snapshot to rank against. Insertion
// order is the tiebreak for equal scores, so implementations must return a
// stable ordering for an unchanged corpus.
type DocumentSource interface {
	Documents() []domain.Document
}
