package rpc

import (
	"github.com/legalmind-ai/legalmind/internal/domain"
	"github.com/legalmind-ai/legalmind/internal/usecase/analysis"
)

// Retriever answers questions against the corpus.
type Retriever interface {
	Answer(question string) string
	Search(question string, k int) []domain.ScoredResult
	Related(topic string, limit int) []string
}

// Analyzer inspects a legal document's structure.
type Analyzer interface {
	Analyze(documentText string) analysis.Report
}
