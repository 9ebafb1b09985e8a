package rpc

import "github.com/legalmind-ai/legalmind/internal/domain"

// Tool names routed by the dispatcher.
const (
	ToolAskLegalQuestion     = "ask_legal_question"
	ToolSearchLegalDatabase  = "search_legal_database"
	ToolGetRelatedQuestions  = "get_related_questions"
	ToolAnalyzeLegalDocument = "analyze_legal_document"
)

// Registry is the static catalog of tools advertised to clients. Built once
// at startup, read-only afterwards.
type Registry struct {
	tools []domain.Tool
}

// NewRegistry builds the tool catalog.
func NewRegistry() *Registry {
	return &Registry{tools: []domain.Tool{
		{
			Name:        ToolAskLegalQuestion,
			Description: "Ask a legal question and get an answer from the Legal Mind AI",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"question": map[string]any{
						"type":        "string",
						"description": "The legal question to ask",
					},
					"context": map[string]any{
						"type":        "string",
						"description": "Optional context for the question",
					},
				},
				"required": []string{"question"},
			},
		},
		{
			Name:        ToolSearchLegalDatabase,
			Description: "Search the legal database for relevant information",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "Search query for the legal database",
					},
				},
				"required": []string{"query"},
			},
		},
		{
			Name:        ToolGetRelatedQuestions,
			Description: "Get follow-up questions related to a legal topic (best-effort heuristic)",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"topic": map[string]any{
						"type":        "string",
						"description": "Topic to find related questions for",
					},
					"limit": map[string]any{
						"type":        "integer",
						"description": "Maximum number of questions to return",
					},
				},
				"required": []string{"topic"},
			},
		},
		{
			Name:        ToolAnalyzeLegalDocument,
			Description: "Analyze a legal document for sections, citations, and document type",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"document_text": map[string]any{
						"type":        "string",
						"description": "The legal document text to analyze",
					},
				},
				"required": []string{"document_text"},
			},
		},
	}}
}

// List returns the tool catalog. Callers must not mutate it.
func (r *Registry) List() []domain.Tool { return r.tools }
