package domain

// Tool is a callable operation advertised to clients: a name, a human
// description, and a JSON Schema for its arguments. Tools are defined once
// at startup and never change.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}
