// Package rpc implements the JSON-RPC 2.0 surface of the server: the wire
// types, the static tool registry, and the method dispatcher.
package rpc

import "encoding/json"

// Version is the JSON-RPC protocol version echoed in every response.
const Version = "2.0"

// ProtocolVersion is the MCP protocol revision advertised by initialize.
const ProtocolVersion = "2024-11-05"

// ServerName identifies this server in initialize metadata.
const ServerName = "legal-mind-ai-mcp"

// JSON-RPC 2.0 error codes.
const (
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Request is an incoming JSON-RPC 2.0 request. JSON-RPC allows the ID to be
// a string, number, or null; it is decoded as-is and echoed back verbatim so
// clients can correlate concurrent calls.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is an outgoing JSON-RPC 2.0 response. Exactly one of Result and
// Error is set.
type Response struct {
	JSONRPC string `json:"jsonrpc"`
	ID      any    `json:"id"`
	Result  any    `json:"result,omitempty"`
	Error   *Error `json:"error,omitempty"`
}

// Error is a structured JSON-RPC error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ContentItem is one block of tool output, MCP content format.
type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToolResult is the result payload of a tools/call.
type ToolResult struct {
	Content []ContentItem `json:"content"`
}

// textResult wraps a single text block as a tool result.
func textResult(text string) ToolResult {
	return ToolResult{Content: []ContentItem{{Type: "text", Text: text}}}
}
