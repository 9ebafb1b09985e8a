// Package chi adapts the RPC dispatcher and health service to HTTP.
package chi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/legalmind-ai/legalmind/internal/rpc"
	healthuc "github.com/legalmind-ai/legalmind/internal/usecase/health"
)

// Server exposes the JSON-RPC endpoint plus liveness and metrics routes.
type Server struct {
	dispatcher *rpc.Dispatcher
	health     *healthuc.Service
	logger     *zap.Logger
}

// NewServer creates an HTTP adapter over the dispatcher.
func NewServer(dispatcher *rpc.Dispatcher, health *healthuc.Service, logger *zap.Logger) *Server {
	return &Server{dispatcher: dispatcher, health: health, logger: logger}
}

// Routes mounts the server's handlers on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Post("/mcp", s.handleMCP)
	r.Handle("/metrics", promhttp.Handler())
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Legal Mind AI MCP Server is running",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	report := s.health.Check()
	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, report)
}

// handleMCP decodes one JSON-RPC request, dispatches it, and writes the
// response. A body that is not valid JSON never reaches the dispatcher and
// has no ID to echo, so it gets a bare invalid-params error.
func (s *Server) handleMCP(w http.ResponseWriter, r *http.Request) {
	var req rpc.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, rpc.Response{
			JSONRPC: rpc.Version,
			Error:   &rpc.Error{Code: rpc.CodeInvalidParams, Message: "invalid request body"},
		})
		return
	}

	resp := s.dispatcher.Dispatch(req)

	// Protocol errors travel inside the JSON-RPC envelope; the HTTP status
	// stays 200 so clients correlate strictly by id.
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
