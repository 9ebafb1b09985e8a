package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/legalmind-ai/legalmind/internal/domain"
	"github.com/legalmind-ai/legalmind/internal/metrics"
	"github.com/legalmind-ai/legalmind/internal/version"
)

const (
	// maxSearchResults bounds search_legal_database output.
	maxSearchResults = 5
	// snippetLen bounds each passage rendered in search results.
	snippetLen = 500
	// defaultRelatedLimit applies when get_related_questions omits limit.
	defaultRelatedLimit = 5
)

// Dispatcher routes JSON-RPC methods to handlers. It is stateless across
// calls; every request is handled independently, so concurrent dispatch is
// safe as long as the underlying services are.
type Dispatcher struct {
	registry  *Registry
	retriever Retriever
	analyzer  Analyzer
	logger    *zap.Logger
	methods   map[string]func(Request) (any, error)
}

// NewDispatcher creates a dispatcher over the given services.
func NewDispatcher(registry *Registry, retriever Retriever, analyzer Analyzer, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		registry:  registry,
		retriever: retriever,
		analyzer:  analyzer,
		logger:    logger,
	}
	d.methods = map[string]func(Request) (any, error){
		"initialize": d.handleInitialize,
		"tools/list": d.handleToolsList,
		"tools/call": d.handleToolsCall,
	}
	return d
}

// Dispatch executes one request and always produces a response carrying the
// request's ID. Handler errors and panics never escape: they are converted
// to structured protocol errors at this boundary.
func (d *Dispatcher) Dispatch(req Request) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("panic in rpc handler",
				zap.String("method", req.Method),
				zap.Any("panic", r),
				zap.Stack("stacktrace"),
			)
			resp = d.errorResponse(req, fmt.Errorf("%v", r))
		}
	}()

	handler, ok := d.methods[req.Method]
	if !ok {
		return d.errorResponse(req, fmt.Errorf("%w: %s", domain.ErrUnknownMethod, req.Method))
	}

	result, err := handler(req)
	if err != nil {
		return d.errorResponse(req, err)
	}

	metrics.RPCRequestsTotal.WithLabelValues(d.methodLabel(req.Method), "ok").Inc()
	return Response{JSONRPC: Version, ID: req.ID, Result: result}
}

// methodLabel keeps metric cardinality bounded: client-invented method
// names collapse into one label.
func (d *Dispatcher) methodLabel(method string) string {
	if _, ok := d.methods[method]; ok {
		return method
	}
	return "unknown"
}

func (d *Dispatcher) errorResponse(req Request, err error) Response {
	code := errorCode(err)
	metrics.RPCRequestsTotal.WithLabelValues(d.methodLabel(req.Method), "error").Inc()
	d.logger.Warn("rpc error",
		zap.String("method", req.Method),
		zap.Int("code", code),
		zap.Error(err),
	)
	return Response{
		JSONRPC: Version,
		ID:      req.ID,
		Error:   &Error{Code: code, Message: err.Error()},
	}
}

// errorCode maps failure kinds to JSON-RPC codes. Anything not a known
// sentinel is an internal fault.
func errorCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidParams):
		return CodeInvalidParams
	case errors.Is(err, domain.ErrUnknownTool), errors.Is(err, domain.ErrUnknownMethod):
		return CodeMethodNotFound
	default:
		return CodeInternalError
	}
}

func (d *Dispatcher) handleInitialize(_ Request) (any, error) {
	return map[string]any{
		"protocolVersion": ProtocolVersion,
		"capabilities": map[string]any{
			"tools": map[string]any{"listChanged": true},
		},
		"serverInfo": map[string]any{
			"name":    ServerName,
			"version": version.Version,
		},
	}, nil
}

func (d *Dispatcher) handleToolsList(_ Request) (any, error) {
	return map[string]any{"tools": d.registry.List()}, nil
}

// callParams is the tools/call parameter envelope.
type callParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

func (d *Dispatcher) handleToolsCall(req Request) (any, error) {
	var params callParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidParams, err)
		}
	}
	if params.Name == "" {
		return nil, fmt.Errorf("%w: missing tool name", domain.ErrInvalidParams)
	}

	switch params.Name {
	case ToolAskLegalQuestion:
		return d.callAsk(params.Arguments)
	case ToolSearchLegalDatabase:
		return d.callSearch(params.Arguments)
	case ToolGetRelatedQuestions:
		return d.callRelated(params.Arguments)
	case ToolAnalyzeLegalDocument:
		return d.callAnalyze(params.Arguments)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTool, params.Name)
	}
}

type askArgs struct {
	Question string `json:"question"`
	// Context is accepted but unused, reserved for future retrieval modes.
	Context string `json:"context"`
}

func (d *Dispatcher) callAsk(raw json.RawMessage) (any, error) {
	var args askArgs
	if err := unmarshalArgs(raw, &args); err != nil {
		return nil, err
	}
	return textResult(d.retriever.Answer(args.Question)), nil
}

type searchArgs struct {
	Query string `json:"query"`
}

func (d *Dispatcher) callSearch(raw json.RawMessage) (any, error) {
	var args searchArgs
	if err := unmarshalArgs(raw, &args); err != nil {
		return nil, err
	}

	results := d.retriever.Search(args.Query, maxSearchResults)
	if len(results) == 0 {
		return textResult(fmt.Sprintf(
			"No relevant information found for '%s' in the legal datasets.", args.Query,
		)), nil
	}

	passages := make([]string, len(results))
	for i, r := range results {
		passage := r.Passage
		if len(passage) > snippetLen {
			passage = passage[:snippetLen]
		}
		passages[i] = fmt.Sprintf("From %s\n%s", r.DocumentID, passage)
	}
	return textResult(fmt.Sprintf(
		"Search results for '%s':\n\n%s", args.Query, strings.Join(passages, "\n\n"),
	)), nil
}

type relatedArgs struct {
	Topic string `json:"topic"`
	Limit int    `json:"limit"`
}

func (d *Dispatcher) callRelated(raw json.RawMessage) (any, error) {
	var args relatedArgs
	if err := unmarshalArgs(raw, &args); err != nil {
		return nil, err
	}
	if args.Limit <= 0 {
		args.Limit = defaultRelatedLimit
	}
	questions := d.retriever.Related(args.Topic, args.Limit)
	return textResult(strings.Join(questions, "\n")), nil
}

type analyzeArgs struct {
	DocumentText string `json:"document_text"`
}

func (d *Dispatcher) callAnalyze(raw json.RawMessage) (any, error) {
	var args analyzeArgs
	if err := unmarshalArgs(raw, &args); err != nil {
		return nil, err
	}
	report := d.analyzer.Analyze(args.DocumentText)
	return textResult(fmt.Sprintf(
		"Document Analysis Results:\n\n"+
			"Document Type: %s\n"+
			"Summary: %s\n"+
			"Sections Found: %d\n"+
			"Citations Found: %d",
		report.DocumentType, report.Summary, len(report.Sections), len(report.Citations),
	)), nil
}

func unmarshalArgs(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidParams, err)
	}
	return nil
}
