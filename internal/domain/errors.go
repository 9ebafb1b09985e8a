package domain

import "errors"

var (
	// ErrInvalidParams signals a request missing a required parameter.
	ErrInvalidParams = errors.New("invalid params")
	// ErrUnknownTool signals a tools/call naming a tool not in the registry.
	ErrUnknownTool = errors.New("unknown tool")
	// ErrUnknownMethod signals an unrecognized protocol method.
	ErrUnknownMethod = errors.New("unknown method")
)
