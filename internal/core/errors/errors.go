package errors

// ToolError is the uniform failure body of the tool-call contract: a failed
// call returns exactly one key, {"error": "<human-readable message>"},
// regardless of which aggregator family produced the fault.
type ToolError struct {
	Error string `json:"error"`
}

// NewToolError wraps a message in the single-key failure body.
func NewToolError(msg string) ToolError {
	return ToolError{Error: msg}
}
