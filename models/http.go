package models

// ValidationIssue is the wire representation of a single validation error.
type ValidationIssue struct {
	// Code is the failed constraint, e.g. "minLength".
	Code Code `json:"code"`

	// Path is the rendered location of the offending value. Empty for the root.
	Path string `json:"path"`

	// Expected completes "must be ___".
	Expected string `json:"expected,omitempty"`

	// Actual completes "(was ___)".
	Actual string `json:"actual,omitempty"`

	// Message is the fully assembled, user-visible message.
	Message string `json:"message"`
}

// ValidationResult is returned by the validate endpoint.
type ValidationResult struct {
	// Valid reports whether the payload satisfied the type.
	Valid bool `json:"valid"`

	// Data is the transformed payload. Only set when Valid is true.
	Data any `json:"data,omitempty"`

	// Errors lists every failure. Only set when Valid is false.
	Errors []ValidationIssue `json:"errors,omitempty"`

	// Summary joins all messages. Only set when Valid is false.
	Summary string `json:"summary,omitempty"`
}

// TypeInfo describes a declared type for the types endpoint.
type TypeInfo struct {
	ID          string `json:"id"`
	Scope       string `json:"scope"`
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Meta        Meta   `json:"meta,omitempty"`
}

// ErrorResponse is the body of every non-validation error response.
type ErrorResponse struct {
	Error string `json:"error"`
}
