package rterr

import "encoding/json"

// Report is the structured payload carried by a compiler panic. It is
// deliberately JSON-able so a caller that recovers it can log or surface it
// without this package doing any I/O of its own.
type Report struct {
	Schema  string         `json:"schema"`
	Code    string         `json:"code"`
	Phase   string         `json:"phase"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// Error implements the error interface so a recovered Report can be
// inspected with errors.As after being wrapped.
func (r *Report) Error() string {
	if r == nil {
		return "rterr: nil report"
	}
	return r.Code + ": " + r.Message
}

// ToJSON renders the report deterministically.
func (r *Report) ToJSON(compact bool) (string, error) {
	if compact {
		b, err := json.Marshal(r)
		return string(b), err
	}
	b, err := json.MarshalIndent(r, "", "  ")
	return string(b), err
}

// New builds a Report for the "dtree" phase.
func New(code, message string, data map[string]any) *Report {
	return &Report{
		Schema:  "rewritetree.error/v1",
		Code:    code,
		Phase:   "dtree",
		Message: message,
		Data:    data,
	}
}

// Raise panics with a *Report. Every call site names the invariant it
// protects; callers that need to recover from it (tests, mainly) should
// recover() and type-assert to *Report.
func Raise(code, message string, data map[string]any) {
	panic(New(code, message, data))
}
