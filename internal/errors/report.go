package errors

import (
	"encoding/json"
	"errors"
	"sort"
)

// Report is the canonical structured error value this core returns.
// Every factory failure in internal/interner builds one of these rather
// than returning a bare fmt.Errorf string.
type Report struct {
	Schema  string         `json:"schema"` // always "types.error/v1"
	Code    string         `json:"code"`
	Phase   string         `json:"phase"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// ReportError wraps a Report as an error so it survives errors.As
// unwrapping through ordinary error-handling code.
type ReportError struct {
	Rep *Report
}

func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown type error"
	}
	return e.Rep.Code + ": " + e.Rep.Message
}

// AsReport extracts a *Report from an error chain, if present.
func AsReport(err error) (*Report, bool) {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Rep, true
	}
	return nil, false
}

// New builds and wraps a Report for the given code/message/data. data
// keys are sorted at JSON-encoding time so output is deterministic.
func New(code, message string, data map[string]any) error {
	return &ReportError{Rep: &Report{
		Schema:  "types.error/v1",
		Code:    code,
		Phase:   "types",
		Message: message,
		Data:    data,
	}}
}

// ToJSON renders the report as deterministic JSON (sorted map keys).
func (r *Report) ToJSON(indent bool) (string, error) {
	ordered := struct {
		Schema  string         `json:"schema"`
		Code    string         `json:"code"`
		Phase   string         `json:"phase"`
		Message string         `json:"message"`
		Data    map[string]any `json:"data,omitempty"`
	}{r.Schema, r.Code, r.Phase, r.Message, sortedCopy(r.Data)}

	var (
		b   []byte
		err error
	)
	if indent {
		b, err = json.MarshalIndent(ordered, "", "  ")
	} else {
		b, err = json.Marshal(ordered)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// sortedCopy returns a copy of m; Go's encoding/json already sorts map
// keys for us, this just documents the determinism contract and gives a
// single place to change it if that ever stops being true.
func sortedCopy(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(map[string]any, len(m))
	for _, k := range keys {
		out[k] = m[k]
	}
	return out
}
