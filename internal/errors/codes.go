// Package errors provides the structured error taxonomy for this core,
// following the teacher's "AI-friendly error reporting" convention: a
// single reason code, a phase tag, and a structured data payload rather
// than an ad-hoc formatted string.
package errors

// Error codes for the type system (TYP###), per spec.md §7. All factory
// failures surface as one of these; the interner never logs and never
// partially constructs a type.
const (
	// TYP001 indicates an unrecognized elementary-type-name token.
	TYP001 = "TYP001"

	// TYP002 indicates an integer bit-width outside 8..256 or not a
	// multiple of 8.
	TYP002 = "TYP002"

	// TYP003 indicates a fixed-bytes length outside 1..32.
	TYP003 = "TYP003"

	// TYP004 indicates a fixed-point (total-bits M, fractional N) shape
	// outside its width window.
	TYP004 = "TYP004"

	// TYP005 indicates a mapping key that is not comparable: a mapping,
	// a struct, or a dynamically sized array (including bytes/string).
	TYP005 = "TYP005"

	// TYP006 indicates an unrecognized data-location suffix.
	TYP006 = "TYP006"
)

// codeInfo mirrors the teacher's per-code metadata table (codes.go),
// trimmed to this core's single phase.
type codeInfo struct {
	Code    string
	Phase   string
	Domain  string
	Summary string
}

var codeTable = map[string]codeInfo{
	TYP001: {TYP001, "types", "grammar", "Unknown elementary type name"},
	TYP002: {TYP002, "types", "integer", "Invalid integer bit width"},
	TYP003: {TYP003, "types", "fixed-bytes", "Invalid fixed-bytes length"},
	TYP004: {TYP004, "types", "fixed-point", "Invalid fixed-point shape"},
	TYP005: {TYP005, "types", "mapping", "Invalid mapping key type"},
	TYP006: {TYP006, "types", "location", "Invalid data-location suffix"},
}

// Summary returns the human-readable one-line summary for a code, or
// "" if the code is unknown.
func Summary(code string) string {
	return codeTable[code].Summary
}
