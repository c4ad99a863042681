package config

import "fmt"

// ErrorKind classifies configuration parse failures.
type ErrorKind int

const (
	// InvalidLineFormat means a line is not of the form `key = value`.
	InvalidLineFormat ErrorKind = iota
	// UnknownSetting means the key is not in the recognized set.
	UnknownSetting
	// InvalidValue means the value parsed but violates a semantic constraint.
	InvalidValue
	// DuplicateSetting means a recognized key appeared more than once.
	DuplicateSetting
	// FailedParseValue means the value text does not match the type's grammar.
	FailedParseValue
	// MissingValue means a compound grammar is missing a required sub-part.
	MissingValue
)

// String returns the display form of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case InvalidLineFormat:
		return "Invalid line format"
	case UnknownSetting:
		return "Unknown setting"
	case InvalidValue:
		return "Invalid value"
	case DuplicateSetting:
		return "Duplicate setting"
	case FailedParseValue:
		return "Failed to parse value"
	case MissingValue:
		return "Missing value"
	default:
		return "Unknown error"
	}
}

// ParseError describes a failure local to a single config file line. It
// owns a copy of the offending line so callers can surface it verbatim.
type ParseError struct {
	Kind ErrorKind
	Line int    // 0-based line number
	Text string // Full original line
	Hint string // Optional human-readable correction, empty if none
}

// newError creates a *ParseError as an error value.
func newError(kind ErrorKind, line int, text, hint string) *ParseError {
	return &ParseError{Kind: kind, Line: line, Text: text, Hint: hint}
}

// Error renders the diagnostic with a 1-based line number, the offending
// line, the error kind, and the correction hint when present.
func (e *ParseError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("Error on line %d: %s\n%s\n%s", e.Line+1, e.Text, e.Kind, e.Hint)
	}
	return fmt.Sprintf("Error on line %d: %s\n%s", e.Line+1, e.Text, e.Kind)
}
