package dataset

import "fmt"

// ErrorKind enumerates the ways a source file can fail ingestion.
type ErrorKind int

const (
	// KindFileUnreadable indicates the source file could not be opened or read.
	KindFileUnreadable ErrorKind = iota
	// KindBadHeader indicates the header row is empty or contains duplicates.
	KindBadHeader
	// KindMissingColumn indicates a required column is absent from the header.
	KindMissingColumn
	// KindNonBooleanOutcome indicates the outcome cell did not parse as a boolean.
	KindNonBooleanOutcome
	// KindNegativeValue indicates a cost or duration cell held a negative number.
	KindNegativeValue
	// KindBadRow indicates a row could not be parsed for any other reason.
	KindBadRow
)

// String returns a short name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindFileUnreadable:
		return "file unreadable"
	case KindBadHeader:
		return "bad header"
	case KindMissingColumn:
		return "missing column"
	case KindNonBooleanOutcome:
		return "non-boolean outcome"
	case KindNegativeValue:
		return "negative value"
	default:
		return "bad row"
	}
}

// LoadError reports a data-quality problem found while ingesting a source
// file. The load as a whole fails; there is no partial table.
type LoadError struct {
	Kind   ErrorKind
	Column string
	Line   int
	Value  string
	Err    error
}

func (e *LoadError) Error() string {
	msg := e.Kind.String()
	if e.Column != "" {
		msg += fmt.Sprintf(" (column %q)", e.Column)
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	if e.Value != "" {
		msg += fmt.Sprintf(": value %q", e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error { return e.Err }
