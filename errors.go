package strfmt

import "fmt"

// ErrKind classifies a FormatError by origin, matching §7's error-kind
// table. Exported so callers can branch with errors.Is/errors.As without
// string-matching messages.
type ErrKind uint8

const (
	errTemplateSyntax ErrKind = iota
	errArgumentBinding
	errIndexingMode
	errSpecTypeMismatch
	errNumericOverflow
	errAllocation
)

func (k ErrKind) String() string {
	switch k {
	case errTemplateSyntax:
		return "TemplateSyntax"
	case errArgumentBinding:
		return "ArgumentBinding"
	case errIndexingMode:
		return "IndexingMode"
	case errSpecTypeMismatch:
		return "SpecTypeMismatch"
	case errNumericOverflow:
		return "NumericOverflow"
	case errAllocation:
		return "Allocation"
	default:
		return "Unknown"
	}
}

// FormatError is returned by every entry point on invalid templates or
// argument mismatches (§7). It carries the byte offset into the template
// where the problem was detected, when known (-1 otherwise).
type FormatError struct {
	Kind    ErrKind
	Message string
	Offset  int
}

func newFormatError(kind ErrKind, message string) *FormatError {
	return &FormatError{Kind: kind, Message: message, Offset: -1}
}

func (e *FormatError) Error() string {
	return e.Message
}

// Is supports errors.Is(err, ErrTemplateSyntax) style sentinel checks by
// kind rather than message text.
func (e *FormatError) Is(target error) bool {
	other, ok := target.(*FormatError)
	if !ok {
		return false
	}
	return other.Message == "" && other.Kind == e.Kind
}

// Sentinel errors for errors.Is(err, strfmt.ErrTemplateSyntax)-style kind
// checks (the Message is intentionally empty: Is compares Kind only).
var (
	ErrTemplateSyntax    = &FormatError{Kind: errTemplateSyntax}
	ErrArgumentBinding   = &FormatError{Kind: errArgumentBinding}
	ErrIndexingMode      = &FormatError{Kind: errIndexingMode}
	ErrSpecTypeMismatch  = &FormatError{Kind: errSpecTypeMismatch}
	ErrNumericOverflow   = &FormatError{Kind: errNumericOverflow}
)

func atOffset(err *FormatError, offset int) *FormatError {
	if err.Offset < 0 {
		err.Offset = offset
	}
	return err
}

// wrapAllocation surfaces an allocator-origin failure (§7 Allocation row)
// unchanged, matching the propagation policy ("Propagated unchanged from
// the allocator").
func wrapAllocation(err error) *FormatError {
	return &FormatError{Kind: errAllocation, Message: fmt.Sprintf("allocation failed: %v", err), Offset: -1}
}
