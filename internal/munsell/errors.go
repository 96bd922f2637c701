package munsell

import "fmt"

// Field identifies which part of a color spec failed validation.
type Field int

const (
	FieldHue Field = iota
	FieldValue
	FieldChroma
)

// String returns the display name used in error messages.
func (f Field) String() string {
	switch f {
	case FieldHue:
		return "Hue"
	case FieldValue:
		return "Value"
	case FieldChroma:
		return "Chroma"
	}
	return "Field"
}

// Cause identifies why a field was rejected.
type Cause int

const (
	// CauseUndefined means the field was missing from the input.
	CauseUndefined Cause = iota
	// CauseFormat means the field was present but not parseable.
	CauseFormat
	// CauseRange means the field parsed but exceeded its allowed range.
	CauseRange
)

// ParseError reports a single validation failure during construction.
//
// Field and Cause together distinguish every failure mode, so callers can
// branch on the reason for rejection rather than matching message text.
type ParseError struct {
	Field Field
	Cause Cause
	Input string // offending input text; empty when Cause is CauseUndefined
}

func (e *ParseError) Error() string {
	switch e.Cause {
	case CauseUndefined:
		return fmt.Sprintf("%s is undefined", e.Field)
	case CauseFormat:
		if e.Field == FieldHue {
			return fmt.Sprintf("Hue %q is not a valid Munsell hue spec", e.Input)
		}
		return fmt.Sprintf("%s %q is not a non-negative decimal", e.Field, e.Input)
	case CauseRange:
		if e.Field == FieldHue {
			return fmt.Sprintf("Hue step %s exceeds 10.0", e.Input)
		}
		return fmt.Sprintf("%s %s exceeds 10.0", e.Field, e.Input)
	}
	return fmt.Sprintf("%s is invalid", e.Field)
}

func undefinedErr(f Field) *ParseError {
	return &ParseError{Field: f, Cause: CauseUndefined}
}

func formatErr(f Field, input string) *ParseError {
	return &ParseError{Field: f, Cause: CauseFormat, Input: input}
}

func rangeErr(f Field, input string) *ParseError {
	return &ParseError{Field: f, Cause: CauseRange, Input: input}
}
