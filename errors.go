package texthuffman

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySymbolTable is wrapped by the ConstructionError returned when
	// BuildTree is given no symbols.
	ErrEmptySymbolTable = errors.New("empty symbol table")

	// ErrMissingCode is wrapped by every EncodingError.
	ErrMissingCode = errors.New("missing code for byte value")

	// ErrMalformedHeader is wrapped by every error returned by ParseHeader.
	ErrMalformedHeader = errors.New("malformed header")
)

// ConstructionError is returned when a tree cannot be built from the given
// symbol table.
type ConstructionError struct {
	Inner error
}

func (e *ConstructionError) Error() string {
	if e.Inner == nil {
		return "texthuffman: tree construction failed"
	}
	return "texthuffman: tree construction failed: " + e.Inner.Error()
}

func (e *ConstructionError) Unwrap() error {
	return e.Inner
}

// EncodingError is returned when a source byte has no entry in the code
// table.  Offset is the position of the first such byte in the source.
type EncodingError struct {
	Offset int
	Value  byte
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("texthuffman: %v %d at offset %d", ErrMissingCode, e.Value, e.Offset)
}

func (e *EncodingError) Unwrap() error {
	return ErrMissingCode
}

func malformedf(format string, args ...interface{}) error {
	return fmt.Errorf("texthuffman: %w: %s", ErrMalformedHeader, fmt.Sprintf(format, args...))
}
