package pxreader

import (
	"errors"
	"fmt"
)

// ErrMalformedDirective indicates a statement without a NAME=VALUE separator.
var ErrMalformedDirective = errors.New("malformed directive")

// ErrMissingDimension indicates that HEADING, STUB or the VALUES
// directive of a referenced dimension is absent.
var ErrMissingDimension = errors.New("missing dimension")

// ErrMissingDirective indicates that a required directive other than a
// dimension (e.g. DATA) is absent.
var ErrMissingDirective = errors.New("missing directive")

// ErrTokenize indicates malformed quoting in a directive value.
var ErrTokenize = errors.New("tokenization error")

// ErrDataShape indicates that the number of data cells is not a
// multiple of the number of heading categories.
var ErrDataShape = errors.New("data shape mismatch")

// ErrCardinality indicates that the number of data rows differs from
// the number of dimension category combinations.
var ErrCardinality = errors.New("cardinality mismatch")

// ParseError is returned when a PC-AXIS file cannot be parsed.  Err
// wraps one of the sentinel errors above.
type ParseError struct {
	Directive string
	Err       error
}

func (e *ParseError) Error() string {
	if e.Directive == "" {
		return fmt.Sprintf("px: %v", e.Err)
	}
	return fmt.Sprintf("px: directive %s: %v", e.Directive, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(directive string, err error) *ParseError {
	return &ParseError{
		Directive: directive,
		Err:       err,
	}
}
