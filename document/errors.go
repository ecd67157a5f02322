package document

import (
	"errors"
	"fmt"

	"github.com/tendrilcode/sjson/token"
)

// ErrKind classifies a ParseError into one of three tokenizer-facing
// kinds.
type ErrKind uint8

const (
	ErrTokenizer ErrKind = iota
	ErrNumberParse
	ErrIO
)

func (k ErrKind) String() string {
	switch k {
	case ErrTokenizer:
		return "Tokenizer"
	case ErrNumberParse:
		return "NumberParse"
	case ErrIO:
		return "IO"
	default:
		return "Unknown"
	}
}

// ParseError is the single error type Parse ever returns. The builder is
// always discarded on error; no partial Document is ever observable.
type ParseError struct {
	Kind ErrKind
	Msg  string
	Err  error
}

func (e *ParseError) Error() string { return fmt.Sprintf("document: %s: %s: %v", e.Kind, e.Msg, e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// wrapParseErr classifies an error from the token package into the
// matching ParseError kind.
func wrapParseErr(err error) error {
	if err == nil {
		return nil
	}
	var numErr *token.NumberError
	if errors.As(err, &numErr) {
		return &ParseError{Kind: ErrNumberParse, Msg: "invalid number literal", Err: err}
	}
	var synErr *token.SyntaxError
	if errors.As(err, &synErr) {
		return &ParseError{Kind: ErrTokenizer, Msg: "malformed input", Err: err}
	}
	return &ParseError{Kind: ErrIO, Msg: "underlying stream failure", Err: err}
}
