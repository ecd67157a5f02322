package sjson

import (
	"errors"
	"fmt"

	"github.com/tendrilcode/sjson/document"
)

// ErrKind classifies an Error so callers can branch on intent rather than
// text. The first three mirror document.ErrKind's tokenizer-facing kinds;
// the rest are facade-level categories for misuse of an already-built
// Document: a parse-time failure versus a handle-level one.
type ErrKind int

const (
	ErrKindTokenizer ErrKind = iota // malformed input the decoder rejected
	ErrKindNumber                   // a number literal failed to parse
	ErrKindIO                       // the underlying reader or writer failed
	ErrKindNotFound                 // Object.Get found no field with that name
	ErrKindType                     // Value accessed as the wrong variant
	ErrKindState                    // a Node or handle used outside its Document
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindTokenizer:
		return "Tokenizer"
	case ErrKindNumber:
		return "Number"
	case ErrKindIO:
		return "IO"
	case ErrKindNotFound:
		return "NotFound"
	case ErrKindType:
		return "Type"
	case ErrKindState:
		return "State"
	default:
		return "Unknown"
	}
}

// Error is the one error type every exported function in this package
// returns.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sjson: %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("sjson: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels for the facade-level kinds, with no wrapped cause. Object.Get
// and the Value As* accessors report a miss or a variant mismatch through
// their bool result; no function in this package returns these sentinels.
var (
	// ErrNotFound indicates Object.Get found no field with the given name.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "field not found"}
	// ErrType indicates a Value was accessed through the wrong As* accessor.
	ErrType = &Error{Kind: ErrKindType, Msg: "value holds a different kind"}
)

// wrapDocumentErr translates a *document.ParseError into the equivalent
// *Error, preserving its kind and underlying cause.
func wrapDocumentErr(err error) error {
	if err == nil {
		return nil
	}
	var perr *document.ParseError
	if errors.As(err, &perr) {
		return &Error{Kind: parseErrKind(perr.Kind), Msg: perr.Msg, Err: perr.Err}
	}
	return &Error{Kind: ErrKindIO, Msg: "parse failed", Err: err}
}

func parseErrKind(k document.ErrKind) ErrKind {
	switch k {
	case document.ErrTokenizer:
		return ErrKindTokenizer
	case document.ErrNumberParse:
		return ErrKindNumber
	default:
		return ErrKindIO
	}
}
