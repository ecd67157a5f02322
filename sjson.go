// Package sjson is the public facade over this repository's succinct,
// read-only JSON document store: parse once, query many times, never
// mutate. Internally it composes the kind registry, parentheses tree,
// usage index, text store, and value side arrays exposed by the document
// package; this package only re-exports the types and entry points callers
// need, so users depend on one narrow import.
package sjson

import (
	"io"

	"github.com/tendrilcode/sjson/document"
)

// Core types, re-exported so callers never import document directly.
type (
	Document  = document.Document
	Value     = document.Value
	Object    = document.Object
	Array     = document.Array
	Node      = document.Node
	ValueKind = document.ValueKind
)

// NoNode is the sentinel returned where navigation has no answer.
const NoNode = document.NoNode

// Value kind tags.
const (
	KindObject  = document.KindObject
	KindArray   = document.KindArray
	KindString  = document.KindString
	KindNumber  = document.KindNumber
	KindBoolean = document.KindBoolean
	KindNull    = document.KindNull
)

// UsageBuilderKind selects which usage-index builder variant a Parse call
// uses. Neither choice is observable once the document is built.
type UsageBuilderKind = document.UsageBuilderKind

const (
	UsageBuilderRoaring   = document.UsageBuilderRoaring
	UsageBuilderBitpacked = document.UsageBuilderBitpacked
)

// Config holds the build-time knobs this package exposes.
type Config = document.Config

// DefaultConfig returns the documented defaults: 1 MiB text blocks, a
// 10-block LRU cache, and the roaring usage-index builder.
func DefaultConfig() Config { return document.DefaultConfig() }

// Parse reads r as a single JSON value and returns the frozen Document it
// describes, or an *Error. Parse accepts a bare scalar at the top level,
// not only objects and arrays.
func Parse(r io.Reader, cfg Config) (*Document, error) {
	doc, err := document.Parse(r, cfg)
	if err != nil {
		return nil, wrapDocumentErr(err)
	}
	return doc, nil
}
