// Package document implements the document façade: the
// parse driver, navigation, typed value extraction, and serialization that
// tie the kind registry, parentheses tree, usage index, text store, and
// value side arrays into one queryable structure.
package document

import (
	"iter"

	"github.com/tendrilcode/sjson/bptree"
	"github.com/tendrilcode/sjson/kind"
	"github.com/tendrilcode/sjson/text"
	"github.com/tendrilcode/sjson/usage"
	"github.com/tendrilcode/sjson/values"
)

// Node is an index into a Document's parentheses sequence. It is returned
// by value and, outside this package, always identifies an opening
// position.
type Node = bptree.Node

// NoNode is the sentinel returned where navigation has no answer.
const NoNode = bptree.NoNode

// UsageBuilderKind selects which usage-index builder variant a Parse call
// uses. Neither choice is observable once the document is built.
type UsageBuilderKind uint8

const (
	UsageBuilderRoaring UsageBuilderKind = iota
	UsageBuilderBitpacked
)

// Config holds the build-time knobs a Parse call accepts.
type Config struct {
	// TextBlockSize is the soft cap, in decompressed bytes, per compressed
	// text block.
	TextBlockSize int
	// TextCacheBlocks is the LRU cache capacity in blocks; 0 disables
	// caching.
	TextCacheBlocks int
	// UsageBuilder selects the mid-parse usage-index representation.
	UsageBuilder UsageBuilderKind
}

// DefaultConfig returns the documented defaults for all build-time knobs.
func DefaultConfig() Config {
	return Config{
		TextBlockSize:   text.DefaultBlockSize,
		TextCacheBlocks: text.DefaultCacheCapacity,
		UsageBuilder:    UsageBuilderRoaring,
	}
}

// Document is an immutable, in-memory JSON value. Construct one with
// Parse; after that, every query is read-only.
type Document struct {
	kinds    *kind.Registry
	tree     *bptree.Sequence
	usageIdx *usage.Index
	texts    *text.Store
	nums     *values.Numbers
	bools    *values.Booleans
}

// Root returns the document's root node.
func (d *Document) Root() Node { return d.tree.Root() }

// HeapSize sums the resident-memory estimates of the parentheses tree, the
// usage index, the text store, and the number and boolean arrays, reported
// for diagnostics. The kind registry is not counted. It is independent of
// query history.
func (d *Document) HeapSize() int64 {
	return d.tree.ApproxHeapSize() +
		d.usageIdx.ApproxHeapSize() +
		d.texts.ApproxHeapSize() +
		d.nums.ApproxHeapSize() +
		d.bools.ApproxHeapSize()
}

// ValueKind tags which alternative of the Object|Array|String|Number|
// Boolean|Null union a Value holds.
type ValueKind uint8

const (
	KindObject ValueKind = iota
	KindArray
	KindString
	KindNumber
	KindBoolean
	KindNull
)

// Value is a sealed tagged union over a node's decoded content. Access the
// held alternative with the method matching its Kind(); the others report
// ok=false.
type Value struct {
	kind ValueKind
	doc  *Document
	node Node

	str     string
	num     float64
	boolean bool
}

// Kind reports which alternative this Value holds.
func (v Value) Kind() ValueKind { return v.kind }

// AsObject returns the Object view, if this Value holds one.
func (v Value) AsObject() (Object, bool) {
	if v.kind != KindObject {
		return Object{}, false
	}
	return Object{doc: v.doc, node: v.node}, true
}

// AsArray returns the Array view, if this Value holds one.
func (v Value) AsArray() (Array, bool) {
	if v.kind != KindArray {
		return Array{}, false
	}
	return Array{doc: v.doc, node: v.node}, true
}

// AsString returns the string, if this Value holds one.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsNumber returns the number, if this Value holds one.
func (v Value) AsNumber() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// AsBoolean returns the boolean, if this Value holds one.
func (v Value) AsBoolean() (bool, bool) {
	if v.kind != KindBoolean {
		return false, false
	}
	return v.boolean, true
}

// IsNull reports whether this Value is Null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// value decodes the node at n into a Value. n must be an opening position
// belonging to d; any other node is a programmer error and panics rather
// than returning a zero Value.
func (d *Document) value(n Node) Value {
	k, ok := d.usageIdx.KindAt(uint32(n))
	if !ok {
		panic("document: value: node out of range")
	}
	info := d.kinds.Lookup(k)
	if !info.Open {
		panic("document: value: node is a closing position")
	}
	switch info.Variant {
	case kind.Object:
		return Value{kind: KindObject, doc: d, node: n}
	case kind.Array:
		return Value{kind: KindArray, doc: d, node: n}
	case kind.String:
		id := d.usageIdx.TextId(uint32(n))
		return Value{kind: KindString, str: d.texts.GetString(text.TextId(id))}
	case kind.Number:
		id := d.usageIdx.NumberId(uint32(n))
		return Value{kind: KindNumber, num: d.nums.At(id)}
	case kind.Boolean:
		id := d.usageIdx.BooleanId(uint32(n))
		return Value{kind: KindBoolean, boolean: d.bools.At(id)}
	case kind.Null:
		return Value{kind: KindNull}
	default:
		panic("document: value: node is not a value kind: " + info.Variant.String())
	}
}

// Value returns the decoded Value at node n.
func (d *Document) Value(n Node) Value { return d.value(n) }

// fieldName returns the registered name of a Field node.
func (d *Document) fieldName(field Node) string {
	k, ok := d.usageIdx.KindAt(uint32(field))
	if !ok {
		panic("document: fieldName: node out of range")
	}
	return d.kinds.Lookup(k).Name
}

// Object is a borrowed view over an Object node's Field children.
type Object struct {
	doc  *Document
	node Node
}

// Get returns the value of the first-seen field named key: duplicate keys
// resolve to their first insertion.
func (o Object) Get(key string) (Value, bool) {
	for field := o.doc.tree.FirstChild(o.node); field != bptree.NoNode; field = o.doc.tree.NextSibling(field) {
		if o.doc.fieldName(field) == key {
			valueNode := o.doc.tree.FirstChild(field)
			return o.doc.value(valueNode), true
		}
	}
	return Value{}, false
}

// Keys iterates every field name in source order, including duplicates.
func (o Object) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for field := o.doc.tree.FirstChild(o.node); field != bptree.NoNode; field = o.doc.tree.NextSibling(field) {
			if !yield(o.doc.fieldName(field)) {
				return
			}
		}
	}
}

// Values iterates every field's value in source order, including
// duplicates.
func (o Object) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for field := o.doc.tree.FirstChild(o.node); field != bptree.NoNode; field = o.doc.tree.NextSibling(field) {
			valueNode := o.doc.tree.FirstChild(field)
			if !yield(o.doc.value(valueNode)) {
				return
			}
		}
	}
}

// Iter iterates every (name, value) field pair in source order, including
// duplicates.
func (o Object) Iter() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for field := o.doc.tree.FirstChild(o.node); field != bptree.NoNode; field = o.doc.tree.NextSibling(field) {
			valueNode := o.doc.tree.FirstChild(field)
			if !yield(o.doc.fieldName(field), o.doc.value(valueNode)) {
				return
			}
		}
	}
}

// Array is a borrowed view over an Array node's value children.
type Array struct {
	doc  *Document
	node Node
}

// Iter iterates every element's value in source order.
func (a Array) Iter() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for child := a.doc.tree.FirstChild(a.node); child != bptree.NoNode; child = a.doc.tree.NextSibling(child) {
			if !yield(a.doc.value(child)) {
				return
			}
		}
	}
}
