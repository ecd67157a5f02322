// Package kind interns the closed set of node kinds that can appear in a
// parsed document: the twelve fixed structural/scalar kinds plus one
// Open/Close pair per distinct field name encountered during a parse.
//
// The twelve fixed kinds occupy ids 0..11 in the order declared below so
// open/close checks on the hot navigation path can compare ids directly
// instead of hashing. Field kinds are interned on first use starting at id
// 12 and keep returning the same pair for the same name.
package kind

import "fmt"

// Id is a dense identifier for a registered NodeKind.
type Id uint64

// Variant classifies what a NodeKind represents, independent of whether it
// is the opening or closing half of the pair.
type Variant uint8

const (
	Object Variant = iota
	Array
	String
	Number
	Boolean
	Null
	Field
)

func (v Variant) String() string {
	switch v {
	case Object:
		return "Object"
	case Array:
		return "Array"
	case String:
		return "String"
	case Number:
		return "Number"
	case Boolean:
		return "Boolean"
	case Null:
		return "Null"
	case Field:
		return "Field"
	default:
		return "Unknown"
	}
}

// Info describes one registered NodeKind.
type Info struct {
	Variant Variant
	Open    bool
	// Name is only meaningful when Variant == Field.
	Name string
}

// Fixed ids for the twelve non-Field kinds. These never change and may be
// used as array indices without a registry lookup.
const (
	ObjectOpen Id = iota
	ObjectClose
	ArrayOpen
	ArrayClose
	StringOpen
	StringClose
	NumberOpen
	NumberClose
	BooleanOpen
	BooleanClose
	NullOpen
	NullClose

	// firstFieldId is the first id available for interned field names.
	firstFieldId
)

var fixedInfos = [firstFieldId]Info{
	ObjectOpen:  {Variant: Object, Open: true},
	ObjectClose: {Variant: Object, Open: false},
	ArrayOpen:   {Variant: Array, Open: true},
	ArrayClose:  {Variant: Array, Open: false},
	StringOpen:  {Variant: String, Open: true},
	StringClose: {Variant: String, Open: false},
	NumberOpen:  {Variant: Number, Open: true},
	NumberClose: {Variant: Number, Open: false},
	BooleanOpen: {Variant: Boolean, Open: true},
	BooleanClose: {Variant: Boolean, Open: false},
	NullOpen:    {Variant: Null, Open: true},
	NullClose:   {Variant: Null, Open: false},
}

// fieldPair is the Open/Close id pair assigned to one field name.
type fieldPair struct {
	open, close Id
}

// Registry interns field-name-qualified kinds during a parse and is
// frozen (read-only) once the parse finishes. Registering the same field
// name twice, even across many nodes, always returns the same pair: the
// map lookup is amortized once per distinct name, not once per node, so a
// plain string-keyed map is the right tool here rather than the
// hash-bucket tricks a per-node hot path would need.
type Registry struct {
	infos  []Info
	fields map[string]fieldPair
	frozen bool
}

// NewRegistry returns a Registry pre-seeded with the twelve fixed kinds.
func NewRegistry() *Registry {
	infos := make([]Info, firstFieldId, firstFieldId+16)
	copy(infos, fixedInfos[:])
	return &Registry{
		infos:  infos,
		fields: make(map[string]fieldPair),
	}
}

// OpenField registers (if not already present) the Open/Close pair for a
// field name and returns both ids. Subsequent calls with the same name
// return the same pair.
func (r *Registry) OpenField(name string) (open, close Id) {
	if r.frozen {
		panic("kind: OpenField called on a frozen Registry")
	}
	if p, ok := r.fields[name]; ok {
		return p.open, p.close
	}
	open = Id(len(r.infos))
	close = open + 1
	r.infos = append(r.infos,
		Info{Variant: Field, Open: true, Name: name},
		Info{Variant: Field, Open: false, Name: name},
	)
	r.fields[name] = fieldPair{open: open, close: close}
	return open, close
}

// Lookup returns the Info registered for id. It panics on an unregistered
// id: callers only ever pass ids obtained from this Registry or from a
// document built against it, so an out-of-range id is a programmer error.
func (r *Registry) Lookup(id Id) Info {
	if int(id) >= len(r.infos) {
		panic(fmt.Sprintf("kind: id %d out of range (have %d kinds)", id, len(r.infos)))
	}
	return r.infos[id]
}

// Count returns the number of distinct registered kinds (12 + distinct
// field names seen so far).
func (r *Registry) Count() int {
	return len(r.infos)
}

// Freeze marks the registry read-only. Called once, at the end of a
// successful parse, before the Registry is embedded in a Document.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Matches reports whether open and close are the opening and closing
// halves of one NodeKind: same variant (and, for fields, same name), with
// open an opening id and close a closing id. The order matters:
// Matches(close, open) is false.
func (r *Registry) Matches(open, close Id) bool {
	oi, ci := r.Lookup(open), r.Lookup(close)
	if oi.Variant != ci.Variant || !oi.Open || ci.Open {
		return false
	}
	if oi.Variant == Field {
		return oi.Name == ci.Name
	}
	return true
}
