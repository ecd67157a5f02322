package document

import (
	"io"

	"github.com/tendrilcode/sjson/bptree"
	"github.com/tendrilcode/sjson/token"
)

// Serialize walks the document depth-first, re-emitting it as canonical
// JSON through a token.Encoder. The result need not match the original
// source byte-for-byte, but re-parses to a structurally equal Document.
func (d *Document) Serialize(w io.Writer) error {
	enc := token.NewEncoder(w)
	d.serializeNode(enc, d.Root())
	return enc.Flush()
}

func (d *Document) serializeNode(enc *token.Encoder, n Node) {
	val := d.value(n)
	switch val.kind {
	case KindObject:
		enc.BeginObject()
		for field := d.tree.FirstChild(n); field != bptree.NoNode; field = d.tree.NextSibling(field) {
			enc.WriteName(d.fieldName(field))
			valueNode := d.tree.FirstChild(field)
			d.serializeNode(enc, valueNode)
		}
		enc.EndObject()
	case KindArray:
		enc.BeginArray()
		for child := d.tree.FirstChild(n); child != bptree.NoNode; child = d.tree.NextSibling(child) {
			d.serializeNode(enc, child)
		}
		enc.EndArray()
	case KindString:
		enc.WriteString(val.str)
	case KindNumber:
		enc.WriteNumber(val.num)
	case KindBoolean:
		enc.WriteBool(val.boolean)
	case KindNull:
		enc.WriteNull()
	}
}
