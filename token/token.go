// Package token implements the tokenizer/emitter collaborator the document
// builder and serializer depend on. It wraps encoding/json's token stream
// rather than a third-party parser: any conformant tokenizer suffices here,
// and a second JSON library would not exercise any additional component
// (see DESIGN.md).
package token

// Kind classifies the next token a Decoder would yield without consuming
// it, or the shape of value a caller is about to write to an Encoder.
type Kind uint8

const (
	KindEOF Kind = iota
	KindObjectBegin
	KindObjectEnd
	KindArrayBegin
	KindArrayEnd
	KindString
	KindNumber
	KindBool
	KindNull
)
