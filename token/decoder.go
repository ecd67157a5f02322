package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Decoder is a one-token-of-lookahead pull parser over a JSON byte stream,
// exposing the event surface the document builder consumes: PeekKind,
// BeginArray/EndArray, BeginObject/EndObject, NextName/NextString/
// NextNumber/NextBool/NextNull, HasNext.
type Decoder struct {
	dec     *json.Decoder
	cur     json.Token
	curKind Kind
	pending bool
	err     error
}

// NewDecoder wraps r in a Decoder. Numbers are decoded as json.Number so
// the caller controls float parsing precision.
func NewDecoder(r io.Reader) *Decoder {
	d := json.NewDecoder(r)
	d.UseNumber()
	return &Decoder{dec: d}
}

// Err returns the first decode error encountered, if any.
func (d *Decoder) Err() error { return d.err }

func (d *Decoder) fill() error {
	if d.pending || d.err != nil {
		return d.err
	}
	tok, err := d.dec.Token()
	if err == io.EOF {
		d.curKind = KindEOF
		d.pending = true
		return nil
	}
	if err != nil {
		var jsonErr *json.SyntaxError
		if errors.As(err, &jsonErr) || err == io.ErrUnexpectedEOF {
			d.err = &SyntaxError{Err: err}
		} else {
			d.err = err
		}
		return d.err
	}
	d.cur = tok
	d.curKind = classify(tok)
	d.pending = true
	return nil
}

func classify(tok json.Token) Kind {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return KindObjectBegin
		case '}':
			return KindObjectEnd
		case '[':
			return KindArrayBegin
		case ']':
			return KindArrayEnd
		}
	case string:
		return KindString
	case json.Number:
		return KindNumber
	case bool:
		return KindBool
	case nil:
		return KindNull
	}
	return KindEOF
}

// PeekKind reports the kind of the next token without consuming it.
func (d *Decoder) PeekKind() (Kind, error) {
	if err := d.fill(); err != nil {
		return KindEOF, err
	}
	return d.curKind, nil
}

// HasNext reports whether the current container has another element: the
// next token is neither a closing delimiter nor end of stream.
func (d *Decoder) HasNext() (bool, error) {
	k, err := d.PeekKind()
	if err != nil {
		return false, err
	}
	return k != KindArrayEnd && k != KindObjectEnd && k != KindEOF, nil
}

func (d *Decoder) consume() {
	d.pending = false
}

func (d *Decoder) expect(want Kind, name string) error {
	if err := d.fill(); err != nil {
		return err
	}
	if d.curKind != want {
		return &SyntaxError{Err: fmt.Errorf("expected %s, got kind %d", name, d.curKind)}
	}
	return nil
}

// BeginArray consumes a '[' token.
func (d *Decoder) BeginArray() error {
	if err := d.expect(KindArrayBegin, "array-begin"); err != nil {
		return err
	}
	d.consume()
	return nil
}

// EndArray consumes a ']' token.
func (d *Decoder) EndArray() error {
	if err := d.expect(KindArrayEnd, "array-end"); err != nil {
		return err
	}
	d.consume()
	return nil
}

// BeginObject consumes a '{' token.
func (d *Decoder) BeginObject() error {
	if err := d.expect(KindObjectBegin, "object-begin"); err != nil {
		return err
	}
	d.consume()
	return nil
}

// EndObject consumes a '}' token.
func (d *Decoder) EndObject() error {
	if err := d.expect(KindObjectEnd, "object-end"); err != nil {
		return err
	}
	d.consume()
	return nil
}

// NextName consumes a field name. encoding/json does not tag object keys
// differently from string values at the token level, so the caller must
// only call NextName where the grammar expects one (immediately after
// BeginObject or a prior value, before the next value).
func (d *Decoder) NextName() (string, error) {
	if err := d.expect(KindString, "name"); err != nil {
		return "", err
	}
	s := d.cur.(string)
	d.consume()
	return s, nil
}

// NextString consumes a string value.
func (d *Decoder) NextString() (string, error) {
	if err := d.expect(KindString, "string"); err != nil {
		return "", err
	}
	s := d.cur.(string)
	d.consume()
	return s, nil
}

// NextNumber consumes a number value.
func (d *Decoder) NextNumber() (float64, error) {
	if err := d.expect(KindNumber, "number"); err != nil {
		return 0, err
	}
	n := d.cur.(json.Number)
	d.consume()
	v, err := n.Float64()
	if err != nil {
		return 0, &NumberError{Literal: n.String(), Err: err}
	}
	return v, nil
}

// NextBool consumes a boolean value.
func (d *Decoder) NextBool() (bool, error) {
	if err := d.expect(KindBool, "bool"); err != nil {
		return false, err
	}
	v := d.cur.(bool)
	d.consume()
	return v, nil
}

// NextNull consumes a null value.
func (d *Decoder) NextNull() error {
	if err := d.expect(KindNull, "null"); err != nil {
		return err
	}
	d.consume()
	return nil
}
