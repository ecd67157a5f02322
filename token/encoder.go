package token

import (
	"bufio"
	"encoding/json"
	"io"
	"strconv"
)

// frame tracks one open array or object: whether it takes name:value pairs,
// and how many entries have been written so far (for comma placement).
type frame struct {
	inObject bool
	count    int
}

// Encoder is the symmetric writer counterpart to Decoder: BeginArray/
// EndArray, BeginObject/EndObject, WriteName, WriteString/WriteNumber/
// WriteBool/WriteNull. No stdlib type streams raw JSON tokens the way
// json.Decoder.Token reads them, so Encoder hand-emits syntax directly,
// reusing encoding/json.Marshal only for string escaping.
type Encoder struct {
	w     *bufio.Writer
	stack []frame
}

// NewEncoder wraps w in an Encoder.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

// Flush writes any buffered output to the underlying writer.
func (e *Encoder) Flush() error { return e.w.Flush() }

// beforeValue inserts the comma/count bookkeeping for an array element.
// Object entries get the same bookkeeping from WriteName instead, since an
// object value is always preceded by its name.
func (e *Encoder) beforeValue() {
	if len(e.stack) == 0 {
		return
	}
	top := &e.stack[len(e.stack)-1]
	if top.inObject {
		return
	}
	if top.count > 0 {
		e.w.WriteByte(',')
	}
	top.count++
}

// BeginArray opens a new array, as a value in its parent container.
func (e *Encoder) BeginArray() {
	e.beforeValue()
	e.w.WriteByte('[')
	e.stack = append(e.stack, frame{inObject: false})
}

// EndArray closes the innermost open array.
func (e *Encoder) EndArray() {
	e.stack = e.stack[:len(e.stack)-1]
	e.w.WriteByte(']')
}

// BeginObject opens a new object, as a value in its parent container.
func (e *Encoder) BeginObject() {
	e.beforeValue()
	e.w.WriteByte('{')
	e.stack = append(e.stack, frame{inObject: true})
}

// EndObject closes the innermost open object.
func (e *Encoder) EndObject() {
	e.stack = e.stack[:len(e.stack)-1]
	e.w.WriteByte('}')
}

// WriteName writes a field name inside the innermost open object,
// including its own comma and the trailing colon.
func (e *Encoder) WriteName(name string) {
	top := &e.stack[len(e.stack)-1]
	if top.count > 0 {
		e.w.WriteByte(',')
	}
	top.count++
	e.writeJSONString(name)
	e.w.WriteByte(':')
}

// WriteString writes a string value.
func (e *Encoder) WriteString(s string) {
	e.beforeValue()
	e.writeJSONString(s)
}

// WriteNumber writes a float64 value using the shortest round-tripping
// representation.
func (e *Encoder) WriteNumber(v float64) {
	e.beforeValue()
	e.w.Write(strconv.AppendFloat(nil, v, 'g', -1, 64))
}

// WriteBool writes a boolean value.
func (e *Encoder) WriteBool(v bool) {
	e.beforeValue()
	if v {
		e.w.WriteString("true")
	} else {
		e.w.WriteString("false")
	}
}

// WriteNull writes a null value.
func (e *Encoder) WriteNull() {
	e.beforeValue()
	e.w.WriteString("null")
}

func (e *Encoder) writeJSONString(s string) {
	b, err := json.Marshal(s)
	if err != nil {
		// json.Marshal does not fail for a string value: invalid UTF-8 is
		// written as U+FFFD rather than reported.
		panic("token: marshal string: " + err.Error())
	}
	e.w.Write(b)
}
