// Package values implements the numbers and booleans side arrays: dense,
// append-only stores addressed by rank-derived dense ids (number_id,
// boolean_id). Nulls have no storage of their own: their presence is
// carried entirely by the usage index.
package values

import "github.com/bits-and-blooms/bitset"

// Numbers is a dense, source-order array of parsed number values.
type Numbers struct {
	vals []float64
}

// NumbersBuilder appends numbers in source order.
type NumbersBuilder struct {
	vals []float64
}

// NewNumbersBuilder returns an empty NumbersBuilder.
func NewNumbersBuilder() *NumbersBuilder {
	return &NumbersBuilder{}
}

// Append records v as the next number and returns its dense NumberId.
func (b *NumbersBuilder) Append(v float64) uint64 {
	id := uint64(len(b.vals))
	b.vals = append(b.vals, v)
	return id
}

// Build freezes the accumulated values into a Numbers array.
func (b *NumbersBuilder) Build() *Numbers {
	return &Numbers{vals: b.vals}
}

// Len returns the count of stored numbers.
func (n *Numbers) Len() int { return len(n.vals) }

// At returns the number at dense id i.
func (n *Numbers) At(i uint64) float64 { return n.vals[i] }

// ApproxHeapSize estimates this array's resident memory in bytes.
func (n *Numbers) ApproxHeapSize() int64 { return int64(len(n.vals)) * 8 }

// Booleans is a dense bit-vector of boolean values, addressed directly by
// boolean_id (no rank/select needed since ids are already dense).
type Booleans struct {
	bits *bitset.BitSet
	n    int
}

// BooleansBuilder appends booleans in source order.
type BooleansBuilder struct {
	bits *bitset.BitSet
	n    int
}

// NewBooleansBuilder returns an empty BooleansBuilder.
func NewBooleansBuilder() *BooleansBuilder {
	return &BooleansBuilder{bits: bitset.New(0)}
}

// Append records v as the next boolean and returns its dense BooleanId.
func (b *BooleansBuilder) Append(v bool) uint64 {
	id := uint64(b.n)
	if v {
		b.bits.Set(uint(b.n))
	}
	b.n++
	return id
}

// Build freezes the accumulated values into a Booleans bit-vector.
func (b *BooleansBuilder) Build() *Booleans {
	return &Booleans{bits: b.bits, n: b.n}
}

// Len returns the count of stored booleans.
func (bb *Booleans) Len() int { return bb.n }

// At returns the boolean at dense id i.
func (bb *Booleans) At(i uint64) bool { return bb.bits.Test(uint(i)) }

// ApproxHeapSize estimates this bit-vector's resident memory in bytes.
func (bb *Booleans) ApproxHeapSize() int64 { return int64((bb.n + 63) / 64 * 8) }
