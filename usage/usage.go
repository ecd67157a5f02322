// Package usage implements the per-kind usage index and its two
// build-time variants: positions in the parentheses sequence grouped by
// NodeKind, queryable by kind-at/rank/select.
//
// Both Builder implementations converge on the same frozen Index type, so
// which one was used to build a document is never observable afterward;
// only their peak build-time memory profile differs.
package usage

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/tendrilcode/sjson/kind"
)

// Index is a frozen, per-kind usage index over a parentheses sequence of
// length n. Every position in [0, n) belongs to exactly one registered
// kind.
type Index struct {
	bitmaps map[kind.Id]*roaring.Bitmap
	posKind []uint32 // kind.Id narrowed to 4 bytes; dense, one entry per position
	n       int
}

// Len returns the length of the sequence this index was built over.
func (idx *Index) Len() int { return idx.n }

// ApproxHeapSize estimates this index's resident memory in bytes: every
// per-kind bitmap's serialized size estimate plus the dense kind-at array.
func (idx *Index) ApproxHeapSize() int64 {
	var total int64
	for _, bm := range idx.bitmaps {
		total += int64(bm.GetSizeInBytes())
	}
	total += int64(len(idx.posKind)) * 4
	return total
}

// KindAt returns the kind registered at position i, or ok=false if i is out
// of range.
func (idx *Index) KindAt(i uint32) (k kind.Id, ok bool) {
	if int(i) >= idx.n {
		return 0, false
	}
	return kind.Id(idx.posKind[i]), true
}

// Rank returns the number of positions strictly less than i that are of
// kind k.
func (idx *Index) Rank(i uint32, k kind.Id) uint64 {
	bm := idx.bitmaps[k]
	if bm == nil || i == 0 {
		return 0
	}
	return bm.Rank(i - 1)
}

// Select returns the position of the r-th (0-indexed) occurrence of kind k,
// or ok=false if there is no such occurrence.
func (idx *Index) Select(r uint32, k kind.Id) (pos uint32, ok bool) {
	bm := idx.bitmaps[k]
	if bm == nil || uint64(r) >= bm.GetCardinality() {
		return 0, false
	}
	v, err := bm.Select(r)
	if err != nil {
		return 0, false
	}
	return v, true
}

// TextId returns the dense index of the string opening at position i into
// the text store's side array: rank(i, StringOpen).
func (idx *Index) TextId(i uint32) uint64 { return idx.Rank(i, kind.StringOpen) }

// NumberId returns the dense index of the number opening at position i into
// the numbers side array: rank(i, NumberOpen).
func (idx *Index) NumberId(i uint32) uint64 { return idx.Rank(i, kind.NumberOpen) }

// BooleanId returns the dense index of the boolean opening at position i
// into the booleans side array: rank(i, BooleanOpen).
func (idx *Index) BooleanId(i uint32) uint64 { return idx.Rank(i, kind.BooleanOpen) }

func newIndex(bitmaps map[kind.Id]*roaring.Bitmap, n int) *Index {
	idx := &Index{bitmaps: bitmaps, n: n, posKind: make([]uint32, n)}
	for k, bm := range bitmaps {
		it := bm.Iterator()
		for it.HasNext() {
			pos := it.Next()
			if int(pos) < n {
				idx.posKind[pos] = uint32(k)
			}
		}
	}
	return idx
}
