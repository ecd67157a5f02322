package usage

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/tendrilcode/sjson/kind"
)

// RoaringBuilder appends positions directly into a roaring bitmap per kind
// as they are discovered. Simpler and faster than BitpackedBuilder, at the
// cost of higher peak memory while roaring's containers are still being
// chosen during the build.
type RoaringBuilder struct {
	bitmaps map[kind.Id]*roaring.Bitmap
}

// NewRoaringBuilder returns an empty RoaringBuilder.
func NewRoaringBuilder() *RoaringBuilder {
	return &RoaringBuilder{bitmaps: make(map[kind.Id]*roaring.Bitmap)}
}

// Append records that position pos is of kind k.
func (b *RoaringBuilder) Append(k kind.Id, pos uint32) {
	bm, ok := b.bitmaps[k]
	if !ok {
		bm = roaring.New()
		b.bitmaps[k] = bm
	}
	bm.Add(pos)
}

// Build freezes the accumulated bitmaps into an Index over a sequence of
// length n, running each bitmap's container optimizer first.
func (b *RoaringBuilder) Build(n int) *Index {
	for _, bm := range b.bitmaps {
		bm.RunOptimize()
	}
	return newIndex(b.bitmaps, n)
}
