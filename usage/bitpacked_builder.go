package usage

import (
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/tendrilcode/sjson/kind"
)

// blockValues is the number of positions packed into one delta-coded block.
const blockValues = 128

// blockMeta locates one bit-packed block: a 32-bit initial value followed
// by (count-1) fixed-width deltas.
type blockMeta struct {
	firstVal     uint32
	bitOffset    uint
	count        int
	bitsPerDelta uint
}

// bitpackedSeq is one kind's strictly-increasing position stream, packed
// into 128-value blocks over a growable bit buffer. Positions arrive in
// increasing order, so every delta is >= 1 and is stored as delta-1 to use
// the minimum width the block's largest gap requires.
type bitpackedSeq struct {
	bits    *bitset.BitSet
	nextBit uint
	blocks  []blockMeta
	pending []uint32
}

func newBitpackedSeq() *bitpackedSeq {
	return &bitpackedSeq{bits: bitset.New(0)}
}

func (s *bitpackedSeq) append(v uint32) {
	s.pending = append(s.pending, v)
	if len(s.pending) == blockValues {
		s.flush()
	}
}

func (s *bitpackedSeq) flush() {
	if len(s.pending) == 0 {
		return
	}
	first := s.pending[0]
	var maxDelta uint32
	for i := 1; i < len(s.pending); i++ {
		d := s.pending[i] - s.pending[i-1] - 1
		if d > maxDelta {
			maxDelta = d
		}
	}
	bitsPerDelta := uint(bits.Len32(maxDelta))

	meta := blockMeta{
		firstVal:     first,
		bitOffset:    s.nextBit,
		count:        len(s.pending),
		bitsPerDelta: bitsPerDelta,
	}
	s.writeBits(uint64(first), 32)
	for i := 1; i < len(s.pending); i++ {
		d := s.pending[i] - s.pending[i-1] - 1
		s.writeBits(uint64(d), bitsPerDelta)
	}
	s.blocks = append(s.blocks, meta)
	s.pending = s.pending[:0]
}

func (s *bitpackedSeq) writeBits(v uint64, n uint) {
	for i := uint(0); i < n; i++ {
		if v&(1<<i) != 0 {
			s.bits.Set(s.nextBit + i)
		}
	}
	s.nextBit += n
}

func (s *bitpackedSeq) readBits(offset, n uint) uint64 {
	var v uint64
	for i := uint(0); i < n; i++ {
		if s.bits.Test(offset + i) {
			v |= 1 << i
		}
	}
	return v
}

// decodeAll reconstructs every position in increasing order.
func (s *bitpackedSeq) decodeAll() []uint32 {
	out := make([]uint32, 0, len(s.blocks)*blockValues)
	for _, m := range s.blocks {
		out = append(out, m.firstVal)
		prev := m.firstVal
		off := m.bitOffset + 32
		for i := 1; i < m.count; i++ {
			d := uint32(s.readBits(off, m.bitsPerDelta))
			off += m.bitsPerDelta
			v := prev + d + 1
			out = append(out, v)
			prev = v
		}
	}
	return out
}

// BitpackedBuilder packs each kind's positions into delta-coded blocks
// during the build, trading build-time CPU for lower peak memory than
// RoaringBuilder on highly structured (long monotone run) inputs. It
// converts to the same roaring-backed Index as RoaringBuilder at Build
// time, so the choice of builder leaves no trace in the frozen document.
type BitpackedBuilder struct {
	seqs map[kind.Id]*bitpackedSeq
}

// NewBitpackedBuilder returns an empty BitpackedBuilder.
func NewBitpackedBuilder() *BitpackedBuilder {
	return &BitpackedBuilder{seqs: make(map[kind.Id]*bitpackedSeq)}
}

// Append records that position pos is of kind k.
func (b *BitpackedBuilder) Append(k kind.Id, pos uint32) {
	s, ok := b.seqs[k]
	if !ok {
		s = newBitpackedSeq()
		b.seqs[k] = s
	}
	s.append(pos)
}

// Build flushes every kind's partial trailing block, decodes each kind's
// full position stream, and assembles the same Index type RoaringBuilder
// produces.
func (b *BitpackedBuilder) Build(n int) *Index {
	bitmaps := make(map[kind.Id]*roaring.Bitmap, len(b.seqs))
	for k, s := range b.seqs {
		s.flush()
		bm := roaring.New()
		for _, v := range s.decodeAll() {
			bm.Add(v)
		}
		bm.RunOptimize()
		bitmaps[k] = bm
	}
	return newIndex(bitmaps, n)
}
