package text

import (
	"bytes"

	"github.com/RoaringBitmap/roaring/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/klauspost/compress/flate"
)

// DefaultBlockSize is the soft cap, in decompressed bytes, on a block's
// buffer before it is finalized.
const DefaultBlockSize = 1 << 20

// DefaultCacheCapacity is the number of decoded blocks the LRU cache holds.
const DefaultCacheCapacity = 10

// Builder accumulates strings into soft-capped, deflate-compressed blocks.
type Builder struct {
	blockSize     int
	cacheCapacity int

	currentBuffer []byte
	currentStarts []uint32

	blocks    []block
	textBlock []BlockId
	textCount int
}

// NewBuilder returns an empty Builder with the given block size (in
// decompressed bytes) and cache capacity (in blocks).
func NewBuilder(blockSize, cacheCapacity int) *Builder {
	return &Builder{blockSize: blockSize, cacheCapacity: cacheCapacity}
}

// AddString appends s to the current block, finalizing the in-progress
// block first if s would overflow it, and returns its TextId.
func (b *Builder) AddString(s string) TextId {
	if len(b.currentBuffer)+len(s) > b.blockSize && len(b.currentBuffer) > 0 {
		b.finalizeCurrentBlock()
	}

	start := uint32(len(b.currentBuffer))
	b.currentStarts = append(b.currentStarts, start)
	b.currentBuffer = append(b.currentBuffer, s...)
	b.currentBuffer = append(b.currentBuffer, 0x00)

	id := TextId(b.textCount)
	b.textCount++
	b.textBlock = append(b.textBlock, BlockId(len(b.blocks)))
	return id
}

func (b *Builder) finalizeCurrentBlock() {
	if len(b.currentBuffer) == 0 {
		return
	}
	firstTextID := TextId(b.textCount - len(b.currentStarts))
	blk := block{
		compressed:   compress(b.currentBuffer),
		originalSize: len(b.currentBuffer),
		firstTextId:  firstTextID,
		starts:       roaring.BitmapOf(b.currentStarts...),
	}
	b.blocks = append(b.blocks, blk)
	b.currentBuffer = b.currentBuffer[:0]
	b.currentStarts = b.currentStarts[:0]
}

// Build finalizes any pending block and returns the frozen Store. The
// Builder must not be reused afterward.
func (b *Builder) Build() *Store {
	b.finalizeCurrentBlock()

	capacity := b.cacheCapacity
	if capacity < 1 {
		capacity = 1
	}
	cache, err := lru.New[BlockId, []string](capacity)
	if err != nil {
		panic("text: lru.New: " + err.Error())
	}

	return &Store{
		blocks:         b.blocks,
		textBlock:      b.textBlock,
		cache:          cache,
		cachingEnabled: b.cacheCapacity > 0,
	}
}

func compress(data []byte) []byte {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		panic("text: flate.NewWriter: " + err.Error())
	}
	if _, err := w.Write(data); err != nil {
		panic("text: flate write: " + err.Error())
	}
	if err := w.Close(); err != nil {
		panic("text: flate close: " + err.Error())
	}
	return buf.Bytes()
}
