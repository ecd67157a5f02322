// Package text implements the block-compressed text store: strings are
// grouped into soft-capped blocks, each compressed with a deflate-family
// coder, with an LRU cache fronting repeated decompression.
package text

import (
	"bytes"
	"io"

	"github.com/RoaringBitmap/roaring/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/klauspost/compress/flate"
)

// TextId is a dense, 0-based index into the text store's logical string
// sequence, assigned in add_string order.
type TextId uint32

// BlockId identifies one compressed block within a Store.
type BlockId uint32

// block is one compressed run of strings plus the metadata needed to
// locate and split it back into individual strings.
type block struct {
	compressed   []byte
	originalSize int
	firstTextId  TextId
	starts       *roaring.Bitmap
}

// Store is a frozen, queryable text store built by Builder.
type Store struct {
	blocks         []block
	textBlock      []BlockId
	cache          *lru.Cache[BlockId, []string]
	cachingEnabled bool
}

// NumStrings returns the total number of strings held by the store.
func (s *Store) NumStrings() int { return len(s.textBlock) }

// GetString returns the exact bytes passed to add_string for TextId t.
// Decompressing and splitting a block it corrupted is a programmer-error
// condition, not a recoverable one, per the store's error-handling design;
// it panics rather than returning an error.
func (s *Store) GetString(t TextId) string {
	blockID := s.textBlock[t]
	b := &s.blocks[blockID]
	localIdx := int(t) - int(b.firstTextId)

	if s.cachingEnabled {
		if strs, ok := s.cache.Get(blockID); ok {
			return strs[localIdx]
		}
	}

	strs := decodeBlock(b)
	if s.cachingEnabled {
		s.cache.Add(blockID, strs)
	}
	return strs[localIdx]
}

// ApproxHeapSize returns a rough estimate, in bytes, of this store's
// resident memory: compressed block payloads plus per-block bookkeeping,
// independent of how many get_string calls have run (queries never grow
// non-cache state).
func (s *Store) ApproxHeapSize() int64 {
	var total int64
	for _, b := range s.blocks {
		total += int64(len(b.compressed))
		total += int64(b.starts.GetSizeInBytes())
		total += 32 // fixed block bookkeeping overhead
	}
	total += int64(len(s.textBlock)) * 4
	return total
}

func decodeBlock(b *block) []string {
	r := flate.NewReader(bytes.NewReader(b.compressed))
	defer r.Close()
	buf := make([]byte, b.originalSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		panic("text: corrupt block: " + err.Error())
	}

	n := int(b.starts.GetCardinality())
	out := make([]string, n)
	it := b.starts.Iterator()
	idx := 0
	var prev uint32
	havePrev := false
	for it.HasNext() {
		start := it.Next()
		if havePrev {
			out[idx-1] = string(buf[prev : start-1])
		}
		prev = start
		havePrev = true
		idx++
	}
	if havePrev {
		out[idx-1] = string(buf[prev : uint32(b.originalSize)-1])
	}
	return out
}
