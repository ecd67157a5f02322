package usage_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tendrilcode/sjson/kind"
	"github.com/tendrilcode/sjson/usage"
)

// buildBoth runs the same (kind, pos) stream through both builder variants
// and returns both resulting indexes, so every assertion below can be
// checked against each without duplicating the test body.
func buildBoth(t *testing.T, n int, entries []struct {
	k   kind.Id
	pos uint32
}) (*usage.Index, *usage.Index) {
	t.Helper()
	rb := usage.NewRoaringBuilder()
	bb := usage.NewBitpackedBuilder()
	for _, e := range entries {
		rb.Append(e.k, e.pos)
		bb.Append(e.k, e.pos)
	}
	return rb.Build(n), bb.Build(n)
}

func TestKindAtRankSelectAgreeAcrossBuilders(t *testing.T) {
	// Positions of kind.ObjectOpen at 0, 3, 5; kind.ArrayOpen at 1, 2, 4.
	entries := []struct {
		k   kind.Id
		pos uint32
	}{
		{kind.ObjectOpen, 0},
		{kind.ArrayOpen, 1},
		{kind.ArrayOpen, 2},
		{kind.ObjectOpen, 3},
		{kind.ArrayOpen, 4},
		{kind.ObjectOpen, 5},
	}
	roaringIdx, bitpackedIdx := buildBoth(t, 6, entries)

	for _, idx := range []*usage.Index{roaringIdx, bitpackedIdx} {
		k, ok := idx.KindAt(3)
		require.True(t, ok)
		require.Equal(t, kind.ObjectOpen, k)

		require.Equal(t, uint64(2), idx.Rank(5, kind.ObjectOpen))
		require.Equal(t, uint64(0), idx.Rank(0, kind.ObjectOpen))
		require.Equal(t, uint64(2), idx.Rank(3, kind.ArrayOpen))

		pos, ok := idx.Select(1, kind.ObjectOpen)
		require.True(t, ok)
		require.Equal(t, uint32(3), pos)

		_, ok = idx.Select(3, kind.ObjectOpen)
		require.False(t, ok)

		_, ok = idx.KindAt(6)
		require.False(t, ok)
	}
}

func TestRankSelectInverseInvariant(t *testing.T) {
	entries := make([]struct {
		k   kind.Id
		pos uint32
	}, 0, 40)
	for i := uint32(0); i < 40; i++ {
		k := kind.ArrayOpen
		if i%3 == 0 {
			k = kind.ObjectOpen
		}
		entries = append(entries, struct {
			k   kind.Id
			pos uint32
		}{k, i})
	}
	roaringIdx, bitpackedIdx := buildBoth(t, 40, entries)

	for _, idx := range []*usage.Index{roaringIdx, bitpackedIdx} {
		for _, k := range []kind.Id{kind.ObjectOpen, kind.ArrayOpen} {
			var r uint32
			for {
				pos, ok := idx.Select(r, k)
				if !ok {
					break
				}
				require.Equal(t, uint64(r), idx.Rank(pos, k))
				r++
			}
		}
	}
}

func TestBitpackedSpansMultipleBlocks(t *testing.T) {
	// 300 strictly increasing positions, all the same kind, to exercise
	// more than two 128-value blocks in BitpackedBuilder.
	const count = 300
	entries := make([]struct {
		k   kind.Id
		pos uint32
	}, count)
	for i := 0; i < count; i++ {
		entries[i] = struct {
			k   kind.Id
			pos uint32
		}{kind.StringOpen, uint32(i * 2)}
	}
	_, bitpackedIdx := buildBoth(t, count*2, entries)

	for i := 0; i < count; i++ {
		pos, ok := bitpackedIdx.Select(uint32(i), kind.StringOpen)
		require.True(t, ok)
		require.Equal(t, uint32(i*2), pos)
	}
	require.Equal(t, uint64(count), bitpackedIdx.Rank(uint32(count*2), kind.StringOpen))
}

func TestTextNumberBooleanIdHelpers(t *testing.T) {
	entries := []struct {
		k   kind.Id
		pos uint32
	}{
		{kind.StringOpen, 0},
		{kind.NumberOpen, 1},
		{kind.BooleanOpen, 2},
		{kind.StringOpen, 3},
	}
	roaringIdx, _ := buildBoth(t, 4, entries)

	require.Equal(t, uint64(1), roaringIdx.TextId(3))
	require.Equal(t, uint64(0), roaringIdx.NumberId(1))
	require.Equal(t, uint64(0), roaringIdx.BooleanId(2))
}
