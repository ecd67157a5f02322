package text_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tendrilcode/sjson/text"
)

func TestAddAndRetrieveRoundTrip(t *testing.T) {
	b := text.NewBuilder(text.DefaultBlockSize, text.DefaultCacheCapacity)
	ids := make([]text.TextId, 0, 5)
	words := []string{"hello", "", "world", "a longer string here", ""}
	for _, w := range words {
		ids = append(ids, b.AddString(w))
	}
	store := b.Build()

	for i, id := range ids {
		require.Equal(t, words[i], store.GetString(id))
	}
}

func TestEmptyStringIsAddressable(t *testing.T) {
	b := text.NewBuilder(text.DefaultBlockSize, text.DefaultCacheCapacity)
	id := b.AddString("")
	store := b.Build()
	require.Equal(t, "", store.GetString(id))
}

func TestStringExactlyBlockSizeGetsOwnBlock(t *testing.T) {
	const blockSize = 16
	b := text.NewBuilder(blockSize, text.DefaultCacheCapacity)

	first := b.AddString("abc") // into block 0
	exact := strings.Repeat("x", blockSize)
	exactID := b.AddString(exact) // should finalize block 0, then occupy block 1 alone
	after := b.AddString("y")     // should finalize block 1, landing in block 2

	store := b.Build()
	require.Equal(t, "abc", store.GetString(first))
	require.Equal(t, exact, store.GetString(exactID))
	require.Equal(t, "y", store.GetString(after))
}

func TestStringLargerThanBlockSizeGetsOwnBlock(t *testing.T) {
	const blockSize = 4
	b := text.NewBuilder(blockSize, text.DefaultCacheCapacity)
	huge := strings.Repeat("z", blockSize*10)
	id := b.AddString(huge)
	next := b.AddString("tail")
	store := b.Build()

	require.Equal(t, huge, store.GetString(id))
	require.Equal(t, "tail", store.GetString(next))
}

func TestBlockSizeZeroSeparatesNonEmptyAdds(t *testing.T) {
	b := text.NewBuilder(0, text.DefaultCacheCapacity)
	a := b.AddString("a")
	c := b.AddString("b")
	store := b.Build()

	require.Equal(t, "a", store.GetString(a))
	require.Equal(t, "b", store.GetString(c))
}

func TestCacheCapacityZeroDisablesCachingButStillWorks(t *testing.T) {
	b := text.NewBuilder(8, 0)
	id1 := b.AddString("one")
	id2 := b.AddString("twotwotwo")
	store := b.Build()

	require.Equal(t, "one", store.GetString(id1))
	require.Equal(t, "twotwotwo", store.GetString(id2))
	// Every call decompresses independently; calling twice must still agree.
	require.Equal(t, "one", store.GetString(id1))
}

func TestHeapSizeIndependentOfQueryHistory(t *testing.T) {
	b := text.NewBuilder(text.DefaultBlockSize, text.DefaultCacheCapacity)
	ids := make([]text.TextId, 0, 20)
	for i := 0; i < 20; i++ {
		ids = append(ids, b.AddString(strings.Repeat("v", i+1)))
	}
	store := b.Build()
	before := store.ApproxHeapSize()
	for _, id := range ids {
		_ = store.GetString(id)
		_ = store.GetString(id)
	}
	after := store.ApproxHeapSize()
	require.Equal(t, before, after)
}
