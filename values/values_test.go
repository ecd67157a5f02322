package values_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tendrilcode/sjson/values"
)

func TestNumbersRoundTrip(t *testing.T) {
	b := values.NewNumbersBuilder()
	id0 := b.Append(1.5)
	id1 := b.Append(-2)
	id2 := b.Append(0)
	nums := b.Build()

	require.Equal(t, 3, nums.Len())
	require.Equal(t, 1.5, nums.At(id0))
	require.Equal(t, float64(-2), nums.At(id1))
	require.Equal(t, float64(0), nums.At(id2))
}

func TestBooleansRoundTrip(t *testing.T) {
	b := values.NewBooleansBuilder()
	idTrue := b.Append(true)
	idFalse := b.Append(false)
	idTrue2 := b.Append(true)
	bools := b.Build()

	require.Equal(t, 3, bools.Len())
	require.True(t, bools.At(idTrue))
	require.False(t, bools.At(idFalse))
	require.True(t, bools.At(idTrue2))
}

func TestBooleansAllFalseDefault(t *testing.T) {
	b := values.NewBooleansBuilder()
	for i := 0; i < 5; i++ {
		b.Append(false)
	}
	bools := b.Build()
	for i := uint64(0); i < 5; i++ {
		require.False(t, bools.At(i))
	}
}
