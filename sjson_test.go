package sjson_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tendrilcode/sjson"
)

func TestParseAndQuery(t *testing.T) {
	doc, err := sjson.Parse(strings.NewReader(`{"name":"ada","age":36}`), sjson.DefaultConfig())
	require.NoError(t, err)

	obj, ok := doc.Value(doc.Root()).AsObject()
	require.True(t, ok)

	name, ok := obj.Get("name")
	require.True(t, ok)
	s, ok := name.AsString()
	require.True(t, ok)
	require.Equal(t, "ada", s)

	_, ok = obj.Get("missing")
	require.False(t, ok)
}

func TestParseErrorKind(t *testing.T) {
	_, err := sjson.Parse(strings.NewReader(`{"a":}`), sjson.DefaultConfig())
	require.Error(t, err)

	var sjErr *sjson.Error
	require.ErrorAs(t, err, &sjErr)
	require.Equal(t, sjson.ErrKindTokenizer, sjErr.Kind)
}

func TestBitpackedBuilderNotObservable(t *testing.T) {
	cfg := sjson.DefaultConfig()
	cfg.UsageBuilder = sjson.UsageBuilderBitpacked

	doc, err := sjson.Parse(strings.NewReader(`[1,2,3,"x"]`), cfg)
	require.NoError(t, err)

	arr, ok := doc.Value(doc.Root()).AsArray()
	require.True(t, ok)

	var got []float64
	for v := range arr.Iter() {
		if n, ok := v.AsNumber(); ok {
			got = append(got, n)
		}
	}
	require.Equal(t, []float64{1, 2, 3}, got)
}
