package strfmt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArgTable_PositionalAndNamed(t *testing.T) {
	table := NewArgTable(1, Named("x", "hi"), 3.5)
	require.Equal(t, 3, table.Len())

	v, ok := table.ByIndex(0)
	require.True(t, ok)
	require.Equal(t, KindInt, v.kind)

	v, ok = table.ByIndex(1)
	require.True(t, ok)
	require.Equal(t, KindString, v.kind)
	require.Equal(t, "hi", v.str)

	v, ok = table.ByName("x")
	require.True(t, ok)
	require.Equal(t, "hi", v.str)

	_, ok = table.ByName("missing")
	require.False(t, ok)

	_, ok = table.ByIndex(10)
	require.False(t, ok)
}

func TestArgTable_Overflow(t *testing.T) {
	args := make([]any, maxPacked+5)
	for i := range args {
		args[i] = i
	}
	table := NewArgTable(args...)
	require.Equal(t, len(args), table.Len())

	v, ok := table.ByIndex(maxPacked + 4)
	require.True(t, ok)
	require.Equal(t, int64(maxPacked+4), v.i64)
}

func TestMapArg_Kinds(t *testing.T) {
	require.Equal(t, KindBool, mapArg(true).kind)
	require.Equal(t, KindInt, mapArg(5).kind)
	require.Equal(t, KindInt64, mapArg(int64(5)).kind)
	require.Equal(t, KindUint64, mapArg(uint64(5)).kind)
	require.Equal(t, KindFloat64, mapArg(1.0).kind)
	require.Equal(t, KindString, mapArg("s").kind)
	require.Equal(t, KindPointer, mapArg(uintptr(1)).kind)
	require.Equal(t, KindNone, mapArg(nil).kind)
}

type customKind int

func TestMapArg_ReflectFallback(t *testing.T) {
	var c customKind = 7
	v := mapArg(c)
	require.Equal(t, KindCustom, v.kind)
	require.Equal(t, "7", genericString(c))
}

func TestReadIntArg(t *testing.T) {
	n, err := readIntArg(argValue{kind: KindInt, i64: 4}, "width")
	require.NoError(t, err)
	require.Equal(t, 4, n)

	_, err = readIntArg(argValue{kind: KindInt, i64: -1}, "width")
	require.Error(t, err)

	_, err = readIntArg(argValue{kind: KindString, str: "x"}, "width")
	require.Error(t, err)
}
