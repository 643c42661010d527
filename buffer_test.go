package strfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer_InlineThenOverflow(t *testing.T) {
	var b Buffer
	require.Equal(t, inlineCap, b.Cap())

	b.AppendString(strings.Repeat("a", inlineCap))
	require.Equal(t, inlineCap, b.Len())
	require.Equal(t, inlineCap, b.Cap()) // still inline, no overflow yet

	b.Push('x')
	require.Greater(t, b.Cap(), inlineCap)
	require.Equal(t, inlineCap+1, b.Len())
	require.Equal(t, strings.Repeat("a", inlineCap)+"x", b.String())
}

func TestBuffer_Clear(t *testing.T) {
	var b Buffer
	b.AppendString("hello")
	b.Clear()
	require.Equal(t, 0, b.Len())
	b.AppendString("world")
	require.Equal(t, "world", b.String())
}

func TestBuffer_PushRune(t *testing.T) {
	var b Buffer
	b.PushRune('é')
	require.Equal(t, "é", b.String())
}

func TestFixedSink_TruncatesButTracksWanted(t *testing.T) {
	region := make([]byte, 3)
	fs := NewFixedSink(region)
	fs.AppendString("hello world")
	require.Equal(t, "hel", string(fs.Written()))
	require.Equal(t, 11, fs.Size())
}

func TestFixedSink_ExactFit(t *testing.T) {
	region := make([]byte, 5)
	fs := NewFixedSink(region)
	fs.AppendString("hello")
	require.Equal(t, "hello", string(fs.Written()))
	require.Equal(t, 5, fs.Size())
}
