package strfmt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func mustFormat(t *testing.T, tpl string, args ...any) string {
	t.Helper()
	out, err := Format(tpl, args...)
	require.NoError(t, err)
	return out
}

func TestFormat_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		tpl  string
		args []any
		want string
	}{
		{"plain literal", "hello world", nil, "hello world"},
		{"escaped braces", "{{{}}} = {}", []any{1, 2}, "{1} = 2"},
		{"auto indexing", "{}-{}-{}", []any{1, 2, 3}, "1-2-3"},
		{"manual indexing", "{2}-{0}-{1}", []any{"a", "b", "c"}, "c-a-b"},
		{"named argument", "{x} and {y}", []any{Named("x", 1), Named("y", 2)}, "1 and 2"},
		{"width and right align", "{:>6}", []any{"ab"}, "    ab"},
		{"width and left align", "{:<6}.", []any{"ab"}, "ab    ."},
		{"center align with fill", "{:*^7}", []any{"hi"}, "**hi***"},
		{"zero padded int", "{:05d}", []any{42}, "00042"},
		{"signed plus", "{:+d}", []any{7}, "+7"},
		{"hex with alt prefix", "{:#x}", []any{255}, "0xff"},
		{"binary with alt prefix", "{:#b}", []any{5}, "0b101"},
		{"float fixed precision", "{:.2f}", []any{3.14159}, "3.14"},
		{"float scientific", "{:.1e}", []any{1234.0}, "1.2e+03"},
		{"string precision truncation", "{:.3}", []any{"hello"}, "hel"},
		{"debug escaped string", "{:?}", []any{"a\tb"}, `"a\tb"`},
		{"dynamic width", "{:{}}", []any{"x", 4}, "x   "},
		{"negative zero pad", "{:05d}", []any{-3}, "-0003"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mustFormat(t, tc.tpl, tc.args...)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Format(%q) mismatch (-want +got):\n%s", tc.tpl, diff)
			}
		})
	}
}

func TestFormat_BoolAndChar(t *testing.T) {
	require.Equal(t, "true", mustFormat(t, "{}", true))
	require.Equal(t, "1", mustFormat(t, "{:d}", true))
	require.Equal(t, "A", mustFormat(t, "{:c}", 65))
	require.Equal(t, "005", mustFormat(t, "{:03d}", byte(5)))
	require.Equal(t, "A", mustFormat(t, "{}", Char('A')))
	require.Equal(t, "065", mustFormat(t, "{:03d}", Char('A')))
}

func TestFormat_Pointer(t *testing.T) {
	require.Equal(t, "0x00000000000000ff", mustFormat(t, "{}", uintptr(0xff)))
	require.Equal(t, "0x0000000000000000ff", mustFormat(t, "{:020}", uintptr(0xff)))
	require.Equal(t, "0x0", mustFormat(t, "{}", uintptr(0)))
}

func TestFormat_NonFinite(t *testing.T) {
	inf := 1.0
	inf = inf / 0
	require.Equal(t, "inf", mustFormat(t, "{}", inf))
	require.Equal(t, "-inf", mustFormat(t, "{}", -inf))
}

func TestFormat_UnmatchedBraceUpgrade(t *testing.T) {
	_, err := Format("{0")
	require.Error(t, err)
	fe, ok := err.(*FormatError)
	require.True(t, ok)
	require.Equal(t, errTemplateSyntax, fe.Kind)
}

func TestFormat_IndexModeMix(t *testing.T) {
	_, err := Format("{}-{0}", "a", "b")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrIndexingMode)
}

func TestFormat_ArgumentOutOfRange(t *testing.T) {
	_, err := Format("{5}", 1, 2)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrArgumentBinding)
}

type point struct{ x, y int }

func (p point) FormatSTR(_ *ParseContext, f *FormatContext) error {
	_, err := f.WriteString("(" + mustInt(p.x) + "," + mustInt(p.y) + ")")
	return err
}

func mustInt(n int) string {
	s, _ := Format("{}", n)
	return s
}

func TestFormat_CustomFormatter(t *testing.T) {
	require.Equal(t, "(1,2)", mustFormat(t, "{}", point{1, 2}))
}

func TestFormatToN_Truncates(t *testing.T) {
	buf := make([]byte, 3)
	n, err := FormatToN(buf, "{}", "hello")
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "hel", string(buf))
}

func TestFormattedSize(t *testing.T) {
	n, err := FormattedSize("{}-{}", "ab", 12)
	require.NoError(t, err)
	require.Equal(t, 5, n)
}

func TestAppendFormat(t *testing.T) {
	dst := []byte("prefix:")
	out, err := AppendFormat(dst, "{}", 42)
	require.NoError(t, err)
	require.Equal(t, "prefix:42", string(out))
}
