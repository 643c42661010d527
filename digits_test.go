package strfmt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountDecimalDigits(t *testing.T) {
	cases := []struct {
		v    uint64
		want int
	}{
		{0, 1}, {9, 1}, {10, 2}, {99, 2}, {100, 3}, {999999999, 9}, {10000000000, 11},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, countDecimalDigits(tc.v), "v=%d", tc.v)
	}
}

func TestAppendDecimal(t *testing.T) {
	cases := []struct {
		v    uint64
		want string
	}{
		{0, "0"}, {7, "7"}, {42, "42"}, {1000000, "1000000"}, {18446744073709551615, "18446744073709551615"},
	}
	for _, tc := range cases {
		var buf [32]byte
		n := appendDecimal(buf[:], tc.v)
		require.Equal(t, tc.want, string(buf[:n]))
	}
}

func TestAppendBase(t *testing.T) {
	var buf [80]byte
	n := appendBase(buf[:], 255, 16, false)
	require.Equal(t, "ff", string(buf[:n]))

	n = appendBase(buf[:], 255, 16, true)
	require.Equal(t, "FF", string(buf[:n]))

	n = appendBase(buf[:], 8, 8, false)
	require.Equal(t, "10", string(buf[:n]))

	n = appendBase(buf[:], 5, 2, false)
	require.Equal(t, "101", string(buf[:n]))
}

func TestNegateUint_MinInt64(t *testing.T) {
	var minInt64 int64 = -9223372036854775808
	got := negateUint(minInt64)
	require.Equal(t, uint64(9223372036854775808), got)
}

func TestGroupDecimal(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1", "1"},
		{"123", "123"},
		{"1234", "1,234"},
		{"1234567", "1,234,567"},
		{"12345678", "12,345,678"},
	}
	for _, tc := range cases {
		got := string(groupDecimal([]byte(tc.in)))
		require.Equal(t, tc.want, got, "in=%s", tc.in)
	}
}
