package strfmt

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	class, neg := classify(1.5)
	require.Equal(t, floatFinite, class)
	require.False(t, neg)

	class, neg = classify(math.Inf(1))
	require.Equal(t, floatInf, class)
	require.False(t, neg)

	class, neg = classify(math.Inf(-1))
	require.Equal(t, floatInf, class)
	require.True(t, neg)

	class, _ = classify(math.NaN())
	require.Equal(t, floatNaN, class)
}

func TestNonFiniteLiteral(t *testing.T) {
	require.Equal(t, "inf", nonFiniteLiteral(floatInf, false, false))
	require.Equal(t, "-inf", nonFiniteLiteral(floatInf, true, false))
	require.Equal(t, "NAN", nonFiniteLiteral(floatNaN, false, true))
}

func TestAppendShortest_RoundTrips(t *testing.T) {
	values := []float64{0, 1, -1, 3.14159, 1e-4, 1e20, 0.1}
	for _, v := range values {
		out := appendShortest(nil, math.Abs(v), -1, false, false)
		parsed, err := strconv.ParseFloat(string(out), 64)
		require.NoError(t, err)
		require.Equal(t, math.Abs(v), parsed, "round-trip for %v", v)
	}
}

func TestAppendFixed_DefaultPrecision(t *testing.T) {
	out := appendFixed(nil, 1.5, -1)
	require.Equal(t, "1.500000", string(out))
}

func TestAppendScientific_PadsExponent(t *testing.T) {
	out := appendScientific(nil, 1234.0, 1, false)
	require.Equal(t, "1.2e+03", string(out))
}

func TestForceTrailingZeros(t *testing.T) {
	out := appendShortest(nil, 1.5, 4, false, true)
	require.Equal(t, "1.500", string(out))
}
