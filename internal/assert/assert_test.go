package assert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFinite(t *testing.T) {
	require.NotPanics(t, func() { Finite(12.5, "radius") })
	require.PanicsWithValue(t, "radius is not finite: NaN", func() { Finite(math.NaN(), "radius") })
	require.Panics(t, func() { Finite(math.Inf(1), "force") })
}
