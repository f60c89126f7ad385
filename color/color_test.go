package color

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func requireColorInDelta(t *testing.T, expected, actual Color) {
	t.Helper()
	require.InDelta(t, expected.R, actual.R, 1e-5)
	require.InDelta(t, expected.G, actual.G, 1e-5)
	require.InDelta(t, expected.B, actual.B, 1e-5)
	require.InDelta(t, expected.A, actual.A, 1e-5)
}

func TestHSB(t *testing.T) {
	requireColorInDelta(t, RGB(1, 0, 0), HSB(0, 1, 1))
	requireColorInDelta(t, RGB(0, 1, 0), HSB(1.0/3, 1, 1))
	requireColorInDelta(t, RGB(0, 0, 1), HSB(2.0/3, 1, 1))
	requireColorInDelta(t, Gray(0.5), HSB(0.3, 0, 0.5))

	t.Run("hue wraps", func(t *testing.T) {
		requireColorInDelta(t, HSB(0.25, 0.7, 0.25), HSB(1.25, 0.7, 0.25))
		requireColorInDelta(t, HSB(0.75, 0.7, 0.25), HSB(-0.25, 0.7, 0.25))
	})
}

func TestColor_RGB8(t *testing.T) {
	r, g, b := RGB(1, 0.5, 0).RGB8()
	require.Equal(t, uint8(255), r)
	require.Equal(t, uint8(127), g)
	require.Equal(t, uint8(0), b)

	r, _, _ = White.WithAlpha(0).RGB8()
	require.Equal(t, uint8(0), r)
}

func TestColor_Lerp(t *testing.T) {
	requireColorInDelta(t, Gray(0.5), Black.Lerp(White, 0.5))
	requireColorInDelta(t, White, Black.Lerp(White, 1))
}
