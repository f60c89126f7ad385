package color

import "math"

var White = RGB(1, 1, 1)
var Black = RGB(0, 0, 0)
var Transparent = RGBA(0, 0, 0, 0)

// Color is a non alpha pre-multiplied color value in Color space.
// A value of 1 indicates full color
type Color struct {
	R, G, B, A float32
}

func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

func RGB(r, g, b float32) Color {
	return RGBA(r, g, b, 1.0)
}

func Gray(g float32) Color {
	return RGB(g, g, g)
}

// HSB builds a color from hue, saturation and brightness, all in the range [0, 1].
// The hue wraps around, a hue of 1.25 is the same as 0.25.
func HSB(h, s, b float32) Color {
	h = float32(math.Mod(float64(h), 1))
	if h < 0 {
		h += 1
	}

	s = clamp(s, 0, 1)
	b = clamp(b, 0, 1)

	sector := h * 6
	i := int(sector) % 6
	f := sector - float32(int(sector))

	p := b * (1 - s)
	q := b * (1 - s*f)
	t := b * (1 - s*(1-f))

	switch i {
	case 0:
		return RGB(b, t, p)
	case 1:
		return RGB(q, b, p)
	case 2:
		return RGB(p, b, t)
	case 3:
		return RGB(p, q, b)
	case 4:
		return RGB(t, p, b)
	default:
		return RGB(b, p, q)
	}
}

func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Scale multiplies the color channels by f, alpha stays unchanged.
func (c Color) Scale(f float32) Color {
	c.R = clamp(c.R*f, 0, 1)
	c.G = clamp(c.G*f, 0, 1)
	c.B = clamp(c.B*f, 0, 1)
	return c
}

// Lerp interpolates between c and other. A value of 0 returns c, a value of 1 returns other.
func (c Color) Lerp(other Color, f float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*f,
		G: c.G + (other.G-c.G)*f,
		B: c.B + (other.B-c.B)*f,
		A: c.A + (other.A-c.A)*f,
	}
}

func (c Color) RGBA() (r, g, b, a uint32) {
	const MAX = 0xffff

	r = uint32(clamp(c.R*c.A*MAX, 0, MAX))
	g = uint32(clamp(c.G*c.A*MAX, 0, MAX))
	b = uint32(clamp(c.B*c.A*MAX, 0, MAX))
	a = uint32(clamp(c.A*MAX, 0, MAX))

	return
}

func (c Color) PremultipliedValues() (float32, float32, float32, float32) {
	r := c.R * c.A
	g := c.G * c.A
	b := c.B * c.A
	return r, g, b, c.A
}

// RGB8 returns the color channels as 8 bit values, alpha is applied.
func (c Color) RGB8() (r, g, b uint8) {
	pr, pg, pb, _ := c.PremultipliedValues()
	return uint8(clamp(pr, 0, 1) * 255), uint8(clamp(pg, 0, 1) * 255), uint8(clamp(pb, 0, 1) * 255)
}

func clamp[T float32 | float64](value, min, max T) T {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}
