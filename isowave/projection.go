package isowave

import (
	"math"

	"github.com/oliverbestmann/sketchbook/gm"
)

// elevation of an isometric camera above the ground plane
var elevation = math.Atan(1 / math.Sqrt2)

// Projection maps points of the ground plane plus a height onto the screen.
type Projection struct {
	ground gm.Affine
	height float64
}

// NewProjection centers a ground plane of the given side length on screen.
func NewProjection(screen gm.Vec, side, zoom float64) Projection {
	ground := gm.IdentityAffine().
		Translate(screen.Mul(0.5)).
		Scale(gm.VecSplat(zoom)).
		Scale(gm.Vec{X: 1, Y: math.Sin(elevation)}).
		Rotate(math.Pi / 4).
		Translate(gm.VecSplat(-side / 2))

	return Projection{
		ground: ground,
		height: zoom * math.Cos(elevation),
	}
}

// Project returns the screen position of the point at x, z on the ground plane,
// lifted by y.
func (p Projection) Project(x, y, z float64) gm.Vec {
	pos := p.ground.Transform(gm.Vec{X: x, Y: z})
	pos.Y -= y * p.height
	return pos
}

// Faces holds the screen space polygons of the three visible faces of a box.
type Faces struct {
	Top, Right, Left [4]gm.Vec
}

// BoxFaces projects a box standing at x, z with a square footprint of the given size,
// vertically centered on the ground plane.
func (p Projection) BoxFaces(x, z, footprint, height float64) Faces {
	x0, x1 := x-footprint/2, x+footprint/2
	z0, z1 := z-footprint/2, z+footprint/2
	top, bottom := height/2, -height/2

	return Faces{
		Top: [4]gm.Vec{
			p.Project(x0, top, z0),
			p.Project(x1, top, z0),
			p.Project(x1, top, z1),
			p.Project(x0, top, z1),
		},

		Right: [4]gm.Vec{
			p.Project(x1, top, z0),
			p.Project(x1, top, z1),
			p.Project(x1, bottom, z1),
			p.Project(x1, bottom, z0),
		},

		Left: [4]gm.Vec{
			p.Project(x0, top, z1),
			p.Project(x1, top, z1),
			p.Project(x1, bottom, z1),
			p.Project(x0, bottom, z1),
		},
	}
}
