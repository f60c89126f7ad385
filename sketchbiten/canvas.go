package sketchbiten

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/oliverbestmann/sketchbook"
	"github.com/oliverbestmann/sketchbook/color"
	"github.com/oliverbestmann/sketchbook/gm"
)

// screenCanvas draws onto an ebiten image using vector paths.
type screenCanvas struct {
	image *ebiten.Image
}

var _ sketchbook.Canvas = screenCanvas{}

func (c screenCanvas) Size() gm.Vec {
	return imageSizeOf(c.image)
}

func (c screenCanvas) Clear(col color.Color) {
	c.image.Fill(col)
}

func (c screenCanvas) FillCircle(center gm.Vec, radius float64, col color.Color) {
	if radius <= 0 {
		return
	}

	var p vector.Path
	p.Arc(float32(center.X), float32(center.Y), float32(radius), 0, math.Pi*2, vector.Clockwise)
	p.Close()

	c.fill(&p, col)
}

func (c screenCanvas) FillPolygon(points []gm.Vec, col color.Color) {
	if len(points) < 3 {
		return
	}

	var p vector.Path
	p.MoveTo(float32(points[0].X), float32(points[0].Y))

	for _, point := range points[1:] {
		p.LineTo(float32(point.X), float32(point.Y))
	}

	p.Close()

	c.fill(&p, col)
}

func (c screenCanvas) fill(p *vector.Path, col color.Color) {
	dpo := &vector.DrawPathOptions{}
	dpo.ColorScale.Scale(col.PremultipliedValues())
	vector.FillPath(c.image, p, &vector.FillOptions{}, dpo)
}

func imageSizeOf(image *ebiten.Image) gm.Vec {
	b := image.Bounds()
	return gm.Vec{X: float64(b.Dx()), Y: float64(b.Dy())}
}
