package sketchbiten

import (
	"fmt"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/sketchbook"
	"github.com/oliverbestmann/sketchbook/gm"
)

// max distance between cursor and a circle to show it as hovered
const hoverDistance = 8

type debugOverlay struct {
	Enabled bool
	mirror  *debugMirror
}

func newDebugOverlay(enabled bool) *debugOverlay {
	return &debugOverlay{
		Enabled: enabled,
		mirror:  newDebugMirror(),
	}
}

func (d *debugOverlay) Draw(screen *ebiten.Image, scene sketchbook.Scene, cursor gm.Vec) {
	lines := []string{
		fmt.Sprintf("fps %.1f, tps %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
	}

	if inspector, ok := scene.(sketchbook.Inspector); ok {
		d.mirror.Sync(inspector.DebugCircles())

		hovered, isHovered := d.mirror.Nearest(cursor, hoverDistance)

		cp.DrawSpace(d.mirror.space, debugImage{
			Image:     screen,
			Hovered:   hovered,
			IsHovered: isHovered,
		})

		lines = append(lines, inspector.DebugInfo()...)

		if isHovered {
			lines = append(lines, fmt.Sprintf("hovered #%d", hovered))
		}
	}

	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), 16, 16)
}

type debugImage struct {
	Image *ebiten.Image

	Hovered   uint64
	IsHovered bool
}

func (d debugImage) draw(p vector.Path, outline cp.FColor, fill cp.FColor) {
	dpo := &vector.DrawPathOptions{}
	dpo.ColorScale.Scale(fill.R*fill.A, fill.G*fill.A, fill.B*fill.A, fill.A)
	vector.FillPath(d.Image, &p, &vector.FillOptions{}, dpo)

	*dpo = vector.DrawPathOptions{}
	dpo.ColorScale.Scale(outline.R*outline.A, outline.G*outline.A, outline.B*outline.A, outline.A)
	vector.StrokePath(d.Image, &p, &vector.StrokeOptions{Width: 1}, dpo)
}

func (d debugImage) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	var p vector.Path
	p.Arc(float32(pos.X), float32(pos.Y), float32(radius), 0, math.Pi*2, vector.Clockwise)
	p.Close()

	d.draw(p, outline, fill)
}

func (d debugImage) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	var p vector.Path
	p.MoveTo(float32(a.X), float32(a.Y))
	p.LineTo(float32(b.X), float32(b.Y))
	d.draw(p, fill, cp.FColor{})
}

func (d debugImage) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.DrawSegment(a, b, fill, data)
}

func (d debugImage) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	for idx := range count {
		a, b := verts[idx], verts[(idx+1)%count]
		d.DrawFatSegment(a, b, radius, outline, fill, data)
	}
}

func (d debugImage) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	d.DrawCircle(pos, 0, size/2, fill, fill, data)
}

func (d debugImage) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d debugImage) OutlineColor() cp.FColor {
	return cp.FColor{R: 1, G: 1, B: 1, A: 0.8}
}

func (d debugImage) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape.Sensor() {
		return cp.FColor{R: 1, G: 1, B: 1, A: 0.05}
	}

	if id, ok := shape.UserData.(uint64); ok && d.IsHovered && id == d.Hovered {
		return cp.FColor{R: 1, G: 0.85, A: 0.6}
	}

	return cp.FColor{G: 1, A: 0.3}
}

func (d debugImage) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.75, A: 1}
}

func (d debugImage) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, A: 1}
}

func (d debugImage) Data() interface{} {
	return nil
}
