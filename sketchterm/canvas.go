package sketchterm

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/oliverbestmann/sketchbook"
	"github.com/oliverbestmann/sketchbook/color"
	"github.com/oliverbestmann/sketchbook/gm"
)

// DefaultCellSize is the size of a single terminal cell in canvas units.
// Terminal cells are about twice as high as they are wide.
var DefaultCellSize = gm.Vec{X: 8, Y: 16}

// Canvas rasterizes shapes onto the cells of a terminal screen. A cell is
// painted if its center lies within a shape. Circles too small to cover
// any cell center are drawn as a dot.
type Canvas struct {
	screen tcell.Screen
	cell   gm.Vec
}

var _ sketchbook.Canvas = (*Canvas)(nil)

func NewCanvas(screen tcell.Screen, cellSize gm.Vec) *Canvas {
	if cellSize.X <= 0 || cellSize.Y <= 0 {
		cellSize = DefaultCellSize
	}

	return &Canvas{screen: screen, cell: cellSize}
}

func (c *Canvas) Size() gm.Vec {
	w, h := c.screen.Size()
	return gm.Vec{X: float64(w), Y: float64(h)}.MulEach(c.cell)
}

// CellAt returns the cell containing the given canvas position.
func (c *Canvas) CellAt(pos gm.Vec) (int, int) {
	return int(math.Floor(pos.X / c.cell.X)), int(math.Floor(pos.Y / c.cell.Y))
}

// CellCenter returns the canvas position of the center of the given cell.
func (c *Canvas) CellCenter(x, y int) gm.Vec {
	return gm.Vec{X: float64(x) + 0.5, Y: float64(y) + 0.5}.MulEach(c.cell)
}

func (c *Canvas) Clear(col color.Color) {
	c.screen.Fill(' ', tcell.StyleDefault.Background(toColor(col)))
}

func (c *Canvas) FillCircle(center gm.Vec, radius float64, col color.Color) {
	minX, minY := c.CellAt(center.Sub(gm.VecSplat(radius)))
	maxX, maxY := c.CellAt(center.Add(gm.VecSplat(radius)))

	var painted bool
	c.eachCell(minX, minY, maxX, maxY, func(x, y int) {
		if c.CellCenter(x, y).DistanceSqrTo(center) <= radius*radius {
			c.paint(x, y, col)
			painted = true
		}
	})

	if !painted {
		c.dot(center, col)
	}
}

func (c *Canvas) FillPolygon(points []gm.Vec, col color.Color) {
	if len(points) < 3 {
		return
	}

	bounds := gm.RectWithPoints(points[0], points[0])
	for _, point := range points[1:] {
		bounds = bounds.Extend(point)
	}

	minX, minY := c.CellAt(bounds.Min)
	maxX, maxY := c.CellAt(bounds.Max)

	c.eachCell(minX, minY, maxX, maxY, func(x, y int) {
		if containsPoint(points, c.CellCenter(x, y)) {
			c.paint(x, y, col)
		}
	})
}

// DrawText writes a line of text starting at the given cell.
func (c *Canvas) DrawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		c.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (c *Canvas) eachCell(minX, minY, maxX, maxY int, fn func(x, y int)) {
	w, h := c.screen.Size()

	minX, minY = max(minX, 0), max(minY, 0)
	maxX, maxY = min(maxX, w-1), min(maxY, h-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			fn(x, y)
		}
	}
}

func (c *Canvas) paint(x, y int, col color.Color) {
	c.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(toColor(col)))
}

func (c *Canvas) dot(pos gm.Vec, col color.Color) {
	x, y := c.CellAt(pos)

	w, h := c.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}

	// keep the background of the cell
	_, _, style, _ := c.screen.GetContent(x, y)
	c.screen.SetContent(x, y, '•', nil, style.Foreground(toColor(col)))
}

// containsPoint tests using the even-odd rule.
func containsPoint(polygon []gm.Vec, point gm.Vec) bool {
	var inside bool

	j := len(polygon) - 1
	for i := range polygon {
		a, b := polygon[i], polygon[j]

		if (a.Y > point.Y) != (b.Y > point.Y) {
			crossX := a.X + (point.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if point.X < crossX {
				inside = !inside
			}
		}

		j = i
	}

	return inside
}

func toColor(col color.Color) tcell.Color {
	r, g, b := col.RGB8()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
