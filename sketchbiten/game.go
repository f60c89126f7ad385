// Package sketchbiten runs a sketchbook.Scene in a desktop window using ebiten.
package sketchbiten

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/oliverbestmann/sketchbook"
	"github.com/oliverbestmann/sketchbook/gm"
)

type WindowConfig struct {
	Title         string
	Width         int
	Height        int
	DisableResize bool

	// TickRate is the number of scene updates per second.
	TickRate int

	// Debug enables the debug overlay on start. It can be toggled with the D key.
	Debug bool
}

// Run opens a window and runs the scene until the window is closed or
// escape is pressed.
//
// Keys: D toggles the debug overlay, P pauses, N steps once while paused.
func Run(scene sketchbook.Scene, win WindowConfig) error {
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowSize(win.Width, win.Height)

	if !win.DisableResize {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	var options ebiten.RunGameOptions
	options.SingleThread = true

	g := newGame(scene, win)
	return ebiten.RunGameWithOptions(g, &options)
}

type game struct {
	scene sketchbook.Scene

	stepper   sketchbook.Stepper
	lastFrame time.Time
	isSetup   bool

	cursor gm.Vec
	debug  *debugOverlay
}

func newGame(scene sketchbook.Scene, win WindowConfig) *game {
	return &game{
		scene:   scene,
		stepper: sketchbook.NewStepper(win.TickRate),
		debug:   newDebugOverlay(win.Debug),
	}
}

// Update handles input. The scene itself is stepped in Draw.
func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.debug.Enabled = !g.debug.Enabled
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		paused := g.stepper.TogglePause()
		slog.Info("Toggle pause", slog.Bool("paused", paused))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stepper.StepOnce()
	}

	if !g.isSetup {
		return nil
	}

	x, y := ebiten.CursorPosition()
	cursor := gm.Vec{X: float64(x), Y: float64(y)}

	if cursor != g.cursor {
		g.cursor = cursor

		if pointer, ok := g.scene.(sketchbook.Pointer); ok {
			pointer.PointerMoved(cursor)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if clicker, ok := g.scene.(sketchbook.Clicker); ok {
			clicker.Click(cursor)
		}
	}

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if !g.isSetup {
		g.scene.Setup(imageSizeOf(screen))
		g.isSetup = true
		g.lastFrame = time.Now()
	}

	now := time.Now()
	g.stepper.Advance(g.scene, now.Sub(g.lastFrame))
	g.lastFrame = now

	g.scene.Draw(screenCanvas{image: screen})

	if g.debug.Enabled {
		g.debug.Draw(screen, g.scene, g.cursor)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return outsideWidth, outsideHeight
}
