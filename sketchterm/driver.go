// Package sketchterm runs a sketchbook.Scene inside a terminal using tcell.
package sketchterm

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/oliverbestmann/sketchbook"
	"github.com/oliverbestmann/sketchbook/gm"
)

type Options struct {
	// TickRate is the number of scene updates per second.
	TickRate int

	// CellSize is the size of a terminal cell in canvas units. Defaults to DefaultCellSize.
	CellSize gm.Vec

	// Debug shows the debug info of the scene on start. It can be toggled with the d key.
	Debug bool
}

// Run takes over the terminal and runs the scene until ctx is done or the
// user quits with q, escape or ctrl-c.
//
// Keys: d toggles the debug info, p pauses, n steps once while paused.
func Run(ctx context.Context, scene sketchbook.Scene, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}

	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	defer screen.Fini()

	return run(ctx, screen, scene, opts)
}

type terminal struct {
	screen tcell.Screen
	canvas *Canvas
	scene  sketchbook.Scene

	stepper sketchbook.Stepper
	debug   bool

	pointer gm.Vec
	buttons tcell.ButtonMask
}

func run(ctx context.Context, screen tcell.Screen, scene sketchbook.Scene, opts Options) error {
	screen.EnableMouse()
	screen.HideCursor()

	t := &terminal{
		screen:  screen,
		canvas:  NewCanvas(screen, opts.CellSize),
		scene:   scene,
		stepper: sketchbook.NewStepper(opts.TickRate),
		debug:   opts.Debug,
	}

	scene.Setup(t.canvas.Size())

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}

			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(t.stepper.Fixed.StepInterval)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !t.handleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			t.stepper.Advance(t.scene, now.Sub(lastTick))
			lastTick = now

			t.draw()
		}
	}
}

// handleEvent returns false if the user asked to quit.
func (t *terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}

		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'p':
				t.stepper.TogglePause()
			case 'n':
				t.stepper.StepOnce()
			case 'd':
				t.debug = !t.debug
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		pos := t.canvas.CellCenter(x, y)

		if pos != t.pointer {
			t.pointer = pos

			if pointer, ok := t.scene.(sketchbook.Pointer); ok {
				pointer.PointerMoved(pos)
			}
		}

		pressed := ev.Buttons()&tcell.Button1 != 0
		wasPressed := t.buttons&tcell.Button1 != 0
		t.buttons = ev.Buttons()

		if pressed && !wasPressed {
			if clicker, ok := t.scene.(sketchbook.Clicker); ok {
				clicker.Click(pos)
			}
		}

	case *tcell.EventResize:
		t.screen.Sync()
	}

	return true
}

func (t *terminal) draw() {
	t.scene.Draw(t.canvas)

	if t.debug {
		t.drawDebugInfo()
	}

	t.screen.Show()
}

func (t *terminal) drawDebugInfo() {
	lines := []string{fmt.Sprintf("pointer %s", t.pointer)}

	if t.stepper.Paused {
		lines = append(lines, "paused")
	}

	if inspector, ok := t.scene.(sketchbook.Inspector); ok {
		lines = append(lines, inspector.DebugInfo()...)
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for row, line := range lines {
		t.canvas.DrawText(0, row, line, style)
	}
}
