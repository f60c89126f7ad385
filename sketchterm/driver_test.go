package sketchterm

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/oliverbestmann/sketchbook"
	"github.com/oliverbestmann/sketchbook/color"
	"github.com/oliverbestmann/sketchbook/gm"
	"github.com/stretchr/testify/require"
)

type recordingScene struct {
	size    gm.Vec
	clicks  []gm.Vec
	pointer gm.Vec
	updates int
}

var _ sketchbook.Clicker = (*recordingScene)(nil)
var _ sketchbook.Pointer = (*recordingScene)(nil)

func (s *recordingScene) Setup(size gm.Vec) { s.size = size }
func (s *recordingScene) Update(time.Duration) { s.updates++ }
func (s *recordingScene) Click(pos gm.Vec) { s.clicks = append(s.clicks, pos) }
func (s *recordingScene) PointerMoved(pos gm.Vec) { s.pointer = pos }
func (s *recordingScene) Draw(c sketchbook.Canvas) { c.Clear(color.Black) }

func runAsync(t *testing.T, ctx context.Context, screen tcell.Screen, scene sketchbook.Scene) <-chan error {
	t.Helper()

	result := make(chan error, 1)
	go func() {
		result <- run(ctx, screen, scene, Options{TickRate: 60})
	}()

	return result
}

func awaitResult(t *testing.T, result <-chan error) {
	t.Helper()

	select {
	case err := <-result:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("terminal loop did not stop")
	}
}

func TestRun_ClickAndQuit(t *testing.T) {
	screen := newTestScreen(t, 20, 10)
	scene := &recordingScene{}

	// press and release, then hold the button while moving
	screen.InjectMouse(2, 3, tcell.Button1, tcell.ModNone)
	screen.InjectMouse(2, 3, tcell.ButtonNone, tcell.ModNone)
	screen.InjectMouse(4, 3, tcell.Button1, tcell.ModNone)
	screen.InjectMouse(5, 3, tcell.Button1, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	awaitResult(t, runAsync(t, context.Background(), screen, scene))

	require.Equal(t, gm.Vec{X: 160, Y: 160}, scene.size)
	require.Equal(t, []gm.Vec{{X: 20, Y: 56}, {X: 36, Y: 56}}, scene.clicks)
	require.Equal(t, gm.Vec{X: 44, Y: 56}, scene.pointer)
}

func TestRun_ContextCancel(t *testing.T) {
	screen := newTestScreen(t, 20, 10)
	scene := &recordingScene{}

	ctx, cancel := context.WithCancel(context.Background())
	result := runAsync(t, ctx, screen, scene)

	// let it tick for a bit
	time.Sleep(100 * time.Millisecond)
	cancel()

	awaitResult(t, result)
	require.Positive(t, scene.updates)
}

func TestTerminal_Pause(t *testing.T) {
	screen := newTestScreen(t, 20, 10)
	scene := &recordingScene{}

	term := &terminal{screen: screen, canvas: NewCanvas(screen, DefaultCellSize), scene: scene, stepper: sketchbook.NewStepper(50)}

	term.stepper.Advance(scene, 60*time.Millisecond)
	require.Equal(t, 3, scene.updates)

	require.True(t, term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)))
	term.stepper.Advance(scene, 60*time.Millisecond)
	require.Equal(t, 3, scene.updates)

	// single step while paused
	require.True(t, term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone)))
	term.stepper.Advance(scene, 0)
	require.Equal(t, 4, scene.updates)

	require.False(t, term.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestTerminal_DebugInfo(t *testing.T) {
	screen := newTestScreen(t, 20, 10)
	scene := &recordingScene{}

	term := &terminal{screen: screen, canvas: NewCanvas(screen, DefaultCellSize), scene: scene, debug: true, stepper: sketchbook.Stepper{Paused: true}}
	term.draw()

	r, _, _, _ := screen.GetContent(0, 1)
	require.Equal(t, 'p', r)
}
