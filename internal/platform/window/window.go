// Package window runs a sling puck table in a desktop or mobile window with
// Ebitengine. Every touch and the left mouse button are separate pointers,
// so two players can sling at the same time on a touch screen.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/slingpuck/internal/config"
	"github.com/vovakirdan/slingpuck/internal/core"
	"github.com/vovakirdan/slingpuck/internal/games/slingpuck"
	"github.com/vovakirdan/slingpuck/internal/platform/pointers"
)

// Options configures a window table.
type Options struct {
	Tuning  config.SlingpuckConfig
	Runtime core.RuntimeConfig // Arena size is the logical screen size
	Scale   float64            // Initial window size as a multiple of the arena
	Logger  *log.Logger
}

// palette maps semantic colors to RGBA.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:  {R: 0x20, G: 0x22, B: 0x2a, A: 0xff},
	core.ColorTop:      {R: 0xff, G: 0x8c, B: 0x1a, A: 0xff},
	core.ColorBottom:   {R: 0x1a, G: 0xa8, B: 0xff, A: 0xff},
	core.ColorWall:     {R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
	core.ColorObstacle: {R: 0xb0, G: 0x8c, B: 0xff, A: 0xff},
	core.ColorBand:     {R: 0x5a, G: 0x5a, B: 0x66, A: 0xff},
	core.ColorHeld:     {R: 0xff, G: 0xf0, B: 0x40, A: 0xff},
	core.ColorText:     {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorDim:      {R: 0x9a, G: 0x9a, B: 0xa0, A: 0xff},
}

var overlayShade = color.RGBA{A: 0xa0}

// debugGlyphW is the advance of ebitenutil's debug font.
const debugGlyphW = 6

// Driver implements ebiten.Game around a sling puck table.
type Driver struct {
	game    *slingpuck.Game
	runtime core.RuntimeConfig
	tracker *pointers.Tracker
	logger  *log.Logger

	last     time.Time
	touchIDs []ebiten.TouchID
	down     []pointers.Sample
}

// New creates a driver and resets its table. A zero seed is replaced by
// the current time.
func New(opts Options) *Driver {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game := slingpuck.New(opts.Tuning)
	game.SetLogger(logger)
	game.Reset(rt)

	return &Driver{
		game:    game,
		runtime: rt,
		tracker: pointers.NewTracker(),
		logger:  logger,
	}
}

// Update polls input and advances the table by one frame.
func (d *Driver) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		d.runtime.Seed = time.Now().UnixNano()
		d.game.Reset(d.runtime)
		d.logger.Debug("table reset", "seed", d.runtime.Seed)
	}

	var events []core.PointerEvent
	if ebiten.IsFocused() {
		events = d.tracker.Poll(d.poll(), released)
	} else {
		events = d.tracker.CancelAll()
	}
	for _, evt := range events {
		d.game.HandlePointerEvent(evt)
	}

	now := time.Now()
	elapsed := d.runtime.FrameMs()
	if !d.last.IsZero() {
		elapsed = float64(now.Sub(d.last)) / float64(time.Millisecond)
	}
	d.last = now
	d.game.StepFrame(elapsed)
	return nil
}

// poll collects every pointer that is down this frame.
func (d *Driver) poll() []pointers.Sample {
	d.down = d.down[:0]
	d.touchIDs = ebiten.AppendTouchIDs(d.touchIDs[:0])
	for _, id := range d.touchIDs {
		x, y := ebiten.TouchPosition(id)
		d.down = append(d.down, pointers.Sample{ID: core.PointerID(id), X: float64(x), Y: float64(y)})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		d.down = append(d.down, pointers.Sample{ID: core.MousePointer, X: float64(x), Y: float64(y)})
	}
	return d.down
}

// released reports whether a pointer was lifted this frame.
func released(id core.PointerID) bool {
	if id == core.MousePointer {
		return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	}
	return inpututil.IsTouchJustReleased(ebiten.TouchID(id))
}

// Draw paints the current frame.
func (d *Driver) Draw(screen *ebiten.Image) {
	f := d.game.Frame()
	screen.Fill(palette[core.ColorDefault])
	w := float32(f.Arena.W)

	for _, b := range f.Bands {
		if !b.Taut {
			vector.StrokeLine(screen, float32(b.X1), float32(b.Y1), float32(b.X2), float32(b.Y2), 1, palette[b.Color], false)
		}
	}

	thick := float32(f.Arena.WallThickness)
	mid := float32(f.MidY)
	for _, seg := range f.Segments {
		x0, x1 := float32(seg.Start), float32(seg.End)
		vector.DrawFilledRect(screen, x0, mid-thick/2, x1-x0, thick, palette[core.ColorWall], false)
		if x0 > 0 {
			vector.DrawFilledCircle(screen, x0, mid, thick/2, palette[core.ColorWall], true)
		}
		if x1 < w {
			vector.DrawFilledCircle(screen, x1, mid, thick/2, palette[core.ColorWall], true)
		}
	}

	for _, o := range f.Obstacles {
		vector.DrawFilledCircle(screen, float32(o.X), float32(o.Y), float32(o.Radius), palette[core.ColorObstacle], true)
	}

	for _, b := range f.Bands {
		if b.Taut {
			vector.StrokeLine(screen, float32(b.X1), float32(b.Y1), float32(b.X2), float32(b.Y2), 2, palette[b.Color], true)
		}
	}

	r := float32(f.Radius)
	for _, p := range f.Pucks {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), r, palette[slingpuck.SideColor(p.Side)], true)
		if p.Held {
			vector.StrokeCircle(screen, float32(p.X), float32(p.Y), r+2, 2, palette[core.ColorHeld], true)
		}
	}

	level := slingpuck.LevelFor(f.Score.Level)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TOP %d  [%d]", f.Score.TopWins, f.Counts.Top), 4, 2)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("BOTTOM %d  [%d]", f.Score.BottomWins, f.Counts.Bottom), 4, int(f.Arena.H)-18)
	status := fmt.Sprintf("Level %d: %s", f.Score.Level, level.Name)
	ebitenutil.DebugPrintAt(screen, status, int(f.Arena.W)-len(status)*debugGlyphW-4, 2)

	if f.Overlay != nil {
		vector.DrawFilledRect(screen, 0, 0, w, float32(f.Arena.H), overlayShade, false)
		cy := int(f.Arena.H / 2)
		printCentered(screen, f.Overlay.Title, int(f.Arena.W), cy-16)
		printCentered(screen, f.Overlay.Subtitle, int(f.Arena.W), cy+4)
	}
}

func printCentered(screen *ebiten.Image, text string, width, y int) {
	ebitenutil.DebugPrintAt(screen, text, (width-len(text)*debugGlyphW)/2, y)
}

// Layout keeps the logical screen at the arena size; Ebitengine scales it
// to the window and reports pointer positions in arena units.
func (d *Driver) Layout(_, _ int) (int, int) {
	return int(d.runtime.ArenaW), int(d.runtime.ArenaH)
}

// Run opens the window and plays until it is closed.
func Run(opts Options) error {
	d := New(opts)
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	ebiten.SetWindowSize(int(d.runtime.ArenaW*scale), int(d.runtime.ArenaH*scale))
	ebiten.SetWindowTitle(d.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(max(d.runtime.TickRate, 1))

	d.logger.Info("window opened", "width", d.runtime.ArenaW, "height", d.runtime.ArenaH)
	if err := ebiten.RunGame(d); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
