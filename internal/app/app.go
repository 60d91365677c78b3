//go:build ebiten

package app

import (
	"image/color"

	"eca/internal/automaton"
	"eca/internal/core"
	"eca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a finished automaton history to the ebiten.Game interface,
// revealing one generation per tick.
type Game struct {
	auto    *automaton.Automaton
	painter *render.GridPainter
	rng     *core.RNG

	onColor  color.Color
	offColor color.Color

	cells    []bool
	revealed int
	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided automaton.
func New(auto *automaton.Automaton, scale int, seed int64) *Game {
	size := auto.Grid().Size()
	return &Game{
		auto:     auto,
		painter:  render.NewGridPainter(size.W, size.H),
		rng:      core.NewRNG(seed),
		onColor:  color.White,
		offColor: color.Black,
		cells:    make([]bool, size.W*size.H),
		revealed: 1,
		scale:    scale,
	}
}

// Restart rewinds the reveal to the initial generation.
func (g *Game) Restart() {
	g.revealed = 1
	g.tickOnce = false
}

// Update handles per-frame input and advances the reveal.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if auto, err := automaton.New(g.auto.Generations(), g.rng.Rule()); err == nil {
			g.auto = auto
			g.Restart()
		}
	}

	if (!g.paused || g.tickOnce) && g.revealed < g.auto.Generations() {
		g.revealed++
	}
	g.tickOnce = false
	return nil
}

// Draw renders the revealed portion of the history.
func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.auto.Grid()
	visible := grid.Cells()[:g.revealed*grid.W]
	copy(g.cells, visible)
	for i := len(visible); i < len(g.cells); i++ {
		g.cells[i] = false
	}
	g.painter.Blit(screen, g.cells, g.onColor, g.offColor, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.auto.Grid().Size()
	return size.W * g.scale, size.H * g.scale
}
