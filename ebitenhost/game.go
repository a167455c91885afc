// Package ebitenhost runs a charm Engine inside an Ebitengine game loop.
//
// Ebitengine calls Update at a fixed TPS, which makes it a natural frame
// source for charm's frame-counted tweens:
//
//	engine := charm.MustNew(charm.DefaultConfig())
//	game := &ebitenhost.Game{Engine: engine, DrawFunc: draw}
//	ebitenhost.Run(game, ebitenhost.RunConfig{Title: "Demo", Width: 640, Height: 480})
package ebitenhost

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/charm"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// TPS is the update rate, and therefore the tween frame rate. Defaults to
	// ebiten.DefaultTPS.
	TPS       int
	Resizable bool
}

// Game adapts a charm Engine to ebiten.Game. Each Update advances the engine
// by exactly one frame before calling UpdateFunc.
type Game struct {
	Engine *charm.Engine

	// UpdateFunc, if set, runs after the engine update.
	UpdateFunc func() error
	// DrawFunc renders the frame.
	DrawFunc func(screen *ebiten.Image)
	// ShowStats draws a StatsOverlay on top of each frame.
	ShowStats bool

	stats         StatsOverlay
	width, height int
}

// ErrNoEngine is returned by Run when the game has no engine.
var ErrNoEngine = errors.New("ebitenhost: game has no engine")

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.Engine.Update()
	if g.UpdateFunc != nil {
		return g.UpdateFunc()
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.DrawFunc != nil {
		g.DrawFunc(screen)
	}
	if g.ShowStats {
		g.stats.Draw(screen, g.Engine)
	}
}

// Layout implements ebiten.Game. A fixed logical size set by Run wins over the
// outside size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.width > 0 && g.height > 0 {
		return g.width, g.height
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and runs g until the window closes or Update errors.
func Run(g *Game, cfg RunConfig) error {
	if g == nil || g.Engine == nil {
		return ErrNoEngine
	}
	g.width, g.height = cfg.Width, cfg.Height
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(g)
}
