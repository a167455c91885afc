package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/charm"
)

// statsRefresh is how many frames the stats overlay keeps its text between
// refreshes.
const statsRefresh = 30

// StatsOverlay draws FPS, TPS and engine counters in the top-left corner.
// The text is rebuilt every statsRefresh frames.
type StatsOverlay struct {
	img  *ebiten.Image
	text string
	last uint64
}

// Draw renders the overlay for e onto screen.
func (s *StatsOverlay) Draw(screen *ebiten.Image, e *charm.Engine) {
	if s.img == nil {
		// 140x48 fits four lines of debug text.
		s.img = ebiten.NewImage(140, 48)
	}
	if s.text == "" || e.Frame()-s.last >= statsRefresh {
		s.last = e.Frame()
		s.text = statsText(ebiten.ActualFPS(), ebiten.ActualTPS(), e)
		s.img.Clear()
		// Semi-transparent background for readability
		s.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(s.img, s.text)
	}
	screen.DrawImage(s.img, nil)
}

func statsText(fps, tps float64, e *charm.Engine) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nTweens: %d\nPending: %d",
		fps, tps, e.Len(), e.Pending())
}
