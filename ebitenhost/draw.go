package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/charm"
)

// DrawOptions builds draw options that place an image of size w×h at the
// node's position, pivoting scale and rotation around the image centre, and
// multiplying by the node's alpha.
func DrawOptions(n *charm.Node, w, h int) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(n.ScaleX, n.ScaleY)
	op.GeoM.Rotate(n.Rotation)
	op.GeoM.Translate(n.X, n.Y)
	op.ColorScale.ScaleAlpha(float32(n.Alpha))
	return op
}

// DrawNode draws img for n onto screen. Hidden, disposed and fully
// transparent nodes are skipped.
func DrawNode(screen, img *ebiten.Image, n *charm.Node) {
	if n == nil || img == nil || !n.Visible || n.IsDisposed() || n.Alpha <= 0 {
		return
	}
	b := img.Bounds()
	screen.DrawImage(img, DrawOptions(n, b.Dx(), b.Dy()))
}
