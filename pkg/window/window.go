package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Show opens a desktop window displaying img and blocks until it is closed.
func Show(img image.Image, title string) error {
	b := img.Bounds()
	w := &imageWindow{src: img, width: b.Dx(), height: b.Dy()}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// Nothing animates; keep the update loop idle.
	ebiten.SetTPS(10)
	return ebiten.RunGame(w)
}

type imageWindow struct {
	src    image.Image
	img    *ebiten.Image
	width  int
	height int
}

func (w *imageWindow) Update() error { return nil }

func (w *imageWindow) Draw(screen *ebiten.Image) {
	if w.img == nil {
		w.img = ebiten.NewImageFromImage(w.src)
	}
	screen.DrawImage(w.img, nil)
}

// Layout keeps the logical screen at image size; ebiten scales it to the window.
func (w *imageWindow) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}
