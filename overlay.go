package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	overlayW    = 350
	overlayH    = 80
	overlayFade = 0.25 // seconds
)

var helpLines = []string{
	"Hold mouse: attract points",
	"Click & drag: cut the net",
	"SPACE: throw ball",
	"Arrow Up/Down: change Z-depth",
}

// Overlay is the help box in the top-left corner. Toggling it fades it in or
// out instead of popping.
type Overlay struct {
	visible bool
	alpha   float32
	fade    *gween.Tween

	canvas *ebiten.Image
}

// NewOverlay returns a fully visible overlay.
func NewOverlay() *Overlay {
	return &Overlay{visible: true, alpha: 1}
}

// Toggle starts fading toward the opposite visibility.
func (o *Overlay) Toggle() {
	o.visible = !o.visible
	to := float32(0)
	if o.visible {
		to = 1
	}
	o.fade = gween.New(o.alpha, to, overlayFade, ease.OutQuad)
}

// Update advances the fade by dt seconds.
func (o *Overlay) Update(dt float32) {
	if o.fade == nil {
		return
	}
	a, done := o.fade.Update(dt)
	o.alpha = a
	if done {
		o.fade = nil
	}
}

// Alpha is the current opacity in [0, 1].
func (o *Overlay) Alpha() float32 { return o.alpha }

// Draw paints the help box at (5, 5).
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.alpha <= 0 {
		return
	}
	if o.canvas == nil {
		o.canvas = ebiten.NewImage(overlayW+1, overlayH+1)
		vector.DrawFilledRect(o.canvas, 0, 0, overlayW, overlayH, color.NRGBA{40, 40, 40, 204}, false)
		vector.StrokeRect(o.canvas, 0.5, 0.5, overlayW, overlayH, 1, color.Gray{128}, false)
		for i, line := range helpLines {
			ebitenutil.DebugPrintAt(o.canvas, "* "+line, 10, 6+i*17)
		}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(5, 5)
	op.ColorScale.ScaleAlpha(o.alpha)
	screen.DrawImage(o.canvas, op)
}
