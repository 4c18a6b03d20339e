package main

import (
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/olivierh59500/cloth-tear-go/cloth"
)

// frameBuffer holds the latest frame produced by the simulation for Draw.
type frameBuffer struct {
	mu    sync.Mutex
	frame *cloth.Frame
}

// RenderFrame implements cloth.Renderer. The world reuses f, so it is copied.
func (b *frameBuffer) RenderFrame(f *cloth.Frame) {
	c := f.Clone()
	b.mu.Lock()
	b.frame = c
	b.mu.Unlock()
}

func (b *frameBuffer) latest() *cloth.Frame {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frame
}

// drawFrame paints links first, then particles on top.
func drawFrame(screen *ebiten.Image, f *cloth.Frame, heat bool) {
	if f == nil {
		return
	}
	scale := f.Scale

	for _, l := range f.Links {
		if !l.Active {
			continue
		}
		col := withAlpha(color.NRGBA{0, 0, 0, 255}, l.Opacity)
		if heat {
			col = withAlpha(strainColor(l.Strain), l.Opacity)
		}
		vector.StrokeLine(screen,
			float32(l.A.X()*scale), float32(l.A.Y()*scale),
			float32(l.B.X()*scale), float32(l.B.Y()*scale),
			1, col, true)
	}

	for _, p := range f.Particles {
		x, y := float32(p.Pos.X()*scale), float32(p.Pos.Y()*scale)
		r := float32(p.Radius * scale)
		switch {
		case p.Role == cloth.Anchored:
			vector.DrawFilledCircle(screen, x, y, r*1.5, withAlpha(color.NRGBA{255, 0, 0, 255}, p.Opacity), true)
		case p.Projectile || p.Role == cloth.Attractor:
			vector.DrawFilledCircle(screen, x, y, r*2, withAlpha(color.NRGBA{0, 0, 255, 255}, p.Opacity), true)
		default:
			vector.StrokeCircle(screen, x, y, r, 1, withAlpha(color.NRGBA{0, 0, 0, 255}, p.Opacity), true)
		}
	}
}

// withAlpha scales c's alpha by a in [0, 1].
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(math.Round(float64(c.A) * math.Max(0, math.Min(1, a))))
	return c
}

// strainColor runs from green (slack) to red (about to tear).
func strainColor(strain float64) color.NRGBA {
	h := (1 - math.Max(0, math.Min(1, strain))) * 120
	r, g, b := hsvToRGB(h, 1, 0.9)
	return color.NRGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}

// hsvToRGB helper
func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}
