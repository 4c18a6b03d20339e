package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/olivierh59500/cloth-tear-go/cloth"
)

// Simulation struct: Holds the game state
type Simulation struct {
	cfg Config

	Width, Height int

	world *cloth.World
	scene *cloth.Scene
	input *cloth.SharedInput

	frames  frameBuffer
	overlay *Overlay

	Paused   bool
	HeatMode bool // colour links by strain

	stats cloth.StepStats
	torn  int // links lost since the last reset
}

// NewSimulation creates a new simulation instance
func NewSimulation(cfg Config) (*Simulation, error) {
	s := &Simulation{
		cfg:     cfg,
		Width:   cfg.Width,
		Height:  cfg.Height,
		input:   cloth.NewSharedInput(float64(cfg.Width)/2, float64(cfg.Height)/2),
		overlay: NewOverlay(),
	}
	if err := s.reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// reset rebuilds the cloth in a fresh world.
func (s *Simulation) reset() error {
	w, err := cloth.NewWorld(s.cfg.Params, s.bounds())
	if err != nil {
		return err
	}
	if s.cfg.WindStrength != 0 {
		w.SetWind(cloth.NewWind(s.cfg.WindStrength, s.cfg.WindSeed))
	}
	sc, err := cloth.BuildScene(w, s.cfg.Scene, s.input.Snapshot())
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}
	s.world, s.scene = w, sc
	s.torn = 0
	return nil
}

func (s *Simulation) bounds() cloth.Bounds {
	return cloth.ScreenBounds(float64(s.Width), float64(s.Height), s.cfg.Params.Scale, cloth.DepthRange)
}

// Update is called each tick by Ebitengine
func (s *Simulation) Update() error {
	// Handle input
	if err := s.handleInput(); err != nil {
		return err
	}

	s.overlay.Update(float32(s.cfg.Params.DT()))

	if s.Paused {
		return nil
	}

	s.stats = s.world.Step(s.cfg.Params.DT(), s.input.Snapshot(), &s.frames)
	s.torn += s.stats.Cut + s.stats.Torn
	return nil
}

// Draw is called each frame by Ebitengine
func (s *Simulation) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	drawFrame(screen, s.frames.latest(), s.HeatMode)
	s.overlay.Draw(screen)

	in := s.input.Snapshot()
	status := fmt.Sprintf("tick %d  depth %.0f  links %d  torn %d  TPS %.0f",
		s.world.Tick(), in.Depth, len(s.world.Links()), s.torn, ebiten.ActualTPS())
	if s.Paused {
		status += "  [paused]"
	}
	vector.DrawFilledRect(screen, 0, float32(s.Height-22), float32(s.Width), 22, color.NRGBA{40, 40, 40, 204}, false)
	ebitenutil.DebugPrintAt(screen, status, 5, s.Height-20)
}

// Layout tracks the window size so the cloth bounces off the real edges
func (s *Simulation) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != s.Width || outsideHeight != s.Height {
		s.Width, s.Height = outsideWidth, outsideHeight
		s.world.SetBounds(s.bounds())
	}
	return s.Width, s.Height
}

// handleInput processes keyboard and mouse input
func (s *Simulation) handleInput() error {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	s.input.MoveTo(x, y)

	// leaving the window lets go of the button
	inside := mx >= 0 && my >= 0 && mx < s.Width && my < s.Height
	switch {
	case !inside || !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		s.input.Release()
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		s.input.Press(x, y)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.input.AdjustDepth(s.cfg.DepthStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.input.AdjustDepth(-s.cfg.DepthStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if _, err := cloth.SpawnProjectile(s.world, s.cfg.Scene, s.input.Snapshot(), s.cfg.Throw); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.Paused = !s.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := s.reset(); err != nil {
			return err
		}
		log.Printf("Scene reset: %d particles, %d links, %d anchors",
			len(s.world.Particles()), len(s.world.Links()), len(s.scene.Anchors))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.overlay.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		s.HeatMode = !s.HeatMode
	}
	return nil
}
