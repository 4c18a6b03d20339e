package main

import (
	"testing"

	"github.com/olivierh59500/cloth-tear-go/cloth"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 400, 300
	cfg.Scene.GridSize = 5
	return cfg
}

func TestNewSimulationBuildsScene(t *testing.T) {
	s, err := NewSimulation(smallConfig())
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	if got := len(s.world.Particles()); got != 26 {
		t.Fatalf("particles = %d, want 26", got)
	}
	att := s.world.Particle(s.scene.Attractor)
	if att.Pos.X() != 20 || att.Pos.Y() != 15 {
		t.Fatalf("attractor at %v, want window centre", att.Pos)
	}
}

func TestNewSimulationRejectsBadScene(t *testing.T) {
	cfg := smallConfig()
	cfg.Scene.ClothMass = 0
	if _, err := NewSimulation(cfg); err == nil {
		t.Fatal("expected an error for zero cloth mass")
	}
}

func TestLayoutResizesBounds(t *testing.T) {
	s, err := NewSimulation(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	w, h := s.Layout(1000, 500)
	if w != 1000 || h != 500 {
		t.Fatalf("Layout = %dx%d", w, h)
	}
	want := cloth.ScreenBounds(1000, 500, 10, cloth.DepthRange)
	if s.world.Bounds() != want {
		t.Fatalf("bounds = %v, want %v", s.world.Bounds(), want)
	}
}

func TestResetRestoresCloth(t *testing.T) {
	s, err := NewSimulation(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	links := len(s.world.Links())
	in := cloth.InputState{X: 0, Y: 0, Down: true, DownX: 400, DownY: 300}
	for i := 0; i < 5; i++ {
		s.world.Step(s.cfg.Params.DT(), in, &s.frames)
	}
	if len(s.world.Links()) == links {
		t.Fatal("diagonal cut severed nothing")
	}
	if err := s.reset(); err != nil {
		t.Fatal(err)
	}
	if len(s.world.Links()) != links || s.world.Tick() != 0 {
		t.Fatalf("reset left %d links at tick %d", len(s.world.Links()), s.world.Tick())
	}
}
