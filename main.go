package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := LoadConfig(".env")
	if err != nil {
		log.Fatal(err)
	}

	// Initialize simulation from the loaded configuration
	sim, err := NewSimulation(cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Cloth %dx%d, tick %v, throw policy %v",
		cfg.Scene.GridSize, cfg.Scene.GridSize, cfg.Params.TickPeriod, cfg.Throw)

	// Set up Ebitengine game
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS()) // one simulation tick per update

	// Run the game loop
	if err := ebiten.RunGame(sim); err != nil {
		log.Fatal(err)
	}
}
