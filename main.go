package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/lifegrid/pkg/config"
	"github.com/olivierh59500/lifegrid/pkg/game"
	"github.com/olivierh59500/lifegrid/pkg/store"
)

func main() {
	configPath := flag.String("config", "life.yaml", "Path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	// The window does not start without its icon
	icon, err := loadIcon(cfg.Window.IconPath)
	if err != nil {
		log.Fatal(err)
	}

	// Saving falls back to memory when the user directory is unavailable
	st, err := store.Open(cfg.AppName)
	if err != nil {
		log.Printf("[Main] Warning: %v (boards will not persist)", err)
		st = store.New(nil)
	}

	sim := NewSimulation(cfg, game.NewSession(cfg, st))

	// Set up Ebitengine game
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowIcon([]image.Image{icon})
	ebiten.SetTPS(cfg.TicksPerSecond)

	// Run the game loop; returns nil on Escape or window close
	if err := ebiten.RunGame(sim); err != nil {
		log.Fatal(err)
	}
}
