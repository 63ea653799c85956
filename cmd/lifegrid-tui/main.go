// lifegrid-tui runs the board in the terminal.
//
// Usage:
//
//	lifegrid-tui [flags]
//
// Flags:
//
//	--config  Path to the YAML config file (default: life.yaml)
//	--rows    Board rows, overrides the config
//	--cols    Board columns, overrides the config
//	--tps     Steps per second, overrides the config
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivierh59500/lifegrid/internal/tui"
	"github.com/olivierh59500/lifegrid/pkg/config"
	"github.com/olivierh59500/lifegrid/pkg/game"
	"github.com/olivierh59500/lifegrid/pkg/store"
)

func main() {
	configPath := flag.String("config", "life.yaml", "Path to the YAML config file")
	rows := flag.Int("rows", 40, "Board rows (0 keeps the config value)")
	cols := flag.Int("cols", 80, "Board columns (0 keeps the config value)")
	tps := flag.Int("tps", 10, "Steps per second (0 keeps the config value)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *rows > 0 {
		cfg.Rows = *rows
	}
	if *cols > 0 {
		cfg.Columns = *cols
	}
	if *tps > 0 {
		cfg.TicksPerSecond = *tps
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid settings: %v", err)
	}

	st, err := store.Open(cfg.AppName)
	if err != nil {
		log.Printf("[Main] Warning: %v (boards will not persist)", err)
		st = store.New(nil)
	}

	// Log lines would corrupt the alt screen
	log.SetOutput(io.Discard)

	session := game.NewSession(cfg, st)
	model := tui.NewModel(session, tui.NewStyles(cfg.Colors.Stable, cfg.Colors.Unstable), cfg.TicksPerSecond)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
