package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/olivierh59500/lifegrid/pkg/config"
	"github.com/olivierh59500/lifegrid/pkg/life"
	"github.com/olivierh59500/lifegrid/pkg/store"
)

// Action is a front-end independent command produced by input handling
type Action int

const (
	ActionReseed      Action = iota // Reseed with the configured mode
	ActionReseedNoise               // Reseed from Perlin noise
	ActionTogglePause
	ActionStep // Single step while paused
	ActionClear
	ActionToggleHUD
	ActionSave
	ActionLoad
)

// Session owns the board and the interaction state shared by the front-ends.
// It is driven from a single loop: Update once per tick, then draw.
type Session struct {
	cfg     *config.Config
	grid    *life.Grid
	store   *store.Store
	rng     *rand.Rand
	paused  bool
	showHUD bool
	message string // Last save/load outcome, shown in the HUD
}

// NewSession creates a seeded board from cfg. st may be nil, which disables save and load.
func NewSession(cfg *config.Config, st *store.Store) *Session {
	seed := cfg.Seed.Value
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		cfg:     cfg,
		grid:    life.NewGrid(cfg.Rows, cfg.Columns),
		store:   st,
		rng:     rand.New(rand.NewSource(seed)),
		showHUD: cfg.Window.ShowHUD,
	}
	s.reseed(cfg.Seed.Mode)
	return s
}

// Grid returns the current board
func (s *Session) Grid() *life.Grid { return s.grid }

// Paused reports whether automatic stepping is suspended
func (s *Session) Paused() bool { return s.paused }

// ShowHUD reports whether the statistics overlay is visible
func (s *Session) ShowHUD() bool { return s.showHUD }

// Message returns the last status message
func (s *Session) Message() string { return s.message }

// Update applies the actions gathered this tick and then advances the board.
// As in the classic loop, a tick that replaced the board does not also step it.
func (s *Session) Update(actions ...Action) {
	replaced, stepOnce := false, false
	for _, a := range actions {
		switch a {
		case ActionReseed:
			s.reseed(s.cfg.Seed.Mode)
			replaced = true
		case ActionReseedNoise:
			s.reseed(config.SeedNoise)
			replaced = true
		case ActionClear:
			s.grid.Clear()
			replaced = true
		case ActionLoad:
			if s.load() {
				replaced = true
			}
		case ActionSave:
			s.save()
		case ActionTogglePause:
			s.paused = !s.paused
		case ActionStep:
			stepOnce = true
		case ActionToggleHUD:
			s.showHUD = !s.showHUD
		}
	}

	if replaced {
		return
	}
	if !s.paused || stepOnce {
		s.grid.Step()
	}
}

func (s *Session) reseed(mode string) {
	switch mode {
	case config.SeedNoise:
		s.grid.ReseedNoise(s.rng, s.cfg.Seed.NoiseScale, s.cfg.Seed.NoiseThreshold)
	default:
		s.grid.Reseed(s.rng, s.cfg.Seed.Density)
	}
}

func (s *Session) save() {
	if s.store == nil {
		s.message = "saving disabled"
		return
	}
	if err := s.store.Save(store.DefaultSlot, s.grid); err != nil {
		log.Printf("[Session] Save failed: %v", err)
		s.message = "save failed"
		return
	}
	s.message = fmt.Sprintf("saved generation %d", s.grid.Generation())
}

func (s *Session) load() bool {
	if s.store == nil {
		s.message = "loading disabled"
		return false
	}
	g, err := s.store.Load(store.DefaultSlot)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.message = "nothing saved yet"
		} else {
			log.Printf("[Session] Load failed: %v", err)
			s.message = "load failed"
		}
		return false
	}
	s.grid = g
	s.message = fmt.Sprintf("loaded generation %d", g.Generation())
	return true
}

// Stable reports whether a neighbour count would keep a live cell alive.
// Front-ends use it to pick the cell tint.
func Stable(neighbours int) bool {
	return neighbours == 2 || neighbours == 3
}

// HUD returns the overlay text
func (s *Session) HUD() string {
	st := s.grid.Stats()
	var b strings.Builder
	fmt.Fprintf(&b, "gen %d  alive %d  +%d -%d", st.Generation, st.Alive, st.Born, st.Died)
	if s.paused {
		b.WriteString("  [paused]")
	}
	if s.message != "" {
		b.WriteString("\n")
		b.WriteString(s.message)
	}
	return b.String()
}
