package game

import (
	"strings"
	"testing"

	"github.com/olivierh59500/lifegrid/pkg/config"
	"github.com/olivierh59500/lifegrid/pkg/store"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Rows = 20
	cfg.Columns = 30
	cfg.Seed.Value = 2024
	return cfg
}

// TestNewSessionSeedsBoard verifies the board is randomly filled at startup
func TestNewSessionSeedsBoard(t *testing.T) {
	s := NewSession(testConfig(), nil)

	g := s.Grid()
	if g.Rows() != 20 || g.Cols() != 30 {
		t.Fatalf("grid: got %dx%d, want 20x30", g.Rows(), g.Cols())
	}
	if n := g.Count(); n == 0 || n == 20*30 {
		t.Errorf("Count(): got %d, want a mix of states", n)
	}
	if g.Generation() != 0 {
		t.Errorf("Generation(): got %d, want 0", g.Generation())
	}
}

// TestNewSessionFixedSeed verifies a configured seed reproduces the board
func TestNewSessionFixedSeed(t *testing.T) {
	a := NewSession(testConfig(), nil)
	b := NewSession(testConfig(), nil)
	if a.Grid().String() != b.Grid().String() {
		t.Error("sessions with the same seed produced different boards")
	}
}

// TestUpdateSteps verifies an idle tick advances one generation
func TestUpdateSteps(t *testing.T) {
	s := NewSession(testConfig(), nil)
	s.Update()
	s.Update()
	if got := s.Grid().Generation(); got != 2 {
		t.Errorf("Generation(): got %d, want 2", got)
	}
}

// TestReseedSkipsStep verifies a reseed tick does not also step
func TestReseedSkipsStep(t *testing.T) {
	tests := []struct {
		name   string
		action Action
	}{
		{"reseed", ActionReseed},
		{"noise reseed", ActionReseedNoise},
		{"clear", ActionClear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(testConfig(), nil)
			s.Update()
			s.Update(tt.action)
			if got := s.Grid().Generation(); got != 0 {
				t.Errorf("Generation(): got %d, want 0", got)
			}
		})
	}
}

// TestClearEmptiesBoard verifies the clear action
func TestClearEmptiesBoard(t *testing.T) {
	s := NewSession(testConfig(), nil)
	s.Update(ActionClear)
	if n := s.Grid().Count(); n != 0 {
		t.Errorf("Count(): got %d, want 0", n)
	}
}

// TestPauseAndStep covers pausing and single stepping
func TestPauseAndStep(t *testing.T) {
	s := NewSession(testConfig(), nil)

	s.Update(ActionTogglePause)
	if !s.Paused() {
		t.Fatal("Paused(): got false, want true")
	}
	s.Update()
	s.Update()
	if got := s.Grid().Generation(); got != 0 {
		t.Errorf("Generation() while paused: got %d, want 0", got)
	}

	s.Update(ActionStep)
	if got := s.Grid().Generation(); got != 1 {
		t.Errorf("Generation() after single step: got %d, want 1", got)
	}

	s.Update(ActionTogglePause)
	if s.Paused() {
		t.Error("Paused(): got true, want false")
	}
	if got := s.Grid().Generation(); got != 2 {
		t.Errorf("Generation() after resume: got %d, want 2", got)
	}
}

// TestSaveLoad verifies a loaded board replaces the current one
func TestSaveLoad(t *testing.T) {
	s := NewSession(testConfig(), store.New(nil))
	s.Update()
	saved := s.Grid().String()

	s.Update(ActionSave)
	if !strings.Contains(s.Message(), "saved generation 1") {
		t.Errorf("Message(): got %q", s.Message())
	}
	s.Update()
	s.Update(ActionReseed)

	s.Update(ActionLoad)
	if got := s.Grid().String(); got != saved {
		t.Errorf("loaded board:\ngot\n%s\nwant\n%s", got, saved)
	}
	if got := s.Grid().Generation(); got != 1 {
		t.Errorf("Generation() after load: got %d, want 1", got)
	}
}

// TestLoadWithoutSave keeps the board and still steps
func TestLoadWithoutSave(t *testing.T) {
	s := NewSession(testConfig(), store.New(nil))
	s.Update(ActionLoad)
	if s.Message() != "nothing saved yet" {
		t.Errorf("Message(): got %q, want %q", s.Message(), "nothing saved yet")
	}
	if got := s.Grid().Generation(); got != 1 {
		t.Errorf("Generation(): got %d, want 1", got)
	}
}

// TestNoStore verifies save and load are disabled without storage
func TestNoStore(t *testing.T) {
	s := NewSession(testConfig(), nil)
	s.Update(ActionSave)
	if s.Message() != "saving disabled" {
		t.Errorf("Message() after save: got %q", s.Message())
	}
	s.Update(ActionLoad)
	if s.Message() != "loading disabled" {
		t.Errorf("Message() after load: got %q", s.Message())
	}
}

// TestHUD covers the overlay text and its toggle
func TestHUD(t *testing.T) {
	cfg := testConfig()
	cfg.Window.ShowHUD = false
	s := NewSession(cfg, nil)
	if s.ShowHUD() {
		t.Error("ShowHUD(): got true, want false")
	}
	s.Update(ActionToggleHUD, ActionTogglePause)
	if !s.ShowHUD() {
		t.Error("ShowHUD() after toggle: got false, want true")
	}

	hud := s.HUD()
	if !strings.HasPrefix(hud, "gen 0  alive ") {
		t.Errorf("HUD(): got %q", hud)
	}
	if !strings.Contains(hud, "[paused]") {
		t.Errorf("HUD(): got %q, want paused marker", hud)
	}
}

// TestStable checks the tint rule
func TestStable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		want := n == 2 || n == 3
		if got := Stable(n); got != want {
			t.Errorf("Stable(%d): got %v, want %v", n, got, want)
		}
	}
}
