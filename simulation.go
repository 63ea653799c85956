package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/lifegrid/pkg/config"
	"github.com/olivierh59500/lifegrid/pkg/game"
)

// keyActions maps keys to session actions
var keyActions = []struct {
	key    ebiten.Key
	action game.Action
}{
	{ebiten.KeySpace, game.ActionReseed},
	{ebiten.KeyN, game.ActionReseedNoise},
	{ebiten.KeyP, game.ActionTogglePause},
	{ebiten.KeyArrowRight, game.ActionStep},
	{ebiten.KeyC, game.ActionClear},
	{ebiten.KeyH, game.ActionToggleHUD},
	{ebiten.KeyS, game.ActionSave},
	{ebiten.KeyL, game.ActionLoad},
}

// Simulation struct: Draws a session in an ebiten window
type Simulation struct {
	Width, Height int
	Session       *game.Session
	Stable        color.RGBA // Live cell with 2-3 neighbours
	Unstable      color.RGBA
	Background    color.RGBA
}

// NewSimulation creates the window front-end for a session
func NewSimulation(cfg *config.Config, session *game.Session) *Simulation {
	return &Simulation{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Session:    session,
		Stable:     config.MustColor(cfg.Colors.Stable),
		Unstable:   config.MustColor(cfg.Colors.Unstable),
		Background: config.MustColor(cfg.Colors.Background),
	}
}

// Update is called each tick by Ebitengine
func (s *Simulation) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	s.Session.Update(s.handleInput()...)
	return nil
}

// handleInput collects the actions for keys pressed this tick
func (s *Simulation) handleInput() []game.Action {
	var actions []game.Action
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			actions = append(actions, ka.action)
		}
	}
	return actions
}

// Draw is called each frame by Ebitengine
func (s *Simulation) Draw(screen *ebiten.Image) {
	screen.Fill(s.Background)

	g := s.Session.Grid()
	if g.Rows() == 0 || g.Cols() == 0 {
		return
	}
	// Boards loaded from storage may differ in size from the config
	cellW := float32(s.Width) / float32(g.Cols())
	cellH := float32(s.Height) / float32(g.Rows())

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if !g.Alive(row, col) {
				continue
			}
			fill := s.Unstable
			if game.Stable(g.Neighbours(row, col)) {
				fill = s.Stable
			}
			vector.DrawFilledRect(screen, cellW*float32(col), cellH*float32(row), cellW, cellH, fill, false)
		}
	}

	if s.Session.ShowHUD() {
		ebitenutil.DebugPrint(screen, s.Session.HUD())
	}
}

// Layout returns the screen size
func (s *Simulation) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.Width, s.Height
}
