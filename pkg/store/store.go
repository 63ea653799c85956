package store

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/olivierh59500/lifegrid/pkg/life"
)

// boardsObject groups all saved boards under one gdata object
const boardsObject = "boards"

// DefaultSlot is the slot used by the quick save/load keys
const DefaultSlot = "quick"

// ErrNotFound is returned by Load when no board was saved under the slot
var ErrNotFound = errors.New("board not found")

// Snapshot is the persisted form of a board
type Snapshot struct {
	Rows       int       `yaml:"rows"`
	Columns    int       `yaml:"columns"`
	Generation int       `yaml:"generation"`
	SavedAt    time.Time `yaml:"savedAt"`
	Cells      string    `yaml:"cells"` // life.Grid text format
}

// Store saves and restores boards. With a nil gdata manager it keeps boards
// in memory for the lifetime of the process.
type Store struct {
	manager *gdata.Manager
	memory  map[string][]byte
}

// Open creates a store backed by the per-user data directory of appName
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open storage for %s: %w", appName, err)
	}
	return New(m), nil
}

// New wraps an existing manager; m may be nil
func New(m *gdata.Manager) *Store {
	return &Store{manager: m, memory: make(map[string][]byte)}
}

// Persistent reports whether saves survive a restart
func (s *Store) Persistent() bool {
	return s.manager != nil
}

// Exists reports whether a board was saved under slot
func (s *Store) Exists(slot string) bool {
	if s.manager == nil {
		_, ok := s.memory[slot]
		return ok
	}
	return s.manager.ObjectPropExists(boardsObject, slot)
}

// Save stores a copy of the board under slot
func (s *Store) Save(slot string, g *life.Grid) error {
	snap := Snapshot{
		Rows:       g.Rows(),
		Columns:    g.Cols(),
		Generation: g.Generation(),
		SavedAt:    time.Now(),
		Cells:      g.String(),
	}
	data, err := yaml.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("failed to marshal board: %w", err)
	}

	if s.manager == nil {
		s.memory[slot] = data
		return nil
	}
	if err := s.manager.SaveObjectProp(boardsObject, slot, data); err != nil {
		return fmt.Errorf("failed to save board %s: %w", slot, err)
	}
	log.Printf("[Store] Saved board %s (generation %d)", slot, snap.Generation)
	return nil
}

// Load restores the board saved under slot
func (s *Store) Load(slot string) (*life.Grid, error) {
	if !s.Exists(slot) {
		return nil, fmt.Errorf("slot %s: %w", slot, ErrNotFound)
	}

	var data []byte
	if s.manager == nil {
		data = s.memory[slot]
	} else {
		var err error
		data, err = s.manager.LoadObjectProp(boardsObject, slot)
		if err != nil {
			return nil, fmt.Errorf("failed to load board %s: %w", slot, err)
		}
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal board %s: %w", slot, err)
	}
	g, err := life.Parse(snap.Cells)
	if err != nil {
		return nil, fmt.Errorf("failed to decode board %s: %w", slot, err)
	}
	if g.Rows() != snap.Rows || g.Cols() != snap.Columns {
		return nil, fmt.Errorf("board %s is %dx%d, header says %dx%d",
			slot, g.Rows(), g.Cols(), snap.Rows, snap.Columns)
	}
	g.SetGeneration(snap.Generation)
	return g, nil
}
