package store

import (
	"errors"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/olivierh59500/lifegrid/pkg/life"
)

func testBoard(t *testing.T) *life.Grid {
	t.Helper()
	g := life.NewGrid(7, 9)
	g.Reseed(rand.New(rand.NewSource(11)), 0.5)
	g.Step()
	g.Step()
	return g
}

// openTempStore redirects the user directories so gdata writes under t.TempDir()
func openTempStore(t *testing.T, appName string) *Store {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, ".config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tempDir, ".local", "share"))

	s, err := Open(appName)
	if err != nil {
		t.Fatalf("Open(%q) error: %v", appName, err)
	}
	return s
}

// TestMemoryStoreRoundTrip covers the degraded mode used when storage is unavailable
func TestMemoryStoreRoundTrip(t *testing.T) {
	s := New(nil)
	if s.Persistent() {
		t.Error("Persistent(): got true, want false")
	}

	g := testBoard(t)
	if err := s.Save(DefaultSlot, g); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if !s.Exists(DefaultSlot) {
		t.Fatal("Exists() after Save: got false, want true")
	}

	got, err := s.Load(DefaultSlot)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.String() != g.String() {
		t.Errorf("Load() board:\ngot\n%s\nwant\n%s", got.String(), g.String())
	}
	if got.Generation() != 2 {
		t.Errorf("Generation(): got %d, want 2", got.Generation())
	}
}

// TestLoadMissingSlot verifies the sentinel error
func TestLoadMissingSlot(t *testing.T) {
	s := New(nil)
	_, err := s.Load("absent")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load(absent): got %v, want ErrNotFound", err)
	}
}

// TestSaveIsACopy verifies later changes to the grid do not leak into the save
func TestSaveIsACopy(t *testing.T) {
	s := New(nil)
	g := life.NewGrid(3, 3)
	g.Set(1, 1, true)
	if err := s.Save("a", g); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	g.Clear()

	got, err := s.Load("a")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !got.Alive(1, 1) {
		t.Error("saved board lost its live cell")
	}
}

// TestGdataStoreRoundTrip covers persistence through gdata
func TestGdataStoreRoundTrip(t *testing.T) {
	s := openTempStore(t, "lifegrid_test_store")
	if !s.Persistent() {
		t.Error("Persistent(): got false, want true")
	}
	if s.Exists(DefaultSlot) {
		t.Fatal("Exists() on fresh storage: got true, want false")
	}

	g := testBoard(t)
	if err := s.Save(DefaultSlot, g); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// a second store over the same directory sees the board
	reopened, err := Open("lifegrid_test_store")
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	got, err := reopened.Load(DefaultSlot)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.Rows() != 7 || got.Cols() != 9 {
		t.Errorf("dimensions: got %dx%d, want 7x9", got.Rows(), got.Cols())
	}
	if got.String() != g.String() {
		t.Errorf("Load() board:\ngot\n%s\nwant\n%s", got.String(), g.String())
	}
}

// TestLoadCorruptData verifies decode errors are reported
func TestLoadCorruptData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not yaml", "rows: [1"},
		{"bad cells", "rows: 1\ncolumns: 2\ncells: \"x.\"\n"},
		{"header mismatch", "rows: 3\ncolumns: 2\ncells: \"#.\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(nil)
			s.memory["bad"] = []byte(tt.data)
			if _, err := s.Load("bad"); err == nil {
				t.Error("Load() of corrupt data: expected error")
			}
		})
	}
}
