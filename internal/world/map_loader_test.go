package world

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMapLoader_LoadMap(t *testing.T) {
	mapDir := t.TempDir()
	mapPath := filepath.Join(mapDir, "test.map")
	content := "; test level\n" +
		"#####\n" +
		"\n" +
		"#.P.#\n" +
		"#####\n"
	if err := os.WriteFile(mapPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write map: %v", err)
	}

	mapData, err := NewMapLoader().LoadMap(mapPath)
	if err != nil {
		t.Fatalf("load map: %v", err)
	}

	if mapData.Grid.Width() != 5 || mapData.Grid.Height() != 3 {
		t.Fatalf("Expected 5x3 grid, got %dx%d", mapData.Grid.Width(), mapData.Grid.Height())
	}
	if !mapData.HasStart {
		t.Fatal("Expected start marker to be found")
	}
	if mapData.StartX != 1.5 || mapData.StartY != 2.5 {
		t.Errorf("Expected start (1.5, 2.5), got (%v, %v)", mapData.StartX, mapData.StartY)
	}
	if cell, _ := mapData.Grid.CellAt(2, 1); cell != CellEmpty {
		t.Errorf("Start marker should be stored as empty, got %v", cell)
	}
}

func TestMapLoader_Parse(t *testing.T) {
	t.Run("no start marker", func(t *testing.T) {
		mapData, err := NewMapLoader().Parse(strings.NewReader("###\n#.#\n###\n"))
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if mapData.HasStart {
			t.Error("Expected no start marker")
		}
	})

	t.Run("two start markers", func(t *testing.T) {
		_, err := NewMapLoader().Parse(strings.NewReader("####\n#PP#\n####\n"))
		if !errors.Is(err, ErrMalformedLevel) {
			t.Errorf("Expected ErrMalformedLevel, got %v", err)
		}
	})

	t.Run("start markers on two rows", func(t *testing.T) {
		_, err := NewMapLoader().Parse(strings.NewReader("#P#\n#P#\n###\n"))
		if !errors.Is(err, ErrMalformedLevel) {
			t.Errorf("Expected ErrMalformedLevel, got %v", err)
		}
	})

	t.Run("only comments", func(t *testing.T) {
		_, err := NewMapLoader().Parse(strings.NewReader("; nothing\n\n"))
		if !errors.Is(err, ErrMalformedLevel) {
			t.Errorf("Expected ErrMalformedLevel, got %v", err)
		}
	})

	t.Run("inconsistent width", func(t *testing.T) {
		_, err := NewMapLoader().Parse(strings.NewReader("####\n#..\n####\n"))
		if !errors.Is(err, ErrMalformedLevel) {
			t.Errorf("Expected ErrMalformedLevel, got %v", err)
		}
	})
}

func TestMapLoader_MissingFile(t *testing.T) {
	if _, err := NewMapLoader().LoadMap(filepath.Join(t.TempDir(), "absent.map")); err == nil {
		t.Error("Expected error for missing map file")
	}
}

func TestMapLoader_ShippedMaps(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "assets", "maps", "*.map"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(paths) == 0 {
		t.Skip("no shipped maps found")
	}

	for _, p := range paths {
		mapData, err := NewMapLoader().LoadMap(p)
		if err != nil {
			t.Errorf("%s: %v", p, err)
			continue
		}
		if mapData.HasStart && mapData.Grid.IsWall(mapData.StartX, mapData.StartY) {
			t.Errorf("%s: start position is inside a wall", p)
		}
	}
}
