package world

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// MapLoader handles loading level maps from text files
type MapLoader struct {
	commentPrefix string
}

// MapData contains the loaded map information
type MapData struct {
	Grid *Grid
	// Start position in world coordinates (X selects the row), valid when HasStart
	StartX   float64
	StartY   float64
	HasStart bool
}

// NewMapLoader creates a new map loader
func NewMapLoader() *MapLoader {
	return &MapLoader{commentPrefix: ";"}
}

// LoadMap loads a map from the specified file path
func (ml *MapLoader) LoadMap(mapPath string) (*MapData, error) {
	file, err := os.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", mapPath, err)
	}
	defer file.Close()

	mapData, err := ml.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("map file %s: %w", mapPath, err)
	}

	log.Printf("[MapLoader] Loaded %s (%dx%d, start=%v)", mapPath, mapData.Grid.Width(), mapData.Grid.Height(), mapData.HasStart)
	return mapData, nil
}

// Parse reads level rows from r. Blank lines and lines starting with ';' are
// skipped. A single 'P' marks the start cell; it is stored as empty space.
func (ml *MapLoader) Parse(r io.Reader) (*MapData, error) {
	var lines []string
	mapData := &MapData{}
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, ml.commentPrefix) {
			continue
		}

		if col := strings.IndexRune(line, SymbolStart); col >= 0 {
			if mapData.HasStart || strings.Count(line, string(SymbolStart)) > 1 {
				return nil, fmt.Errorf("%w: more than one start marker", ErrMalformedLevel)
			}
			mapData.HasStart = true
			mapData.StartX = float64(len(lines)) + 0.5
			mapData.StartY = float64(len([]rune(line[:col]))) + 0.5
			line = strings.Replace(line, string(SymbolStart), string(SymbolEmpty), 1)
		}

		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map: %w", err)
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: map contains no rows", ErrMalformedLevel)
	}

	grid, err := NewGrid(lines)
	if err != nil {
		return nil, err
	}
	mapData.Grid = grid

	return mapData, nil
}
