package assets

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

var ErrNoLevels = errors.New("assets: level file has no levels")

// LevelManager is the root of a floor plan file.
type LevelManager struct {
	Levels []Level `yaml:"levels"`
}

// Level describes one building: a floor tile texture stacked into floors.
type Level struct {
	Level     int       `yaml:"level"`
	FloorTile string    `yaml:"floor_tile"`
	FloorPlan FloorPlan `yaml:"floor_plan"`

	FloorTexture *Texture `yaml:"-"`
}

// FloorPlan is the layout of a level. Elevator and Escalator list the tile
// columns that hold a shaft.
type FloorPlan struct {
	FloorLevels int   `yaml:"floor_levels"`
	LevelWidth  int   `yaml:"level_width"`
	LevelSpace  int   `yaml:"level_space"`
	Elevator    []int `yaml:"elevator"`
	Escalator   []int `yaml:"escalator"`
}

// Tile is a placed floor tile, centered at X, Y in world space (y-up).
type Tile struct {
	X, Y  float64
	Floor int
}

// Shaft is a vertical elevator or escalator zone spanning all floors.
// X, Y is the bottom-left corner in world space.
type Shaft struct {
	Kind          string
	Column        int
	X, Y          float64
	Width, Height float64
}

const (
	ShaftElevator  = "elevator"
	ShaftEscalator = "escalator"
)

// ParseLevels decodes and validates a floor plan file.
func ParseLevels(data []byte) (*LevelManager, error) {
	var lm LevelManager
	if err := yaml.Unmarshal(data, &lm); err != nil {
		return nil, fmt.Errorf("assets: unmarshal levels: %w", err)
	}
	if len(lm.Levels) == 0 {
		return nil, ErrNoLevels
	}
	for i, lvl := range lm.Levels {
		fp := lvl.FloorPlan
		if fp.FloorLevels < 0 || fp.LevelWidth < 0 || fp.LevelSpace < 0 {
			return nil, fmt.Errorf("assets: level %d: negative floor plan dimension", lvl.Level)
		}
		if lvl.FloorTile == "" {
			return nil, fmt.Errorf("assets: level %d (index %d): missing floor_tile", lvl.Level, i)
		}
		for _, col := range append(append([]int{}, fp.Elevator...), fp.Escalator...) {
			if col < 0 || col >= fp.LevelWidth {
				return nil, fmt.Errorf("assets: level %d: shaft column %d outside width %d", lvl.Level, col, fp.LevelWidth)
			}
		}
	}
	return &lm, nil
}

// LoadLevels reads a floor plan file and requests each level's floor tile
// texture from the loader.
func LoadLevels(fsys fs.FS, name string, l *Loader) (*LevelManager, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", name, err)
	}
	lm, err := ParseLevels(data)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", name, err)
	}
	if l != nil {
		for i := range lm.Levels {
			lm.Levels[i].FloorTexture = l.Load(lm.Levels[i].FloorTile)
		}
	}
	return lm, nil
}

// Tiles lays out the floor tiles for a view of viewW x viewH centered on the
// origin. Floors start at the bottom edge; each row starts at the left edge.
func (lvl *Level) Tiles(viewW, viewH, tileSize float64) []Tile {
	fp := lvl.FloorPlan
	startTop := -viewH/2 + tileSize/2
	startLeft := -viewW / 2

	tiles := make([]Tile, 0, fp.FloorLevels*fp.LevelWidth)
	for floor := 0; floor < fp.FloorLevels; floor++ {
		for col := 0; col < fp.LevelWidth; col++ {
			tiles = append(tiles, Tile{
				X:     startLeft + tileSize*float64(col),
				Y:     startTop + float64(floor)*float64(fp.LevelSpace),
				Floor: floor,
			})
		}
	}
	return tiles
}

// Shafts returns one zone per elevator and escalator column, running from
// the bottom edge to the top of the highest floor.
func (lvl *Level) Shafts(viewW, viewH, tileSize float64) []Shaft {
	fp := lvl.FloorPlan
	height := float64(fp.FloorLevels)*float64(fp.LevelSpace) + tileSize
	startLeft := -viewW / 2

	var shafts []Shaft
	add := func(kind string, cols []int) {
		for _, col := range cols {
			shafts = append(shafts, Shaft{
				Kind:   kind,
				Column: col,
				X:      startLeft + tileSize*float64(col) - tileSize/2,
				Y:      -viewH / 2,
				Width:  tileSize,
				Height: height,
			})
		}
	}
	add(ShaftElevator, fp.Elevator)
	add(ShaftEscalator, fp.Escalator)
	return shafts
}

// Bounds returns the world-space extent of the level: left, bottom, width,
// height. It covers the view and every tile and shaft. Column 0 is centered
// on the view's left edge, so the level starts half a tile further left.
func (lvl *Level) Bounds(viewW, viewH, tileSize float64) (x, y, w, h float64) {
	fp := lvl.FloorPlan
	w = max(viewW, float64(fp.LevelWidth)*tileSize) + tileSize/2
	h = max(viewH, float64(fp.FloorLevels)*float64(fp.LevelSpace)+tileSize)
	return -viewW/2 - tileSize/2, -viewH / 2, w, h
}
