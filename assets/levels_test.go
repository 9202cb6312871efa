package assets

import (
	"errors"
	"testing"
	"testing/fstest"
)

const floorPlan = `
levels:
  - level: 1
    floor_tile: floor.png
    floor_plan:
      floor_levels: 3
      level_width: 25
      level_space: 200
      elevator: [2, 20]
      escalator: [10]
`

func TestParseLevels(t *testing.T) {
	lm, err := ParseLevels([]byte(floorPlan))
	if err != nil {
		t.Fatalf("ParseLevels: %v", err)
	}
	if len(lm.Levels) != 1 {
		t.Fatalf("levels = %d, want 1", len(lm.Levels))
	}
	lvl := lm.Levels[0]
	if lvl.Level != 1 || lvl.FloorTile != "floor.png" {
		t.Errorf("level = %+v", lvl)
	}
	fp := lvl.FloorPlan
	if fp.FloorLevels != 3 || fp.LevelWidth != 25 || fp.LevelSpace != 200 {
		t.Errorf("floor plan = %+v", fp)
	}
	if len(fp.Elevator) != 2 || len(fp.Escalator) != 1 {
		t.Errorf("shafts = %v %v", fp.Elevator, fp.Escalator)
	}
}

func TestParseLevelsErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "levels: [unterminated"},
		{"no levels", "levels: []"},
		{"missing tile", "levels:\n  - level: 1\n    floor_plan: {floor_levels: 1, level_width: 2}"},
		{"negative width", "levels:\n  - level: 1\n    floor_tile: a.png\n    floor_plan: {level_width: -1}"},
		{"shaft outside", "levels:\n  - level: 1\n    floor_tile: a.png\n    floor_plan: {level_width: 4, elevator: [4]}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLevels([]byte(tt.yaml)); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := ParseLevels([]byte("levels: []")); !errors.Is(err, ErrNoLevels) {
		t.Errorf("err = %v, want ErrNoLevels", err)
	}
}

func TestLoadLevelsRequestsTextures(t *testing.T) {
	fsys := fstest.MapFS{"floor_plan_1.yaml": {Data: []byte(floorPlan)}}
	l := NewLoader(fsys)

	lm, err := LoadLevels(fsys, "floor_plan_1.yaml", l)
	if err != nil {
		t.Fatalf("LoadLevels: %v", err)
	}
	tex := lm.Levels[0].FloorTexture
	if tex == nil || tex.Name() != "floor.png" {
		t.Fatalf("floor texture = %v", tex)
	}
	if l.Load("floor.png") != tex {
		t.Error("level texture is not the loader's handle")
	}

	if _, err := LoadLevels(fsys, "missing.yaml", l); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLevelTiles(t *testing.T) {
	lvl := Level{FloorPlan: FloorPlan{FloorLevels: 2, LevelWidth: 3, LevelSpace: 200}}
	tiles := lvl.Tiles(800, 1024, 32)
	if len(tiles) != 6 {
		t.Fatalf("tiles = %d, want 6", len(tiles))
	}

	want := []Tile{
		{X: -400, Y: -496, Floor: 0},
		{X: -368, Y: -496, Floor: 0},
		{X: -336, Y: -496, Floor: 0},
		{X: -400, Y: -296, Floor: 1},
		{X: -368, Y: -296, Floor: 1},
		{X: -336, Y: -296, Floor: 1},
	}
	for i := range want {
		if tiles[i] != want[i] {
			t.Errorf("tile %d = %+v, want %+v", i, tiles[i], want[i])
		}
	}
}

func TestLevelShafts(t *testing.T) {
	lvl := Level{FloorPlan: FloorPlan{
		FloorLevels: 3, LevelWidth: 25, LevelSpace: 200,
		Elevator: []int{2}, Escalator: []int{10},
	}}
	shafts := lvl.Shafts(800, 1024, 32)
	if len(shafts) != 2 {
		t.Fatalf("shafts = %d, want 2", len(shafts))
	}

	el := shafts[0]
	if el.Kind != ShaftElevator || el.Column != 2 {
		t.Errorf("first shaft = %+v", el)
	}
	if el.X != -400+64-16 || el.Y != -512 || el.Width != 32 || el.Height != 632 {
		t.Errorf("elevator geometry = %+v", el)
	}
	if shafts[1].Kind != ShaftEscalator || shafts[1].X != -400+320-16 {
		t.Errorf("escalator = %+v", shafts[1])
	}
}

func TestLevelBounds(t *testing.T) {
	lvl := Level{FloorPlan: FloorPlan{FloorLevels: 3, LevelWidth: 50, LevelSpace: 200}}
	x, y, w, h := lvl.Bounds(800, 1024, 32)
	if x != -416 || y != -512 {
		t.Errorf("origin = (%v, %v)", x, y)
	}
	if w != 1616 || h != 1024 {
		t.Errorf("size = %v x %v, want 1616 x 1024", w, h)
	}
}

func TestLevelBoundsContainTilesAndShafts(t *testing.T) {
	tests := []struct {
		name string
		fp   FloorPlan
	}{
		{"narrower than view", FloorPlan{FloorLevels: 2, LevelWidth: 10, LevelSpace: 200, Elevator: []int{0}, Escalator: []int{9}}},
		{"wider than view", FloorPlan{FloorLevels: 4, LevelWidth: 40, LevelSpace: 240, Elevator: []int{0, 39}}},
	}
	const ts = 32
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl := Level{FloorPlan: tt.fp}
			x, y, w, h := lvl.Bounds(800, 1024, ts)
			inside := func(l, b, r, top float64) bool {
				return l >= x && r <= x+w && b >= y && top <= y+h
			}
			for _, tile := range lvl.Tiles(800, 1024, ts) {
				if !inside(tile.X-ts/2, tile.Y-ts/2, tile.X+ts/2, tile.Y+ts/2) {
					t.Errorf("tile %+v outside bounds (%v, %v, %v, %v)", tile, x, y, w, h)
				}
			}
			for _, s := range lvl.Shafts(800, 1024, ts) {
				if !inside(s.X, s.Y, s.X+s.Width, s.Y+s.Height) {
					t.Errorf("shaft %+v outside bounds (%v, %v, %v, %v)", s, x, y, w, h)
				}
			}
			if x > -400 || x+w < 400 {
				t.Errorf("bounds (%v, %v) do not cover the view", x, w)
			}
		})
	}
}
