package factory

import (
	"fmt"
	"io/fs"

	"github.com/automoto/kyra-copper/archetypes"
	"github.com/automoto/kyra-copper/assets"
	"github.com/automoto/kyra-copper/components"
	cfg "github.com/automoto/kyra-copper/config"
	"github.com/automoto/kyra-copper/logger"
	"github.com/automoto/kyra-copper/tags"
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CreateLevel loads the level file and selects the level at levelIndex.
// Tiles and shafts are built later by the level system.
func CreateLevel(ecs *ecs.ECS, fsys fs.FS, loader *assets.Loader, name string, levelIndex int) (*donburi.Entry, error) {
	lm, err := assets.LoadLevels(fsys, name, loader)
	if err != nil {
		return nil, err
	}
	if levelIndex < 0 || levelIndex >= len(lm.Levels) {
		return nil, fmt.Errorf("level index %d out of range (file has %d)", levelIndex, len(lm.Levels))
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Manager:      lm,
		LevelIndex:   levelIndex,
		CurrentLevel: &lm.Levels[levelIndex],
	})
	logger.Log.Info("level loaded",
		zap.String("file", name),
		zap.Int("level", lm.Levels[levelIndex].Level),
		zap.Int("floors", lm.Levels[levelIndex].FloorPlan.FloorLevels),
	)
	return level, nil
}

// CreateTile places a static floor tile centered at t.
func CreateTile(ecs *ecs.ECS, t assets.Tile, size float64, tex *assets.Texture) *donburi.Entry {
	tile := archetypes.Tile.Spawn(ecs)
	components.Tile.SetValue(tile, components.TileData{Tile: t, Texture: tex, Size: size})

	var data components.PhysicsData
	if spaceEntry, ok := components.PhysicsSpace.First(ecs.World); ok {
		space := components.PhysicsSpace.Get(spaceEntry)
		bb := cp.BB{L: t.X - size/2, B: t.Y - size/2, R: t.X + size/2, T: t.Y + size/2}
		shape := cp.NewBox2(space.StaticBody, bb, 0)
		shape.SetFriction(cfg.Physics.Friction)
		shape.UserData = tile
		space.AddShape(shape)
		data = components.PhysicsData{Body: space.StaticBody, Shape: shape}
	}
	components.Physics.SetValue(tile, data)
	return tile
}

// CreateShaft adds an elevator or escalator zone to the shaft space.
func CreateShaft(ecs *ecs.ECS, s assets.Shaft) *donburi.Entry {
	shaft := archetypes.Shaft.Spawn(ecs)
	components.Shaft.SetValue(shaft, components.ShaftData{Shaft: s})

	obj := resolv.NewObject(0, 0, s.Width, s.Height, tags.ResolvShaft, s.Kind)
	obj.Data = shaft
	if spaceEntry, ok := components.ShaftSpace.First(ecs.World); ok {
		shafts := components.ShaftSpace.Get(spaceEntry)
		obj.X, obj.Y = shafts.ToSpace(s.X, s.Y+s.Height)
		shafts.Add(obj)
	}
	components.Object.SetValue(shaft, components.ObjectData{Object: obj})
	return shaft
}
