package systems

import (
	"image/color"

	"github.com/automoto/kyra-copper/components"
	cfg "github.com/automoto/kyra-copper/config"
	"github.com/automoto/kyra-copper/logger"
	"github.com/automoto/kyra-copper/systems/factory"
	"github.com/automoto/kyra-copper/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

var pendingTileColor = color.RGBA{90, 90, 90, 255}

// UpdateLevel builds the floor tiles and shafts of the current level. It
// runs once per load; a reload clears the old ones first.
func UpdateLevel(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Built || level.CurrentLevel == nil {
		return
	}

	clearLevel(ecs)

	w, h := float64(cfg.C.Width), float64(cfg.C.Height)
	ts := cfg.C.TileSize
	lvl := level.CurrentLevel

	tiles := lvl.Tiles(w, h, ts)
	for _, t := range tiles {
		factory.CreateTile(ecs, t, ts, lvl.FloorTexture)
	}
	shafts := lvl.Shafts(w, h, ts)
	for _, s := range shafts {
		factory.CreateShaft(ecs, s)
	}

	level.Built = true
	logger.Log.Info("level built",
		zap.Int("level", lvl.Level),
		zap.Int("tiles", len(tiles)),
		zap.Int("shafts", len(shafts)),
	)
}

// clearLevel removes every tile and shaft along with their physics shapes
// and resolv objects.
func clearLevel(ecs *ecs.ECS) {
	var stale []*donburi.Entry
	tags.Tile.Each(ecs.World, func(e *donburi.Entry) { stale = append(stale, e) })
	tags.Shaft.Each(ecs.World, func(e *donburi.Entry) { stale = append(stale, e) })
	if len(stale) == 0 {
		return
	}

	physicsEntry, hasPhysics := components.PhysicsSpace.First(ecs.World)
	shaftEntry, hasShafts := components.ShaftSpace.First(ecs.World)

	for _, e := range stale {
		if hasPhysics && e.HasComponent(components.Physics) {
			if shape := components.Physics.Get(e).Shape; shape != nil {
				components.PhysicsSpace.Get(physicsEntry).RemoveShape(shape)
			}
		}
		if hasShafts && e.HasComponent(components.Object) {
			if obj := components.Object.Get(e).Object; obj != nil {
				components.ShaftSpace.Get(shaftEntry).Remove(obj)
			}
		}
		ecs.World.Remove(e.Entity())
	}
}

// DrawLevel draws the floor tiles. Tiles whose texture is still loading
// are drawn as flat grey squares.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	tags.Tile.Each(ecs.World, func(e *donburi.Entry) {
		tile := components.Tile.Get(e)
		half := tile.Size / 2
		sx, sy := worldToScreen(camera, width, height, tile.X-half, tile.Y+half)

		// Viewport culling
		if sx+tile.Size < 0 || sx > float64(width) || sy+tile.Size < 0 || sy > float64(height) {
			return
		}

		img := textureImage(tile.Texture)
		if img == nil {
			vector.FillRect(screen, float32(sx), float32(sy), float32(tile.Size), float32(tile.Size), pendingTileColor, false)
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		b := img.Bounds()
		drawOp.GeoM.Scale(tile.Size/float64(b.Dx()), tile.Size/float64(b.Dy()))
		drawOp.GeoM.Translate(sx, sy)
		screen.DrawImage(img, drawOp)
	})
}
