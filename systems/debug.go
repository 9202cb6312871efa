package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/kyra-copper/archetypes"
	"github.com/automoto/kyra-copper/assets"
	"github.com/automoto/kyra-copper/components"
	cfg "github.com/automoto/kyra-copper/config"
	"github.com/automoto/kyra-copper/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the overlay on the debug action.
func UpdateDebug(ecs *ecs.ECS) {
	debug := getOrCreateDebug(ecs)
	if getOrCreateInput(ecs).JustPressed(cfg.ActionToggleDebug) {
		debug.Overlay = !debug.Overlay
	}
}

func getOrCreateDebug(ecs *ecs.ECS) *components.DebugData {
	if _, ok := components.Debug.First(ecs.World); !ok {
		ent := archetypes.Debug.Spawn(ecs)
		components.Debug.SetValue(ent, components.DebugData{Overlay: cfg.Debug.Overlay})
	}

	ent, _ := components.Debug.First(ecs.World)
	return components.Debug.Get(ent)
}

// DrawDebug outlines colliders and shafts and prints the hero's state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !getOrCreateDebug(ecs).Overlay {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Shafts
	tags.Shaft.Each(ecs.World, func(e *donburi.Entry) {
		s := components.Shaft.Get(e)
		c := color.RGBA{255, 200, 0, 255} // Amber
		if s.Kind == tags.ResolvEscalator {
			c = color.RGBA{0, 255, 255, 255} // Cyan
		}
		sx, sy := worldToScreen(camera, width, height, s.X, s.Y+s.Height)
		outline(screen, sx, sy, s.Width, s.Height, c)
	})

	// Physics shapes
	if spaceEntry, ok := components.PhysicsSpace.First(ecs.World); ok {
		components.PhysicsSpace.Get(spaceEntry).EachShape(func(shape *cp.Shape) {
			bb := shape.BB()
			c := color.RGBA{100, 100, 100, 255} // Grey
			if shape.Body().GetType() != cp.BODY_STATIC {
				c = color.RGBA{0, 0, 255, 255} // Blue
			}
			sx, sy := worldToScreen(camera, width, height, bb.L, bb.T)
			if sx > float64(width) || sx+(bb.R-bb.L) < 0 {
				return
			}
			outline(screen, sx, sy, bb.R-bb.L, bb.T-bb.B, c)
		})
	}

	msg := fmt.Sprintf("FPS: %0.1f  TPS: %0.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	if heroEntry, ok := tags.Hero.First(ecs.World); ok {
		hero := components.Hero.Get(heroEntry)
		pos := components.Position.Get(heroEntry)
		shaft := hero.Shaft
		if shaft == "" {
			shaft = "-"
		}
		clock := &hero.Animator.Clock
		msg += fmt.Sprintf("\nstate: %s  frame: %d  clock: %.2f/%.2f\npos: %.0f, %.0f  shaft: %s",
			hero.State, hero.Frame(), clock.Elapsed(), clock.Interval(), pos.X, pos.Y, shaft)
		if sprite := components.Sprite.Get(heroEntry); sprite.Atlas != nil {
			msg += "\nsheet: " + textureStatus(sprite.Atlas.Texture)
		}
	}
	if assetsEntry, ok := components.Assets.First(ecs.World); ok {
		store := components.Assets.Get(assetsEntry)
		msg += fmt.Sprintf("\npending textures: %d", store.Loader.Pending())
		for _, kind := range store.Library.Kinds() {
			status := "loading"
			if store.Library.Ready(kind) {
				status = "ready"
			}
			msg += fmt.Sprintf("\n%s: %s", kind, status)
		}
	}
	ebitenutil.DebugPrint(screen, msg)
}

func textureStatus(tex *assets.Texture) string {
	s := fmt.Sprintf("%s (%s)", tex.Name(), tex.State())
	if err := tex.Err(); err != nil {
		s += ": " + err.Error()
	}
	return s
}

func outline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
