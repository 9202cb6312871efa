package scenes

import (
	"image/color"
	"io/fs"
	"sync"

	"github.com/automoto/kyra-copper/archetypes"
	"github.com/automoto/kyra-copper/components"
	cfg "github.com/automoto/kyra-copper/config"
	"github.com/automoto/kyra-copper/logger"
	"github.com/automoto/kyra-copper/systems"
	factory2 "github.com/automoto/kyra-copper/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

var background = color.RGBA{24, 26, 34, 255}

type PlatformerScene struct {
	ecs  *ecs.ECS
	fsys fs.FS
	dir  string // on-disk root of fsys, watched for hot reload
	once sync.Once
}

// NewPlatformerScene creates the game scene. Textures and level files are
// read from fsys; dir may be empty when fsys is not backed by a directory.
func NewPlatformerScene(fsys fs.FS, dir string) *PlatformerScene {
	return &PlatformerScene{fsys: fsys, dir: dir}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(background)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Close stops the asset watcher, if any.
func (ps *PlatformerScene) Close() {
	if ps.ecs == nil {
		return
	}
	if entry, ok := components.Assets.First(ps.ecs.World); ok {
		if w := components.Assets.Get(entry).Watcher; w != nil {
			_ = w.Close()
		}
	}
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input and assets first so everything below sees this frame's state.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdateHotReload)
	ecs.AddSystem(systems.UpdateAssets)
	ecs.AddSystem(systems.UpdateLevel)
	ecs.AddSystem(systems.UpdateSpawns)

	// Locomotion decides the state, physics moves the body, then the
	// animation reads the state chosen this frame.
	ecs.AddSystem(systems.UpdateHero)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateAnimation)
	ecs.AddSystem(systems.UpdateShafts)
	ecs.AddSystem(systems.UpdateCamera)

	// Add renderers
	ecs.AddRenderer(archetypes.Default, systems.DrawLevel)
	ecs.AddRenderer(archetypes.Default, systems.DrawAnimated)
	ecs.AddRenderer(archetypes.Default, systems.DrawDebug)

	ps.ecs = ecs

	store := components.Assets.Get(factory2.CreateAssets(ps.ecs, ps.fsys, ps.dir))
	factory2.CreatePhysicsSpace(ps.ecs)

	level, err := factory2.CreateLevel(ps.ecs, ps.fsys, store.Loader, cfg.C.LevelFile, cfg.C.Level)
	if err != nil {
		logger.Log.Fatal("loading level", zap.String("file", cfg.C.LevelFile), zap.Error(err))
	}
	levelData := components.Level.Get(level)

	// Shaft zones cover the whole level; resolv wants whole-cell sizes.
	x, y, w, h := levelData.CurrentLevel.Bounds(float64(cfg.C.Width), float64(cfg.C.Height), cfg.C.TileSize)
	factory2.CreateShaftSpace(ps.ecs, x, y, w, h, int(cfg.C.TileSize))

	factory2.CreateCamera(ps.ecs)

	// Characters appear once their animation sets are built.
	factory2.CreateSpawnPoint(ps.ecs, cfg.CharacterHero, cfg.Hero.SpawnX, cfg.Hero.SpawnY)
	factory2.CreateSpawnPoint(ps.ecs, cfg.CharacterRobber, cfg.Robber.SpawnX, cfg.Robber.SpawnY)
}
