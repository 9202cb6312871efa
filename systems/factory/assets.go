package factory

import (
	"io/fs"

	"github.com/automoto/kyra-copper/archetypes"
	"github.com/automoto/kyra-copper/assets"
	"github.com/automoto/kyra-copper/assets/animations"
	"github.com/automoto/kyra-copper/components"
	cfg "github.com/automoto/kyra-copper/config"
	"github.com/automoto/kyra-copper/logger"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CreateAssets creates the asset store and registers every character's
// animation table. dir is only used for hot reload; fsys serves all reads.
func CreateAssets(ecs *ecs.ECS, fsys fs.FS, dir string) *donburi.Entry {
	entry := archetypes.Assets.Spawn(ecs)

	loader := assets.NewLoader(fsys)
	library := animations.NewLibrary(loader)
	for _, kind := range cfg.Characters {
		anim := cfg.CharacterAnimations[kind]
		library.Register(kind, anim.Sheets, anim.States)
	}

	data := components.AssetsData{
		FS:      fsys,
		Loader:  loader,
		Library: library,
	}

	if cfg.Assets.HotReload && dir != "" {
		w, err := assets.NewWatcher(dir)
		if err != nil {
			logger.Log.Warn("hot reload disabled", zap.String("dir", dir), zap.Error(err))
		} else {
			data.Watcher = w
			logger.Log.Info("watching assets", zap.String("dir", dir))
		}
	}

	components.Assets.SetValue(entry, data)
	return entry
}
