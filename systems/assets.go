package systems

import (
	"path"
	"strings"

	"github.com/automoto/kyra-copper/assets"
	"github.com/automoto/kyra-copper/components"
	cfg "github.com/automoto/kyra-copper/config"
	"github.com/automoto/kyra-copper/logger"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// lastBuildErr keeps a table that fails every tick from flooding the log.
var lastBuildErr string

// UpdateAssets resolves pending textures and builds any animation set that
// has not been built yet.
func UpdateAssets(ecs *ecs.ECS) {
	entry, ok := components.Assets.First(ecs.World)
	if !ok {
		return
	}
	store := components.Assets.Get(entry)

	if n := store.Loader.Update(); n > 0 {
		logger.Log.Debug("textures loaded", zap.Int("count", n), zap.Int("pending", store.Loader.Pending()))
	}
	err := store.Library.BuildAll()
	if err == nil {
		lastBuildErr = ""
		return
	}
	if err.Error() != lastBuildErr {
		logger.Log.Error("building animation sets", zap.Error(err))
		lastBuildErr = err.Error()
	}
}

// UpdateHotReload applies file changes reported by the asset watcher:
// textures are reloaded in place and the level file is reparsed.
func UpdateHotReload(ecs *ecs.ECS) {
	entry, ok := components.Assets.First(ecs.World)
	if !ok {
		return
	}
	store := components.Assets.Get(entry)
	if store.Watcher == nil {
		return
	}

	select {
	case err := <-store.Watcher.Errors:
		if err != nil {
			logger.Log.Warn("asset watcher", zap.Error(err))
		}
	default:
	}

	for _, name := range store.Watcher.Drain() {
		switch strings.ToLower(path.Ext(name)) {
		case ".png":
			if store.Loader.Reload(name) {
				logger.Log.Info("reloading texture", zap.String("texture", name))
			}
		case ".yaml", ".yml":
			if name == cfg.C.LevelFile {
				reloadLevel(ecs, store)
			}
		}
	}
}

func reloadLevel(ecs *ecs.ECS, store *components.AssetsData) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	lm, err := assets.LoadLevels(store.FS, cfg.C.LevelFile, store.Loader)
	if err != nil {
		logger.Log.Error("reloading level, keeping the current one", zap.Error(err))
		return
	}
	if level.LevelIndex >= len(lm.Levels) {
		logger.Log.Error("reloaded level file no longer has the current level",
			zap.Int("index", level.LevelIndex), zap.Int("levels", len(lm.Levels)))
		return
	}

	level.Manager = lm
	level.CurrentLevel = &lm.Levels[level.LevelIndex]
	level.Built = false
	logger.Log.Info("level reloaded", zap.String("file", cfg.C.LevelFile))
}
