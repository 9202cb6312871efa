package systems

import (
	"errors"

	"github.com/automoto/kyra-copper/character"
	"github.com/automoto/kyra-copper/components"
	cfg "github.com/automoto/kyra-copper/config"
	"github.com/automoto/kyra-copper/logger"
	"github.com/automoto/kyra-copper/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateSpawns creates queued characters whose animation set is ready.
// Spawn points stay in the world until their character exists.
func UpdateSpawns(ecs *ecs.ECS) {
	entry, ok := components.Assets.First(ecs.World)
	if !ok {
		return
	}
	library := components.Assets.Get(entry).Library

	var points []*donburi.Entry
	components.SpawnPoint.Each(ecs.World, func(e *donburi.Entry) {
		points = append(points, e)
	})

	for _, e := range points {
		sp := components.SpawnPoint.Get(e)
		set := library.Get(sp.Kind)

		var err error
		switch sp.Kind {
		case cfg.CharacterHero:
			_, err = factory.CreateHero(ecs, set, sp.X, sp.Y)
		case cfg.CharacterRobber:
			_, err = factory.CreateRobber(ecs, set, sp.X, sp.Y)
		default:
			logger.Log.Error("unknown spawn kind, dropping it", zap.String("kind", sp.Kind))
			ecs.World.Remove(e.Entity())
			continue
		}

		if errors.Is(err, character.ErrNotReady) {
			continue
		}
		if err != nil {
			logger.Log.Error("spawn failed", zap.String("kind", sp.Kind), zap.Error(err))
		} else {
			logger.Log.Info("spawned", zap.String("kind", sp.Kind), zap.Float64("x", sp.X), zap.Float64("y", sp.Y))
		}
		ecs.World.Remove(e.Entity())
	}
}

// heroPending reports whether a hero spawn point is still waiting.
func heroPending(w donburi.World) bool {
	pending := false
	components.SpawnPoint.Each(w, func(e *donburi.Entry) {
		if components.SpawnPoint.Get(e).Kind == cfg.CharacterHero {
			pending = true
		}
	})
	return pending
}
