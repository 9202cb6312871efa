package systems

import (
	"github.com/automoto/kyra-copper/archetypes"
	"github.com/automoto/kyra-copper/components"
	cfg "github.com/automoto/kyra-copper/config"
	"github.com/automoto/kyra-copper/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Resolved key bindings, built from config on first use.
var keyBindings map[cfg.ActionID][]ebiten.Key

// UpdateInput polls the keyboard and updates the InputData buffers.
// Must run BEFORE UpdateHero in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	if keyBindings == nil {
		keyBindings = resolveBindings(cfg.Input.Bindings)
	}

	for actionID, keys := range keyBindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

// resolveBindings turns configured key names into ebiten keys. Unknown
// names are logged and skipped.
func resolveBindings(bindings map[cfg.ActionID]cfg.InputBinding) map[cfg.ActionID][]ebiten.Key {
	out := make(map[cfg.ActionID][]ebiten.Key, len(bindings))
	for actionID, binding := range bindings {
		for _, name := range binding.Keys {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(name)); err != nil {
				logger.Log.Warn("unknown key in input binding", zap.String("key", name), zap.Error(err))
				continue
			}
			out[actionID] = append(out[actionID], key)
		}
	}
	return out
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	if _, ok := components.Input.First(ecs.World); !ok {
		archetypes.Input.Spawn(ecs)
	}

	ent, _ := components.Input.First(ecs.World)
	return components.Input.Get(ent)
}
