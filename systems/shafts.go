package systems

import (
	"github.com/automoto/kyra-copper/components"
	"github.com/automoto/kyra-copper/logger"
	"github.com/automoto/kyra-copper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateShafts moves the hero's probe to its current position and records
// which elevator or escalator shaft it overlaps.
func UpdateShafts(ecs *ecs.ECS) {
	spaceEntry, ok := components.ShaftSpace.First(ecs.World)
	if !ok {
		return
	}
	shafts := components.ShaftSpace.Get(spaceEntry)

	tags.Hero.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Object == nil {
			return
		}
		pos := components.Position.Get(e)
		obj.X, obj.Y = shafts.ToSpace(pos.X-obj.W/2, pos.Y+obj.H/2)
		obj.Update()

		hero := components.Hero.Get(e)
		kind := ""
		if check := obj.Check(0, 0, tags.ResolvShaft); check != nil {
			for _, o := range check.Objects {
				switch {
				case o.HasTags(tags.ResolvElevator):
					kind = tags.ResolvElevator
				case o.HasTags(tags.ResolvEscalator):
					kind = tags.ResolvEscalator
				}
				if kind != "" {
					break
				}
			}
		}
		if kind != hero.Shaft {
			logger.Log.Debug("hero shaft changed", zap.String("from", hero.Shaft), zap.String("to", kind))
			hero.Shaft = kind
		}
	})
}
