package systems

import (
	"github.com/automoto/kyra-copper/components"
	cfg "github.com/automoto/kyra-copper/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimation advances every character's animation for the state it is
// in this frame. Must run after UpdateHero.
func UpdateAnimation(ecs *ecs.ECS) {
	dt := deltaSeconds()

	components.Hero.Each(ecs.World, func(e *donburi.Entry) {
		hero := components.Hero.Get(e)
		sprite := components.Sprite.Get(e)
		switch hero.State {
		case cfg.RunLeft:
			sprite.Facing = -1
		case cfg.RunRight:
			sprite.Facing = 1
		}
		hero.Animate(dt, sprite)
	})

	components.Robber.Each(ecs.World, func(e *donburi.Entry) {
		components.Robber.Get(e).Animate(dt, components.Sprite.Get(e))
	})
}
