package systems

import (
	"github.com/automoto/kyra-copper/components"
	"github.com/automoto/kyra-copper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHero applies this frame's fresh key presses to the hero: the state
// changes first, then the matching velocity command goes to its body.
// Must run after UpdateInput and before UpdatePhysics.
func UpdateHero(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	actions := input.Actions()

	tags.Hero.Each(ecs.World, func(e *donburi.Entry) {
		hero := components.Hero.Get(e)
		hero.Step(actions, components.Physics.Get(e))
	})
}
