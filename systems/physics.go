package systems

import (
	"github.com/automoto/kyra-copper/components"
	"github.com/automoto/kyra-copper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics steps the rigid body world and copies body positions back
// onto the hero.
func UpdatePhysics(ecs *ecs.ECS) {
	spaceEntry, ok := components.PhysicsSpace.First(ecs.World)
	if !ok {
		return
	}
	components.PhysicsSpace.Get(spaceEntry).Step(deltaSeconds())

	tags.Hero.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.Body == nil {
			return
		}
		p := physics.Body.Position()
		pos := components.Position.Get(e)
		pos.X, pos.Y = p.X, p.Y
	})
}
