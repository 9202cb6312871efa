package factory

import (
	"github.com/automoto/kyra-copper/archetypes"
	"github.com/automoto/kyra-copper/components"
	cfg "github.com/automoto/kyra-copper/config"
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePhysicsSpace creates the rigid body world all characters and floor
// tiles live in.
func CreatePhysicsSpace(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.PhysicsSpace.Spawn(ecs)
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: cfg.Physics.GravityX, Y: cfg.Physics.GravityY})
	if cfg.Physics.Iterations > 0 {
		space.Iterations = uint(cfg.Physics.Iterations)
	}
	components.PhysicsSpace.SetValue(entry, components.PhysicsSpaceData{Space: space})
	return entry
}

// CreateShaftSpace creates the resolv space for shaft zones, covering the
// level area whose bottom-left corner is (left, bottom).
func CreateShaftSpace(ecs *ecs.ECS, left, bottom, width, height float64, cellSize int) *donburi.Entry {
	entry := archetypes.ShaftSpace.Spawn(ecs)
	components.ShaftSpace.SetValue(entry, components.ShaftSpaceData{
		Space: resolv.NewSpace(int(width), int(height), cellSize, cellSize),
		Left:  left,
		Top:   bottom + height,
	})
	return entry
}
