package archetypes

import (
	"github.com/automoto/kyra-copper/components"
	"github.com/automoto/kyra-copper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Default is the single layer every entity and renderer lives on.
const Default ecs.LayerID = 0

var (
	Hero = newArchetype(
		tags.Hero,
		components.Hero,
		components.Position,
		components.Sprite,
		components.Physics,
		components.Object,
	)
	Robber = newArchetype(
		tags.Robber,
		components.Robber,
		components.Position,
		components.Sprite,
	)
	Tile = newArchetype(
		tags.Tile,
		components.Tile,
		components.Physics,
	)
	Shaft = newArchetype(
		tags.Shaft,
		components.Shaft,
		components.Object,
	)
	SpawnPoint = newArchetype(
		components.SpawnPoint,
	)
	PhysicsSpace = newArchetype(
		components.PhysicsSpace,
	)
	ShaftSpace = newArchetype(
		components.ShaftSpace,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
	Assets = newArchetype(
		components.Assets,
	)
	Debug = newArchetype(
		components.Debug,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		Default,
		append(a.components, cs...)...,
	))
	return e
}
