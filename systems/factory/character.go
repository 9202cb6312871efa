package factory

import (
	"github.com/automoto/kyra-copper/archetypes"
	"github.com/automoto/kyra-copper/assets/animations"
	"github.com/automoto/kyra-copper/character"
	"github.com/automoto/kyra-copper/components"
	cfg "github.com/automoto/kyra-copper/config"
	"github.com/automoto/kyra-copper/tags"
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateSpawnPoint queues a character of kind to appear at x, y once its
// animation set has been built.
func CreateSpawnPoint(ecs *ecs.ECS, kind string, x, y float64) *donburi.Entry {
	sp := archetypes.SpawnPoint.Spawn(ecs)
	components.SpawnPoint.SetValue(sp, components.SpawnPointData{Kind: kind, X: x, Y: y})
	return sp
}

// CreateHero spawns the hero in Idle with a rotation-locked body. It returns
// character.ErrNotReady while set is empty.
func CreateHero(ecs *ecs.ECS, set *animations.Set, x, y float64) (*donburi.Entry, error) {
	hero, err := character.SpawnHero(set, cfg.Hero.AnimationInterval, character.Controller{
		RunSpeed:  cfg.Hero.RunSpeed,
		JumpSpeed: cfg.Hero.JumpSpeed,
	})
	if err != nil {
		return nil, err
	}

	entry := archetypes.Hero.Spawn(ecs)
	components.Hero.SetValue(entry, components.HeroData{Hero: hero})
	components.Position.SetValue(entry, math.Vec2{X: x, Y: y})
	components.Sprite.SetValue(entry, components.SpriteData{
		Frame:  hero.Frame(),
		Scale:  cfg.Hero.Scale,
		Facing: 1,
	})

	w, h := heroSize()
	body := cp.NewBody(cfg.Hero.Mass, cp.INFINITY)
	body.SetPosition(cp.Vector{X: x, Y: y})
	shape := cp.NewBox(body, w, h, 0)
	shape.SetFriction(cfg.Hero.Friction)
	shape.UserData = entry
	if spaceEntry, ok := components.PhysicsSpace.First(ecs.World); ok {
		space := components.PhysicsSpace.Get(spaceEntry)
		space.AddBody(body)
		space.AddShape(shape)
	}
	components.Physics.SetValue(entry, components.PhysicsData{Body: body, Shape: shape})

	// Probe used to find the shaft the hero is standing in.
	obj := resolv.NewObject(0, 0, w, h, tags.ResolvHero)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.ShaftSpace.First(ecs.World); ok {
		shafts := components.ShaftSpace.Get(spaceEntry)
		obj.X, obj.Y = shafts.ToSpace(x-w/2, y+h/2)
		shafts.Add(obj)
	}

	return entry, nil
}

// CreateRobber spawns the robber in its configured state. The robber has no
// body and never moves.
func CreateRobber(ecs *ecs.ECS, set *animations.Set, x, y float64) (*donburi.Entry, error) {
	robber, err := character.SpawnIn(set, cfg.Robber.InitialState, cfg.Robber.AnimationInterval)
	if err != nil {
		return nil, err
	}

	entry := archetypes.Robber.Spawn(ecs)
	components.Robber.SetValue(entry, components.RobberData{Character: robber})
	components.Position.SetValue(entry, math.Vec2{X: x, Y: y})
	components.Sprite.SetValue(entry, components.SpriteData{
		Frame:  robber.Frame(),
		Scale:  cfg.Robber.Scale,
		Facing: 1,
	})
	return entry, nil
}

// heroSize is the hero collider: the idle cell at draw scale.
func heroSize() (float64, float64) {
	idle := cfg.HeroSheets[cfg.Idle]
	return idle.CellWidth * cfg.Hero.Scale, idle.CellHeight * cfg.Hero.Scale
}
