package character

import (
	"github.com/automoto/kyra-copper/assets/animations"
	"github.com/automoto/kyra-copper/shared/states"
)

// Actions is the set of actions freshly pressed this tick. Held keys do not
// appear here after their first tick.
type Actions [states.ActionCount]bool

// Press marks ids as pressed and returns the result.
func (a Actions) Press(ids ...states.ActionID) Actions {
	for _, id := range ids {
		a[id] = true
	}
	return a
}

// Body is the physics body a controller steers.
type Body interface {
	Velocity() (x, y float64)
	SetVelocity(x, y float64)
}

// Controller maps hero actions to states and states to velocity.
type Controller struct {
	RunSpeed  float64
	JumpSpeed float64
}

// locomotionOrder is the order actions are applied in. When several arrive
// on the same tick the last one wins.
var locomotionOrder = [...]states.ActionID{
	states.ActionIdle,
	states.ActionRunLeft,
	states.ActionRunRight,
	states.ActionJump,
}

// Transition returns the state after this tick's actions. Every action is
// accepted from every state, including Jump while already airborne. With no
// action the state is unchanged.
func (c Controller) Transition(state states.StateID, a Actions) states.StateID {
	for _, id := range locomotionOrder {
		if a[id] {
			state = states.ActionToState[id]
		}
	}
	return state
}

// Steer issues the velocity command for state. It runs every tick, so a run
// state keeps overriding whatever the physics step did to the velocity.
func (c Controller) Steer(state states.StateID, body Body) {
	if body == nil {
		return
	}
	switch state {
	case states.RunLeft:
		body.SetVelocity(-c.RunSpeed, 0)
	case states.RunRight:
		body.SetVelocity(c.RunSpeed, 0)
	case states.Jump:
		vx, _ := body.Velocity()
		body.SetVelocity(vx, c.JumpSpeed)
	}
}

// Hero is the player character: a Character driven by a Controller.
type Hero struct {
	*Character[states.StateID]
	Controller
}

// SpawnHero spawns the hero in Idle.
func SpawnHero(set *animations.Set, interval float64, ctrl Controller) (*Hero, error) {
	c, err := Spawn[states.StateID](set, interval)
	if err != nil {
		return nil, err
	}
	return &Hero{Character: c, Controller: ctrl}, nil
}

// Step runs locomotion for this tick's actions without animating.
func (h *Hero) Step(a Actions, body Body) {
	h.State = h.Transition(h.State, a)
	h.Steer(h.State, body)
}

// Update runs one full tick: locomotion first, then animation of the state
// it chose.
func (h *Hero) Update(a Actions, dt float64, body Body, d animations.Display) {
	h.Step(a, body)
	h.Animate(dt, d)
}
