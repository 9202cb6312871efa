// Package character holds the per-character state machines: the state a
// character is in, how input moves it between states and how that state
// drives its animation.
package character

import (
	"errors"

	"github.com/automoto/kyra-copper/assets/animations"
)

var (
	// ErrNotReady means the character's animation set has not been built.
	ErrNotReady = errors.New("character: animation set not ready")
	// ErrFollowPrecondition means camera follow did not find exactly one
	// camera and one tracked character.
	ErrFollowPrecondition = errors.New("character: camera follow needs exactly one camera and one target")
)

// Character is one animated character. S is its state enum; the ordinal of
// each value indexes the shared animation set.
type Character[S ~int] struct {
	State    S
	Animator *animations.Animator

	set *animations.Set
}

// Spawn creates a character in its zero state, which is Idle for every
// state enum in this game.
func Spawn[S ~int](set *animations.Set, interval float64) (*Character[S], error) {
	var idle S
	return SpawnIn(set, idle, interval)
}

// SpawnIn creates a character in the given state, starting on the first
// frame of that state's clip. It returns ErrNotReady while the set is empty
// so the caller can retry on a later tick.
func SpawnIn[S ~int](set *animations.Set, initial S, interval float64) (*Character[S], error) {
	if set.Empty() {
		return nil, ErrNotReady
	}
	clip, ok := set.Clip(int(initial))
	if !ok {
		return nil, animations.ErrStateCountMismatch
	}
	return &Character[S]{
		State:    initial,
		Animator: animations.NewAnimator(interval, clip.First),
		set:      set,
	}, nil
}

// Set is the shared animation set the character was spawned with.
func (c *Character[S]) Set() *animations.Set { return c.set }

// Frame is the frame index currently displayed.
func (c *Character[S]) Frame() int { return c.Animator.Frame() }

// Animate advances the animation of the current state by dt seconds.
func (c *Character[S]) Animate(dt float64, d animations.Display) {
	c.Animator.Update(c.set, int(c.State), dt, d)
}
