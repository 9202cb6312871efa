package animations

import "github.com/automoto/kyra-copper/assets"

// Display is the sprite an Animator drives.
type Display interface {
	SetAtlas(atlas *assets.Atlas)
	SetFrame(frame int)
}

// Animator steps one character's frame index through the clip of its
// current state.
type Animator struct {
	Clock  Clock
	frame  int
	active *Clip
}

// NewAnimator starts at frame first, which should be the first frame of the
// spawn state's clip.
func NewAnimator(interval float64, first int) *Animator {
	return &Animator{Clock: NewClock(interval), frame: first}
}

func (a *Animator) Frame() int { return a.frame }

// Active is the clip displayed after the last Update, nil before the first.
func (a *Animator) Active() *Clip { return a.active }

// Update runs one tick. A set that is still empty is a no-op, as is a state
// the set has no clip for.
//
// Switching clips keeps the current frame; the clock decides when it moves.
func (a *Animator) Update(set *Set, state int, dt float64, d Display) {
	clip, ok := set.Clip(state)
	if !ok {
		return
	}

	if clip != a.active {
		a.active = clip
		if d != nil {
			d.SetAtlas(clip.Atlas)
		}
	}

	if a.Clock.Tick(dt) {
		if a.frame >= clip.Last {
			a.frame = clip.First
		} else {
			a.frame++
		}
	}
	if !clip.Contains(a.frame) {
		a.frame = clip.First
	}

	if d != nil {
		d.SetFrame(a.frame)
	}
}
