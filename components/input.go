package components

import (
	"github.com/automoto/kyra-copper/character"
	cfg "github.com/automoto/kyra-copper/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all
// actions. Edges are computed on demand by comparing the two.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

func (i *InputData) Pressed(a cfg.ActionID) bool {
	return i.Current[a]
}

func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

// Actions returns the actions that went down this frame.
func (i *InputData) Actions() character.Actions {
	var out character.Actions
	for a := range i.Current {
		out[a] = i.Current[a] && !i.Previous[a]
	}
	return out
}

var Input = donburi.NewComponentType[InputData]()
