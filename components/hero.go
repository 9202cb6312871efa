package components

import (
	"github.com/automoto/kyra-copper/character"
	"github.com/automoto/kyra-copper/shared/states"
	"github.com/yohamta/donburi"
)

type HeroData struct {
	*character.Hero
	Shaft string // kind of the shaft the hero overlaps, empty when outside
}

var Hero = donburi.NewComponentType[HeroData]()

type RobberData struct {
	*character.Character[states.RobberStateID]
}

var Robber = donburi.NewComponentType[RobberData]()
