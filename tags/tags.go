package tags

import "github.com/yohamta/donburi"

var (
	Hero   = donburi.NewTag().SetName("Hero")
	Robber = donburi.NewTag().SetName("Robber")
	Tile   = donburi.NewTag().SetName("Tile")
	Shaft  = donburi.NewTag().SetName("Shaft")
)

// Resolv tags for shaft zones
const (
	ResolvShaft     = "shaft"
	ResolvElevator  = "elevator"
	ResolvEscalator = "escalator"
	ResolvHero      = "Hero"
)
