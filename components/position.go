package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Position is the world-space center of an entity, y-up.
var Position = donburi.NewComponentType[math.Vec2]()
