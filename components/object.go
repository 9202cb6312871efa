package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// ShaftSpaceData is the resolv space holding shaft zones. resolv is y-down
// with its origin at the top-left, so world points are converted through
// Left and Top.
type ShaftSpaceData struct {
	*resolv.Space
	Left, Top float64
}

// ToSpace converts a world (y-up) point into space coordinates.
func (s *ShaftSpaceData) ToSpace(x, y float64) (float64, float64) {
	return x - s.Left, s.Top - y
}

var ShaftSpace = donburi.NewComponentType[ShaftSpaceData]()
