package systems

import "github.com/hajimehoshi/ebiten/v2"

// deltaSeconds is the simulated time of one Update call.
func deltaSeconds() float64 {
	return 1 / float64(ebiten.TPS())
}
