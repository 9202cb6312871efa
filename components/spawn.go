package components

import "github.com/yohamta/donburi"

// SpawnPointData waits for its character's animation set before creating
// the character. The entry is removed once the character exists.
type SpawnPointData struct {
	Kind string
	X, Y float64
}

var SpawnPoint = donburi.NewComponentType[SpawnPointData]()
