package components

import (
	"github.com/automoto/kyra-copper/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Manager      *assets.LevelManager
	LevelIndex   int
	CurrentLevel *assets.Level
	Built        bool // tiles and shafts exist for CurrentLevel
}

var Level = donburi.NewComponentType[LevelData]()

type TileData struct {
	assets.Tile
	Texture *assets.Texture
	Size    float64
}

var Tile = donburi.NewComponentType[TileData]()

type ShaftData struct {
	assets.Shaft
}

var Shaft = donburi.NewComponentType[ShaftData]()
