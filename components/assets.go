package components

import (
	"io/fs"

	"github.com/automoto/kyra-copper/assets"
	"github.com/automoto/kyra-copper/assets/animations"
	"github.com/yohamta/donburi"
)

// AssetsData is the world's single asset store.
type AssetsData struct {
	FS      fs.FS
	Loader  *assets.Loader
	Library *animations.Library
	Watcher *assets.Watcher // nil unless hot reload is on
}

var Assets = donburi.NewComponentType[AssetsData]()
