package components

import (
	"github.com/automoto/kyra-copper/assets"
	"github.com/yohamta/donburi"
)

// SpriteData is the displayed frame of an animated entity.
type SpriteData struct {
	Atlas  *assets.Atlas
	Frame  int
	Scale  float64
	Facing float64 // 1 faces right, -1 mirrors the sheet
}

func (s *SpriteData) SetAtlas(a *assets.Atlas) { s.Atlas = a }
func (s *SpriteData) SetFrame(f int)           { s.Frame = f }

var Sprite = donburi.NewComponentType[SpriteData]()
