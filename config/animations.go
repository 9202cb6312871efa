package config

import "github.com/automoto/kyra-copper/assets/animations"

// Character keys used to register and look up animation sets.
const (
	CharacterHero   = "hero"
	CharacterRobber = "robber"
)

// Characters lists every character key in the order animation sets are
// registered and built.
var Characters = []string{CharacterHero, CharacterRobber}

// HeroSheets is the hero animation table, one row per StateID in
// declaration order. Both run states share hero-run.png; the renderer
// mirrors it while facing left.
var HeroSheets = []animations.Sheet{
	Idle:     {Texture: "hero-idle.png", Frames: 10, CellWidth: 253, CellHeight: 389},
	RunLeft:  {Texture: "hero-run.png", Frames: 10, CellWidth: 262, CellHeight: 409},
	RunRight: {Texture: "hero-run.png", Frames: 10, CellWidth: 262, CellHeight: 409},
	Jump:     {Texture: "hero-jump.png", Frames: 15, CellWidth: 286, CellHeight: 435},
}

// RobberSheets is the robber animation table, one row per RobberStateID.
var RobberSheets = []animations.Sheet{
	RobberIdle: {Texture: "robber-idle.png", Frames: 10, CellWidth: 700, CellHeight: 700},
	RobberRun:  {Texture: "robber-run.png", Frames: 8, CellWidth: 700, CellHeight: 700},
	RobberJump: {Texture: "robber-jump.png", Frames: 5, CellWidth: 700, CellHeight: 700},
}

// CharacterAnimations maps a character key to its animation table and the
// number of states the table must cover.
var CharacterAnimations = map[string]struct {
	Sheets []animations.Sheet
	States int
}{
	CharacterHero:   {Sheets: HeroSheets, States: int(HeroStateCount)},
	CharacterRobber: {Sheets: RobberSheets, States: int(RobberStateCount)},
}
