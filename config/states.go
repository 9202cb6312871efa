package config

import "github.com/automoto/kyra-copper/shared/states"

// Type aliases so game code can keep using config.StateID etc.
type StateID = states.StateID
type RobberStateID = states.RobberStateID
type ActionID = states.ActionID

// Re-export hero state constants.
const (
	Idle     = states.Idle
	RunLeft  = states.RunLeft
	RunRight = states.RunRight
	Jump     = states.Jump

	HeroStateCount = states.HeroStateCount
)

// Re-export robber state constants.
const (
	RobberIdle = states.RobberIdle
	RobberRun  = states.RobberRun
	RobberJump = states.RobberJump

	RobberStateCount = states.RobberStateCount
)

// Re-export action constants.
const (
	ActionNone        = states.ActionNone
	ActionIdle        = states.ActionIdle
	ActionRunLeft     = states.ActionRunLeft
	ActionRunRight    = states.ActionRunRight
	ActionJump        = states.ActionJump
	ActionToggleDebug = states.ActionToggleDebug
	ActionCount       = states.ActionCount
)
