// Package states defines the character state and action identifiers used
// by the animation and locomotion code. It must have zero dependencies on
// ebiten or any graphics library so those packages stay headless.
package states

// StateID identifies a hero state. Its ordinal indexes the hero animation
// table, so the declaration order here must match config.HeroSheets.
type StateID int

const (
	Idle StateID = iota
	RunLeft
	RunRight
	Jump

	HeroStateCount // Must be last - used for table sizing
)

// RobberStateID identifies a robber state. The robber never changes state
// at runtime; the enum exists so its animation table keeps ordinal order.
type RobberStateID int

const (
	RobberIdle RobberStateID = iota
	RobberRun
	RobberJump

	RobberStateCount
)

var stateNames = map[StateID]string{
	Idle:     "idle",
	RunLeft:  "run_left",
	RunRight: "run_right",
	Jump:     "jump",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

var robberStateNames = [...]string{"idle", "run", "jump"}

func (s RobberStateID) String() string {
	if s < 0 || int(s) >= len(robberStateNames) {
		return "unknown"
	}
	return robberStateNames[s]
}

// ActionID represents a logical game action.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionIdle
	ActionRunLeft
	ActionRunRight
	ActionJump
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// ActionToState maps each locomotion action to the hero state it selects.
// Actions without an entry (menu, debug) never touch the hero state.
var ActionToState = map[ActionID]StateID{
	ActionIdle:     Idle,
	ActionRunLeft:  RunLeft,
	ActionRunRight: RunRight,
	ActionJump:     Jump,
}
