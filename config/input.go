package config

// InputBinding lists the keys bound to a single action, by ebiten key name
// ("Space", "ArrowLeft", "A", ...). Names are resolved by the input system
// so this package stays free of ebiten.
type InputBinding struct {
	Keys []string `yaml:"keys"`
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionIdle: {
				Keys: []string{"Space"},
			},
			ActionRunLeft: {
				Keys: []string{"ArrowLeft", "A"},
			},
			ActionRunRight: {
				Keys: []string{"ArrowRight", "D"},
			},
			ActionJump: {
				Keys: []string{"ArrowUp", "W"},
			},
			ActionToggleDebug: {
				Keys: []string{"F3"},
			},
		},
	}
}
