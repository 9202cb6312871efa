package config

// Config holds general game configuration
type Config struct {
	Title     string  `yaml:"title"`
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Resizable bool    `yaml:"resizable"`
	LevelFile string  `yaml:"level_file"`
	Level     int     `yaml:"level"` // index into the level file's levels list
	TileSize  float64 `yaml:"tile_size"`
}

// HeroConfig contains all hero-related configuration values
type HeroConfig struct {
	// Movement
	RunSpeed  float64 `yaml:"run_speed"`  // horizontal velocity while RunLeft/RunRight
	JumpSpeed float64 `yaml:"jump_speed"` // vertical velocity while Jump

	// Animation
	AnimationInterval float64 `yaml:"animation_interval"` // seconds per frame
	Scale             float64 `yaml:"scale"`

	// Spawn
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`

	// Physics body, in unscaled sheet pixels of the idle clip
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
}

// RobberConfig contains robber NPC configuration values
type RobberConfig struct {
	AnimationInterval float64       `yaml:"animation_interval"`
	Scale             float64       `yaml:"scale"`
	SpawnX            float64       `yaml:"spawn_x"`
	SpawnY            float64       `yaml:"spawn_y"`
	InitialState      RobberStateID `yaml:"initial_state"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	GravityX   float64 `yaml:"gravity_x"`
	GravityY   float64 `yaml:"gravity_y"` // world space is y-up
	Iterations int     `yaml:"iterations"`
	Friction   float64 `yaml:"friction"` // floor tile friction
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// AssetsConfig controls where textures and level files are read from.
type AssetsConfig struct {
	Dir       string `yaml:"dir"`
	HotReload bool   `yaml:"hot_reload"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay    bool `yaml:"overlay"`    // draw FPS, state and collider outlines
	Assertions bool `yaml:"assertions"` // panic on precondition violations instead of logging
}

// Global configuration instances
var C *Config
var Hero HeroConfig
var Robber RobberConfig
var Physics PhysicsConfig
var Camera CameraConfig
var Assets AssetsConfig
var Logging LoggingConfig
var Debug DebugConfig

func init() {
	Reset()
}

// Reset restores every global configuration instance to its default.
func Reset() {
	C = &Config{
		Title:     "Kyra Copper!",
		Width:     800,
		Height:    1024,
		Resizable: false,
		LevelFile: "floor_plan_1.yaml",
		Level:     0,
		TileSize:  32,
	}

	Hero = HeroConfig{
		RunSpeed:          500,
		JumpSpeed:         300,
		AnimationInterval: 0.1,
		Scale:             0.3,
		SpawnX:            0,
		SpawnY:            0,
		Mass:              1,
		Friction:          0.7,
	}

	Robber = RobberConfig{
		AnimationInterval: 0.1,
		Scale:             0.2,
		SpawnX:            -100,
		SpawnY:            -100,
		InitialState:      RobberRun,
	}

	Physics = PhysicsConfig{
		GravityX:   0,
		GravityY:   -9800,
		Iterations: 10,
		Friction:   0.7,
	}

	Camera = CameraConfig{}

	Assets = AssetsConfig{
		Dir:       "assets/data",
		HotReload: false,
	}

	Logging = LoggingConfig{
		Level:   "info",
		LogFile: "",
	}

	Debug = DebugConfig{
		Overlay:    false,
		Assertions: false,
	}
}
