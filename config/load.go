package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of config.yaml. Every section is optional;
// missing keys keep their defaults. Sections are values so that a null
// section decodes as "no overrides" rather than wiping the defaults.
type File struct {
	Game    Config        `yaml:"game"`
	Hero    HeroConfig    `yaml:"hero"`
	Robber  RobberConfig  `yaml:"robber"`
	Physics PhysicsConfig `yaml:"physics"`
	Camera  CameraConfig  `yaml:"camera"`
	Assets  AssetsConfig  `yaml:"assets"`
	Logging LoggingConfig `yaml:"logging"`
	Debug   DebugConfig   `yaml:"debug"`
}

// Load applies configuration with priority: defaults < file < flags.
// An empty path falls back to ./config.yaml when it exists.
func Load(path string) error {
	if path == "" {
		path = findConfigFile()
	}

	if path != "" {
		if err := LoadFile(path); err != nil {
			return fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags()
	return nil
}

// LoadFile merges a YAML file into the global configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return Apply(data)
}

// Apply merges YAML bytes into the global configuration. Nothing changes
// unless the merged result is valid.
func Apply(data []byte) error {
	f := File{
		Game:    *C,
		Hero:    Hero,
		Robber:  Robber,
		Physics: Physics,
		Camera:  Camera,
		Assets:  Assets,
		Logging: Logging,
		Debug:   Debug,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}
	if err := f.validate(); err != nil {
		return err
	}

	game := f.Game
	C = &game
	Hero, Robber, Physics, Camera = f.Hero, f.Robber, f.Physics, f.Camera
	Assets, Logging, Debug = f.Assets, f.Logging, f.Debug
	return nil
}

func (f *File) validate() error {
	if f.Game.Width <= 0 || f.Game.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", f.Game.Width, f.Game.Height)
	}
	if f.Game.TileSize <= 0 {
		return fmt.Errorf("invalid tile size %v", f.Game.TileSize)
	}
	if f.Hero.AnimationInterval <= 0 || f.Robber.AnimationInterval <= 0 {
		return fmt.Errorf("animation interval must be positive")
	}
	if f.Robber.InitialState < 0 || f.Robber.InitialState >= RobberStateCount {
		return fmt.Errorf("robber initial state %d out of range", f.Robber.InitialState)
	}
	return nil
}

func findConfigFile() string {
	if _, err := os.Stat("config.yaml"); err == nil {
		return "config.yaml"
	}
	return ""
}
