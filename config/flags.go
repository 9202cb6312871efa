package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug overlay, assertions and hot reload")
	flagLevel     = flag.Int("level", -1, "Level index in the level file")
	flagAssets    = flag.String("assets", "", "Directory holding textures and level files")
	flagLogLevel  = flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flagLogFile   = flag.String("log-file", "", "Also write logs to this rotating file")
	flagHotReload = flag.Bool("hot-reload", false, "Reload level and textures when files change")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags() {
	if *flagDebug {
		Debug.Overlay = true
		Debug.Assertions = true
		Assets.HotReload = true
		Logging.Level = "debug"
	}
	if *flagLevel >= 0 {
		C.Level = *flagLevel
	}
	if *flagAssets != "" {
		Assets.Dir = *flagAssets
	}
	if *flagLogLevel != "" {
		Logging.Level = *flagLogLevel
	}
	if *flagLogFile != "" {
		Logging.LogFile = *flagLogFile
	}
	if *flagHotReload {
		Assets.HotReload = true
	}
}
