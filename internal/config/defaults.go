package config

const (
	defaultConfigPath         = "~/.config/akordish/config.toml"
	defaultDataDir            = "~/.local/share/akordish"
	defaultCatalogFile        = "songs.db"
	defaultSpelling           = SpellingAuto
	defaultMinShift           = -6
	defaultMaxShift           = 6
	defaultChordLineThreshold = 0.5
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Spelling modes accepted by transpose.spelling.
const (
	SpellingAuto  = "auto"
	SpellingSharp = "sharp"
	SpellingFlat  = "flat"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
		},
		Transpose: Transpose{
			Spelling: defaultSpelling,
			MinShift: defaultMinShift,
			MaxShift: defaultMaxShift,
			Clamp:    true,
		},
		Classifier: Classifier{
			ChordLineThreshold: defaultChordLineThreshold,
			RelaxedFallback:    true,
		},
		Catalog: Catalog{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
