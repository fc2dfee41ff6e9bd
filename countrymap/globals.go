package internal

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

var (
	// DefaultAppName is used for config lookup paths and env prefixes
	DefaultAppName          = "countrymap"
	DefaultEnvPrefix        = "COUNTRYMAP"
	DefaultConfigPath       = configDir(os.UserConfigDir)
	DefaultDatasetPath      = "countries.json"
	DefaultLogLevel         = "info"
	DefaultStrictUniqueKeys = false
)

// configDir is the per-user config directory for the app, or a dot
// directory under the working directory when the platform has none.
func configDir(userConfigDir func() (string, error)) string {
	base, err := userConfigDir()
	if err != nil || base == "" {
		return filepath.Join(".", "."+DefaultAppName)
	}
	return filepath.Join(base, DefaultAppName)
}

// GetLogger returns a zerolog logger writing to stderr at the given level.
// Unknown or empty levels fall back to info.
func GetLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
