package config

import (
	"errors"
	"fmt"
	"strings"

	internal "github.com/ZanzyTHEbar/countrymap/countrymap"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Dataset DatasetConfig `mapstructure:"dataset"`
	Index   IndexConfig   `mapstructure:"index"`
	Log     LogConfig     `mapstructure:"log"`
}

// DatasetConfig points at the reference dataset.
type DatasetConfig struct {
	Path string `mapstructure:"path"`
}

// IndexConfig controls index construction.
type IndexConfig struct {
	// StrictUniqueKeys makes construction fail when two records share a
	// name, alpha2, alpha3 or numeric code.
	StrictUniqueKeys bool `mapstructure:"strictUniqueKeys"`
}

// LogConfig stores logger settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig reads configuration from file or environment variables.
// A missing config file is not an error; defaults are used instead.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("..")
		v.AddConfigPath(internal.DefaultConfigPath)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetDefault("dataset.path", internal.DefaultDatasetPath)
	v.SetDefault("index.strictUniqueKeys", internal.DefaultStrictUniqueKeys)
	v.SetDefault("log.level", internal.DefaultLogLevel)

	// e.g. index.strictUniqueKeys becomes COUNTRYMAP_INDEX_STRICTUNIQUEKEYS
	v.SetEnvPrefix(internal.DefaultEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &cfg, nil
}
