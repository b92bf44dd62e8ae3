// Package config resolves export settings from defaults, an optional
// metaexport.yaml, METAEXPORT_* environment variables and command flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Metadata sources.
const (
	SourceGo       = "go"
	SourceManifest = "manifest"
)

// Defaults.
const (
	DefaultOutput = "MyLibrary.xml"
	EnvPrefix     = "METAEXPORT"
	FileName      = "metaexport"
)

// Config represents the metaexport configuration.
type Config struct {
	Source      string `mapstructure:"source"`
	Manifest    string `mapstructure:"manifest"`
	Output      string `mapstructure:"output"`
	LibraryName string `mapstructure:"library_name"`
	Dir         string `mapstructure:"dir"`
	Verbose     bool   `mapstructure:"verbose"`
	NoColor     bool   `mapstructure:"no_color"`
	Dump        bool   `mapstructure:"dump"`
}

// Load resolves the configuration. configFile overrides the search for
// metaexport.yaml in the working directory; flags may be nil.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("source", SourceGo)
	v.SetDefault("manifest", "")
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("library_name", "")
	v.SetDefault("dir", "")
	v.SetDefault("verbose", false)
	v.SetDefault("no_color", false)
	v.SetDefault("dump", false)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil {
				bindErr = errors.Join(bindErr, err)
			}
		})
		if bindErr != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", bindErr)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validateConfig validates the configuration values.
func validateConfig(cfg *Config) error {
	switch cfg.Source {
	case SourceGo:
	case SourceManifest:
		if cfg.Manifest == "" {
			return errors.New("manifest source requires a manifest path")
		}
	default:
		return fmt.Errorf("unknown source %q (expected %q or %q)", cfg.Source, SourceGo, SourceManifest)
	}

	if cfg.Output == "" {
		return errors.New("output path must not be empty")
	}

	return nil
}

// LoadDotEnv loads environment variables from path when the file exists.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("failed to load %s: %w", path, err)
}
