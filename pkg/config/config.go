// Package config loads willow settings from .willow.yaml, the environment
// and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// EnvConfigPath names an extra directory searched for .willow.yaml.
	EnvConfigPath = "WILLOW_CONFIG_PATH"
	envPrefix     = "WILLOW"
	configName    = ".willow"

	DefaultAutosave = 30 * time.Second
	DefaultLogLevel = "warn"
)

// Settings are the effective runtime options.
type Settings struct {
	Autosave time.Duration `mapstructure:"autosave" json:"autosave" validate:"gte=0"`
	Sample   bool          `mapstructure:"sample" json:"sample"`
	LogLevel string        `mapstructure:"log-level" json:"logLevel" validate:"oneof=debug info warn error"`
	Color    bool          `mapstructure:"color" json:"color"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-" json:"file,omitempty"`
}

// Load reads settings into a fresh viper instance.
func Load() (*Settings, error) {
	return LoadWith(viper.New())
}

// LoadWith reads settings using v, which lets callers bind flags first.
func LoadWith(v *viper.Viper) (*Settings, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	v.SetDefault("autosave", DefaultAutosave)
	v.SetDefault("sample", true)
	v.SetDefault("log-level", DefaultLogLevel)
	v.SetDefault("color", true)

	v.SetConfigName(configName) // .yaml is implicit
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if override := os.Getenv(EnvConfigPath); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	s := &Settings{
		Autosave: v.GetDuration("autosave"),
		Sample:   v.GetBool("sample"),
		LogLevel: strings.ToLower(v.GetString("log-level")),
		Color:    v.GetBool("color"),
		File:     v.ConfigFileUsed(),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

var validate = validator.New()

// Validate checks the settings are usable.
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("config: invalid settings: %w", err)
	}
	return nil
}

// Level maps LogLevel to a slog level.
func (s *Settings) Level() slog.Level {
	switch s.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Logger builds the structured logger for the settings, writing to stderr.
func (s *Settings) Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: s.Level()}))
}
