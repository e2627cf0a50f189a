package config

import (
	"fmt"
	"os"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/peoplereg/people/internal/branding"
	"github.com/peoplereg/people/internal/render"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyLang     = "lang"
	KeyFormat   = "format"
	KeyLogLevel = "log_level"
)

// Defaults applied when a key is unset in both the file and the environment.
const (
	DefaultLang     = "en"
	DefaultFormat   = "table"
	DefaultLogLevel = "warn"
)

// allowed lists the accepted values per key. A nil slice accepts any
// non-empty value.
var allowed = map[string][]string{
	KeyLang:     render.Languages(),
	KeyFormat:   render.Formats,
	KeyLogLevel: {"panic", "fatal", "error", "warn", "warning", "info", "debug", "trace"},
}

// Dir returns the path to the config directory. PEOPLE_HOME wins over
// ~/.people/.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.people/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.Reset()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Keys returns the known configuration keys in sorted order.
func Keys() []string {
	return slices.Sorted(maps.Keys(allowed))
}

// ValidateKey checks that key is a known configuration key.
func ValidateKey(key string) error {
	if _, ok := allowed[key]; !ok {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	return nil
}

// Validate checks that key is known and value is acceptable for it.
func Validate(key, value string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	values := allowed[key]
	if value == "" {
		return fmt.Errorf("empty value for config key %q", key)
	}
	if values != nil && !slices.Contains(values, strings.ToLower(value)) {
		return fmt.Errorf("invalid value %q for %s (allowed: %s)", value, key, strings.Join(values, ", "))
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set validates and writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := Validate(key, value); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, strings.ToLower(value))

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Lang returns the configured display language, defaulting to "en".
func Lang() string { return getOr(KeyLang, DefaultLang) }

// Format returns the configured output format, defaulting to "table".
func Format() string { return getOr(KeyFormat, DefaultFormat) }

// LogLevel returns the configured log level, defaulting to "warn".
func LogLevel() string { return getOr(KeyLogLevel, DefaultLogLevel) }

func getOr(key, def string) string {
	if v := strings.ToLower(strings.TrimSpace(Get(key))); v != "" {
		return v
	}
	return def
}
