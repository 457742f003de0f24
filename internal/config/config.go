package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/lucasb-eyer/go-colorful"
)

// EnvPrefix prefixes every environment override, e.g. KLONDIKE_GAME_SEED.
const EnvPrefix = "KLONDIKE_"

// Config represents the application configuration
type Config struct {
	Display DisplayConfig `toml:"display" envPrefix:"DISPLAY_"`
	Game    GameConfig    `toml:"game" envPrefix:"GAME_"`
	Log     LogConfig     `toml:"log" envPrefix:"LOG_"`
}

// DisplayConfig controls how the table is drawn.
type DisplayConfig struct {
	Color     bool   `toml:"color" env:"COLOR"`
	TrueColor bool   `toml:"truecolor" env:"TRUECOLOR"`
	Symbols   string `toml:"symbols" env:"SYMBOLS"` // unicode or ascii
	Red       string `toml:"red" env:"RED"`
	Black     string `toml:"black" env:"BLACK"`
	Back      string `toml:"back" env:"BACK"`
}

type GameConfig struct {
	// Seed fixes the first deal. 0 picks a random seed.
	Seed uint64 `toml:"seed" env:"SEED"`
}

type LogConfig struct {
	Level string `toml:"level" env:"LEVEL"`
}

// Default returns the configuration written on first use.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Color:     true,
			TrueColor: false,
			Symbols:   "unicode",
			Red:       "#e0474c",
			Black:     "#d0d0d0",
			Back:      "#3a6ea5",
		},
		Log: LogConfig{Level: "warn"},
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "klondike", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults when missing,
// and applies environment overrides.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	var config *Config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config, err = createDefaultConfig()
		if err != nil {
			return nil, err
		}
	} else {
		config = Default()
		if _, err := toml.DecodeFile(configPath, config); err != nil {
			return nil, fmt.Errorf("error decoding config file: %w", err)
		}
	}

	if err := env.ParseWithOptions(config, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := Save(config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes config to the config file
func Save(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// Validate rejects values the renderer or logger cannot use.
func (c *Config) Validate() error {
	switch c.Display.Symbols {
	case "unicode", "ascii":
	default:
		return fmt.Errorf("invalid display.symbols %q (want unicode or ascii)", c.Display.Symbols)
	}

	colours := []struct{ name, hex string }{
		{"red", c.Display.Red},
		{"black", c.Display.Black},
		{"back", c.Display.Back},
	}
	for _, col := range colours {
		if _, err := colorful.Hex(col.hex); err != nil {
			return fmt.Errorf("invalid display.%s colour %q: %w", col.name, col.hex, err)
		}
	}

	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() slog.Level {
	level, err := ParseLogLevel(c.Log.Level)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", s)
	}
}
