package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Config represents the application configuration
type Config struct {
	DefaultGame string `toml:"default_game" env:"THIRTEENS_GAME"`
	// Seed fixes the shuffle; 0 picks a new one for every game
	Seed int64 `toml:"seed" env:"THIRTEENS_SEED"`
	// Color is one of auto, always or never
	Color          string `toml:"color" env:"THIRTEENS_COLOR"`
	RedSuitColor   string `toml:"red_suit_color"`
	BlackSuitColor string `toml:"black_suit_color"`
}

func defaultConfig() *Config {
	return &Config{
		DefaultGame:    "thirteens",
		Color:          "auto",
		RedSuitColor:   "#e03e3e",
		BlackSuitColor: "#d8d8d8",
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
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

// GetGameLibraryPath returns the directory holding custom game definitions
func GetGameLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "thirteens", "games")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "thirteens", "config.toml")
}

// LoadConfig loads the config file and applies environment overrides
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	var config *Config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// Create default config if it doesn't exist
		config, err = createDefaultConfig()
		if err != nil {
			return nil, err
		}
	} else {
		config = defaultConfig()
		if _, err := toml.DecodeFile(configPath, config); err != nil {
			return nil, fmt.Errorf("error decoding config file: %w", err)
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := defaultConfig()
	if err := writeConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func writeConfig(config *Config) error {
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

// GetDefinitionPath returns the path to a game definition, either in the game
// library or a relative path
func GetDefinitionPath(name string) (string, error) {
	// First, try the game library, with or without the extension
	libraryPath := GetGameLibraryPath()
	for _, candidate := range []string{name, name + ".toml"} {
		path := filepath.Join(libraryPath, candidate)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	// If not found in the library, treat as a relative path
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return name, nil
	}

	return "", fmt.Errorf("game not found: %s", name)
}

// GetDefaultGame returns the default game name from config
func GetDefaultGame() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	return config.DefaultGame, nil
}

// SetDefaultGame sets the default game in the config file
func SetDefaultGame(name string) error {
	configPath := GetConfigFilePath()

	// Read the file itself so environment overrides are not persisted
	config := defaultConfig()
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, config); err != nil {
			return fmt.Errorf("error decoding config file: %w", err)
		}
	}

	config.DefaultGame = name
	return writeConfig(config)
}
