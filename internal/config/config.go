package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// LogConfig holds diagnostic log settings. The TUI owns the terminal, so
// diagnostics go to a file instead of stderr.
type LogConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat string `mapstructure:"date_format"`
	Timezone   string
}

// Load reads configuration from file and env. Env var overrides use prefix ESPORTSRANKER_.
func Load() (Config, error) {
	v := viper.New()

	dataDir := filepath.Join(os.Getenv("HOME"), ".local", "share", "esportsranker")

	// default values
	v.SetDefault("database.path", filepath.Join(dataDir, "esports_ranker.db"))
	v.SetDefault("log.path", filepath.Join(dataDir, "esportsranker.log"))
	v.SetDefault("ui.date_format", "02 Jan 2006")
	v.SetDefault("ui.timezone", "Local")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("ESPORTSRANKER_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "esportsranker"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ESPORTSRANKER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Location resolves the configured timezone, falling back to the system
// local zone when the name is "Local", empty, or unknown.
func (c Config) Location() *time.Location {
	name := c.UI.Timezone
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}
