package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrBadConfig is returned for unreadable or invalid configuration.
var ErrBadConfig = errors.New("cli: bad config")

// Config holds file-level defaults for every command.
type Config struct {
	MaxVertices int    `toml:"max_vertices"`
	LogLevel    string `toml:"log_level"`
	Metrics     bool   `toml:"metrics"`
}

func defaultConfig() Config {
	return Config{LogLevel: "info"}
}

// loadConfig reads path over the defaults. An empty path returns the defaults.
// Unknown keys are rejected so typos do not pass silently.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%w: unknown keys %s", ErrBadConfig, strings.Join(keys, ", "))
	}
	if cfg.MaxVertices < 0 {
		return cfg, fmt.Errorf("%w: max_vertices must be non-negative", ErrBadConfig)
	}

	return cfg, nil
}
