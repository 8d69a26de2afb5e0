package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/search"
)

const (
	appName        = "gridpath"
	configFileName = "config.toml"

	defaultDelay = 5 * time.Millisecond
)

var errBadConfig = errors.New("cli: invalid config")

// Config holds the defaults shared by all commands. Flags override it.
type Config struct {
	Rows      int      `toml:"rows"`
	Width     int      `toml:"width"`
	Algorithm string   `toml:"algorithm"`
	Near      float64  `toml:"near"`
	Far       float64  `toml:"far"`
	Delay     duration `toml:"delay"`
}

// duration decodes TOML strings such as "5ms".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func defaultConfig() Config {
	return Config{
		Rows:      grid.DefaultRows,
		Width:     grid.DefaultWidth,
		Algorithm: search.AlgorithmAStar.String(),
		Near:      maze.DefaultNear,
		Far:       maze.DefaultFar,
		Delay:     duration{defaultDelay},
	}
}

// configPath returns the default config location using the XDG standard
// (~/.config/gridpath/config.toml).
func configPath() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName, configFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, configFileName), nil
}

// loadConfig reads path on top of the defaults. An empty path means the
// default location, which may be absent; an explicit path must exist.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("%w: %s: unknown key %q", errBadConfig, path, undecoded[0].String())
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Rows < 1 {
		return fmt.Errorf("%w: rows must be >= 1, got %d", errBadConfig, c.Rows)
	}
	if c.Width < c.Rows {
		return fmt.Errorf("%w: width %d is smaller than rows %d", errBadConfig, c.Width, c.Rows)
	}
	if _, err := search.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %w", errBadConfig, err)
	}
	if c.Delay.Duration < 0 {
		return fmt.Errorf("%w: delay must not be negative", errBadConfig)
	}
	return nil
}

func withConfig(ctx context.Context, c Config) context.Context {
	return context.WithValue(ctx, configKey, c)
}

// configFromContext returns the loaded config, or the defaults.
func configFromContext(ctx context.Context) Config {
	if c, ok := ctx.Value(configKey).(Config); ok {
		return c
	}
	return defaultConfig()
}
