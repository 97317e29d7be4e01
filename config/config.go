// Package config resolves game settings from defaults, an optional TOML or
// YAML file, environment variables and command-line flags, in that order
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/supr-growth/constants"
)

const (
	EnvMuted   = "SUPR_GROWTH_MUTED"
	EnvDataDir = "SUPR_GROWTH_DATA_DIR"
	EnvVolume  = "SUPR_GROWTH_VOLUME" // 0-100

	ThemeDark  = "dark"
	ThemeLight = "light"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported config file format")
	ErrInvalidConfig     = errors.New("invalid config")
)

// Playfield is the logical playfield size
type Playfield struct {
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
}

// Config is the resolved game configuration
type Config struct {
	Player    string    `toml:"player" yaml:"player"`
	DataDir   string    `toml:"data_dir" yaml:"data_dir"`
	Muted     bool      `toml:"muted" yaml:"muted"`
	Volume    float64   `toml:"volume" yaml:"volume"`
	Theme     string    `toml:"theme" yaml:"theme"`
	Seed      uint64    `toml:"seed" yaml:"seed"` // 0 seeds from the wall clock
	Playfield Playfield `toml:"playfield" yaml:"playfield"`

	// Flag-only
	Debug bool   `toml:"-" yaml:"-"`
	File  string `toml:"-" yaml:"-"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		DataDir: "data",
		Volume:  0.6,
		Theme:   ThemeDark,
		Playfield: Playfield{
			Width:  constants.DefaultPlayfieldWidth,
			Height: constants.DefaultPlayfieldHeight,
		},
	}
}

// LoadFile merges the file at path into cfg, picking the decoder by extension
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg from the environment through lookup
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvMuted); ok && v != "" {
		muted, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMuted, err)
		}
		cfg.Muted = muted
	}
	if v, ok := lookup(EnvDataDir); ok && v != "" {
		cfg.DataDir = v
	}
	if v, ok := lookup(EnvVolume); ok && v != "" {
		pct, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvVolume, err)
		}
		cfg.Volume = min(max(float64(pct)/100, 0), 1)
	}
	return nil
}

// flagValues holds flag destinations until precedence is applied
type flagValues struct {
	file    string
	debug   bool
	player  string
	dataDir string
	muted   bool
	volume  float64
	theme   string
	seed    uint64
	width   float64
	height  float64
}

func bindFlags(fs *flag.FlagSet) *flagValues {
	d := Default()
	v := &flagValues{}
	fs.StringVar(&v.file, "config", "", "Config file (.toml, .yaml or .yml)")
	fs.BoolVar(&v.debug, "debug", false, "Write debug log to logs/")
	fs.StringVar(&v.player, "player", "", "Player name; prompts on the splash screen when empty")
	fs.StringVar(&v.dataDir, "data-dir", d.DataDir, "Leaderboard data directory")
	fs.BoolVar(&v.muted, "muted", false, "Start with sound muted")
	fs.Float64Var(&v.volume, "volume", d.Volume, "Master volume 0.0-1.0")
	fs.StringVar(&v.theme, "theme", d.Theme, "Color theme: dark, light")
	fs.Uint64Var(&v.seed, "seed", 0, "Random seed; 0 seeds from the clock")
	fs.Float64Var(&v.width, "width", d.Playfield.Width, "Logical playfield width")
	fs.Float64Var(&v.height, "height", d.Playfield.Height, "Logical playfield height")
	return v
}

// Load parses args with fs and resolves the configuration
// Only flags given explicitly override file and environment values
func Load(fs *flag.FlagSet, args []string, lookup func(string) (string, bool)) (Config, error) {
	v := bindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Default()
	cfg.File = v.file
	cfg.Debug = v.debug

	if v.file != "" {
		if err := LoadFile(v.file, &cfg); err != nil {
			return Config{}, err
		}
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := ApplyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "player":
			cfg.Player = v.player
		case "data-dir":
			cfg.DataDir = v.dataDir
		case "muted":
			cfg.Muted = v.muted
		case "volume":
			cfg.Volume = v.volume
		case "theme":
			cfg.Theme = v.theme
		case "seed":
			cfg.Seed = v.seed
		case "width":
			cfg.Playfield.Width = v.width
		case "height":
			cfg.Playfield.Height = v.height
		}
	})

	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	cfg.Player = strings.TrimSpace(cfg.Player)
	return cfg, cfg.Validate()
}

// Validate checks ranges the game relies on
func (c Config) Validate() error {
	var errs []error
	if c.Playfield.Width < constants.BasketMaxWidth {
		errs = append(errs, fmt.Errorf("playfield width %v below widest basket %v", c.Playfield.Width, constants.BasketMaxWidth))
	}
	if c.Playfield.Height < constants.ItemSize+constants.BasketHeight {
		errs = append(errs, fmt.Errorf("playfield height %v cannot fit an item above the basket", c.Playfield.Height))
	}
	if c.Volume < 0 || c.Volume > 1 {
		errs = append(errs, fmt.Errorf("volume %v outside [0, 1]", c.Volume))
	}
	if c.Theme != ThemeDark && c.Theme != ThemeLight {
		errs = append(errs, fmt.Errorf("theme %q is not %q or %q", c.Theme, ThemeDark, ThemeLight))
	}
	if strings.TrimSpace(c.DataDir) == "" {
		errs = append(errs, errors.New("data dir is empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
