package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/cyber-escape/constants"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Audio   AudioConfig   `toml:"audio"`
	Game    GameConfig    `toml:"game"`
	Logging LoggingConfig `toml:"logging"`
	Paths   PathsConfig   `toml:"paths"`
}

type AudioConfig struct {
	Enabled     bool    `toml:"enabled"`
	SFXVolume   float64 `toml:"sfx_volume"`   // 0.0-1.0
	MusicVolume float64 `toml:"music_volume"` // 0.0-1.0
}

type GameConfig struct {
	FPS          int    `toml:"fps"`
	ClampArrival bool   `toml:"clamp_arrival"` // snap the player onto the portal on arrival
	WavesFile    string `toml:"waves_file"`    // empty: built-in table
}

type LoggingConfig struct {
	Debug  bool   `toml:"debug"`  // file logging is off unless set
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // json or console
	Dir    string `toml:"dir"`
}

type PathsConfig struct {
	SaveFile string `toml:"save_file"`
}

// Load reads path over the defaults; a missing file yields the defaults
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Defaults returns the built-in configuration
func Defaults() *Config {
	return &Config{
		Audio: AudioConfig{
			Enabled:     true,
			SFXVolume:   constants.DefaultSFXVolume,
			MusicVolume: constants.DefaultMusicVolume,
		},
		Game: GameConfig{
			FPS: constants.TicksPerSecond,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Dir:    "logs",
		},
		Paths: PathsConfig{
			SaveFile: "cyber-escape-save.toml",
		},
	}
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Game.FPS < 1 || c.Game.FPS > 240 {
		return fmt.Errorf("%w: game.fps %d outside 1-240", ErrInvalid, c.Game.FPS)
	}
	if c.Audio.SFXVolume < 0 || c.Audio.SFXVolume > 1 {
		return fmt.Errorf("%w: audio.sfx_volume %.2f outside 0-1", ErrInvalid, c.Audio.SFXVolume)
	}
	if c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 {
		return fmt.Errorf("%w: audio.music_volume %.2f outside 0-1", ErrInvalid, c.Audio.MusicVolume)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalid, c.Logging.Format)
	}
	if c.Paths.SaveFile == "" {
		return fmt.Errorf("%w: paths.save_file is empty", ErrInvalid)
	}
	return nil
}
