// Package config loads the demo's YAML configuration.
package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/plus3/gamescene/logging"
	"github.com/plus3/gamescene/scene"
	"gopkg.in/yaml.v3"
)

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

type Scene struct {
	Variant      string  `yaml:"variant"`
	Texture      string  `yaml:"texture"`
	Model        string  `yaml:"model"`
	Seed         uint64  `yaml:"seed"`
	EyeSpeed     float32 `yaml:"eye_speed"`
	MoveSpeed    float32 `yaml:"move_speed"`
	RotateSpeed  float32 `yaml:"rotate_speed"`
	DebugText    bool    `yaml:"debug_text"`
	ScaleByDelta bool    `yaml:"scale_by_delta"`
}

type Config struct {
	Window Window `yaml:"window"`
	Scene  Scene  `yaml:"scene"`
	// Assets is the directory textures and models are loaded from.
	Assets string `yaml:"assets"`
	// Bindings maps a logical control name to ebiten key names.
	Bindings map[string][]string `yaml:"bindings"`
	DebugUI  bool                `yaml:"debug_ui"`
	Log      logging.Config      `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	opts := scene.DefaultOptions()
	return &Config{
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "Game Scene",
			TPS:    60,
		},
		Scene: Scene{
			Variant:     opts.Variant.String(),
			Texture:     opts.TextureName,
			EyeSpeed:    opts.EyeSpeed,
			MoveSpeed:   opts.MoveSpeed,
			RotateSpeed: opts.RotateSpeed,
		},
		Assets: "resources",
		Bindings: map[string][]string{
			scene.KeyForward.String():     {"W", "ArrowUp"},
			scene.KeyBackward.String():    {"S", "ArrowDown"},
			scene.KeyRotateLeft.String():  {"A", "ArrowLeft"},
			scene.KeyRotateRight.String(): {"D", "ArrowRight"},
			scene.KeyReset.String():       {"R"},
		},
		Log: logging.Config{Development: true, Level: "info"},
	}
}

// Load reads path over the defaults and validates the result. Bindings given
// in the file replace the default binding for that control only.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	defaults := cfg.Bindings
	cfg.Bindings = nil

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}

	for name, keys := range defaults {
		if _, ok := cfg.Bindings[name]; !ok {
			if cfg.Bindings == nil {
				cfg.Bindings = make(map[string][]string, len(defaults))
			}
			cfg.Bindings[name] = keys
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return errors.Errorf("invalid tps %d", c.Window.TPS)
	}
	if _, err := scene.ParseVariant(c.Scene.Variant); err != nil {
		return err
	}
	if c.Scene.Texture == "" {
		return errors.New("no texture configured")
	}
	if c.Scene.EyeSpeed < 0 || c.Scene.MoveSpeed < 0 || c.Scene.RotateSpeed < 0 {
		return errors.New("speeds must not be negative")
	}
	for name := range c.Bindings {
		if _, err := scene.ParseKey(name); err != nil {
			return errors.Wrap(err, "bindings")
		}
	}
	return nil
}

// SceneOptions converts the scene section for scene.New.
func (c *Config) SceneOptions() scene.Options {
	variant, _ := scene.ParseVariant(c.Scene.Variant)
	return scene.Options{
		Variant:      variant,
		TextureName:  c.Scene.Texture,
		Seed:         c.Scene.Seed,
		EyeSpeed:     c.Scene.EyeSpeed,
		MoveSpeed:    c.Scene.MoveSpeed,
		RotateSpeed:  c.Scene.RotateSpeed,
		AspectRatio:  float32(c.Window.Width) / float32(c.Window.Height),
		DebugText:    c.Scene.DebugText,
		ScaleByDelta: c.Scene.ScaleByDelta,
	}
}
