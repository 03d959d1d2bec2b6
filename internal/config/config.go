// Package config loads program settings from defaults, an optional YAML
// file, PAINTCUBE_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"paintcube/internal/mixer"
)

// DefaultPath is the config file, relative to the working directory.
const DefaultPath = "config/paintcube.yaml"

// EnvPrefix prefixes environment overrides, e.g. PAINTCUBE_WINDOW_WIDTH.
const EnvPrefix = "PAINTCUBE"

type Window struct {
	Width  int
	Height int
	Title  string
	FPS    int
}

type Script struct {
	Enabled bool
	Dir     string
	Timeout time.Duration
}

type Stars struct {
	Count int
	Seed  uint32
}

type Log struct {
	Path  string
	Level string
}

type Overlay struct {
	Theme string
	Font  string
}

// Config is the resolved settings for one run.
type Config struct {
	Window       Window
	Script       Script
	Mixer        string
	Stars        Stars
	CubeRotation [3]float32
	InputStep    float32
	Log          Log
	HUD          bool
	Overlay      Overlay
}

var defaults = map[string]any{
	"window.width":   800,
	"window.height":  600,
	"window.title":   "Paint Cube",
	"window.fps":     60,
	"script.enabled": true,
	"script.dir":     "lua",
	"script.timeout": 50 * time.Millisecond,
	"mixer.strategy": "additive",
	"stars.count":    420,
	"stars.seed":     1337,
	"cube.rotation":  []float64{15, 25, 0},
	"input.step":     5.0,
	"log.path":       "logs/paintcube.txt",
	"log.level":      "info",
	"hud.enabled":    false,
	"overlay.theme":  "",
	"overlay.font":   "",
}

// New returns a viper instance with defaults and environment lookup set.
func New() *viper.Viper {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Default returns the settings with nothing overridden.
func Default() Config {
	cfg, _ := decode(New())
	return cfg
}

// Load reads path into v when it exists and decodes the result. A missing
// file is not an error. A file that cannot be parsed, or a setting that
// fails validation, is reported; the returned Config keeps every valid
// value from defaults, the file, environment and flags, and resets only the
// invalid ones to their defaults.
func Load(v *viper.Viper, path string) (Config, error) {
	var fileErr error
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			fileErr = fmt.Errorf("config %s: %w", path, err)
		}
	}
	cfg, err := decode(v)
	return cfg, errors.Join(fileErr, err)
}

func decode(v *viper.Viper) (Config, error) {
	var rotErr error
	rot, err := vec3(v.Get("cube.rotation"))
	if err != nil {
		rot, _ = vec3(defaults["cube.rotation"])
		rotErr = fmt.Errorf("cube.rotation: %w", err)
	}
	cfg := Config{
		Window: Window{
			Width:  v.GetInt("window.width"),
			Height: v.GetInt("window.height"),
			Title:  v.GetString("window.title"),
			FPS:    v.GetInt("window.fps"),
		},
		Script: Script{
			Enabled: v.GetBool("script.enabled"),
			Dir:     v.GetString("script.dir"),
			Timeout: v.GetDuration("script.timeout"),
		},
		Mixer:        v.GetString("mixer.strategy"),
		Stars:        Stars{Count: v.GetInt("stars.count"), Seed: v.GetUint32("stars.seed")},
		CubeRotation: rot,
		InputStep:    float32(v.GetFloat64("input.step")),
		Log:          Log{Path: v.GetString("log.path"), Level: v.GetString("log.level")},
		HUD:          v.GetBool("hud.enabled"),
		Overlay:      Overlay{Theme: v.GetString("overlay.theme"), Font: v.GetString("overlay.font")},
	}
	return cfg, errors.Join(rotErr, cfg.repair())
}

// vec3 accepts a 3-element list or a "x,y,z" string from the environment.
func vec3(raw any) ([3]float32, error) {
	var out [3]float32
	var parts []any
	switch t := raw.(type) {
	case []any:
		parts = t
	case []float64:
		for _, f := range t {
			parts = append(parts, f)
		}
	case string:
		for _, s := range strings.Split(t, ",") {
			parts = append(parts, strings.TrimSpace(s))
		}
	default:
		return out, fmt.Errorf("unsupported value %v", raw)
	}
	if len(parts) != 3 {
		return out, fmt.Errorf("need 3 values, got %d", len(parts))
	}
	for i, p := range parts {
		var f float64
		switch n := p.(type) {
		case int:
			f = float64(n)
		case float64:
			f = n
		case string:
			var err error
			if f, err = strconv.ParseFloat(n, 32); err != nil {
				return out, err
			}
		default:
			return out, fmt.Errorf("value %d is %T", i, p)
		}
		out[i] = float32(f)
	}
	return out, nil
}

// ErrInvalid marks a setting that was out of range and reset to its default.
var ErrInvalid = errors.New("invalid setting")

// Validate rejects settings the program cannot run with.
func (c Config) Validate() error {
	return c.repair()
}

// repair resets each invalid field to its default and reports every reset.
func (c *Config) repair() error {
	var errs []error
	reset := func(key string, bad any) {
		errs = append(errs, fmt.Errorf("%w: %s=%v, using %v", ErrInvalid, key, bad, defaults[key]))
	}
	if c.Window.Width <= 0 {
		reset("window.width", c.Window.Width)
		c.Window.Width = defaults["window.width"].(int)
	}
	if c.Window.Height <= 0 {
		reset("window.height", c.Window.Height)
		c.Window.Height = defaults["window.height"].(int)
	}
	if c.Window.FPS <= 0 {
		reset("window.fps", c.Window.FPS)
		c.Window.FPS = defaults["window.fps"].(int)
	}
	if c.Stars.Count < 0 || c.Stars.Count > 100000 {
		reset("stars.count", c.Stars.Count)
		c.Stars.Count = defaults["stars.count"].(int)
	}
	if c.Script.Timeout <= 0 {
		reset("script.timeout", c.Script.Timeout)
		c.Script.Timeout = defaults["script.timeout"].(time.Duration)
	}
	if c.InputStep <= 0 {
		reset("input.step", c.InputStep)
		c.InputStep = float32(defaults["input.step"].(float64))
	}
	if _, err := mixer.New(c.Mixer); err != nil {
		reset("mixer.strategy", c.Mixer)
		c.Mixer = defaults["mixer.strategy"].(string)
	}
	return errors.Join(errs...)
}
