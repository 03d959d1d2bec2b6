package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 || cfg.Window.FPS != 60 {
		t.Errorf("window = %+v", cfg.Window)
	}
	if !cfg.Script.Enabled || cfg.Script.Dir != "lua" || cfg.Script.Timeout != 50*time.Millisecond {
		t.Errorf("script = %+v", cfg.Script)
	}
	if cfg.Stars.Count != 420 || cfg.Stars.Seed != 1337 {
		t.Errorf("stars = %+v", cfg.Stars)
	}
	if cfg.CubeRotation != [3]float32{15, 25, 0} || cfg.InputStep != 5 || cfg.Mixer != "additive" {
		t.Errorf("cube %v step %v mixer %q", cfg.CubeRotation, cfg.InputStep, cfg.Mixer)
	}
	if cfg.HUD || cfg.Log.Level != "info" {
		t.Errorf("hud %v log %+v", cfg.HUD, cfg.Log)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paintcube.yaml")
	src := `
window:
  width: 1024
  title: Test
script:
  enabled: false
  timeout: 20ms
mixer:
  strategy: lab
stars:
  count: 10
  seed: 7
cube:
  rotation: [1, 2.5, 3]
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(New(), path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width != 1024 || cfg.Window.Height != 600 || cfg.Window.Title != "Test" {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Script.Enabled || cfg.Script.Timeout != 20*time.Millisecond {
		t.Errorf("script = %+v", cfg.Script)
	}
	if cfg.Mixer != "lab" || cfg.Stars != (Stars{Count: 10, Seed: 7}) {
		t.Errorf("mixer %q stars %+v", cfg.Mixer, cfg.Stars)
	}
	if cfg.CubeRotation != [3]float32{1, 2.5, 3} {
		t.Errorf("rotation = %v", cfg.CubeRotation)
	}
}

func TestLoadInvalidFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("window: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(New(), path)
	if err == nil {
		t.Fatal("parse error not reported")
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestEnvAndFlags(t *testing.T) {
	t.Setenv("PAINTCUBE_WINDOW_HEIGHT", "480")
	t.Setenv("PAINTCUBE_CUBE_ROTATION", "10, 20, 30")
	v := New()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("stars", 420, "")
	if err := v.BindPFlag("stars.count", fs.Lookup("stars")); err != nil {
		t.Fatal(err)
	}
	if err := fs.Parse([]string{"--stars", "99"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(v, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Height != 480 || cfg.Stars.Count != 99 || cfg.CubeRotation != [3]float32{10, 20, 30} {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestInvalidSettingKeepsFlags(t *testing.T) {
	v := New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Bool("no-scripts", false, "")
	fs.String("mixer", "additive", "")
	fs.Int("width", 800, "")
	for key, name := range map[string]string{"mixer.strategy": "mixer", "window.width": "width"} {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			t.Fatal(err)
		}
	}
	if err := fs.Parse([]string{"--no-scripts", "--mixer", "oil", "--width", "1024"}); err != nil {
		t.Fatal(err)
	}
	if on, _ := fs.GetBool("no-scripts"); on {
		v.Set("script.enabled", false)
	}

	cfg, err := Load(v, "")
	if !errors.Is(err, ErrInvalid) || !strings.Contains(err.Error(), "mixer.strategy") {
		t.Fatalf("err = %v", err)
	}
	if cfg.Mixer != "additive" {
		t.Errorf("mixer = %q, want the default", cfg.Mixer)
	}
	if cfg.Script.Enabled || cfg.Window.Width != 1024 {
		t.Errorf("flags lost: script %+v width %d", cfg.Script, cfg.Window.Width)
	}
}

func TestBadRotationResetsOnlyRotation(t *testing.T) {
	t.Setenv("PAINTCUBE_CUBE_ROTATION", "1,2")
	t.Setenv("PAINTCUBE_STARS_COUNT", "12")
	cfg, err := Load(New(), "")
	if err == nil {
		t.Fatal("bad rotation not reported")
	}
	if cfg.CubeRotation != [3]float32{15, 25, 0} || cfg.Stars.Count != 12 {
		t.Errorf("rotation %v stars %d", cfg.CubeRotation, cfg.Stars.Count)
	}
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"width":   func(c *Config) { c.Window.Width = 0 },
		"fps":     func(c *Config) { c.Window.FPS = -1 },
		"stars":   func(c *Config) { c.Stars.Count = -3 },
		"timeout": func(c *Config) { c.Script.Timeout = 0 },
		"step":    func(c *Config) { c.InputStep = 0 },
		"mixer":   func(c *Config) { c.Mixer = "gouache" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			if cfg.Validate() == nil {
				t.Error("Validate accepted the change")
			}
		})
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestVec3(t *testing.T) {
	bad := []any{nil, "1,2", []any{1, "x", 3}, []any{1, true, 3}, 5}
	for _, raw := range bad {
		if _, err := vec3(raw); err == nil {
			t.Errorf("vec3(%v) accepted", raw)
		}
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
			t.Errorf("LoadDotEnv = %v, want nil", err)
		}
	})
	t.Run("sets unset keys only", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		data := "# overrides\nPAINTCUBE_STARS_COUNT=12\nPAINTCUBE_WINDOW_TITLE=\"From File\"\n"
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		t.Setenv("PAINTCUBE_STARS_COUNT", "")
		os.Unsetenv("PAINTCUBE_STARS_COUNT")
		t.Setenv("PAINTCUBE_WINDOW_TITLE", "Kept")
		if err := LoadDotEnv(path); err != nil {
			t.Fatal(err)
		}
		cfg, err := Load(New(), "")
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Stars.Count != 12 {
			t.Errorf("stars.count = %d, want 12 from the file", cfg.Stars.Count)
		}
		if cfg.Window.Title != "Kept" {
			t.Errorf("window.title = %q, want the existing variable", cfg.Window.Title)
		}
	})
}
