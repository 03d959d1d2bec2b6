// Command paintcube opens a window with a paintable cube over an animated
// background. Behavior can be scripted in Lua.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"paintcube/internal/config"
)

// errScriptInit marks failures that exit with status 1 before a window opens.
var errScriptInit = errors.New("script init failed")

func newRootCmd() *cobra.Command {
	v := config.New()
	var cfgPath string
	var noScripts bool

	cmd := &cobra.Command{
		Use:           "paintcube",
		Short:         "Paint the faces of a cube",
		Long:          "Open a window with a rotating cube whose faces can be colored, patterned or covered with images.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noScripts {
				v.Set("script.enabled", false)
			}
			envErr := config.LoadDotEnv(config.DotEnvPath)
			cfg, err := config.Load(v, cfgPath)
			return run(cfg, errors.Join(envErr, err))
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfgPath, "config", config.DefaultPath, "Config file (YAML)")
	f.String("scripts", "lua", "Directory searched for Lua scripts before the embedded ones")
	f.BoolVar(&noScripts, "no-scripts", false, "Run with the native bridge instead of Lua")
	f.String("mixer", "additive", "Native mix strategy: additive, pigment or lab")
	f.Int("stars", 420, "Number of background stars")
	f.Uint32("seed", 1337, "Star field seed")
	f.Bool("bench", false, "Show the benchmark HUD")
	f.Int("width", 800, "Window width")
	f.Int("height", 600, "Window height")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"script.dir", "scripts"},
		{"mixer.strategy", "mixer"},
		{"stars.count", "stars"},
		{"stars.seed", "seed"},
		{"hud.enabled", "bench"},
		{"window.width", "width"},
		{"window.height", "height"},
	}
	for _, bf := range bindFlags {
		if err := v.BindPFlag(bf.key, f.Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "paintcube:", err)
		os.Exit(1)
	}
}
