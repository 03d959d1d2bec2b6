package script

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Files are loaded in this order. Later files may use globals set by
// earlier ones.
var Files = []string{"mixer.lua", "controls.lua", "stars.lua", "picking.lua", "ui.lua"}

//go:embed lua/*.lua
var embedded embed.FS

// source returns the script text for name and where it came from. A file in
// dir wins over the embedded copy; a file that exists but cannot be read is
// an error.
func source(dir, name string) ([]byte, string, error) {
	if dir != "" {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err == nil {
			return data, path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, path, err
		}
	}
	data, err := embedded.ReadFile("lua/" + name)
	return data, "embedded:" + name, err
}

// Embedded returns the built-in copy of a script.
func Embedded(name string) ([]byte, error) {
	return embedded.ReadFile("lua/" + name)
}
