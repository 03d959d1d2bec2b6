package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// DotEnvPath is the optional KEY=VALUE file read before the environment.
const DotEnvPath = ".env"

// LoadDotEnv copies the variables in path into the process environment so
// PAINTCUBE_* overrides can live in a file. Variables already set win. A
// missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("dotenv %s: %w", path, err)
	}
	for _, k := range v.AllKeys() {
		key := strings.ToUpper(k)
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, v.GetString(k)); err != nil {
			return fmt.Errorf("dotenv %s: %w", key, err)
		}
	}
	return nil
}
