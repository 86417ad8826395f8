package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/zoobzio/mbase"
	"github.com/zoobzio/mbase/render"
)

// Config holds defaults read from the YAML config file. Zero fields are
// unset and fall back to the flag defaults; flags given on the command line
// override every field.
type Config struct {
	Codec    string `yaml:"codec"`
	Mode     string `yaml:"mode"`
	Top      int    `yaml:"top"`
	Format   string `yaml:"format"`
	Color    *bool  `yaml:"color"`
	LogLevel string `yaml:"log-level"`
}

// DefaultConfigPath returns $HOME/.mbase/config.yaml.
func DefaultConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".mbase", "config.yaml"), nil
}

// LoadConfig reads the config at path, or the default location when path
// is empty. A missing default file yields the built-in defaults; a missing
// explicit file is an error. The resolved path is returned when a file was
// read.
func LoadConfig(path string) (Config, string, error) {
	var cfg Config

	explicit := path != ""
	if explicit {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return cfg, "", mbase.NewIOError("open", path, err)
		}
		path = expanded
	} else {
		def, err := DefaultConfigPath()
		if err != nil {
			return cfg, "", nil
		}
		path = def
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, "", nil
		}
		return cfg, "", mbase.NewIOError("open", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, "", fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, "", fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, path, nil
}

func (c Config) validate() error {
	if c.Mode != "" {
		if _, err := mbase.ParseMode(c.Mode); err != nil {
			return err
		}
	}
	if c.Format != "" {
		if _, err := render.ParseFormat(c.Format); err != nil {
			return err
		}
	}
	if c.Top < 0 {
		return fmt.Errorf("top must not be negative, got %d", c.Top)
	}
	if c.LogLevel != "" {
		if _, err := parseLevel(c.LogLevel); err != nil {
			return err
		}
	}
	return nil
}
