package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/drake/splitview/lua"
	"github.com/drake/splitview/ui/layout"
)

var (
	// ErrUnsupported is returned for layout files that are neither Lua nor YAML.
	ErrUnsupported = errors.New("unsupported layout file")

	// ErrNoLayout is returned when a Lua script never calls split.layout.
	ErrNoLayout = errors.New("script did not call split.layout")
)

// LoadFile reads a layout from a .lua script or a .yaml/.yml file.
func LoadFile(path string) (layout.Config, error) {
	var (
		cfg layout.Config
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".lua":
		cfg, err = loadLua(path)
	case ".yaml", ".yml":
		cfg, err = loadYAML(path)
	default:
		return layout.Config{}, fmt.Errorf("load layout %s: %w %q", path, ErrUnsupported, ext)
	}
	if err != nil {
		return layout.Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return layout.Config{}, fmt.Errorf("validate layout %s: %w", path, err)
	}
	return cfg, nil
}

// Load picks the layout to show: path when non-empty, else init.lua in the
// config directory when it exists, else the built-in default.
func Load(path string) (layout.Config, error) {
	if path != "" {
		return LoadFile(path)
	}
	if _, err := os.Stat(InitFile()); err == nil {
		return LoadFile(InitFile())
	}
	return layout.Default(), nil
}

func loadYAML(path string) (layout.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return layout.Config{}, fmt.Errorf("read layout %s: %w", path, err)
	}
	var cfg layout.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return layout.Config{}, fmt.Errorf("parse layout %s: %w", path, err)
	}
	return cfg, nil
}

func loadLua(path string) (layout.Config, error) {
	engine := lua.NewEngine()
	if err := engine.Init(); err != nil {
		return layout.Config{}, fmt.Errorf("init lua: %w", err)
	}
	defer engine.Close()

	if err := engine.DoFile(path); err != nil {
		return layout.Config{}, fmt.Errorf("run layout %s: %w", path, err)
	}
	root, ok := engine.Layout()
	if !ok {
		return layout.Config{}, fmt.Errorf("run layout %s: %w", path, ErrNoLayout)
	}
	return layout.Config{Root: &root}, nil
}
