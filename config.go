package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Mode is a desktop's tiling layout mode.
type Mode int

const (
	TILE Mode = iota
	MONOCLE
	BSTACK
	GRID
)

func parseMode(s string) (Mode, error) {
	switch s {
	case "tile":
		return TILE, nil
	case "monocle":
		return MONOCLE, nil
	case "bstack":
		return BSTACK, nil
	case "grid":
		return GRID, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// AppRule defines behavior for windows of a certain application.
// Class is matched exactly against both the class and the instance
// string of WM_CLASS. Desktop is where matching windows spawn (-1
// means the current desktop), Follow whether focus moves there, and
// Floating whether the window starts out floating.
type AppRule struct {
	Class    string `yaml:"class"`
	Desktop  int    `yaml:"desktop"`
	Follow   bool   `yaml:"follow"`
	Floating bool   `yaml:"floating"`
}

// Config holds the startup-parsed knobs. Compiled defaults may be
// overridden once from a YAML file; key and button bindings are
// compiled in (see getGrabs and getButtons) and never reloaded.
type Config struct {
	Desktops       int       `yaml:"desktops"`
	DefaultDesktop int       `yaml:"default_desktop"`
	DefaultMonitor int       `yaml:"default_monitor"`
	DefaultMode    string    `yaml:"default_mode"`
	MasterSize     float64   `yaml:"master_size"`
	BorderWidth    int       `yaml:"border_width"`
	PanelHeight    int       `yaml:"panel_height"`
	TopPanel       bool      `yaml:"top_panel"`
	ShowPanel      bool      `yaml:"show_panel"`
	MinWindowSize  int       `yaml:"min_window_size"`
	FocusColor     string    `yaml:"focus_color"`
	UnfocusColor   string    `yaml:"unfocus_color"`
	AttachAside    bool      `yaml:"attach_aside"`
	FollowMouse    bool      `yaml:"follow_mouse"`
	FollowMonitor  bool      `yaml:"follow_monitor"`
	FollowWindow   bool      `yaml:"follow_window"`
	ClickToFocus   bool      `yaml:"click_to_focus"`
	Terminal       []string  `yaml:"terminal"`
	Menu           []string  `yaml:"menu"`
	Rules          []AppRule `yaml:"rules"`

	mode Mode
}

func defaultConfig() *Config {
	return &Config{
		Desktops:       4,
		DefaultDesktop: 0,
		DefaultMonitor: 0,
		DefaultMode:    "tile",
		MasterSize:     0.52,
		BorderWidth:    2,
		PanelHeight:    18,
		TopPanel:       true,
		ShowPanel:      false,
		MinWindowSize:  50,
		FocusColor:     "#ff950e",
		UnfocusColor:   "#444444",
		AttachAside:    true,
		FollowMouse:    false,
		FollowMonitor:  true,
		FollowWindow:   false,
		ClickToFocus:   true,
		Terminal:       []string{"x-terminal-emulator"},
		Menu:           []string{"dmenu_run"},
	}
}

// loadConfig returns the compiled defaults, overridden by the YAML
// file at path if path is non-empty. A missing explicit file is an
// error; there is no implicit config location.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	m, err := parseMode(cfg.DefaultMode)
	if err != nil {
		return err
	}
	cfg.mode = m
	if cfg.Desktops < 1 {
		return fmt.Errorf("desktops must be at least 1, got %d", cfg.Desktops)
	}
	if cfg.DefaultDesktop < 0 || cfg.DefaultDesktop >= cfg.Desktops {
		return fmt.Errorf("default_desktop %d out of range", cfg.DefaultDesktop)
	}
	if cfg.MasterSize <= 0 || cfg.MasterSize >= 1 {
		return fmt.Errorf("master_size must be in (0,1), got %g", cfg.MasterSize)
	}
	if cfg.BorderWidth < 0 {
		return fmt.Errorf("border_width must not be negative")
	}
	if cfg.PanelHeight < 0 {
		return fmt.Errorf("panel_height must not be negative")
	}
	if cfg.MinWindowSize < 1 {
		return fmt.Errorf("min_window_size must be at least 1")
	}
	if _, err := parseColor(cfg.FocusColor); err != nil {
		return err
	}
	if _, err := parseColor(cfg.UnfocusColor); err != nil {
		return err
	}
	return nil
}

// Mode returns the parsed default tiling mode. Only valid after
// validate has run.
func (cfg *Config) Mode() Mode {
	return cfg.mode
}
