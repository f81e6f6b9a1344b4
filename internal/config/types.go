package config

import "time"

// Config is the optional boxlab configuration document. Every key has a
// default, so an empty file is valid.
type Config struct {
	Preview PreviewSettings `yaml:"preview"`
	UI      UISettings      `yaml:"ui"`
	Logging LoggingSettings `yaml:"logging"`
}

// PreviewSettings controls how CSS pixels map onto terminal cells and how
// changes animate.
type PreviewSettings struct {
	PxPerColumn  int   `yaml:"px_per_column" validate:"min=1,max=100"`
	PxPerRow     int   `yaml:"px_per_row" validate:"min=1,max=200"`
	Animate      *bool `yaml:"animate,omitempty"`
	TransitionMS *int  `yaml:"transition_ms,omitempty" validate:"omitempty,min=0,max=5000"`
	Shadow       *bool `yaml:"shadow,omitempty"`
}

// UISettings holds terminal presentation options.
type UISettings struct {
	Layout    string `yaml:"layout" validate:"oneof=auto horizontal vertical"`
	AltScreen *bool  `yaml:"alt_screen,omitempty"`
}

// LoggingSettings configures the file logger.
type LoggingSettings struct {
	Level string `yaml:"level" validate:"log_level"`
	File  string `yaml:"file,omitempty" validate:"omitempty,log_path"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Preview.PxPerColumn == 0 {
		c.Preview.PxPerColumn = 10
	}
	if c.Preview.PxPerRow == 0 {
		c.Preview.PxPerRow = 20
	}
	if c.Preview.Animate == nil {
		c.Preview.Animate = boolPtr(true)
	}
	if c.Preview.TransitionMS == nil {
		c.Preview.TransitionMS = intPtr(300)
	}
	if c.Preview.Shadow == nil {
		c.Preview.Shadow = boolPtr(true)
	}
	if c.UI.Layout == "" {
		c.UI.Layout = "auto"
	}
	if c.UI.AltScreen == nil {
		c.UI.AltScreen = boolPtr(true)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// AnimationEnabled reports whether preview transitions should animate. A
// transition of 0ms turns animation off as well.
func (p PreviewSettings) AnimationEnabled() bool {
	return (p.Animate == nil || *p.Animate) && p.Transition() > 0
}

// ShadowEnabled reports whether preview boxes draw a drop shadow.
func (p PreviewSettings) ShadowEnabled() bool {
	return p.Shadow == nil || *p.Shadow
}

// Transition returns the animation duration, 300ms when unset.
func (p PreviewSettings) Transition() time.Duration {
	if p.TransitionMS == nil {
		return 300 * time.Millisecond
	}
	return time.Duration(*p.TransitionMS) * time.Millisecond
}

// UseAltScreen reports whether the TUI should take over the full terminal.
func (u UISettings) UseAltScreen() bool {
	return u.AltScreen == nil || *u.AltScreen
}

func boolPtr(v bool) *bool {
	return &v
}

func intPtr(v int) *int {
	return &v
}
