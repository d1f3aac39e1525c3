// Package config resolves host settings: parameter defaults, then STARGLYPH_* environment, then flags
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lixenwraith/starglyph/parameter"
)

var ErrInvalidConfig = errors.New("invalid config")

// Device is the capability hint that sizes sampling and pools
type Device int

const (
	DeviceAuto Device = iota
	DeviceDesktop
	DeviceMobile
)

func (d Device) String() string {
	switch d {
	case DeviceDesktop:
		return "desktop"
	case DeviceMobile:
		return "mobile"
	default:
		return "auto"
	}
}

// ParseDevice accepts auto, desktop or mobile
func ParseDevice(s string) (Device, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return DeviceAuto, nil
	case "desktop":
		return DeviceDesktop, nil
	case "mobile":
		return DeviceMobile, nil
	}
	return DeviceAuto, fmt.Errorf("%w: device %q", ErrInvalidConfig, s)
}

// Profile is the resolved per-device sizing
type Profile struct {
	Device       Device
	SampleStride int
	StarCount    int
	StreakCount  int
	GalaxyCount  int
	TargetFPS    int
}

// ProfileFor resolves auto from the terminal width
func ProfileFor(d Device, cols int) Profile {
	if d == DeviceAuto {
		d = DeviceDesktop
		if cols > 0 && cols < parameter.CompactColumns {
			d = DeviceMobile
		}
	}
	if d == DeviceMobile {
		return Profile{
			Device:       DeviceMobile,
			SampleStride: parameter.SampleStrideMobile,
			StarCount:    parameter.StarCountMobile,
			StreakCount:  parameter.StreakCountMobile,
			GalaxyCount:  parameter.GalaxyCountMobile,
			TargetFPS:    parameter.TargetFPSMobile,
		}
	}
	return Profile{
		Device:       DeviceDesktop,
		SampleStride: parameter.SampleStrideDesktop,
		StarCount:    parameter.StarCountDesktop,
		StreakCount:  parameter.StreakCountDesktop,
		GalaxyCount:  parameter.GalaxyCountDesktop,
		TargetFPS:    parameter.TargetFPSDesktop,
	}
}

// Config is the host configuration
type Config struct {
	Text      string
	Secondary string
	FontSize  float64
	Device    Device
	ColorMode string // auto, truecolor, 256
	Seed      uint64
	Debug     bool
	Mute      bool
}

func Default() Config {
	return Config{
		Text:      parameter.DefaultText,
		FontSize:  parameter.GlyphFontSize,
		Device:    DeviceAuto,
		ColorMode: "auto",
	}
}

// LoadEnv overlays STARGLYPH_* variables; unparsable values are ignored
func LoadEnv(cfg *Config) {
	if v, ok := os.LookupEnv("STARGLYPH_TEXT"); ok {
		cfg.Text = v
	}
	if v, ok := os.LookupEnv("STARGLYPH_SECONDARY"); ok {
		cfg.Secondary = v
	}
	if v := os.Getenv("STARGLYPH_FONT_SIZE"); v != "" {
		if size, err := strconv.ParseFloat(v, 64); err == nil && size > 0 {
			cfg.FontSize = size
		}
	}
	if v := os.Getenv("STARGLYPH_DEVICE"); v != "" {
		if d, err := ParseDevice(v); err == nil {
			cfg.Device = d
		}
	}
	if v := os.Getenv("STARGLYPH_COLOR"); v != "" {
		cfg.ColorMode = v
	}
	if v := os.Getenv("STARGLYPH_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	if v := os.Getenv("STARGLYPH_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = debug
		}
	}
}

// Validate checks values flags may have set
func (c Config) Validate() error {
	if c.FontSize <= 0 {
		return fmt.Errorf("%w: font size %f", ErrInvalidConfig, c.FontSize)
	}
	switch c.ColorMode {
	case "auto", "truecolor", "true", "24bit", "256":
	default:
		return fmt.Errorf("%w: color mode %q", ErrInvalidConfig, c.ColorMode)
	}
	return nil
}
