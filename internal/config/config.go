// Package config holds the YAML configuration shared by the demo and
// preview programs.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SPIConfig selects the bus and its clock.
type SPIConfig struct {
	// Port is the spireg name; empty means the first registered port.
	Port string `yaml:"port"`
	// Hz is the SPI clock in hertz.
	Hz int64 `yaml:"hz"`
}

// PinsConfig holds gpioreg pin names. Empty RST or Backlight disables them.
type PinsConfig struct {
	DC        string `yaml:"dc"`
	RST       string `yaml:"rst"`
	Backlight string `yaml:"backlight"`
}

// PanelConfig is the panel geometry.
type PanelConfig struct {
	Width       int   `yaml:"width"`
	Height      int   `yaml:"height"`
	XOffset     int   `yaml:"x_offset"`
	YOffset     int   `yaml:"y_offset"`
	Orientation uint8 `yaml:"orientation"`
	// Backlight is the duty cycle out of 255.
	Backlight uint8 `yaml:"backlight"`
}

// Config is the top-level configuration.
type Config struct {
	SPI   SPIConfig   `yaml:"spi"`
	Pins  PinsConfig  `yaml:"pins"`
	Panel PanelConfig `yaml:"panel"`

	// Font is a glyph table file. Empty selects the built-in font.
	Font string `yaml:"font"`

	// Images are raw RGB565 files or regular pictures shown by the slideshow.
	Images []string `yaml:"images"`

	// Slideshow is a cron schedule for advancing to the next image, e.g. "@every 5s".
	Slideshow string `yaml:"slideshow"`

	// Scenes run in order by the demo loop.
	Scenes []string `yaml:"scenes"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig matches the 1.14" 135x240 module wired as in the README.
func DefaultConfig() *Config {
	return &Config{
		SPI: SPIConfig{Hz: 40_000_000},
		Pins: PinsConfig{
			DC:        "GPIO16",
			RST:       "GPIO23",
			Backlight: "GPIO4",
		},
		Panel: PanelConfig{
			Width:     135,
			Height:    240,
			XOffset:   52,
			YOffset:   40,
			Backlight: 128,
		},
		Images:    []string{},
		Slideshow: "@every 3s",
		Scenes:    []string{"slideshow", "chessboard", "ball", "rain"},
		LogLevel:  "info",
	}
}

// Normalize fills zero values with defaults so partial files still work.
func (c *Config) Normalize() {
	d := DefaultConfig()
	if c.SPI.Hz <= 0 {
		c.SPI.Hz = d.SPI.Hz
	}
	if c.Pins.DC == "" {
		c.Pins.DC = d.Pins.DC
	}
	if c.Panel.Width <= 0 || c.Panel.Height <= 0 {
		c.Panel.Width, c.Panel.Height = d.Panel.Width, d.Panel.Height
		c.Panel.XOffset, c.Panel.YOffset = d.Panel.XOffset, d.Panel.YOffset
	}
	if c.Panel.Backlight == 0 {
		c.Panel.Backlight = d.Panel.Backlight
	}
	if c.Images == nil {
		c.Images = []string{}
	}
	if c.Slideshow == "" {
		c.Slideshow = d.Slideshow
	}
	if len(c.Scenes) == 0 {
		c.Scenes = d.Scenes
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
}

// Load reads the configuration at path. On first run, when the file does not
// exist, the defaults are written there and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config: path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes cfg to path atomically with 0600 permissions.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config: path is empty")
	}
	if cfg == nil {
		return errors.New("config: nil config")
	}
	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".st7789-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Save writes c to path. See the package-level Save.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
