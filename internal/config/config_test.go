package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "st7789.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}

	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if perm := fi.Mode().Perm(); perm != 0o600 {
		t.Errorf("permissions = %o, want 600", perm)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatalf("second Load() error = %v", err)
	}
	if !reflect.DeepEqual(again, cfg) {
		t.Errorf("reloaded config = %+v, want %+v", again, cfg)
	}
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "st7789.yaml")
	data := []byte(`
panel:
  width: 240
  height: 135
  y_offset: 53
  orientation: 0x60
font: fonts/8x12.bin
scenes: [ball]
log_level: debug
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := DefaultConfig()
	want.Pins = PinsConfig{DC: "GPIO16"}
	want.Panel = PanelConfig{Width: 240, Height: 135, YOffset: 53, Orientation: 0x60, Backlight: 128}
	want.Font = "fonts/8x12.bin"
	want.Scenes = []string{"ball"}
	want.LogLevel = "debug"
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("Load() = %+v\nwant %+v", cfg, want)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "st7789.yaml")
	if err := os.WriteFile(path, []byte("panel: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
	if _, err := Load(""); err == nil {
		t.Error("Load(\"\") should fail")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want func(*Config)
	}{
		{"empty", Config{}, func(*Config) {}},
		{"keeps pins", Config{Pins: PinsConfig{DC: "GPIO25"}}, func(c *Config) {
			c.Pins = PinsConfig{DC: "GPIO25"}
		}},
		{"half geometry resets", Config{Panel: PanelConfig{Width: 240, XOffset: 3}}, func(*Config) {}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			got.Normalize()
			want := DefaultConfig()
			want.Pins = PinsConfig{DC: "GPIO16"}
			tt.want(want)
			if !reflect.DeepEqual(got.Panel, want.Panel) || got.Pins != want.Pins || got.SPI != want.SPI {
				t.Errorf("Normalize() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "st7789.yaml")
	cfg := DefaultConfig()
	cfg.Images = []string{"a.raw", "b.png"}
	cfg.Slideshow = "*/10 * * * * *"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}
