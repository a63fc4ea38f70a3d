package config_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/auricle/auricle/internal/command"
	"github.com/auricle/auricle/internal/config"
)

type mapFS map[string][]byte

func (m mapFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, err := config.Load(mapFS{}, "absent.toml")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if cfg.Platform != "wml" || !cfg.Delegation {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	fsys := mapFS{"auricle.toml": []byte(`
platform = "chromeos"
delegation = false
overlay_path = "overlay.toml"
watch_overlay = true

[speech]
rate = 0.8
pitch = 0.5
volume = 0.9
`)}

	cfg, err := config.Load(fsys, "auricle.toml")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if cfg.Platform != "chromeos" || cfg.Delegation || !cfg.WatchOverlay {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Speech.Rate != 0.8 {
		t.Errorf("rate = %v", cfg.Speech.Rate)
	}

	mask, err := cfg.PlatformMask()
	if err != nil {
		t.Fatalf("mask: %v", err)
	}
	if mask != command.PlatformChromeOS {
		t.Errorf("mask = %v", mask)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want error
	}{
		{"bad platform", `platform = "windows"`, config.ErrBadPlatform},
		{"rate out of range", "[speech]\nrate = 1.5\n", config.ErrBadRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := mapFS{"auricle.toml": []byte(tt.toml)}
			_, err := config.Load(fsys, "auricle.toml")
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	fsys := mapFS{"auricle.toml": []byte(`platform = "`)}
	if _, err := config.Load(fsys, "auricle.toml"); err == nil {
		t.Error("expected parse error")
	}
}
