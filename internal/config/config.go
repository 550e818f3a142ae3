// Package config loads the editor configuration from a TOML file and
// watches it for changes.
//
// Every field has a default; a missing file or a file that sets only some
// keys still produces a complete configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"github.com/jdhollis/kyte/internal/render"
)

// ErrInvalid reports a configuration file that parsed but holds an
// unusable value.
var ErrInvalid = errors.New("invalid configuration")

// Wrap mode names accepted by the editor.wrap key.
const (
	WrapNone   = "none"
	WrapMarker = "marker"
	WrapSoft   = "soft"
)

// Config is the root of the configuration file.
type Config struct {
	Editor Editor `toml:"editor"`
	UI     UI     `toml:"ui"`
	Log    Log    `toml:"log"`
}

// Editor holds editing behavior settings.
type Editor struct {
	// TabWidth is the number of columns a tab occupies.
	TabWidth int `toml:"tab_width"`

	// Wrap is one of "none", "marker", or "soft".
	Wrap string `toml:"wrap"`

	// WrapMarker is the single character drawn in the last column of a
	// clipped line when Wrap is "marker".
	WrapMarker string `toml:"wrap_marker"`
}

// UI holds presentation settings.
type UI struct {
	// StatusForeground and StatusBackground color the status bar. Values
	// are color names or "#rrggbb" hex.
	StatusForeground string `toml:"status_foreground"`
	StatusBackground string `toml:"status_background"`
}

// Log holds logging settings.
type Log struct {
	// Level is one of "debug", "info", "warn", or "error".
	Level string `toml:"level"`

	// File is the log destination. Empty disables file logging.
	File string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: Editor{
			TabWidth:   4,
			Wrap:       WrapNone,
			WrapMarker: "…",
		},
		UI: UI{
			StatusForeground: "black",
			StatusBackground: "white",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads the configuration at path. A missing file yields the
// defaults; keys absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath is the per-user configuration file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return filepath.Join(dir, "kyte", "config.toml"), nil
}

func (c Config) validate() error {
	if c.Editor.TabWidth < 1 {
		return fmt.Errorf("%w: editor.tab_width must be at least 1, got %d", ErrInvalid, c.Editor.TabWidth)
	}

	switch c.Editor.Wrap {
	case WrapNone, WrapMarker, WrapSoft:
	default:
		return fmt.Errorf("%w: editor.wrap must be %q, %q, or %q, got %q",
			ErrInvalid, WrapNone, WrapMarker, WrapSoft, c.Editor.Wrap)
	}

	if utf8.RuneCountInString(c.Editor.WrapMarker) != 1 {
		return fmt.Errorf("%w: editor.wrap_marker must be a single character, got %q",
			ErrInvalid, c.Editor.WrapMarker)
	}

	if _, err := ParseColor(c.UI.StatusForeground); err != nil {
		return fmt.Errorf("%w: ui.status_foreground: %v", ErrInvalid, err)
	}
	if _, err := ParseColor(c.UI.StatusBackground); err != nil {
		return fmt.Errorf("%w: ui.status_background: %v", ErrInvalid, err)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level must be debug, info, warn, or error, got %q",
			ErrInvalid, c.Log.Level)
	}
	return nil
}

// ParseColor resolves a configured color value, either a name or a
// "#rrggbb" hex triplet.
func ParseColor(value string) (render.Color, error) {
	if len(value) > 0 && value[0] == '#' {
		return render.ColorFromHex(value)
	}
	return render.ColorFromName(value)
}

// MarkerRune returns the configured wrap marker as a rune.
func (e Editor) MarkerRune() rune {
	r, _ := utf8.DecodeRuneInString(e.WrapMarker)
	return r
}
