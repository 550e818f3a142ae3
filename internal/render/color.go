package render

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a terminal color. It is one of three kinds: the terminal's
// default color, a 256-palette index, or a truecolor RGB value.
type Color struct {
	R, G, B uint8
	// Indexed marks a palette color; R holds the index and G, B are unused.
	Indexed bool
	// Default marks the terminal's own default color.
	Default bool
}

// ColorDefault is the terminal's default foreground or background.
var ColorDefault = Color{Default: true}

// The standard ANSI palette entries, by index, so they track the user's
// terminal theme instead of forcing RGB values.
var (
	ColorBlack   = ColorFromIndex(0)
	ColorRed     = ColorFromIndex(1)
	ColorGreen   = ColorFromIndex(2)
	ColorYellow  = ColorFromIndex(3)
	ColorBlue    = ColorFromIndex(4)
	ColorMagenta = ColorFromIndex(5)
	ColorCyan    = ColorFromIndex(6)
	ColorWhite   = ColorFromIndex(7)
)

// ColorFromRGB creates a truecolor value.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromIndex creates a palette color (0-255).
func ColorFromIndex(index uint8) Color {
	return Color{R: index, Indexed: true}
}

// ColorFromHex parses "#RGB", "#RRGGBB", "RGB" or "RRGGBB".
func ColorFromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	var digits string
	switch len(hex) {
	case 3:
		// Short form: each digit doubles.
		var sb strings.Builder
		for i := 0; i < 3; i++ {
			sb.WriteByte(hex[i])
			sb.WriteByte(hex[i])
		}
		digits = sb.String()
	case 6:
		digits = hex
	default:
		return Color{}, fmt.Errorf("invalid hex color length: %q", hex)
	}

	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %q", hex)
		}
		rgb[i] = uint8(v)
	}
	return ColorFromRGB(rgb[0], rgb[1], rgb[2]), nil
}

// ColorFromName resolves a color by name. It accepts the eight ANSI names,
// "default", or a hex form accepted by ColorFromHex.
func ColorFromName(name string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "default", "":
		return ColorDefault, nil
	case "black":
		return ColorBlack, nil
	case "red":
		return ColorRed, nil
	case "green":
		return ColorGreen, nil
	case "yellow":
		return ColorYellow, nil
	case "blue":
		return ColorBlue, nil
	case "magenta":
		return ColorMagenta, nil
	case "cyan":
		return ColorCyan, nil
	case "white":
		return ColorWhite, nil
	}
	return ColorFromHex(name)
}

// IsDefault returns true for the terminal's default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// Equals compares two colors by value.
func (c Color) Equals(other Color) bool {
	if c.Default != other.Default {
		return false
	}
	if c.Default {
		return true
	}
	if c.Indexed != other.Indexed {
		return false
	}
	if c.Indexed {
		return c.R == other.R
	}
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// String returns a readable representation for logs.
func (c Color) String() string {
	if c.Default {
		return "default"
	}
	if c.Indexed {
		return fmt.Sprintf("idx(%d)", c.R)
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
