package render

// Attribute is a bitset of text attributes.
type Attribute uint16

// Text attribute flags.
const (
	AttrNone       Attribute = 0
	AttrBold       Attribute = 1 << iota
	AttrDim                  // Faint/dim text
	AttrItalic               // Italic text
	AttrUnderline            // Underlined text
	AttrBlink                // Blinking text (rarely supported)
	AttrReverse              // Reverse video (swap fg/bg)
	AttrHidden               // Hidden/invisible text
	AttrCrossedOut           // Strikethrough text
)

// Has returns true if the set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new set with the given attribute removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// Style is the visual style of a cell: foreground, background, attributes.
// Styles are value types and compare by value.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle returns the terminal's default style.
func DefaultStyle() Style {
	return Style{
		Foreground: ColorDefault,
		Background: ColorDefault,
		Attributes: AttrNone,
	}
}

// WithForeground returns a copy of the style with the foreground replaced.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns a copy of the style with the background replaced.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// WithAttributes returns a copy of the style with the attribute set replaced.
func (s Style) WithAttributes(attrs Attribute) Style {
	s.Attributes = attrs
	return s
}

// Bold returns a copy of the style with bold added.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Reverse returns a copy of the style with reverse video added.
func (s Style) Reverse() Style {
	s.Attributes |= AttrReverse
	return s
}

// Equals compares two styles by value.
func (s Style) Equals(other Style) bool {
	return s.Foreground.Equals(other.Foreground) &&
		s.Background.Equals(other.Background) &&
		s.Attributes == other.Attributes
}

// IsDefault returns true for the terminal's default style.
func (s Style) IsDefault() bool {
	return s.Foreground.IsDefault() &&
		s.Background.IsDefault() &&
		s.Attributes == AttrNone
}

// StyleChange is the minimal delta that moves the terminal from one style to
// another. Only fields that actually changed are populated.
type StyleChange struct {
	// Fg is the new foreground, or nil if unchanged.
	Fg *Color
	// Bg is the new background, or nil if unchanged.
	Bg *Color
	// Add holds attributes that must be switched on.
	Add Attribute
	// Sub holds attributes that must be switched off. Sub is applied before
	// Add: several attribute pairs share a single reset code (bold and dim
	// both clear with "normal intensity"), so removals must land first.
	Sub Attribute
}

// Diff computes what must be sent to move the terminal from prev to s.
func (s Style) Diff(prev Style) StyleChange {
	var change StyleChange
	if !s.Foreground.Equals(prev.Foreground) {
		fg := s.Foreground
		change.Fg = &fg
	}
	if !s.Background.Equals(prev.Background) {
		bg := s.Background
		change.Bg = &bg
	}
	change.Add = s.Attributes &^ prev.Attributes
	change.Sub = prev.Attributes &^ s.Attributes
	return change
}

// IsEmpty returns true if the change requires no output at all.
func (c StyleChange) IsEmpty() bool {
	return c.Fg == nil && c.Bg == nil && c.Add == AttrNone && c.Sub == AttrNone
}
