package editor

// Mode is the modal-editing state. There are exactly two modes; the only
// transitions are 'i' (Normal to Insert) and Escape (Insert to Normal).
type Mode uint8

const (
	// ModeNormal interprets keys as navigation and commands.
	ModeNormal Mode = iota
	// ModeInsert interprets printable keys as text input.
	ModeInsert
)

// String returns the mode name as shown in the status bar.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	default:
		return "?"
	}
}
