package editor

import (
	"unicode"

	"github.com/jdhollis/kyte/internal/input"
)

// ActionKind enumerates everything a keypress can ask the editor to do.
type ActionKind uint8

const (
	// ActionNone means the key has no meaning in the current mode.
	ActionNone ActionKind = iota
	ActionQuit
	ActionWrite
	ActionInsertRune
	ActionNewline
	ActionBackspace
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionEnterInsert
	ActionEnterNormal
)

// Action is the result of translating one keypress.
type Action struct {
	Kind ActionKind
	// Rune carries the character for ActionInsertRune.
	Rune rune
}

// Translate maps a (mode, keypress) pair to an action. It is a pure
// function; it never touches editor state.
func Translate(mode Mode, ev input.Event) Action {
	// Arrow keys navigate in both modes.
	switch ev.Key {
	case input.KeyLeft:
		return Action{Kind: ActionMoveLeft}
	case input.KeyRight:
		return Action{Kind: ActionMoveRight}
	case input.KeyUp:
		return Action{Kind: ActionMoveUp}
	case input.KeyDown:
		return Action{Kind: ActionMoveDown}
	}

	switch mode {
	case ModeNormal:
		return translateNormal(ev)
	case ModeInsert:
		return translateInsert(ev)
	}
	return Action{}
}

func translateNormal(ev input.Event) Action {
	if ev.Modifiers.Has(input.ModCtrl) && ev.IsRune() {
		switch ev.Rune {
		case 'q':
			return Action{Kind: ActionQuit}
		case 'w':
			return Action{Kind: ActionWrite}
		}
		return Action{}
	}

	if ev.IsRune() && ev.Modifiers == input.ModNone {
		switch ev.Rune {
		case 'h':
			return Action{Kind: ActionMoveLeft}
		case 'j':
			return Action{Kind: ActionMoveDown}
		case 'k':
			return Action{Kind: ActionMoveUp}
		case 'l':
			return Action{Kind: ActionMoveRight}
		case 'i':
			return Action{Kind: ActionEnterInsert}
		}
	}
	return Action{}
}

func translateInsert(ev input.Event) Action {
	switch ev.Key {
	case input.KeyEscape:
		return Action{Kind: ActionEnterNormal}
	case input.KeyEnter:
		return Action{Kind: ActionNewline}
	case input.KeyBackspace:
		return Action{Kind: ActionBackspace}
	case input.KeyTab:
		return Action{Kind: ActionInsertRune, Rune: '\t'}
	}

	if ev.IsRune() && !ev.Modifiers.Has(input.ModCtrl) && !ev.Modifiers.Has(input.ModAlt) &&
		unicode.IsPrint(ev.Rune) {
		return Action{Kind: ActionInsertRune, Rune: ev.Rune}
	}
	return Action{}
}
