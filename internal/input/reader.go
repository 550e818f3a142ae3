package input

import (
	"bufio"
	"io"
)

// Reader decodes the raw byte stream of a terminal in raw mode into key
// events: UTF-8 runes, control characters, and the common CSI escape
// sequences for arrows and navigation keys.
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps an input stream, typically the tty.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadEvent blocks until one key event is available. It returns the
// underlying read error (including io.EOF) unchanged.
func (rd *Reader) ReadEvent() (Event, error) {
	b, err := rd.r.ReadByte()
	if err != nil {
		return Event{}, err
	}

	switch {
	case b == 0x1b:
		return rd.readEscape()
	case b == '\r' || b == '\n':
		return NewSpecialEvent(KeyEnter, ModNone), nil
	case b == '\t':
		return NewSpecialEvent(KeyTab, ModNone), nil
	case b == 0x7f || b == 0x08:
		return NewSpecialEvent(KeyBackspace, ModNone), nil
	case b < 0x20:
		// Control characters map back to Ctrl+letter.
		return NewRuneEvent(rune('a'+b-1), ModCtrl), nil
	case b < 0x80:
		return NewRuneEvent(rune(b), ModNone), nil
	default:
		// Multi-byte UTF-8 sequence.
		if err := rd.r.UnreadByte(); err != nil {
			return Event{}, err
		}
		r, _, err := rd.r.ReadRune()
		if err != nil {
			return Event{}, err
		}
		return NewRuneEvent(r, ModNone), nil
	}
}

// readEscape decodes what follows an ESC byte. A lone ESC (nothing else
// buffered) is the Escape key; in raw mode a real escape sequence arrives
// as a single burst, so the remaining bytes are already available.
func (rd *Reader) readEscape() (Event, error) {
	if rd.r.Buffered() == 0 {
		return NewSpecialEvent(KeyEscape, ModNone), nil
	}

	b, err := rd.r.ReadByte()
	if err != nil {
		return Event{}, err
	}

	switch b {
	case '[':
		return rd.readCSI()
	case 'O':
		// SS3 sequences, sent by some terminals for arrows and Home/End.
		final, err := rd.r.ReadByte()
		if err != nil {
			return Event{}, err
		}
		if key, ok := csiFinalKeys[final]; ok {
			return NewSpecialEvent(key, ModNone), nil
		}
		return NewSpecialEvent(KeyNone, ModNone), nil
	default:
		// ESC prefix marks an Alt-modified key.
		if b < 0x20 || b == 0x7f {
			return NewSpecialEvent(KeyEscape, ModNone), nil
		}
		return NewRuneEvent(rune(b), ModAlt), nil
	}
}

// csiFinalKeys maps CSI/SS3 final bytes to keys.
var csiFinalKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// csiTildeKeys maps the numeric parameter of "CSI n ~" sequences to keys.
var csiTildeKeys = map[int]Key{
	1: KeyHome,
	3: KeyDelete,
	4: KeyEnd,
	5: KeyPageUp,
	6: KeyPageDown,
	7: KeyHome,
	8: KeyEnd,
}

// readCSI decodes a control sequence after "ESC [".
func (rd *Reader) readCSI() (Event, error) {
	param := 0
	for {
		b, err := rd.r.ReadByte()
		if err != nil {
			return Event{}, err
		}

		switch {
		case b >= '0' && b <= '9':
			param = param*10 + int(b-'0')
		case b == ';':
			// Modifier parameters are not distinguished; reset and keep
			// scanning for the final byte.
			param = 0
		case b == '~':
			if key, ok := csiTildeKeys[param]; ok {
				return NewSpecialEvent(key, ModNone), nil
			}
			return NewSpecialEvent(KeyNone, ModNone), nil
		default:
			if key, ok := csiFinalKeys[b]; ok {
				return NewSpecialEvent(key, ModNone), nil
			}
			return NewSpecialEvent(KeyNone, ModNone), nil
		}
	}
}
