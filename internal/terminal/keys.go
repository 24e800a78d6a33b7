package terminal

// Raw-mode byte decoding. Key names follow the usual terminal conventions:
// literal characters stand for themselves, named keys are lowercase
// ("enter", "esc", "up"), control chords are "ctrl+<letter>".

const (
	byteCtrlC     = 0x03
	byteTab       = 0x09
	byteLF        = 0x0a
	byteCR        = 0x0d
	byteEsc       = 0x1b
	byteBackspace = 0x7f
)

// decodeByte maps a single raw byte to its key name. Escape and Ctrl+C
// are handled by the caller before this point.
func decodeByte(b byte) string {
	switch b {
	case byteCR, byteLF:
		return "enter"
	case byteTab:
		return "tab"
	case byteBackspace, 0x08:
		return "backspace"
	case ' ':
		return "space"
	}
	if b < 0x20 {
		// Remaining control bytes: Ctrl+A is 0x01 ... Ctrl+Z is 0x1a.
		return "ctrl+" + string(rune('a'+b-1))
	}
	return string(rune(b))
}

// decodeEscape maps the bytes following an ESC to a key name. An empty
// sequence is a standalone Esc keypress.
func decodeEscape(seq []byte) string {
	if len(seq) == 0 {
		return "esc"
	}
	if seq[0] != '[' || len(seq) < 2 {
		return "esc"
	}
	switch seq[1] {
	case 'A':
		return "up"
	case 'B':
		return "down"
	case 'C':
		return "right"
	case 'D':
		return "left"
	case 'H':
		return "home"
	case 'F':
		return "end"
	case '3':
		return "delete"
	case '5':
		return "pgup"
	case '6':
		return "pgdown"
	}
	return "esc"
}
