package terminal

import (
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/ohare93/keyprompt/internal/prompt"
)

// escapeFollowupWait is how long to wait for bytes after an ESC before
// treating it as a standalone Esc keypress.
const escapeFollowupWait = 50 * time.Millisecond

// Reader reads single keystrokes from a terminal. Each read prints the
// prompt, switches stdin to raw mode for exactly one key and restores the
// previous terminal state before returning.
type Reader struct {
	in  *os.File
	out io.Writer
}

// NewReader creates a Reader on stdin/stderr.
func NewReader() *Reader {
	return &Reader{in: os.Stdin, out: os.Stderr}
}

// ReadKey implements prompt.KeyReader against the real terminal.
// Responds immediately to a keypress - no Enter key is required.
func (r *Reader) ReadKey(promptText string, opts prompt.ReadOptions) (string, error) {
	fmt.Fprint(r.out, promptText)

	fd := int(r.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("failed to set raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	if opts.Timeout > 0 {
		if err := r.in.SetReadDeadline(time.Now().Add(opts.Timeout)); err == nil {
			defer r.in.SetReadDeadline(time.Time{})
		}
	}

	key, err := r.readKey(opts.InheritInputMethod)
	// Move off the prompt line before cooked mode resumes.
	fmt.Fprint(r.out, "\r\n")
	if err != nil {
		return "", err
	}
	return key, nil
}

func (r *Reader) readKey(assembleRunes bool) (string, error) {
	b, err := r.readByte()
	if err != nil {
		return "", mapReadError(err)
	}
	switch {
	case b == byteCtrlC:
		return "", prompt.ErrInterrupted
	case b == byteEsc:
		return decodeEscape(r.readEscapeFollowup()), nil
	case b >= 0x80 && assembleRunes:
		return r.readRune(b)
	}
	return decodeByte(b), nil
}

func (r *Reader) readByte() (byte, error) {
	buf := make([]byte, 1)
	for {
		n, err := r.in.Read(buf)
		if err != nil {
			return 0, err
		}
		if n == 1 {
			return buf[0], nil
		}
	}
}

// readEscapeFollowup collects the bytes of an escape sequence, if any
// arrive promptly. A standalone Esc produces none.
func (r *Reader) readEscapeFollowup() []byte {
	if err := r.in.SetReadDeadline(time.Now().Add(escapeFollowupWait)); err != nil {
		return nil
	}
	defer r.in.SetReadDeadline(time.Time{})

	buf := make([]byte, 8)
	n, err := r.in.Read(buf)
	if err != nil || n == 0 {
		return nil
	}
	return buf[:n]
}

// readRune assembles a multi-byte UTF-8 sequence starting with first, so
// input-method composed characters arrive as a single key.
func (r *Reader) readRune(first byte) (string, error) {
	buf := []byte{first}
	for !utf8.FullRune(buf) && len(buf) < utf8.UTFMax {
		b, err := r.readByte()
		if err != nil {
			return "", mapReadError(err)
		}
		buf = append(buf, b)
	}
	ch, _ := utf8.DecodeRune(buf)
	if ch == utf8.RuneError {
		return decodeByte(first), nil
	}
	return string(ch), nil
}

func mapReadError(err error) error {
	if os.IsTimeout(err) {
		return prompt.ErrTimeout
	}
	return fmt.Errorf("failed to read input: %w", err)
}
