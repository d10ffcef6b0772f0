// Package input reads single key presses from the terminal.
package input

import (
	"bufio"
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// Key is a decoded key press
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit
	KeyOther
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "arrow_up"
	case KeyDown:
		return "arrow_down"
	case KeyLeft:
		return "arrow_left"
	case KeyRight:
		return "arrow_right"
	case KeyQuit:
		return "quit"
	case KeyOther:
		return "other"
	}
	return "none"
}

// IsInteractive reports whether both stdin and stdout are terminals
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// ReadKey puts stdin into raw mode and reads one key press
func ReadKey() (Key, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return KeyNone, err
	}
	defer term.Restore(fd, oldState)

	return Decode(bufio.NewReaderSize(os.Stdin, 16))
}

// Decode reads one key press from r. Arrow keys arrive as CSI (ESC [) or
// SS3 (ESC O) sequences; hjkl move too. q, Ctrl+C and end of input quit.
func Decode(r io.ByteReader) (Key, error) {
	b1, err := r.ReadByte()
	if errors.Is(err, io.EOF) {
		return KeyQuit, nil
	}
	if err != nil {
		return KeyNone, err
	}

	switch b1 {
	case 0x1b:
		return decodeEscape(r)
	case 'q', 'Q', 3:
		return KeyQuit, nil
	case 'k':
		return KeyUp, nil
	case 'j':
		return KeyDown, nil
	case 'h':
		return KeyLeft, nil
	case 'l':
		return KeyRight, nil
	}
	return KeyOther, nil
}

// decodeEscape reads the rest of an escape sequence
func decodeEscape(r io.ByteReader) (Key, error) {
	b2, err := r.ReadByte()
	if errors.Is(err, io.EOF) {
		// A lone Escape
		return KeyQuit, nil
	}
	if err != nil {
		return KeyNone, err
	}
	if b2 != '[' && b2 != 'O' {
		return KeyOther, nil
	}

	b3, err := r.ReadByte()
	if err != nil {
		return KeyOther, nil
	}
	switch b3 {
	case 'A':
		return KeyUp, nil
	case 'B':
		return KeyDown, nil
	case 'C':
		return KeyRight, nil
	case 'D':
		return KeyLeft, nil
	}
	// Unknown escape sequence
	return KeyOther, nil
}
