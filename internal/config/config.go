// Package config implements the tetris.conf settings format: a line-oriented
// `key = value` file parsed into a fully-typed, cross-validated Config, plus
// the inverse serializer. Parsing is fail-fast: the first malformed line or
// invalid value aborts the whole parse with a line-accurate *ParseError.
package config

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetromino"
)

// Mode selects the rule set. Classic mode has no ghost piece, hard drop,
// hold, or preview.
type Mode int

const (
	ModeClassic Mode = iota
	ModeModern
)

// String returns the serialized form of the mode.
func (m Mode) String() string {
	if m == ModeClassic {
		return "classic"
	}
	return "modern"
}

// KeyCode identifies a special key, or KeyChar for a printable character.
type KeyCode int

const (
	KeyChar KeyCode = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyLShift // shift + left arrow
	KeyRShift // shift + right arrow
	KeyLCtrl  // ctrl + left arrow
	KeyRCtrl  // ctrl + right arrow
	KeyEsc
)

// Key is a single key binding.
type Key struct {
	Code KeyCode
	Char rune // Valid when Code == KeyChar
}

// Char creates a printable-character binding.
func Char(r rune) Key {
	return Key{Code: KeyChar, Char: r}
}

// String returns the binding in config file form: the literal character, or
// one of the named forms (space, left, right, up, down, lshift, rshift,
// lctrl, rctrl, esc).
func (k Key) String() string {
	switch k.Code {
	case KeyChar:
		if k.Char == ' ' {
			return "space"
		}
		return string(k.Char)
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLShift:
		return "lshift"
	case KeyRShift:
		return "rshift"
	case KeyLCtrl:
		return "lctrl"
	case KeyRCtrl:
		return "rctrl"
	case KeyEsc:
		return "esc"
	default:
		return "?"
	}
}

// Config is the fully-typed result of a successful parse. It is immutable
// after construction; optional fields are nil when absent.
type Config struct {
	// Required gameplay settings
	FPS         int
	BoardWidth  int
	BoardHeight int
	Mode        Mode
	MoveLeft    Key
	MoveRight   Key
	RotateCW    Key
	RotateACW   Key
	SoftDrop    Key
	HardDrop    *Key
	Hold        *Key

	// Optional gameplay settings
	GhostChar  *rune
	GhostColor *core.Color
	Cascade    bool
	ConstLevel *int

	// Optional global appearance setting
	Monochrome *core.Color

	// Optional board appearance settings
	BorderColor     core.Color
	TopBorder       rune
	TLCorner        rune
	LeftBorder      rune
	BLCorner        rune
	BottomBorder    rune
	BRCorner        rune
	RightBorder     rune
	TRCorner        rune
	BackgroundColor core.Color

	// Optional block appearance settings
	BlockChar rune
	BlockSize int
	IColor    core.Color
	JColor    core.Color
	LColor    core.Color
	SColor    core.Color
	ZColor    core.Color
	TColor    core.Color
	OColor    core.Color
}

// PieceColor returns the configured color for a piece type.
func (c *Config) PieceColor(t tetromino.Tetromino) core.Color {
	switch t {
	case tetromino.I:
		return c.IColor
	case tetromino.J:
		return c.JColor
	case tetromino.L:
		return c.LColor
	case tetromino.S:
		return c.SColor
	case tetromino.Z:
		return c.ZColor
	case tetromino.T:
		return c.TColor
	case tetromino.O:
		return c.OColor
	default:
		return c.IColor
	}
}
