package config

import "github.com/vovakirdan/tui-tetris/internal/core"

// Default compiled-in values. Optional defaults are constructed fresh by
// Default() so callers can never share mutable state through them.
const (
	defaultFPS         = 60
	defaultBoardWidth  = 10
	defaultBoardHeight = 20
	defaultBlockSize   = 1
	defaultBlockChar   = '■'
	defaultGhostChar   = '□'
)

// Default returns the compiled-in configuration: the record written to a
// fresh tetris.conf and the fallback for every absent setting.
func Default() *Config {
	hardDrop := Char(' ')
	hold := Char('c')
	ghostChar := rune(defaultGhostChar)
	ghostColor := core.RGB(240, 240, 240)

	return &Config{
		FPS:         defaultFPS,
		BoardWidth:  defaultBoardWidth,
		BoardHeight: defaultBoardHeight,
		Mode:        ModeModern,
		MoveLeft:    Key{Code: KeyLeft},
		MoveRight:   Key{Code: KeyRight},
		RotateCW:    Key{Code: KeyLShift},
		RotateACW:   Key{Code: KeyUp},
		SoftDrop:    Key{Code: KeyDown},
		HardDrop:    &hardDrop,
		Hold:        &hold,

		GhostChar:  &ghostChar,
		GhostColor: &ghostColor,
		Cascade:    false,
		ConstLevel: nil,

		Monochrome: nil,

		BorderColor:     core.RGB(255, 255, 255),
		TopBorder:       '═',
		TLCorner:        '╔',
		LeftBorder:      '║',
		BLCorner:        '╚',
		BottomBorder:    '═',
		BRCorner:        '╝',
		RightBorder:     '║',
		TRCorner:        '╗',
		BackgroundColor: core.RGB(0, 0, 0),

		BlockChar: defaultBlockChar,
		BlockSize: defaultBlockSize,
		IColor:    core.RGB(0, 240, 240),
		JColor:    core.RGB(0, 0, 240),
		LColor:    core.RGB(240, 160, 0),
		SColor:    core.RGB(0, 240, 0),
		ZColor:    core.RGB(240, 0, 0),
		TColor:    core.RGB(160, 0, 240),
		OColor:    core.RGB(240, 240, 0),
	}
}
