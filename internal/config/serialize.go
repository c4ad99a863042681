package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// String renders the config in file form, one `key = value` line per
// recognized setting in canonical order. For any record the assembler can
// produce, Parse(cfg.String()) yields a record equal to cfg.
func (c *Config) String() string {
	var sb strings.Builder
	for _, name := range settingNames {
		sb.WriteString(name)
		sb.WriteString(" = ")
		sb.WriteString(c.settingValue(name))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// settingValue renders a single field in the grammar its parser accepts.
func (c *Config) settingValue(name string) string {
	switch name {
	case "fps":
		return strconv.Itoa(c.FPS)
	case "board_width":
		return strconv.Itoa(c.BoardWidth)
	case "board_height":
		return strconv.Itoa(c.BoardHeight)
	case "monochrome":
		return optColorString(c.Monochrome)
	case "cascade":
		return boolString(c.Cascade)
	case "const_level":
		return optIntString(c.ConstLevel)
	case "ghost_tetromino_character":
		return optCharString(c.GhostChar)
	case "ghost_tetromino_color":
		return optColorString(c.GhostColor)
	case "top_border_character":
		return string(c.TopBorder)
	case "left_border_character":
		return string(c.LeftBorder)
	case "bottom_border_character":
		return string(c.BottomBorder)
	case "right_border_character":
		return string(c.RightBorder)
	case "tl_corner_character":
		return string(c.TLCorner)
	case "bl_corner_character":
		return string(c.BLCorner)
	case "br_corner_character":
		return string(c.BRCorner)
	case "tr_corner_character":
		return string(c.TRCorner)
	case "border_color":
		return colorString(c.BorderColor)
	case "block_character":
		return string(c.BlockChar)
	case "block_size":
		return strconv.Itoa(c.BlockSize)
	case "mode":
		return c.Mode.String()
	case "move_left":
		return c.MoveLeft.String()
	case "move_right":
		return c.MoveRight.String()
	case "rotate_clockwise":
		return c.RotateCW.String()
	case "rotate_anticlockwise":
		return c.RotateACW.String()
	case "soft_drop":
		return c.SoftDrop.String()
	case "hard_drop":
		return optKeyString(c.HardDrop)
	case "hold":
		return optKeyString(c.Hold)
	case "background_color":
		return colorString(c.BackgroundColor)
	case "i_color":
		return colorString(c.IColor)
	case "j_color":
		return colorString(c.JColor)
	case "l_color":
		return colorString(c.LColor)
	case "s_color":
		return colorString(c.SColor)
	case "z_color":
		return colorString(c.ZColor)
	case "t_color":
		return colorString(c.TColor)
	case "o_color":
		return colorString(c.OColor)
	default:
		return ""
	}
}

func colorString(c core.Color) string {
	if c.Kind == core.ColorAnsi {
		return fmt.Sprintf("ansi %d", c.Ansi)
	}
	return fmt.Sprintf("rgb %d,%d,%d", c.R, c.G, c.B)
}

func optColorString(c *core.Color) string {
	if c == nil {
		return "none"
	}
	return colorString(*c)
}

func optKeyString(k *Key) string {
	if k == nil {
		return "none"
	}
	return k.String()
}

func optCharString(r *rune) string {
	if r == nil {
		return "none"
	}
	return string(*r)
}

func optIntString(n *int) string {
	if n == nil {
		return "none"
	}
	return strconv.Itoa(*n)
}

func boolString(b bool) string {
	if b {
		return "t"
	}
	return "f"
}
