package config

import (
	"fmt"
	"os"
	"strings"
)

// Parse turns the full text of a config file into a Config. Every recognized
// setting falls back to its compiled-in default when absent. The first
// malformed line, unparsable value, or cross-field violation aborts the parse
// and is returned as a *ParseError; no partial result is ever produced.
func Parse(text string) (*Config, error) {
	table, err := tokenize(text)
	if err != nil {
		return nil, err
	}
	cfg, err := assemble(table)
	if err != nil {
		return nil, err
	}
	if err := crossValidate(cfg, table); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	return Parse(string(data))
}

// WriteFile writes the serialized form of cfg to path.
func WriteFile(cfg *Config, path string) error {
	if err := os.WriteFile(path, []byte(cfg.String()), 0o644); err != nil {
		return fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	return nil
}

// tokenize scans the file line by line and builds the settings table. Blank
// lines and lines starting with '#' are skipped. Every remaining line must
// split into a non-empty key and value around the first '='; the key must be
// recognized and must not repeat.
func tokenize(text string) (settings, error) {
	table := make(settings, len(settingNames))
	for num, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if len(line) == 0 {
			continue
		}
		if line[0] == '#' {
			continue
		}
		lhs, rhs, found := strings.Cut(line, "=")
		if !found {
			return nil, newError(InvalidLineFormat, num, line, "")
		}
		name := strings.TrimSpace(lhs)
		if name == "" {
			return nil, newError(InvalidLineFormat, num, line,
				"There must be a setting name on the left side of the equals sign.")
		}
		value := strings.TrimSpace(rhs)
		if value == "" {
			return nil, newError(InvalidLineFormat, num, line,
				"There must be a value on the right side of the equals sign.")
		}
		if !isSetting(name) {
			return nil, newError(UnknownSetting, num, line, validSettingsHint)
		}
		if _, dup := table[name]; dup {
			return nil, newError(DuplicateSetting, num, line, "")
		}
		table[name] = settingLine{value: value, num: num, text: line}
	}
	return table, nil
}

// assemble drives every field through the lookup helpers, propagating the
// first error. Cross-field rules are applied separately by crossValidate.
func assemble(table settings) (*Config, error) {
	def := Default()
	cfg := &Config{}
	var err error

	if cfg.FPS, err = lookupIntMin(table, "fps", def.FPS, 1,
		"Failed to parse FPS value.",
		"FPS value is not greater than or equal to 1."); err != nil {
		return nil, err
	}
	if cfg.BoardWidth, err = lookupIntMin(table, "board_width", def.BoardWidth, 1,
		"Failed to parse board width value.",
		"Board width value is not greater than or equal to 1."); err != nil {
		return nil, err
	}
	if cfg.BoardHeight, err = lookupIntMin(table, "board_height", def.BoardHeight, 1,
		"Failed to parse board height value.",
		"Board height value is not greater than or equal to 1."); err != nil {
		return nil, err
	}
	if cfg.Mode, err = lookup(table, "mode", def.Mode, parseMode); err != nil {
		return nil, err
	}
	if cfg.MoveLeft, err = lookup(table, "move_left", def.MoveLeft, parseKey); err != nil {
		return nil, err
	}
	if cfg.MoveRight, err = lookup(table, "move_right", def.MoveRight, parseKey); err != nil {
		return nil, err
	}
	if cfg.RotateCW, err = lookup(table, "rotate_clockwise", def.RotateCW, parseKey); err != nil {
		return nil, err
	}
	if cfg.RotateACW, err = lookup(table, "rotate_anticlockwise", def.RotateACW, parseKey); err != nil {
		return nil, err
	}
	if cfg.SoftDrop, err = lookup(table, "soft_drop", def.SoftDrop, parseKey); err != nil {
		return nil, err
	}
	if cfg.HardDrop, err = lookupOpt(table, "hard_drop", def.HardDrop, parseKey); err != nil {
		return nil, err
	}
	if cfg.Hold, err = lookupOpt(table, "hold", def.Hold, parseKey); err != nil {
		return nil, err
	}
	if cfg.GhostChar, err = lookupOpt(table, "ghost_tetromino_character", def.GhostChar, parseChar); err != nil {
		return nil, err
	}
	if cfg.GhostColor, err = lookupOpt(table, "ghost_tetromino_color", def.GhostColor, parseColor); err != nil {
		return nil, err
	}
	if cfg.Cascade, err = lookup(table, "cascade", def.Cascade, parseBool); err != nil {
		return nil, err
	}
	if cfg.ConstLevel, err = lookupOptIntMin(table, "const_level", def.ConstLevel, 1,
		"Failed to parse constant level value.",
		"Level value was not greater than or equal to 1."); err != nil {
		return nil, err
	}
	if cfg.Monochrome, err = lookupOpt(table, "monochrome", def.Monochrome, parseColor); err != nil {
		return nil, err
	}
	if cfg.BorderColor, err = lookup(table, "border_color", def.BorderColor, parseColor); err != nil {
		return nil, err
	}
	if cfg.TopBorder, err = lookup(table, "top_border_character", def.TopBorder, parseChar); err != nil {
		return nil, err
	}
	if cfg.TLCorner, err = lookup(table, "tl_corner_character", def.TLCorner, parseChar); err != nil {
		return nil, err
	}
	if cfg.LeftBorder, err = lookup(table, "left_border_character", def.LeftBorder, parseChar); err != nil {
		return nil, err
	}
	if cfg.BLCorner, err = lookup(table, "bl_corner_character", def.BLCorner, parseChar); err != nil {
		return nil, err
	}
	if cfg.BottomBorder, err = lookup(table, "bottom_border_character", def.BottomBorder, parseChar); err != nil {
		return nil, err
	}
	if cfg.BRCorner, err = lookup(table, "br_corner_character", def.BRCorner, parseChar); err != nil {
		return nil, err
	}
	if cfg.RightBorder, err = lookup(table, "right_border_character", def.RightBorder, parseChar); err != nil {
		return nil, err
	}
	if cfg.TRCorner, err = lookup(table, "tr_corner_character", def.TRCorner, parseChar); err != nil {
		return nil, err
	}
	if cfg.BackgroundColor, err = lookup(table, "background_color", def.BackgroundColor, parseColor); err != nil {
		return nil, err
	}
	if cfg.BlockChar, err = lookup(table, "block_character", def.BlockChar, parseChar); err != nil {
		return nil, err
	}
	if cfg.BlockSize, err = lookupIntMin(table, "block_size", def.BlockSize, 1,
		"Failed to parse block size value.",
		"Block size must be greater than or equal to 1."); err != nil {
		return nil, err
	}
	if cfg.IColor, err = lookup(table, "i_color", def.IColor, parseColor); err != nil {
		return nil, err
	}
	if cfg.JColor, err = lookup(table, "j_color", def.JColor, parseColor); err != nil {
		return nil, err
	}
	if cfg.LColor, err = lookup(table, "l_color", def.LColor, parseColor); err != nil {
		return nil, err
	}
	if cfg.SColor, err = lookup(table, "s_color", def.SColor, parseColor); err != nil {
		return nil, err
	}
	if cfg.ZColor, err = lookup(table, "z_color", def.ZColor, parseColor); err != nil {
		return nil, err
	}
	if cfg.TColor, err = lookup(table, "t_color", def.TColor, parseColor); err != nil {
		return nil, err
	}
	if cfg.OColor, err = lookup(table, "o_color", def.OColor, parseColor); err != nil {
		return nil, err
	}
	return cfg, nil
}

// pieceSpan is the number of board cells the longest piece (the I piece)
// occupies per unit of block size.
const pieceSpan = 4

// crossValidate applies the three cross-field rules, in order, stopping at
// the first that fires:
//
//  1. both board dimensions must exceed pieceSpan * block_size;
//  2. a monochrome override repaints the seven piece colors (border and
//     background are untouched);
//  3. classic mode strips the ghost piece, hard drop, and hold.
//
// Rules 2 and 3 are deliberately exclusive branches, not independent steps.
func crossValidate(cfg *Config, table settings) error {
	minSpan := cfg.BlockSize * pieceSpan
	if cfg.BoardWidth <= minSpan || cfg.BoardHeight <= minSpan {
		return boardSizeError(cfg, table, minSpan)
	}

	if cfg.Monochrome != nil {
		mono := *cfg.Monochrome
		cfg.IColor = mono
		cfg.JColor = mono
		cfg.LColor = mono
		cfg.SColor = mono
		cfg.ZColor = mono
		cfg.TColor = mono
		cfg.OColor = mono
		return nil
	}

	if cfg.Mode == ModeClassic {
		cfg.HardDrop = nil
		cfg.Hold = nil
		cfg.GhostChar = nil
		cfg.GhostColor = nil
	}
	return nil
}

// boardSizeError attributes the minimum-dimension violation to an
// explicitly-set line: the violated dimension's own setting when it was set,
// then block_size, then whichever dimension setting remains. Defaults alone
// cannot violate the rule, so at least one of the three must be present.
func boardSizeError(cfg *Config, table settings, minSpan int) error {
	hint := fmt.Sprintf(
		"Board width and height must each be greater than %d to fit the longest piece at the configured block size.",
		minSpan)

	candidates := make([]string, 0, 3)
	if cfg.BoardWidth <= minSpan {
		candidates = append(candidates, "board_width")
	}
	if cfg.BoardHeight <= minSpan {
		candidates = append(candidates, "board_height")
	}
	candidates = append(candidates, "block_size", "board_height", "board_width")

	for _, key := range candidates {
		if entry, ok := table[key]; ok {
			return newError(InvalidValue, entry.num, entry.text, hint)
		}
	}
	return fmt.Errorf("config: board dimension check failed with no explicit board settings")
}
