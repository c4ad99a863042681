package config

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// settingLine is one tokenized config line: the raw value text plus the
// location information every diagnostic carries.
type settingLine struct {
	value string // Raw text right of the first '='
	num   int    // 0-based line number
	text  string // Full original line
}

// settings maps recognized setting names to their tokenized lines.
type settings map[string]settingLine

// valueParser decodes raw value text into a typed value. The line number and
// full line are threaded through for error reporting only.
type valueParser[T any] func(raw string, num int, line string) (T, error)

// lookup decodes the setting through parse when present, and falls back to
// the compiled-in default when absent.
func lookup[T any](table settings, key string, def T, parse valueParser[T]) (T, error) {
	entry, ok := table[key]
	if !ok {
		return def, nil
	}
	return parse(entry.value, entry.num, entry.text)
}

// lookupOpt is lookup for optional settings: the case-insensitive literal
// "none" yields nil instead of being parsed. The sentinel never escapes this
// layer.
func lookupOpt[T any](table settings, key string, def *T, parse valueParser[T]) (*T, error) {
	entry, ok := table[key]
	if !ok {
		return def, nil
	}
	if strings.EqualFold(entry.value, "none") {
		return nil, nil
	}
	v, err := parse(entry.value, entry.num, entry.text)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// lookupIntMin decodes an integer setting and rejects parsed values below
// min. parseHint and rangeHint are the corrections attached to
// FailedParseValue and InvalidValue diagnostics respectively.
func lookupIntMin(table settings, key string, def, min int, parseHint, rangeHint string) (int, error) {
	entry, ok := table[key]
	if !ok {
		return def, nil
	}
	return parseIntMin(entry, min, parseHint, rangeHint)
}

// lookupOptIntMin is lookupIntMin with the "none" sentinel handling of
// lookupOpt.
func lookupOptIntMin(table settings, key string, def *int, min int, parseHint, rangeHint string) (*int, error) {
	entry, ok := table[key]
	if !ok {
		return def, nil
	}
	if strings.EqualFold(entry.value, "none") {
		return nil, nil
	}
	v, err := parseIntMin(entry, min, parseHint, rangeHint)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseIntMin(entry settingLine, min int, parseHint, rangeHint string) (int, error) {
	v, err := strconv.Atoi(entry.value)
	if err != nil {
		return 0, newError(FailedParseValue, entry.num, entry.text, parseHint)
	}
	if v < min {
		return 0, newError(InvalidValue, entry.num, entry.text, rangeHint)
	}
	return v, nil
}

// parseMode accepts c/classic and m/modern, case-insensitive.
func parseMode(raw string, num int, line string) (Mode, error) {
	switch strings.ToLower(raw) {
	case "c", "classic":
		return ModeClassic, nil
	case "m", "modern":
		return ModeModern, nil
	default:
		return 0, newError(InvalidValue, num, line,
			"Accepted game mode indicators: c, classic, m, modern.")
	}
}

// parseKey accepts a single character, or one of the named special keys.
func parseKey(raw string, num int, line string) (Key, error) {
	runes := []rune(raw)
	if len(runes) == 1 {
		return Char(runes[0]), nil
	}
	switch raw {
	case "space":
		return Char(' '), nil
	case "left":
		return Key{Code: KeyLeft}, nil
	case "right":
		return Key{Code: KeyRight}, nil
	case "up":
		return Key{Code: KeyUp}, nil
	case "down":
		return Key{Code: KeyDown}, nil
	case "lshift":
		return Key{Code: KeyLShift}, nil
	case "rshift":
		return Key{Code: KeyRShift}, nil
	case "lctrl":
		return Key{Code: KeyLCtrl}, nil
	case "rctrl":
		return Key{Code: KeyRCtrl}, nil
	case "esc":
		return Key{Code: KeyEsc}, nil
	default:
		return Key{}, newError(InvalidValue, num, line,
			"Supported non-single-character values: 'space', 'left', 'right', 'up', "+
				"'down', 'lshift', 'rshift', 'lctrl', 'rctrl', and 'esc'.")
	}
}

// parseColor accepts `rgb r,g,b` with each component in 0-255, or `ansi n`
// with a palette index in 0-255.
func parseColor(raw string, num int, line string) (core.Color, error) {
	parts := strings.Fields(raw)
	if len(parts) < 1 {
		return core.Color{}, newError(MissingValue, num, line, "Missing color type.")
	}
	if len(parts) < 2 {
		return core.Color{}, newError(MissingValue, num, line, "Missing color.")
	}
	switch strings.ToLower(parts[0]) {
	case "rgb":
		return parseRGBTriple(parts[1], num, line)
	case "ansi":
		n, err := strconv.ParseUint(parts[1], 10, 8)
		if err != nil {
			return core.Color{}, newError(FailedParseValue, num, line,
				"Failed to parse ANSI color value.")
		}
		return core.AnsiColor(uint8(n)), nil
	default:
		return core.Color{}, newError(InvalidValue, num, line,
			"Accepted color formats are: rgb, ansi.")
	}
}

// parseRGBTriple decodes the comma-separated r,g,b component list.
func parseRGBTriple(s string, num int, line string) (core.Color, error) {
	parts := strings.Split(s, ",")
	names := [3]string{"R", "G", "B"}
	var comps [3]uint8
	for i, name := range names {
		if i >= len(parts) {
			return core.Color{}, newError(MissingValue, num, line,
				"Missing "+name+" value.")
		}
		v, err := strconv.ParseUint(parts[i], 10, 8)
		if err != nil {
			return core.Color{}, newError(FailedParseValue, num, line,
				"Failed to parse "+name+" value.")
		}
		comps[i] = uint8(v)
	}
	return core.RGB(comps[0], comps[1], comps[2]), nil
}

// parseChar accepts exactly one character.
func parseChar(raw string, num int, line string) (rune, error) {
	runes := []rune(raw)
	if len(runes) == 0 {
		return 0, newError(MissingValue, num, line, "Missing character value.")
	}
	if len(runes) > 1 {
		return 0, newError(InvalidValue, num, line, "Expected a single character value.")
	}
	return runes[0], nil
}

// parseBool accepts 1/t/true and 0/f/false, case-insensitive.
func parseBool(raw string, num int, line string) (bool, error) {
	switch strings.ToLower(raw) {
	case "1", "t", "true":
		return true, nil
	case "0", "f", "false":
		return false, nil
	default:
		return false, newError(InvalidValue, num, line,
			"Accepted boolean values: 1, t, true, 0, f, false")
	}
}
