package config

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func errKind(t *testing.T, err error) ErrorKind {
	t.Helper()
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("got %T (%v), want *ParseError", err, err)
	}
	return pe.Kind
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		raw  string
		want Mode
	}{
		{"c", ModeClassic},
		{"classic", ModeClassic},
		{"CLASSIC", ModeClassic},
		{"m", ModeModern},
		{"Modern", ModeModern},
	}
	for _, tt := range tests {
		got, err := parseMode(tt.raw, 0, tt.raw)
		if err != nil {
			t.Errorf("parseMode(%q): %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseMode(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}

	_, err := parseMode("arcade", 3, "mode = arcade")
	if errKind(t, err) != InvalidValue {
		t.Errorf("parseMode on bad input should be InvalidValue")
	}
}

func TestParseKeyBindings(t *testing.T) {
	tests := []struct {
		raw  string
		want Key
	}{
		{"a", Char('a')},
		{"Z", Char('Z')},
		{"space", Char(' ')},
		{"left", Key{Code: KeyLeft}},
		{"right", Key{Code: KeyRight}},
		{"up", Key{Code: KeyUp}},
		{"down", Key{Code: KeyDown}},
		{"lshift", Key{Code: KeyLShift}},
		{"rshift", Key{Code: KeyRShift}},
		{"lctrl", Key{Code: KeyLCtrl}},
		{"rctrl", Key{Code: KeyRCtrl}},
		{"esc", Key{Code: KeyEsc}},
	}
	for _, tt := range tests {
		got, err := parseKey(tt.raw, 0, tt.raw)
		if err != nil {
			t.Errorf("parseKey(%q): %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseKey(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}

	_, err := parseKey("enter", 0, "hold = enter")
	if errKind(t, err) != InvalidValue {
		t.Errorf("parseKey on unknown name should be InvalidValue")
	}
}

func TestParseColor(t *testing.T) {
	got, err := parseColor("rgb 1,2,3", 0, "")
	if err != nil || got != core.RGB(1, 2, 3) {
		t.Errorf("parseColor rgb = %v (%v), want rgb 1,2,3", got, err)
	}

	got, err = parseColor("RGB 255,0,255", 0, "")
	if err != nil || got != core.RGB(255, 0, 255) {
		t.Errorf("color type should be case-insensitive, got %v (%v)", got, err)
	}

	got, err = parseColor("ansi 208", 0, "")
	if err != nil || got != core.AnsiColor(208) {
		t.Errorf("parseColor ansi = %v (%v), want ansi 208", got, err)
	}

	tests := []struct {
		raw  string
		kind ErrorKind
	}{
		{"rgb", MissingValue},          // no components
		{"rgb 1,2", MissingValue},      // missing B
		{"rgb 1,2,x", FailedParseValue},
		{"rgb 1,2,300", FailedParseValue}, // out of u8 range
		{"ansi many", FailedParseValue},
		{"hex ffffff", InvalidValue},
	}
	for _, tt := range tests {
		_, err := parseColor(tt.raw, 0, tt.raw)
		if got := errKind(t, err); got != tt.kind {
			t.Errorf("parseColor(%q) kind = %v, want %v", tt.raw, got, tt.kind)
		}
	}
}

func TestParseChar(t *testing.T) {
	got, err := parseChar("■", 0, "")
	if err != nil || got != '■' {
		t.Errorf("parseChar(■) = %q (%v)", got, err)
	}

	_, err = parseChar("ab", 0, "")
	if errKind(t, err) != InvalidValue {
		t.Errorf("parseChar on two characters should be InvalidValue")
	}
}

func TestParseBool(t *testing.T) {
	truthy := []string{"1", "t", "T", "true", "TRUE"}
	for _, raw := range truthy {
		got, err := parseBool(raw, 0, raw)
		if err != nil || !got {
			t.Errorf("parseBool(%q) = %v (%v), want true", raw, got, err)
		}
	}
	falsy := []string{"0", "f", "F", "false", "False"}
	for _, raw := range falsy {
		got, err := parseBool(raw, 0, raw)
		if err != nil || got {
			t.Errorf("parseBool(%q) = %v (%v), want false", raw, got, err)
		}
	}

	_, err := parseBool("yes", 0, "cascade = yes")
	if errKind(t, err) != InvalidValue {
		t.Errorf("parseBool on bad input should be InvalidValue")
	}
}

func TestParseErrorRendering(t *testing.T) {
	pe := newError(UnknownSetting, 4, "speed = 9", "Use fps instead.")
	want := "Error on line 5: speed = 9\nUnknown setting\nUse fps instead."
	if pe.Error() != want {
		t.Errorf("Error() = %q, want %q", pe.Error(), want)
	}

	pe = newError(InvalidLineFormat, 0, "foo", "")
	want = "Error on line 1: foo\nInvalid line format"
	if pe.Error() != want {
		t.Errorf("Error() = %q, want %q", pe.Error(), want)
	}
}
