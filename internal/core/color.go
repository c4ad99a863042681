package core

// ColorKind discriminates between the supported color encodings.
type ColorKind uint8

const (
	// ColorDefault leaves the terminal's own foreground color in place.
	ColorDefault ColorKind = iota
	// ColorRGB is a 24-bit true-color value.
	ColorRGB
	// ColorAnsi is an ANSI 256-color palette index.
	ColorAnsi
)

// Color represents a foreground color for a screen cell, either a 24-bit RGB
// triple or an ANSI 256-color palette index. The zero value is the terminal
// default.
type Color struct {
	Kind    ColorKind
	R, G, B uint8 // Valid when Kind == ColorRGB
	Ansi    uint8 // Valid when Kind == ColorAnsi
}

// RGB creates a true-color value from red, green and blue components.
func RGB(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// AnsiColor creates a color from an ANSI 256-color palette index.
func AnsiColor(n uint8) Color {
	return Color{Kind: ColorAnsi, Ansi: n}
}
