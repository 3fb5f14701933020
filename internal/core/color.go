package core

import "image/color"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBlack
	ColorSky
	ColorNavy
	ColorSilver

	colorCount
)

// rgba holds the pixel value of each color for surfaces that draw real pixels.
var rgba = [colorCount]color.RGBA{
	ColorDefault:       {R: 255, G: 255, B: 255, A: 255},
	ColorRed:           {R: 205, G: 0, B: 0, A: 255},
	ColorGreen:         {R: 0, G: 205, B: 0, A: 255},
	ColorYellow:        {R: 205, G: 205, B: 0, A: 255},
	ColorBlue:          {R: 0, G: 0, B: 238, A: 255},
	ColorMagenta:       {R: 205, G: 0, B: 205, A: 255},
	ColorCyan:          {R: 0, G: 205, B: 205, A: 255},
	ColorWhite:         {R: 229, G: 229, B: 229, A: 255},
	ColorBrightRed:     {R: 255, G: 0, B: 0, A: 255},
	ColorBrightGreen:   {R: 0, G: 255, B: 0, A: 255},
	ColorBrightYellow:  {R: 255, G: 255, B: 0, A: 255},
	ColorBrightBlue:    {R: 92, G: 92, B: 255, A: 255},
	ColorBrightMagenta: {R: 255, G: 0, B: 255, A: 255},
	ColorBrightCyan:    {R: 0, G: 255, B: 255, A: 255},
	ColorBrightWhite:   {R: 255, G: 255, B: 255, A: 255},
	ColorOrange:        {R: 255, G: 165, B: 0, A: 255},
	ColorGray:          {R: 138, G: 138, B: 138, A: 255},
	ColorBlack:         {R: 0, G: 0, B: 0, A: 255},
	ColorSky:           {R: 123, G: 183, B: 239, A: 255},
	ColorNavy:          {R: 0, G: 50, B: 100, A: 255},
	ColorSilver:        {R: 192, G: 192, B: 192, A: 255},
}

// RGBA returns the pixel value for the color.
// Unknown colors map to opaque white.
func (c Color) RGBA() color.RGBA {
	if c >= colorCount {
		return rgba[ColorDefault]
	}
	return rgba[c]
}

// Palette returns a palette where index 0 is fully transparent and
// index i+1 holds Color(i). Sprites rasterised against it can be read
// back as cell colors with PaletteColor.
func Palette() color.Palette {
	p := make(color.Palette, 0, colorCount+1)
	p = append(p, color.RGBA{})
	for c := Color(0); c < colorCount; c++ {
		p = append(p, rgba[c])
	}
	return p
}

// PaletteIndex returns the index of c in Palette().
func PaletteIndex(c Color) uint8 {
	return uint8(c) + 1
}

// PaletteColor is the inverse of PaletteIndex.
// The second return is false for the transparent index.
func PaletteColor(idx uint8) (Color, bool) {
	if idx == 0 || Color(idx-1) >= colorCount {
		return ColorDefault, false
	}
	return Color(idx - 1), true
}
