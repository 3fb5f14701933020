package core

import "image"

// Surface receives draw commands in the game's virtual pixel space.
// Platforms implement it for their output device; games never know
// whether they are drawing into terminal cells or window pixels.
type Surface interface {
	// Size returns the virtual pixel dimensions the game draws into.
	Size() (w, h int)

	// FillRect fills r with a solid color.
	FillRect(r image.Rectangle, c Color)

	// DrawLine draws a straight line between two points.
	DrawLine(x0, y0, x1, y1 int, c Color)

	// DrawImage draws img with its top-left corner at at.
	// Images use the Palette() color model; transparent pixels are skipped.
	DrawImage(img *image.Paletted, at image.Point)

	// DrawText draws text with its top-left corner at at.
	DrawText(at image.Point, text string, c Color)

	// DrawTextCentered draws text centered on center.
	DrawTextCentered(center image.Point, text string, c Color)
}
