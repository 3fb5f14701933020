package tui

import (
	"image"

	"github.com/vovakirdan/antarctic/internal/core"
)

// Coverage thresholds for the block runes a sprite cell is drawn with.
const (
	fullCoverage = 0.6
	halfCoverage = 0.3
)

// CellSurface draws a game's virtual pixel space into a character screen.
// Each cell stands for a box of virtual pixels; text is not scaled.
type CellSurface struct {
	screen *core.Screen
	vw, vh int // Virtual pixel size
}

// NewCellSurface creates a surface that maps a vw x vh virtual space onto screen.
func NewCellSurface(screen *core.Screen, vw, vh int) *CellSurface {
	return &CellSurface{screen: screen, vw: vw, vh: vh}
}

// Size returns the virtual pixel dimensions.
func (s *CellSurface) Size() (int, int) {
	return s.vw, s.vh
}

// cellX converts a virtual x coordinate to a column.
func (s *CellSurface) cellX(x int) int {
	return floorDiv(x*s.screen.Width(), s.vw)
}

// cellY converts a virtual y coordinate to a row.
func (s *CellSurface) cellY(y int) int {
	return floorDiv(y*s.screen.Height(), s.vh)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FillRect clears the cells covered by r and gives them color c.
func (s *CellSurface) FillRect(r image.Rectangle, c core.Color) {
	x0, x1 := s.cellX(r.Min.X), s.cellX(r.Max.X)
	y0, y1 := s.cellY(r.Min.Y), s.cellY(r.Max.Y)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetCell(x, y, core.Cell{Rune: ' ', Color: c})
		}
	}
}

// DrawLine draws a line in cell space with a rune matching its slope.
func (s *CellSurface) DrawLine(x0, y0, x1, y1 int, c core.Color) {
	cx0, cy0 := s.cellX(x0), s.cellY(y0)
	cx1, cy1 := s.cellX(x1), s.cellY(y1)
	// The far end sits on the next cell boundary; keep it on screen
	cx1 = core.Clamp(cx1, 0, s.screen.Width()-1)
	cy1 = core.Clamp(cy1, 0, s.screen.Height()-1)

	r := lineRune(cx1-cx0, cy1-cy0)
	bresenham(cx0, cy0, cx1, cy1, func(x, y int) {
		s.screen.SetCell(x, y, core.Cell{Rune: r, Color: c})
	})
}

// lineRune picks the box-drawing rune closest to a direction.
func lineRune(dx, dy int) rune {
	switch {
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

// bresenham calls plot for every cell on the line from (x0, y0) to (x1, y1).
func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy > 0 {
		dy = -dy
	}
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// cellCoverage accumulates the sprite pixels that fall into one cell.
type cellCoverage struct {
	total  int // Sprite pixels inside the cell
	opaque int
	votes  map[core.Color]int
}

// DrawImage downsamples a paletted sprite into cells. Each touched cell
// takes the most common opaque color and a block rune for how much of the
// sprite's part in that cell is opaque.
func (s *CellSurface) DrawImage(img *image.Paletted, at image.Point) {
	b := img.Bounds()
	cells := make(map[image.Point]*cellCoverage)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		cy := s.cellY(at.Y + y - b.Min.Y)
		for x := b.Min.X; x < b.Max.X; x++ {
			key := image.Pt(s.cellX(at.X+x-b.Min.X), cy)
			acc := cells[key]
			if acc == nil {
				acc = &cellCoverage{votes: make(map[core.Color]int)}
				cells[key] = acc
			}
			acc.total++
			if c, ok := core.PaletteColor(img.ColorIndexAt(x, y)); ok {
				acc.opaque++
				acc.votes[c]++
			}
		}
	}

	for p, acc := range cells {
		if acc.opaque == 0 {
			continue
		}
		ratio := float64(acc.opaque) / float64(acc.total)
		s.screen.SetCell(p.X, p.Y, core.Cell{Rune: coverageRune(ratio), Color: acc.dominant()})
	}
}

// dominant returns the color with the most votes; ties go to the lower color.
func (acc *cellCoverage) dominant() core.Color {
	best, bestN := core.ColorDefault, -1
	for c, n := range acc.votes {
		if n > bestN || (n == bestN && c < best) {
			best, bestN = c, n
		}
	}
	return best
}

func coverageRune(ratio float64) rune {
	switch {
	case ratio >= fullCoverage:
		return '█'
	case ratio >= halfCoverage:
		return '▓'
	default:
		return '▒'
	}
}

// DrawText writes text starting at the cell containing at.
func (s *CellSurface) DrawText(at image.Point, text string, c core.Color) {
	s.screen.DrawText(s.cellX(at.X), s.cellY(at.Y), text, c)
}

// DrawTextCentered writes text centered on the cell containing center.
func (s *CellSurface) DrawTextCentered(center image.Point, text string, c core.Color) {
	n := len([]rune(text))
	s.screen.DrawText(s.cellX(center.X)-n/2, s.cellY(center.Y), text, c)
}

var _ core.Surface = (*CellSurface)(nil)
