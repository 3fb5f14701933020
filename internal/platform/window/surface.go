package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/antarctic/internal/core"
)

// Debug font metrics of ebitenutil.DebugPrint.
const (
	glyphW = 6
	glyphH = 16
)

// maxTextures bounds the sprite texture cache.
const maxTextures = 512

// PixelSurface draws a game straight into an ebiten image, one virtual
// pixel per logical screen pixel.
type PixelSurface struct {
	dst      *ebiten.Image
	w, h     int
	textures map[*image.Paletted]*ebiten.Image
	scratch  *ebiten.Image // Text is printed here in white, then tinted
}

// NewPixelSurface creates a surface for a w x h logical screen.
func NewPixelSurface(w, h int) *PixelSurface {
	return &PixelSurface{
		w:        w,
		h:        h,
		textures: make(map[*image.Paletted]*ebiten.Image),
	}
}

// Target sets the image the next frame is drawn into.
func (s *PixelSurface) Target(dst *ebiten.Image) {
	s.dst = dst
}

// Size returns the logical screen size.
func (s *PixelSurface) Size() (int, int) {
	return s.w, s.h
}

// FillRect fills r with a solid color.
func (s *PixelSurface) FillRect(r image.Rectangle, c core.Color) {
	vector.FillRect(s.dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c.RGBA(), false)
}

// DrawLine draws a one pixel wide line.
func (s *PixelSurface) DrawLine(x0, y0, x1, y1 int, c core.Color) {
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), 1, c.RGBA(), false)
}

// DrawImage draws a sprite raster. Rasters are cached by the game, so
// their textures are cached by pointer.
func (s *PixelSurface) DrawImage(img *image.Paletted, at image.Point) {
	tex, ok := s.textures[img]
	if !ok {
		if len(s.textures) >= maxTextures {
			for k, t := range s.textures {
				t.Deallocate()
				delete(s.textures, k)
			}
		}
		tex = ebiten.NewImageFromImage(img)
		s.textures[img] = tex
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	s.dst.DrawImage(tex, op)
}

// DrawText draws text with the debug font, tinted to c.
func (s *PixelSurface) DrawText(at image.Point, text string, c core.Color) {
	w := len([]rune(text)) * glyphW
	if w == 0 {
		return
	}
	if s.scratch == nil || s.scratch.Bounds().Dx() < w {
		if s.scratch != nil {
			s.scratch.Deallocate()
		}
		s.scratch = ebiten.NewImage(core.Max(w, 256), glyphH)
	}
	s.scratch.Clear()
	ebitenutil.DebugPrintAt(s.scratch, text, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.ColorScale.ScaleWithColor(c.RGBA())
	s.dst.DrawImage(s.scratch.SubImage(image.Rect(0, 0, w, glyphH)).(*ebiten.Image), op)
}

// DrawTextCentered draws text centered on center.
func (s *PixelSurface) DrawTextCentered(center image.Point, text string, c core.Color) {
	w := len([]rune(text)) * glyphW
	s.DrawText(image.Pt(center.X-w/2, center.Y-glyphH/2), text, c)
}

var _ core.Surface = (*PixelSurface)(nil)
