package antarctic

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/vovakirdan/antarctic/internal/core"
)

// kappa places cubic Bezier control points for a quarter ellipse.
const kappa = 0.5522847498

// maxCachedRasters bounds each sprite's raster cache.
const maxCachedRasters = 256

type shapeKind int

const (
	shapeEllipse shapeKind = iota
	shapeRing              // Ellipse outline of the given width, drawn inward
	shapePolygon
)

// shape is one filled primitive in a sprite's base coordinate box.
type shape struct {
	kind   shapeKind
	color  core.Color
	x, y   float32 // Bounding box origin (ellipse, ring)
	w, h   float32 // Bounding box size (ellipse, ring)
	width  float32 // Ring thickness
	points [][2]float32
}

func ellipse(c core.Color, x, y, w, h float32) shape {
	return shape{kind: shapeEllipse, color: c, x: x, y: y, w: w, h: h}
}

func circle(c core.Color, cx, cy, r float32) shape {
	return ellipse(c, cx-r, cy-r, 2*r, 2*r)
}

func ring(c core.Color, x, y, w, h, width float32) shape {
	return shape{kind: shapeRing, color: c, x: x, y: y, w: w, h: h, width: width}
}

func polygon(c core.Color, pts ...[2]float32) shape {
	return shape{kind: shapePolygon, color: c, points: pts}
}

// Sprite is a resolution-independent picture made of filled shapes.
// Rasters are produced on demand and cached by pixel size, which is the
// projection scale quantised to whole pixels.
type Sprite struct {
	w, h   int
	shapes []shape
	cache  map[image.Point]*image.Paletted
}

func newSprite(w, h int, shapes ...shape) *Sprite {
	return &Sprite{
		w:      w,
		h:      h,
		shapes: shapes,
		cache:  make(map[image.Point]*image.Paletted),
	}
}

// Raster returns the sprite rasterised at exactly w x h pixels.
// Repeated calls with the same size return the same image.
func (s *Sprite) Raster(w, h int) *image.Paletted {
	key := image.Pt(w, h)
	if img, ok := s.cache[key]; ok {
		return img
	}
	if len(s.cache) >= maxCachedRasters {
		clear(s.cache)
	}
	img := s.rasterize(w, h)
	s.cache[key] = img
	return img
}

// CachedRasters returns how many sizes are currently cached.
func (s *Sprite) CachedRasters() int {
	return len(s.cache)
}

// rasterize paints every shape, in order, into a new paletted image.
func (s *Sprite) rasterize(w, h int) *image.Paletted {
	bounds := image.Rect(0, 0, w, h)
	dst := image.NewPaletted(bounds, core.Palette())
	mask := image.NewAlpha(bounds)
	z := vector.NewRasterizer(w, h)

	sx := float32(w) / float32(s.w)
	sy := float32(h) / float32(s.h)
	painted := false

	for _, sh := range s.shapes {
		z.Reset(w, h)
		z.DrawOp = draw.Src
		sh.path(z, sx, sy)

		for i := range mask.Pix {
			mask.Pix[i] = 0
		}
		z.Draw(mask, bounds, image.Opaque, image.Point{})

		idx := core.PaletteIndex(sh.color)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if mask.AlphaAt(x, y).A >= 0x80 {
					dst.SetColorIndex(x, y, idx)
					painted = true
				}
			}
		}
	}

	// Far-away sprites can shrink below the coverage threshold; keep a dot
	if !painted && len(s.shapes) > 0 {
		dst.SetColorIndex(w/2, h/2, core.PaletteIndex(s.shapes[0].color))
	}
	return dst
}

// path adds the shape's outline to the rasterizer, scaled by (sx, sy).
func (sh shape) path(z *vector.Rasterizer, sx, sy float32) {
	switch sh.kind {
	case shapeEllipse:
		ellipsePath(z, (sh.x+sh.w/2)*sx, (sh.y+sh.h/2)*sy, sh.w/2*sx, sh.h/2*sy, false)
	case shapeRing:
		cx, cy := (sh.x+sh.w/2)*sx, (sh.y+sh.h/2)*sy
		ellipsePath(z, cx, cy, sh.w/2*sx, sh.h/2*sy, false)
		// Opposite winding cuts the inner ellipse out of the outer one
		ellipsePath(z, cx, cy, (sh.w/2-sh.width)*sx, (sh.h/2-sh.width)*sy, true)
	case shapePolygon:
		if len(sh.points) < 3 {
			return
		}
		z.MoveTo(sh.points[0][0]*sx, sh.points[0][1]*sy)
		for _, p := range sh.points[1:] {
			z.LineTo(p[0]*sx, p[1]*sy)
		}
		z.ClosePath()
	}
}

// ellipsePath approximates an ellipse with four cubic Bezier segments.
func ellipsePath(z *vector.Rasterizer, cx, cy, rx, ry float32, reverse bool) {
	if rx <= 0 || ry <= 0 {
		return
	}
	kx, ky := kappa*rx, kappa*ry
	z.MoveTo(cx+rx, cy)
	if !reverse {
		z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
		z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
		z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
		z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	} else {
		z.CubeTo(cx+rx, cy-ky, cx+kx, cy-ry, cx, cy-ry)
		z.CubeTo(cx-kx, cy-ry, cx-rx, cy-ky, cx-rx, cy)
		z.CubeTo(cx-rx, cy+ky, cx-kx, cy+ry, cx, cy+ry)
		z.CubeTo(cx+kx, cy+ry, cx+rx, cy+ky, cx+rx, cy)
	}
	z.ClosePath()
}

// spriteSet holds the three procedural sprites of the game.
// Penguin: body, belly, eyes, beak, feet. Ice hole: water and rim. Fish: body, tail, eye.
type spriteSet struct {
	penguin *Sprite
	iceHole *Sprite
	fish    *Sprite
}

func newSpriteSet() spriteSet {
	return spriteSet{
		penguin: newSprite(40, 50,
			ellipse(core.ColorBlack, 5, 0, 30, 45),
			ellipse(core.ColorBrightWhite, 10, 10, 20, 30),
			circle(core.ColorBlack, 15, 20, 2),
			circle(core.ColorBlack, 25, 20, 2),
			polygon(core.ColorOrange, [2]float32{20, 25}, [2]float32{17, 29}, [2]float32{23, 29}),
			ellipse(core.ColorOrange, 10, 43, 10, 7),
			ellipse(core.ColorOrange, 20, 43, 10, 7),
		),
		iceHole: newSprite(150, 60,
			ellipse(core.ColorNavy, 0, 0, 150, 60),
			ring(core.ColorBrightWhite, 0, 0, 150, 60, 4),
		),
		fish: newSprite(60, 38,
			ellipse(core.ColorSilver, 0, 8, 45, 22),
			polygon(core.ColorSilver, [2]float32{42, 19}, [2]float32{60, 8}, [2]float32{60, 30}),
			circle(core.ColorBlack, 15, 18, 3),
		),
	}
}

// forKind returns the sprite that draws a world object kind.
func (s spriteSet) forKind(k Kind) *Sprite {
	if k == KindFish {
		return s.fish
	}
	return s.iceHole
}
