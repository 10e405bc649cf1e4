package ansimage

import (
	"image"
	"image/color"
	"image/draw"
)

// PixelGrid is a row-major grid of non-premultiplied RGBA pixels with
// explicit dimensions. It is immutable once constructed: pipeline stages
// return new grids instead of mutating their input.
type PixelGrid struct {
	img *image.NRGBA
}

// GridFromImage normalizes any decoded image into a PixelGrid, converting
// through image/draw so every source color model ends up as straight
// (non-premultiplied) RGBA.
func GridFromImage(src image.Image) *PixelGrid {
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
	return &PixelGrid{img: dst}
}

// Width returns the number of pixel columns.
func (g *PixelGrid) Width() int { return g.img.Rect.Dx() }

// Height returns the number of pixel rows.
func (g *PixelGrid) Height() int { return g.img.Rect.Dy() }

// At returns the pixel at (x, y) as straight RGBA.
func (g *PixelGrid) At(x, y int) color.NRGBA {
	return g.img.NRGBAAt(x, y)
}

// Image exposes the grid as an image.Image for interop with resizing and
// dithering libraries. Callers must not modify the returned image.
func (g *PixelGrid) Image() image.Image { return g.img }

// Composite resolves every pixel's alpha channel under the given mode,
// returning a fully opaque grid. The receiver is left untouched.
func (g *PixelGrid) Composite(mode AlphaMode) *PixelGrid {
	w, h := g.Width(), g.Height()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := g.At(x, y)
			r, gg, b := mode.Composite(p.R, p.G, p.B, p.A)
			dst.SetNRGBA(x, y, color.NRGBA{R: r, G: gg, B: b, A: 0xff})
		}
	}
	return &PixelGrid{img: dst}
}

// Dither maps the grid onto the 256-color ANSI palette with
// Floyd-Steinberg error diffusion. Every pixel of the result is an exact
// palette color, so quantizing the dithered grid is lossless.
func (g *PixelGrid) Dither() *PixelGrid {
	bounds := g.img.Bounds()
	paletted := image.NewPaletted(bounds, Palette256)
	draw.FloydSteinberg.Draw(paletted, bounds, g.img, image.Point{})
	return GridFromImage(paletted)
}
