package ansimage

import (
	"github.com/nfnt/resize"
)

// Resample scales the grid to exactly the planned cell dimensions.
// The interpolation function is chosen by workload: bilinear for heavy
// downscales (cheap anti-aliasing), nearest-neighbor otherwise.
func (g *PixelGrid) Resample(plan RenderPlan) *PixelGrid {
	if g.Width() == plan.Columns && g.Height() == plan.Rows {
		return g
	}

	sourcePixels := g.Width() * g.Height()
	targetPixels := plan.Columns * plan.Rows

	var interp resize.InterpolationFunction
	if sourcePixels > targetPixels*4 {
		interp = resize.Bilinear
	} else {
		interp = resize.NearestNeighbor
	}

	resized := resize.Resize(uint(plan.Columns), uint(plan.Rows), g.img, interp)
	return GridFromImage(resized)
}
