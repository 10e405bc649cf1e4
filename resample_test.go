package ansimage

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradientImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8((x * 255) / w),
				G: uint8((y * 255) / h),
				B: uint8((x + y) % 255),
				A: 255,
			})
		}
	}
	return img
}

func TestResampleDimensionsMatchPlan(t *testing.T) {
	tests := []struct {
		name       string
		srcW, srcH int
		plan       RenderPlan
	}{
		{name: "downscale square", srcW: 100, srcH: 100, plan: RenderPlan{Columns: 50, Rows: 25}},
		{name: "upscale small", srcW: 4, srcH: 4, plan: RenderPlan{Columns: 16, Rows: 8}},
		{name: "heavy downscale", srcW: 1000, srcH: 800, plan: RenderPlan{Columns: 20, Rows: 8}},
		{name: "single cell", srcW: 64, srcH: 64, plan: RenderPlan{Columns: 1, Rows: 1}},
		{name: "already matching", srcW: 30, srcH: 10, plan: RenderPlan{Columns: 30, Rows: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := GridFromImage(gradientImage(tt.srcW, tt.srcH))
			out := grid.Resample(tt.plan)
			assert.Equal(t, tt.plan.Columns, out.Width())
			assert.Equal(t, tt.plan.Rows, out.Height())
		})
	}
}

func TestResampleSolidColorPreserved(t *testing.T) {
	c := color.NRGBA{R: 42, G: 84, B: 168, A: 255}
	grid := GridFromImage(solidImage(60, 40, c))

	out := grid.Resample(RenderPlan{Columns: 10, Rows: 5})
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			assert.Equal(t, c, out.At(x, y))
		}
	}
}

func TestResampleDoesNotMutateSource(t *testing.T) {
	grid := GridFromImage(gradientImage(20, 20))
	before := grid.At(3, 7)

	_ = grid.Resample(RenderPlan{Columns: 5, Rows: 5})

	assert.Equal(t, before, grid.At(3, 7))
	assert.Equal(t, 20, grid.Width())
	assert.Equal(t, 20, grid.Height())
}

func TestGridFromImagePremultipliedSource(t *testing.T) {
	// An RGBA (premultiplied) source converts back to straight alpha.
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.Set(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 128})

	grid := GridFromImage(src)
	got := grid.At(0, 0)
	require.Equal(t, uint8(128), got.A)
	assert.InDelta(t, 200, int(got.R), 2)
	assert.InDelta(t, 100, int(got.G), 2)
	assert.InDelta(t, 50, int(got.B), 2)
}

func TestCompositeGridFullyOpaque(t *testing.T) {
	grid := GridFromImage(gradientImage(6, 6))
	out := grid.Composite(AlphaThreshold)

	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			assert.Equal(t, uint8(255), out.At(x, y).A)
		}
	}
}
