package ansimage

import (
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/mosaic"
)

// Image is the rendering pipeline behind a fluent API: configure the
// source and options, then Render or Print. The pipeline is strictly
// sequential: resolve source, plan dimensions, resample, composite,
// quantize (when in palette mode), emit.
type Image struct {
	source image.Image
	reader io.Reader
	path   string

	width      WidthSpec
	alpha      AlphaMode
	mode       ColorMode
	modeForced bool
	dither     bool
	halfblocks bool

	// Terminal column lookup, swappable for tests.
	termCols func() (int, error)
}

// New creates an Image from an already-decoded image.Image.
func New(img image.Image) *Image {
	if img == nil {
		return nil
	}
	i := newImage()
	i.source = img
	return i
}

// Open creates an Image from a local file path or an http(s) URL.
func Open(pathOrURL string) (*Image, error) {
	if pathOrURL == "" {
		return nil, fmt.Errorf("%w: path cannot be empty", ErrSourceUnavailable)
	}
	i := newImage()
	i.path = pathOrURL
	return i, nil
}

// From creates an Image from an io.Reader of encoded image bytes.
func From(r io.Reader) *Image {
	if r == nil {
		return nil
	}
	i := newImage()
	i.reader = r
	return i
}

func newImage() *Image {
	return &Image{
		width:    AutoWidth(),
		alpha:    AlphaThreshold,
		termCols: TerminalColumns,
	}
}

// Width sets the requested output width.
func (i *Image) Width(spec WidthSpec) *Image {
	i.width = spec
	return i
}

// Alpha sets how transparency is resolved.
func (i *Image) Alpha(mode AlphaMode) *Image {
	i.alpha = mode
	return i
}

// Color forces a color mode instead of detecting one from the
// environment.
func (i *Image) Color(mode ColorMode) *Image {
	i.mode = mode
	i.modeForced = true
	return i
}

// Dither enables Floyd-Steinberg dithering; it only affects output in
// Palette8Bit mode, where quantization error is worth diffusing.
func (i *Image) Dither(d bool) *Image {
	i.dither = d
	return i
}

// Halfblocks switches to Unicode half-block rendering, which doubles
// the effective vertical resolution at the cost of requiring half-block
// glyph support in the terminal font.
func (i *Image) Halfblocks(h bool) *Image {
	i.halfblocks = h
	return i
}

// Render produces the full escape-sequence output as a string.
func (i *Image) Render() (string, error) {
	lines, err := i.renderLines()
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n") + "\n", nil
}

// Print renders and writes the image to stdout. The whole image is
// written before Print returns.
func (i *Image) Print() error {
	return i.WriteTo(os.Stdout)
}

// WriteTo renders and writes the image to w.
func (i *Image) WriteTo(w io.Writer) error {
	lines, err := i.renderLines()
	if err != nil {
		return err
	}
	return WriteLines(w, lines)
}

func (i *Image) renderLines() ([]string, error) {
	grid, err := i.loadGrid()
	if err != nil {
		return nil, err
	}

	termCols := 0
	if cols, err := i.termCols(); err == nil {
		termCols = cols
	}

	plan, err := i.width.Plan(grid.Width(), grid.Height(), termCols)
	if err != nil {
		return nil, err
	}

	if i.halfblocks {
		return i.renderHalfblocks(grid, plan)
	}

	mode := i.mode
	if !i.modeForced {
		mode = DetectColorMode()
	}

	grid = grid.Resample(plan).Composite(i.alpha)
	if i.dither && mode == Palette8Bit {
		grid = grid.Dither()
	}

	return RenderLines(grid, mode), nil
}

// renderHalfblocks delegates cell emission to mosaic. Half-block cells
// are one character wide, so the plan's row count (sized for two-wide
// cells) is recomputed by mosaic from the width to keep the aspect.
func (i *Image) renderHalfblocks(grid *PixelGrid, plan RenderPlan) ([]string, error) {
	composited := grid.Composite(i.alpha)
	m := mosaic.New().Width(plan.Columns).Dither(i.dither)
	out := m.Render(composited.Image())
	return strings.Split(strings.TrimRight(out, "\n"), "\n"), nil
}

func (i *Image) loadGrid() (*PixelGrid, error) {
	switch {
	case i.source != nil:
		return GridFromImage(i.source), nil
	case i.path != "":
		return LoadGrid(i.path)
	case i.reader != nil:
		return DecodeGrid(i.reader)
	default:
		return nil, fmt.Errorf("%w: no image source configured", ErrSourceUnavailable)
	}
}
