package ansimage

import (
	"fmt"
	"io"
	"strings"
)

const (
	// cellSpan is the text a single cell paints: two blank characters,
	// approximating a square cell in a typical terminal font.
	cellSpan = "  "
	// styleReset clears the background color at the end of every row so
	// the paint never bleeds past the image.
	styleReset = "\x1b[0m"
)

// RenderLines is the pure half of the renderer: it converts an opaque,
// already-resampled grid into one string per output row, quantizing
// through the 256-color palette when mode is Palette8Bit. It performs
// no I/O; writing is WriteLines' job.
func RenderLines(g *PixelGrid, mode ColorMode) []string {
	lines := make([]string, 0, g.Height())

	var sb strings.Builder
	for y := 0; y < g.Height(); y++ {
		sb.Reset()
		// Escape prefix plus span is ~21 bytes per cell in truecolor.
		sb.Grow(g.Width()*24 + len(styleReset))
		for x := 0; x < g.Width(); x++ {
			p := g.At(x, y)
			if mode == TrueColor {
				fmt.Fprintf(&sb, "\x1b[48;2;%d;%d;%dm%s", p.R, p.G, p.B, cellSpan)
			} else {
				fmt.Fprintf(&sb, "\x1b[48;5;%dm%s", QuantizeANSI256(p.R, p.G, p.B), cellSpan)
			}
		}
		sb.WriteString(styleReset)
		lines = append(lines, sb.String())
	}
	return lines
}

// WriteLines writes rendered rows to w, one per line. The full image is
// written before it returns.
func WriteLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write render output: %w", err)
		}
	}
	return nil
}
