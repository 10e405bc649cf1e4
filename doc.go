/*
Package ansimage renders raster images as colored text in a terminal by
mapping pixels to colored blank cells painted with ANSI escape
sequences. It emits 24-bit color when the terminal advertises true
color support and falls back to the 256-color palette otherwise.

The pipeline is a straight line: load and decode the source (a local
file or an http(s) URL), plan the output size in terminal cells,
resample the pixel grid to that size, resolve transparency into opaque
colors, quantize for the 256-color palette when needed, and emit one
escape-sequence string per row.

Basic usage:

	// Simple one-liner
	img, _ := ansimage.Open("image.png")
	img.Print()

	// With configuration
	img, err := ansimage.Open("https://example.com/cat.jpg")
	if err != nil {
	    log.Fatal(err)
	}
	spec, _ := ansimage.ParseWidthSpec("50%")
	err = img.Width(spec).Alpha(ansimage.AlphaWhiten).Print()
	if err != nil {
	    log.Fatal(err)
	}

Color detection happens once per render and can be overridden:

	img.Color(ansimage.TrueColor)

The pure transformation is also available directly, which keeps the
color mapping testable apart from terminal I/O:

	lines := ansimage.RenderLines(grid, ansimage.Palette8Bit)
	ansimage.WriteLines(os.Stdout, lines)

Supported formats are PNG, JPEG, and GIF from the standard library plus
BMP, TIFF, and WebP via golang.org/x/image.
*/
package ansimage
