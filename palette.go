package ansimage

import "image/color"

// Palette256 is the standard xterm 256-color palette: 16 basic colors,
// a 6x6x6 color cube (indices 16-231), and a 24-step grayscale ramp
// (indices 232-255). Index N here is the N the terminal understands in
// an ESC[48;5;Nm sequence.
var Palette256 = buildPalette256()

// basic16 holds the conventional xterm values for the 16 base colors.
// Terminals are free to theme these, but they are the palette's
// canonical anchors (0 is black, 15 is white).
var basic16 = [16][3]uint8{
	{0x00, 0x00, 0x00}, {0x80, 0x00, 0x00}, {0x00, 0x80, 0x00}, {0x80, 0x80, 0x00},
	{0x00, 0x00, 0x80}, {0x80, 0x00, 0x80}, {0x00, 0x80, 0x80}, {0xc0, 0xc0, 0xc0},
	{0x80, 0x80, 0x80}, {0xff, 0x00, 0x00}, {0x00, 0xff, 0x00}, {0xff, 0xff, 0x00},
	{0x00, 0x00, 0xff}, {0xff, 0x00, 0xff}, {0x00, 0xff, 0xff}, {0xff, 0xff, 0xff},
}

// cubeLevel maps a cube coordinate (0-5) to its 8-bit channel value.
func cubeLevel(i int) uint8 {
	if i == 0 {
		return 0
	}
	return uint8(55 + 40*i)
}

func buildPalette256() color.Palette {
	pal := make(color.Palette, 0, 256)
	for _, c := range basic16 {
		pal = append(pal, color.NRGBA{R: c[0], G: c[1], B: c[2], A: 0xff})
	}
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				pal = append(pal, color.NRGBA{R: cubeLevel(r), G: cubeLevel(g), B: cubeLevel(b), A: 0xff})
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := uint8(8 + 10*i)
		pal = append(pal, color.NRGBA{R: v, G: v, B: v, A: 0xff})
	}
	return pal
}

// QuantizeANSI256 maps an opaque RGB triple to the nearest palette
// entry by squared Euclidean distance. Ties go to the lowest index, so
// identical input always yields an identical index: pure black maps to
// 0 and pure white to 15 even though the cube repeats both.
func QuantizeANSI256(r, g, b uint8) uint8 {
	best := 0
	bestDist := 1 << 30
	for i, entry := range Palette256 {
		e := entry.(color.NRGBA)
		dr := int(r) - int(e.R)
		dg := int(g) - int(e.G)
		db := int(b) - int(e.B)
		dist := dr*dr + dg*dg + db*db
		if dist < bestDist {
			best = i
			bestDist = dist
			if dist == 0 {
				break
			}
		}
	}
	return uint8(best)
}
