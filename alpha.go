package ansimage

import (
	"fmt"
	"strings"
)

// AlphaMode defines how a pixel's alpha channel is folded into its RGB
// value before rendering. Every mode yields a fully opaque color.
type AlphaMode int

const (
	// AlphaThreshold treats pixels below the cutoff as fully transparent
	// (composited against black) and everything else as fully opaque.
	AlphaThreshold AlphaMode = iota
	// AlphaWhiten linearly blends toward white as alpha decreases.
	AlphaWhiten
	// AlphaBlacken linearly blends toward black as alpha decreases.
	AlphaBlacken
)

// alphaCutoff is the AlphaThreshold transparency cutoff: half of the
// 8-bit alpha range.
const alphaCutoff = 128

func (m AlphaMode) String() string {
	switch m {
	case AlphaThreshold:
		return "threshold"
	case AlphaWhiten:
		return "whiten"
	case AlphaBlacken:
		return "blacken"
	default:
		return "unknown"
	}
}

// ParseAlphaMode maps a --alpha argument to an AlphaMode. Empty input
// selects the default, threshold.
func ParseAlphaMode(s string) (AlphaMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "threshold":
		return AlphaThreshold, nil
	case "whiten":
		return AlphaWhiten, nil
	case "blacken":
		return AlphaBlacken, nil
	default:
		return AlphaThreshold, fmt.Errorf("%w: %q (want threshold, whiten, or blacken)", ErrInvalidAlpha, s)
	}
}

// Composite resolves one pixel to an opaque RGB triple. A fully opaque
// input pixel comes through unchanged under every mode.
func (m AlphaMode) Composite(r, g, b, a uint8) (uint8, uint8, uint8) {
	switch m {
	case AlphaWhiten:
		return blend(r, 0xff, a), blend(g, 0xff, a), blend(b, 0xff, a)
	case AlphaBlacken:
		return blend(r, 0x00, a), blend(g, 0x00, a), blend(b, 0x00, a)
	default:
		if a < alphaCutoff {
			return 0, 0, 0
		}
		return r, g, b
	}
}

// blend linearly interpolates between c (at full alpha) and bg (at zero
// alpha), rounding to nearest.
func blend(c, bg, a uint8) uint8 {
	return uint8((int(c)*int(a) + int(bg)*(255-int(a)) + 127) / 255)
}
