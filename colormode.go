package ansimage

import (
	"fmt"
	"os"
	"strings"
)

// ColorMode selects which escape-sequence format the renderer emits.
// It is detected (or forced) once per invocation and threaded through
// the pipeline as a value; nothing re-reads the environment mid-render.
type ColorMode int

const (
	// Palette8Bit emits 256-color escape sequences (the safe fallback).
	Palette8Bit ColorMode = iota
	// TrueColor emits 24-bit RGB escape sequences.
	TrueColor
)

func (m ColorMode) String() string {
	switch m {
	case TrueColor:
		return "truecolor"
	case Palette8Bit:
		return "256"
	default:
		return "unknown"
	}
}

// DetectColorMode inspects terminal identity signals in the environment
// and reports whether 24-bit color output is safe. It never fails:
// unknown or ambiguous environments fall back to Palette8Bit.
func DetectColorMode() ColorMode {
	// COLORTERM is the most direct signal and what most terminals set.
	colorterm := os.Getenv("COLORTERM")
	if strings.EqualFold(colorterm, "truecolor") || strings.EqualFold(colorterm, "24bit") {
		return TrueColor
	}

	// Some terminals advertise direct color through TERM instead.
	termEnv := os.Getenv("TERM")
	switch {
	case strings.Contains(termEnv, "truecolor"):
		return TrueColor
	case strings.Contains(termEnv, "direct"):
		return TrueColor
	case strings.Contains(strings.ToLower(termEnv), "kitty"):
		return TrueColor
	}

	// Known terminal programs with true color support that don't always
	// export COLORTERM (notably over ssh).
	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "ghostty", "vscode", "rio", "Hyper":
		return TrueColor
	}

	switch {
	case os.Getenv("KITTY_WINDOW_ID") != "":
		return TrueColor
	case os.Getenv("WT_SESSION") != "": // Windows Terminal
		return TrueColor
	case os.Getenv("ConEmuANSI") == "ON":
		return TrueColor
	}

	return Palette8Bit
}

// ParseColorMode maps a user-supplied mode name to a ColorMode, with
// "auto" (or empty) deferring to detection.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return DetectColorMode(), nil
	case "truecolor", "24bit":
		return TrueColor, nil
	case "256", "8bit", "palette":
		return Palette8Bit, nil
	default:
		return Palette8Bit, fmt.Errorf("unknown color mode %q (want auto, truecolor, or 256)", s)
	}
}
