package ansimage

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// cellAspect compensates for terminal character cells being roughly
// twice as tall as they are wide, so the rendered image keeps the
// source aspect ratio instead of appearing vertically stretched.
const cellAspect = 0.5

// WidthSpec is the requested output width: an absolute cell count, a
// percentage of the terminal width, or auto (the full terminal width).
type WidthSpec struct {
	columns int
	percent float64
	auto    bool
}

// AutoWidth requests the full terminal width.
func AutoWidth() WidthSpec { return WidthSpec{auto: true} }

// AbsoluteWidth requests an exact number of cell columns.
func AbsoluteWidth(columns int) WidthSpec { return WidthSpec{columns: columns} }

// PercentWidth requests a percentage of the terminal width.
func PercentWidth(percent float64) WidthSpec { return WidthSpec{percent: percent} }

// ParseWidthSpec parses a --width argument: empty means auto, a "%"
// suffix means percentage, anything else is an absolute cell count.
func ParseWidthSpec(s string) (WidthSpec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return AutoWidth(), nil
	}
	if strings.HasSuffix(s, "%") {
		p, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return WidthSpec{}, fmt.Errorf("%w: %q is not a percentage", ErrInvalidWidth, s)
		}
		if p <= 0 || p > 100 {
			return WidthSpec{}, fmt.Errorf("%w: percentage %v out of range (0, 100]", ErrInvalidWidth, p)
		}
		return PercentWidth(p), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return WidthSpec{}, fmt.Errorf("%w: %q is not a column count", ErrInvalidWidth, s)
	}
	if n <= 0 {
		return WidthSpec{}, fmt.Errorf("%w: column count %d must be positive", ErrInvalidWidth, n)
	}
	return AbsoluteWidth(n), nil
}

// RenderPlan is the target output size in terminal cells, computed once
// per invocation.
type RenderPlan struct {
	Columns int
	Rows    int
}

// Plan computes the output dimensions for a source image of srcW x srcH
// pixels. termCols is the current terminal column count; pass a value
// <= 0 when the size is unknown, in which case percentage and auto
// widths fail with ErrTerminalSize.
func (s WidthSpec) Plan(srcW, srcH, termCols int) (RenderPlan, error) {
	if srcW <= 0 || srcH <= 0 {
		return RenderPlan{}, fmt.Errorf("%w: source image is %dx%d", ErrDecode, srcW, srcH)
	}

	var columns int
	switch {
	case s.columns > 0:
		columns = s.columns
	case s.percent > 0:
		if s.percent > 100 {
			return RenderPlan{}, fmt.Errorf("%w: percentage %v out of range (0, 100]", ErrInvalidWidth, s.percent)
		}
		if termCols <= 0 {
			return RenderPlan{}, fmt.Errorf("%w: pass --width explicitly", ErrTerminalSize)
		}
		columns = int(math.Round(s.percent / 100 * float64(termCols)))
	case s.auto:
		if termCols <= 0 {
			return RenderPlan{}, fmt.Errorf("%w: pass --width explicitly", ErrTerminalSize)
		}
		columns = termCols
	default:
		return RenderPlan{}, fmt.Errorf("%w: width must be positive", ErrInvalidWidth)
	}
	if columns < 1 {
		columns = 1
	}

	rows := int(math.Round(float64(columns) * float64(srcH) / float64(srcW) * cellAspect))
	if rows < 1 {
		rows = 1
	}

	return RenderPlan{Columns: columns, Rows: rows}, nil
}

// TerminalColumns reports the current terminal width in cells, or
// ErrTerminalSize when stdout is not a terminal (e.g. redirected).
func TerminalColumns() (int, error) {
	cols, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTerminalSize, err)
	}
	return cols, nil
}
