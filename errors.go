package ansimage

import "errors"

// Sentinel errors returned by the rendering pipeline. Callers match them
// with errors.Is; wrapped messages carry the operation-specific context.
var (
	// ErrInvalidWidth is returned for a non-positive absolute width or a
	// percentage outside (0, 100].
	ErrInvalidWidth = errors.New("invalid width")

	// ErrInvalidAlpha is returned for an unrecognized alpha mode name.
	ErrInvalidAlpha = errors.New("invalid alpha mode")

	// ErrSourceUnavailable is returned when the image path does not exist
	// or the URL fetch fails.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrDecode is returned when the source bytes are not a supported
	// image format.
	ErrDecode = errors.New("image decode failed")

	// ErrTerminalSize is returned when the width is unspecified or a
	// percentage and the terminal size cannot be determined.
	ErrTerminalSize = errors.New("terminal size unavailable")
)
