package scrollbox

import "errors"

// Configuration errors returned by New.
var (
	// ErrInvalidSize is returned when width or height is not positive.
	ErrInvalidSize = errors.New("scrollbox: width and height must be positive")

	// ErrInvalidSpacing is returned when the line spacing multiplier is not positive.
	ErrInvalidSpacing = errors.New("scrollbox: line spacing must be positive")

	// ErrInvalidDuration is returned when the default animation time is negative.
	ErrInvalidDuration = errors.New("scrollbox: animation time must not be negative")

	// ErrNilFont is returned when no font collaborator is configured.
	ErrNilFont = errors.New("scrollbox: font must not be nil")

	// ErrNilRasterizer is returned when no rasterizer collaborator is
	// configured and the font does not provide one.
	ErrNilRasterizer = errors.New("scrollbox: rasterizer must not be nil")
)
