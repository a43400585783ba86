package atlas

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the packer and unpacker input validation.
var (
	ErrNoSprites       = errors.New("no sprites provided")
	ErrNoAtlasImage    = errors.New("no atlas image")
	ErrInvalidMetadata = errors.New("invalid metadata")
	ErrNoFrames        = errors.New("no frames")
)

// ConstraintError is returned when the requested maximum atlas size
// is below the supported floor.
type ConstraintError struct {
	Size int
	Min  int
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("invalid atlas size %d: the minimum supported size is %dpx", e.Size, e.Min)
}

// CapacityError is returned when the sprites cannot be arranged within
// the maximum atlas bounds. Oversize marks the case where a single
// sprite exceeds the bounds even on its own.
type CapacityError struct {
	Sprite    string
	Width     int
	Height    int
	MaxWidth  int
	MaxHeight int
	Oversize  bool
}

func (e *CapacityError) Error() string {
	if e.Oversize {
		return fmt.Sprintf("sprite %q (%dx%d) exceeds the maximum atlas bounds of %dx%d",
			e.Sprite, e.Width, e.Height, e.MaxWidth, e.MaxHeight)
	}
	return fmt.Sprintf("atlas too small: sprite %q does not fit within the maximum bounds of %dx%d",
		e.Sprite, e.MaxWidth, e.MaxHeight)
}

// BoundsError is returned when a manifest frame cannot describe a valid
// region of the actual atlas surface: a negative position, a non-positive
// size or a region extending beyond the surface bounds.
type BoundsError struct {
	Frame    string
	X, Y     int
	W, H     int
	SurfaceW int
	SurfaceH int
	Negative bool
	Empty    bool
}

func (e *BoundsError) Error() string {
	if e.Negative {
		return fmt.Sprintf("frame %q has a negative position (%d,%d)", e.Frame, e.X, e.Y)
	}
	if e.Empty {
		return fmt.Sprintf("frame %q has a non-positive size (%dx%d)", e.Frame, e.W, e.H)
	}
	return fmt.Sprintf("frame %q at (%d,%d) size %dx%d extends beyond the %dx%d atlas bounds",
		e.Frame, e.X, e.Y, e.W, e.H, e.SurfaceW, e.SurfaceH)
}

// SchemaError is returned by ValidateManifest on the first structural
// violation found. Sprite is set when the offending frame has a usable name.
type SchemaError struct {
	Field  string
	Sprite string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Sprite != "" {
		return fmt.Sprintf("invalid manifest: %s (field %q, sprite %q)", e.Reason, e.Field, e.Sprite)
	}
	return fmt.Sprintf("invalid manifest: %s (field %q)", e.Reason, e.Field)
}
