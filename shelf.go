package atlas

import (
	"fmt"

	"github.com/batuhankym/sprite-atlas-tool/utils"
)

// ShelfName identifies the built-in shelf packing strategy.
const ShelfName = "shelf"

// Constraints bound a single packing run. Padding is the minimum pixel
// gap enforced between adjacent sprites and the atlas edges.
type Constraints struct {
	Padding   int
	MaxWidth  int
	MaxHeight int
}

// Placement is the result of a successful packing run.
// Sprites[i] corresponds to Frames[i].
type Placement struct {
	Frames  []Frame
	Width   int
	Height  int
	Sprites []*Sprite
}

// PackingStrategy assigns each sprite a non-overlapping position within
// the constraint bounds. Implementations must be deterministic: identical
// input sets must always yield identical layouts.
type PackingStrategy interface {
	Pack(sprites []*Sprite, c Constraints) (*Placement, error)
}

var strategies = map[string]PackingStrategy{}

// RegisterStrategy makes a packing strategy selectable by name.
func RegisterStrategy(name string, s PackingStrategy) {
	strategies[name] = s
}

// Strategy returns the packing strategy registered under the given name.
func Strategy(name string) (PackingStrategy, error) {
	s, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown packing algorithm: %q", name)
	}
	return s, nil
}

func init() {
	RegisterStrategy(ShelfName, &ShelfStrategy{})
}

// ShelfStrategy implements row-based shelf packing: sprites are placed
// left-to-right on the current row, wrapping to a new row once the
// maximum width is reached. Combined with the alphabetical pre-sort this
// is the simplest scheme that guarantees reproducible layouts; it is not
// area-optimal.
type ShelfStrategy struct{}

// Pack places the sprites in sorted name order. An empty sprite list
// yields an empty placement of size 0x0. Failure is total: no partial
// placement is ever returned.
func (st *ShelfStrategy) Pack(sprites []*Sprite, c Constraints) (*Placement, error) {
	sorted := sortSprites(sprites)

	var (
		currentX    = c.Padding
		currentY    = c.Padding
		rowHeight   = 0
		atlasWidth  = 0
		atlasHeight = 0
	)

	frames := make([]Frame, 0, len(sorted))
	for _, spr := range sorted {
		w, h := spr.Width(), spr.Height()
		advanceX := w + c.Padding
		advanceY := h + c.Padding

		// A single oversized sprite is unrecoverable regardless of
		// how the remaining sprites are arranged.
		if w+2*c.Padding > c.MaxWidth || h+2*c.Padding > c.MaxHeight {
			return nil, &CapacityError{
				Sprite:    spr.Name,
				Width:     w,
				Height:    h,
				MaxWidth:  c.MaxWidth,
				MaxHeight: c.MaxHeight,
				Oversize:  true,
			}
		}

		if currentX+advanceX > c.MaxWidth {
			// Wrap to a new row.
			currentX = c.Padding
			currentY += rowHeight
			rowHeight = 0
		}

		if currentY+advanceY > c.MaxHeight {
			return nil, &CapacityError{
				Sprite:    spr.Name,
				Width:     w,
				Height:    h,
				MaxWidth:  c.MaxWidth,
				MaxHeight: c.MaxHeight,
			}
		}

		frames = append(frames, Frame{
			Name: spr.Name,
			X:    currentX,
			Y:    currentY,
			W:    w,
			H:    h,
		})

		atlasWidth = utils.Max(atlasWidth, currentX+w+c.Padding)
		rowHeight = utils.Max(rowHeight, advanceY)
		currentX += advanceX
	}

	if len(sorted) > 0 {
		atlasHeight = currentY + rowHeight
	}

	return &Placement{
		Frames:  frames,
		Width:   atlasWidth,
		Height:  atlasHeight,
		Sprites: sorted,
	}, nil
}
