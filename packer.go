package atlas

import (
	"image"

	"github.com/batuhankym/sprite-atlas-tool/imop"
	"github.com/batuhankym/sprite-atlas-tool/utils"
)

// Packing defaults and limits.
const (
	DefaultPadding      = 1
	DefaultMaxAtlasSize = 2048
	MinAtlasSize        = 32
)

// Atlas holds the composited surface together with its manifest.
// Ownership passes to the caller on a successful pack.
type Atlas struct {
	Img      *image.NRGBA
	Manifest *Manifest
}

// Packer options. A Packer is a caller-owned session object: each Pack
// call operates on its own working set and returns or fails atomically.
type Packer struct {
	Padding      int
	MaxAtlasSize int
	PowerOfTwo   bool
	Strategy     string
	Spinner      *utils.Spinner
}

// NewPacker returns a Packer initialized with the default options.
func NewPacker() *Packer {
	return &Packer{
		Padding:      DefaultPadding,
		MaxAtlasSize: DefaultMaxAtlasSize,
		Strategy:     ShelfName,
	}
}

// Pack validates the request, delegates the placement to the selected
// packing strategy and composites each sprite onto the final surface at
// its assigned frame origin. The emitted manifest satisfies the bounds
// invariant against the final dimensions: power-of-two rounding only
// grows the surface, the frame coordinates are never rescaled.
func (p *Packer) Pack(sprites []*Sprite) (*Atlas, error) {
	if len(sprites) == 0 {
		return nil, ErrNoSprites
	}
	if p.MaxAtlasSize < MinAtlasSize {
		return nil, &ConstraintError{Size: p.MaxAtlasSize, Min: MinAtlasSize}
	}

	name := p.Strategy
	if name == "" {
		name = ShelfName
	}
	strategy, err := Strategy(name)
	if err != nil {
		return nil, err
	}

	placement, err := strategy.Pack(sprites, Constraints{
		Padding:   p.Padding,
		MaxWidth:  p.MaxAtlasSize,
		MaxHeight: p.MaxAtlasSize,
	})
	if err != nil {
		return nil, err
	}

	width, height := placement.Width, placement.Height
	if p.PowerOfTwo {
		width = NextPowerOfTwo(width)
		height = NextPowerOfTwo(height)
	}

	bmp := imop.NewBitmap(image.Rect(0, 0, width, height))
	op := imop.InitOp()

	// Frames never overlap, so a plain copy keeps every sprite pixel
	// exact, semi-transparent ones included.
	op.Set(imop.Copy)

	for i, frame := range placement.Frames {
		op.Draw(bmp, placement.Sprites[i].Img, image.Pt(frame.X, frame.Y))
	}

	return &Atlas{
		Img: bmp.Img,
		Manifest: &Manifest{
			Frames: placement.Frames,
			Meta: Meta{
				App:     AppName,
				Version: Version,
				Size:    Size{W: width, H: height},
			},
		},
	}, nil
}
