// Package imop implements the composition operations used for placing
// sprites onto an atlas surface. The image/draw core package operates on
// premultiplied alpha; this package works directly on non-premultiplied
// NRGBA buffers, so a sprite drawn with the Copy operator survives a
// pack/unpack round trip bit for bit, semi-transparent pixels included.
package imop

import (
	"image"
	"image/color"

	"github.com/batuhankym/sprite-atlas-tool/utils"
)

const (
	Copy    = "copy"
	SrcOver = "src_over"
)

// Bitmap wraps the destination surface the sprites are drawn onto.
type Bitmap struct {
	Img *image.NRGBA
}

// NewBitmap allocates a transparent destination surface.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// Composite holds the currently active composite operation.
type Composite struct {
	current string
	ops     []string
}

// InitOp initializes a new Composite with Copy as the active operation.
func InitOp() *Composite {
	return &Composite{
		current: Copy,
		ops:     []string{Copy, SrcOver},
	}
}

// Set activates one of the supported composite operations.
func (op *Composite) Set(cop string) {
	if utils.Contains(op.ops, cop) {
		op.current = cop
	}
}

// Get returns the currently active composite operation.
func (op *Composite) Get() string {
	return op.current
}

// Draw composites the source image onto the bitmap with its top-left
// corner placed at the given point. Source pixels falling outside the
// bitmap bounds are discarded.
func (op *Composite) Draw(bitmap *Bitmap, src *image.NRGBA, at image.Point) {
	dx, dy := src.Bounds().Dx(), src.Bounds().Dy()

	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			bx, by := at.X+x, at.Y+y
			if !image.Pt(bx, by).In(bitmap.Img.Bounds()) {
				continue
			}

			sc := src.NRGBAAt(src.Bounds().Min.X+x, src.Bounds().Min.Y+y)
			if op.current == Copy {
				bitmap.Img.SetNRGBA(bx, by, sc)
				continue
			}

			bc := bitmap.Img.NRGBAAt(bx, by)

			rsn := float64(sc.R) / 255
			gsn := float64(sc.G) / 255
			bsn := float64(sc.B) / 255
			asn := float64(sc.A) / 255

			rbn := float64(bc.R) / 255
			gbn := float64(bc.G) / 255
			bbn := float64(bc.B) / 255
			abn := float64(bc.A) / 255

			// applying the alpha composition formula
			an := asn + abn*(1-asn)
			var rn, gn, bn float64
			if an > 0 {
				rn = (asn*rsn + abn*rbn*(1-asn)) / an
				gn = (asn*gsn + abn*gbn*(1-asn)) / an
				bn = (asn*bsn + abn*bbn*(1-asn)) / an
			}

			bitmap.Img.SetNRGBA(bx, by, color.NRGBA{
				R: uint8(rn*255 + 0.5),
				G: uint8(gn*255 + 0.5),
				B: uint8(bn*255 + 0.5),
				A: uint8(an*255 + 0.5),
			})
		}
	}
}
