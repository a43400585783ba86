package atlas

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Unpack validates the manifest against the actual atlas surface and
// copies out each declared region into its own independent surface.
// Validation runs over all frames before any extraction begins and the
// first invalid frame aborts the whole operation. Extraction failures
// are total as well: no partial sprite list is ever returned.
func Unpack(img image.Image, m *Manifest) ([]*Sprite, error) {
	if img == nil {
		return nil, ErrNoAtlasImage
	}
	if m == nil || m.Frames == nil {
		return nil, ErrInvalidMetadata
	}
	if len(m.Frames) == 0 {
		return nil, ErrNoFrames
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	for _, f := range m.Frames {
		if f.X < 0 || f.Y < 0 {
			return nil, &BoundsError{Frame: f.Name, X: f.X, Y: f.Y, Negative: true}
		}
		if f.W <= 0 || f.H <= 0 {
			return nil, &BoundsError{Frame: f.Name, W: f.W, H: f.H, Empty: true}
		}
		if f.X+f.W > width || f.Y+f.H > height {
			return nil, &BoundsError{
				Frame:    f.Name,
				X:        f.X,
				Y:        f.Y,
				W:        f.W,
				H:        f.H,
				SurfaceW: width,
				SurfaceH: height,
			}
		}
	}

	sprites := make([]*Sprite, 0, len(m.Frames))
	for _, f := range m.Frames {
		region := imaging.Crop(img, image.Rect(f.X, f.Y, f.X+f.W, f.Y+f.H))
		if region.Bounds().Dx() != f.W || region.Bounds().Dy() != f.H {
			return nil, fmt.Errorf("unable to extract sprite %q from the atlas", f.Name)
		}
		sprites = append(sprites, &Sprite{Name: f.Name, Img: region})
	}
	return sprites, nil
}
