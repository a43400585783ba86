package atlas

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSurface_NextPowerOfTwo(t *testing.T) {
	assert := assert.New(t)

	cases := map[int]int{
		0:    1,
		1:    1,
		2:    2,
		3:    4,
		20:   32,
		32:   32,
		33:   64,
		1000: 1024,
		2048: 2048,
	}
	for n, want := range cases {
		assert.Equal(want, NextPowerOfTwo(n), "NextPowerOfTwo(%d)", n)
	}
}

func TestSurface_NewSurfaceIsTransparent(t *testing.T) {
	assert := assert.New(t)

	surf := NewSurface(8, 4)
	assert.Equal(8, surf.Bounds().Dx())
	assert.Equal(4, surf.Bounds().Dy())

	for _, px := range surf.Pix {
		assert.Equal(uint8(0), px)
	}
}

func TestSurface_ImgToNRGBANormalizesOrigin(t *testing.T) {
	assert := assert.New(t)

	src := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	src.SetNRGBA(6, 7, color.NRGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff})

	sub := src.SubImage(image.Rect(4, 4, 10, 10)).(*image.NRGBA)
	dst := ImgToNRGBA(sub)

	assert.Equal(image.Pt(0, 0), dst.Bounds().Min)
	assert.Equal(6, dst.Bounds().Dx())
	assert.Equal(color.NRGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff}, dst.NRGBAAt(2, 3))
}

func TestSurface_ImgToNRGBAFromOpaqueModel(t *testing.T) {
	assert := assert.New(t)

	src := image.NewGray(image.Rect(0, 0, 3, 3))
	src.SetGray(1, 1, color.Gray{Y: 0x80})

	dst := ImgToNRGBA(src)
	got := dst.NRGBAAt(1, 1)
	assert.Equal(uint8(0x80), got.R)
	assert.Equal(uint8(0xff), got.A)
}
