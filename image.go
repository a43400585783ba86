package atlas

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/batuhankym/sprite-atlas-tool/utils"
	"golang.org/x/image/bmp"
)

// DecodeSprite decodes one source image into a sprite record.
// The reader must carry a format registered with the image package
// (png, jpeg, gif or bmp).
func DecodeSprite(r io.Reader, name string) (*Sprite, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("could not decode sprite %q: %w", name, err)
	}
	return &Sprite{Name: name, Img: ImgToNRGBA(src)}, nil
}

// decodeImg decodes an image file to type image.Image.
func decodeImg(src string) (image.Image, error) {
	file, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("could not open the image file: %w", err)
	}
	defer file.Close()

	ctype, err := utils.DetectContentType(file.Name())
	if err != nil {
		return nil, err
	}

	if !strings.Contains(ctype, "image") {
		return nil, fmt.Errorf("%s is not an image file", src)
	}

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("could not decode the image file: %w", err)
	}

	return img, nil
}

// encodeImg encodes an image to a destination of type io.Writer.
// The image format is selected by the destination file extension,
// falling back to png for non-file writers.
func encodeImg(w io.Writer, img image.Image) error {
	switch w := w.(type) {
	case *os.File:
		ext := filepath.Ext(w.Name())
		switch ext {
		case "", ".png":
			return png.Encode(w, img)
		case ".jpg", ".jpeg":
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
		case ".bmp":
			return bmp.Encode(w, img)
		default:
			return errors.New("unsupported image format")
		}
	default:
		return png.Encode(w, img)
	}
}
