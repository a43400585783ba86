package atlas

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mkSprite(name string, w, h int) *Sprite {
	return &Sprite{Name: name, Img: NewSurface(w, h)}
}

func TestShelf_RowWrap(t *testing.T) {
	assert := assert.New(t)

	sprites := []*Sprite{
		mkSprite("a", 32, 32),
		mkSprite("b", 32, 32),
		mkSprite("c", 32, 32),
	}

	st := &ShelfStrategy{}
	res, err := st.Pack(sprites, Constraints{Padding: 0, MaxWidth: 64, MaxHeight: 64})
	assert.NoError(err)

	// The third sprite no longer fits on the first row and wraps below.
	assert.Equal(Frame{Name: "a", X: 0, Y: 0, W: 32, H: 32}, res.Frames[0])
	assert.Equal(Frame{Name: "b", X: 32, Y: 0, W: 32, H: 32}, res.Frames[1])
	assert.Equal(Frame{Name: "c", X: 0, Y: 32, W: 32, H: 32}, res.Frames[2])
	assert.Equal(64, res.Width)
	assert.Equal(64, res.Height)
}

func TestShelf_DeterministicLayout(t *testing.T) {
	assert := assert.New(t)

	ordered := []*Sprite{
		mkSprite("arrow", 12, 7),
		mkSprite("bomb", 20, 20),
		mkSprite("coin", 8, 8),
		mkSprite("door", 16, 24),
	}
	shuffled := []*Sprite{ordered[2], ordered[3], ordered[0], ordered[1]}

	st := &ShelfStrategy{}
	c := Constraints{Padding: 1, MaxWidth: 128, MaxHeight: 128}

	first, err := st.Pack(ordered, c)
	assert.NoError(err)
	second, err := st.Pack(shuffled, c)
	assert.NoError(err)

	assert.Equal(first.Frames, second.Frames)
	assert.Equal(first.Width, second.Width)
	assert.Equal(first.Height, second.Height)
}

func TestShelf_EmptyInput(t *testing.T) {
	assert := assert.New(t)

	st := &ShelfStrategy{}
	res, err := st.Pack(nil, Constraints{Padding: 1, MaxWidth: 64, MaxHeight: 64})
	assert.NoError(err)
	assert.Empty(res.Frames)
	assert.Equal(0, res.Width)
	assert.Equal(0, res.Height)
}

func TestShelf_OversizedSprite(t *testing.T) {
	assert := assert.New(t)

	st := &ShelfStrategy{}
	_, err := st.Pack([]*Sprite{mkSprite("big", 100, 100)},
		Constraints{Padding: 0, MaxWidth: 64, MaxHeight: 64})

	var capErr *CapacityError
	assert.ErrorAs(err, &capErr)
	assert.True(capErr.Oversize)
	assert.Equal("big", capErr.Sprite)
	assert.Equal(100, capErr.Width)
	assert.Equal(100, capErr.Height)
	assert.Contains(err.Error(), "100x100")
}

func TestShelf_AtlasTooSmall(t *testing.T) {
	assert := assert.New(t)

	// Four 32x32 sprites fill a 64x64 atlas exactly; the fifth one
	// overflows past the bottom edge.
	sprites := []*Sprite{
		mkSprite("a", 32, 32),
		mkSprite("b", 32, 32),
		mkSprite("c", 32, 32),
		mkSprite("d", 32, 32),
		mkSprite("e", 32, 32),
	}

	st := &ShelfStrategy{}
	_, err := st.Pack(sprites, Constraints{Padding: 0, MaxWidth: 64, MaxHeight: 64})

	var capErr *CapacityError
	assert.ErrorAs(err, &capErr)
	assert.False(capErr.Oversize)
	assert.Equal("e", capErr.Sprite)
}

func TestShelf_PaddingOffsets(t *testing.T) {
	assert := assert.New(t)

	st := &ShelfStrategy{}
	res, err := st.Pack([]*Sprite{mkSprite("solo", 10, 10)},
		Constraints{Padding: 2, MaxWidth: 64, MaxHeight: 64})
	assert.NoError(err)

	// The sprite sits at the padding offset and the atlas keeps a
	// padding border on the far edges as well.
	assert.Equal(Frame{Name: "solo", X: 2, Y: 2, W: 10, H: 10}, res.Frames[0])
	assert.Equal(14, res.Width)
	assert.Equal(14, res.Height)
}

func TestShelf_NonOverlapWithinBounds(t *testing.T) {
	assert := assert.New(t)

	sprites := []*Sprite{
		mkSprite("a", 40, 12),
		mkSprite("b", 25, 30),
		mkSprite("c", 17, 9),
		mkSprite("d", 50, 22),
		mkSprite("e", 8, 45),
		mkSprite("f", 33, 16),
	}

	st := &ShelfStrategy{}
	res, err := st.Pack(sprites, Constraints{Padding: 2, MaxWidth: 128, MaxHeight: 128})
	assert.NoError(err)

	rects := make([]image.Rectangle, len(res.Frames))
	for i, f := range res.Frames {
		rects[i] = image.Rect(f.X, f.Y, f.X+f.W, f.Y+f.H)

		assert.GreaterOrEqual(f.X, 0)
		assert.GreaterOrEqual(f.Y, 0)
		assert.LessOrEqual(f.X+f.W, res.Width)
		assert.LessOrEqual(f.Y+f.H, res.Height)
	}

	for i := 0; i < len(rects); i++ {
		for j := i + 1; j < len(rects); j++ {
			assert.True(rects[i].Intersect(rects[j]).Empty(),
				"frames %q and %q overlap", res.Frames[i].Name, res.Frames[j].Name)
		}
	}
}

func TestShelf_StrategyRegistry(t *testing.T) {
	assert := assert.New(t)

	st, err := Strategy(ShelfName)
	assert.NoError(err)
	assert.NotNil(st)

	_, err = Strategy("skyline")
	assert.Error(err)
	assert.Contains(err.Error(), "unknown packing algorithm")
}
