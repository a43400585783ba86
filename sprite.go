package atlas

import (
	"image"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sprite is one independent source image to be packed into an atlas,
// or one region extracted from it. It is not mutated after creation.
type Sprite struct {
	Name string
	Img  *image.NRGBA
}

// Width returns the sprite width in pixels.
func (s *Sprite) Width() int {
	return s.Img.Bounds().Dx()
}

// Height returns the sprite height in pixels.
func (s *Sprite) Height() int {
	return s.Img.Bounds().Dy()
}

// SpriteName derives the sprite name from a file path
// by stripping the directory and the extension suffix.
func SpriteName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// sortSprites returns a copy of the sprite list ordered by name with a
// locale-aware, case-respecting collator. The ordering is load-bearing:
// identical input sets must always produce identical layouts regardless
// of the original file order.
func sortSprites(sprites []*Sprite) []*Sprite {
	sorted := make([]*Sprite, len(sprites))
	copy(sorted, sprites)

	cl := collate.New(language.Und)
	sort.SliceStable(sorted, func(i, j int) bool {
		return cl.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})
	return sorted
}
