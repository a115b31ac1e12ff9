package texpack

import "fmt"

// Sprite is a rectangle with mutable position and orientation, the unit of
// work the packing core places into a bin.
//
// An unplaced sprite has unspecified X/Y; Place (via a Layout) assigns them.
// ID and Name are never interpreted by the core — they are opaque caller
// bookkeeping that survives packing unchanged, the same role teacher
// implementations give a size identifier.
type Sprite struct {
	Rect

	// Rotated indicates the sprite has been turned 90 degrees from its
	// original orientation. Width/Height always reflect the current
	// (possibly rotated) orientation.
	Rotated bool

	// ID is an optional caller-assigned integer identifier.
	ID int

	// Name is an optional caller-assigned label, usable for natural-order
	// pre-sorting via SortNatural.
	Name string
}

// NewSprite creates an unplaced sprite with the given dimensions.
func NewSprite(w, h int) *Sprite {
	return &Sprite{Rect: NewRect(0, 0, w, h)}
}

// NewSpriteID creates an unplaced sprite with the given identifier and dimensions.
func NewSpriteID(id, w, h int) *Sprite {
	return &Sprite{Rect: NewRect(0, 0, w, h), ID: id}
}

// String returns a string representation of the sprite.
func (s *Sprite) String() string {
	return fmt.Sprintf("Sprite{%s, rotated=%v}", s.Rect.String(), s.Rotated)
}

// Rotate swaps the sprite's width and height and toggles Rotated.
func (s *Sprite) Rotate() {
	s.Width, s.Height = s.Height, s.Width
	s.Rotated = !s.Rotated
}

// orientedSize returns a copy of the sprite's rectangle dimensions as they would
// be if rotated equaled the sprite's current Rotated flag XOR flip — used by
// layouts to score candidates without mutating the sprite.
func (s *Sprite) orientedSize(flip bool) (w, h int) {
	if flip {
		return s.Height, s.Width
	}
	return s.Width, s.Height
}
