package texpack

import "github.com/maruel/natural"

// SortNatural compares sprites by Name using natural (human) string
// ordering, for use with slices.SortFunc, so "sprite2" sorts before
// "sprite10" rather than after. Names are the
// one sprite field with no well-defined numeric ordering of its own, which
// is why this is the one pre-sort the packing core ships rather than
// leaving it to callers' slices.SortFunc — every size-based ordering
// (area, perimeter, longest/shortest side) is a one-line cmp.Compare a
// caller can write directly against Sprite's embedded Size accessors
// without this package needing to name it.
func SortNatural(a, b *Sprite) int {
	switch {
	case a.Name == b.Name:
		return 0
	case natural.Less(a.Name, b.Name):
		return -1
	default:
		return 1
	}
}

// vim: ts=4
