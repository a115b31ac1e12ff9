package texpack

import "errors"

// ErrUnknownStrategy is returned by the Factory when asked for a strategy
// name outside the closed set {"shelf", "stack", "max-rects", "skyline"}.
var ErrUnknownStrategy = errors.New("texpack: unknown packing strategy")

// ErrUnimplemented is returned by Pack when it is given a SkylineLayout.
// Skyline is reserved in the interface but intentionally has no behavior;
// its own GetBest, Place and Add place nothing and return no error.
var ErrUnimplemented = errors.New("texpack: skyline layout is not implemented")

// Layout is a rectangle-packing strategy. Implementations hold their own
// free-space bookkeeping and borrow sprites, mutating position and
// orientation only inside Place.
type Layout interface {
	// Clear resets all internal bookkeeping to the empty bin.
	Clear()

	// GetBest is a pure query: given the sprites not yet placed, it picks
	// the best (index, position, rotation) to place next, or ok=false if
	// none of them can be placed. It must not mutate the layout's state or
	// any sprite's coordinates/orientation.
	GetBest(remaining []*Sprite) (index int, pos Point, rotate bool, ok bool)

	// Place commits a placement chosen by GetBest (or any compatible
	// candidate). It may rotate the sprite. It returns false if the
	// placement fails the sheet's Check, in which case no state changes.
	Place(sprite *Sprite, pos Point, rotate bool) bool

	// Add repeatedly calls GetBest then Place until GetBest finds nothing
	// placeable or a chosen Place fails. It returns the sprites placed and
	// the sprites remaining, both in their relative input order.
	Add(sprites ...*Sprite) (placed, remaining []*Sprite)
}

// Pack runs a Layout's Add and additionally surfaces the "unimplemented"
// signal spec.md requires of Skyline as a real error, without requiring
// every Layout's Add to return one. Shelf, Stack, and MaxRects always
// return a nil error.
func Pack(l Layout, sprites ...*Sprite) (placed, remaining []*Sprite, err error) {
	if u, ok := l.(interface{ unimplementedErr() error }); ok {
		return nil, sprites, u.unimplementedErr()
	}
	placed, remaining = l.Add(sprites...)
	return placed, remaining, nil
}

// runAdd is the one driver loop shared by every Layout implementation,
// per the component design's "driver loop in Add is shared code" note.
//
// placed and remaining both preserve the relative order of the original
// input, independent of the order sprites happened to be chosen in.
func runAdd(l Layout, sprites []*Sprite) (placed, remaining []*Sprite) {
	working := append([]*Sprite(nil), sprites...)
	isPlaced := make(map[*Sprite]bool, len(sprites))

	for len(working) > 0 {
		idx, pos, rotate, ok := l.GetBest(working)
		if !ok {
			logger().Debug("packing stalled: no remaining sprite fits", "remaining", len(working))
			break
		}

		sprite := working[idx]
		if !l.Place(sprite, pos, rotate) {
			logger().Warn("placement rejected by sheet check; aborting driver loop",
				"sprite", sprite.String(), "pos", pos.String())
			break
		}

		logger().Debug("placed sprite", "sprite", sprite.String(), "rotated", sprite.Rotated)

		isPlaced[sprite] = true
		working = append(working[:idx], working[idx+1:]...)
	}

	for _, s := range sprites {
		if isPlaced[s] {
			placed = append(placed, s)
		} else {
			remaining = append(remaining, s)
		}
	}
	return placed, remaining
}
