package texpack

// SkylineLayout is the reserved fourth strategy named in the original
// engine. It is not implemented: spec.md is explicit that Skyline behavior
// must not be invented, and the original source it was distilled from
// (layouts.py's SkylineLayout.add) raises the same "not implemented"
// failure. The type satisfies Layout purely so the interface slot is a
// real drop-in target for a future implementation.
type SkylineLayout struct {
	sheet *Sheet
}

// NewSkylineLayout creates a reserved Skyline layout. Every operation
// other than Clear fails: GetBest reports nothing placeable, Place returns
// false, Add places nothing, and Pack returns ErrUnimplemented.
func NewSkylineLayout(sheet *Sheet) *SkylineLayout {
	return &SkylineLayout{sheet: sheet}
}

// Clear is a no-op; there is no state to reset.
func (l *SkylineLayout) Clear() {}

// GetBest always fails: see the type's doc comment.
func (l *SkylineLayout) GetBest(remaining []*Sprite) (index int, pos Point, rotate bool, ok bool) {
	return 0, Point{}, false, false
}

// Place always fails: see the type's doc comment.
func (l *SkylineLayout) Place(sprite *Sprite, pos Point, rotate bool) bool {
	return false
}

// Add fails immediately rather than running the shared driver loop: no
// sprite is placed, and every sprite comes back in remaining. Callers that
// need the explicit failure signal spec.md describes ("a clear 'not
// implemented' signal") should use Pack, which recognizes Skyline via the
// unimplemented marker interface below and returns ErrUnimplemented.
func (l *SkylineLayout) Add(sprites ...*Sprite) (placed, remaining []*Sprite) {
	logger().Debug("skyline layout invoked: unimplemented")
	return nil, sprites
}

// unimplementedErr marks SkylineLayout for Pack, giving the original
// engine's raised NotImplementedError a Go-idiomatic equivalent without
// forcing every Layout implementation's Add to return an error.
func (l *SkylineLayout) unimplementedErr() error {
	return ErrUnimplemented
}
