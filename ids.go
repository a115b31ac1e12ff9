package texpack

import "github.com/google/uuid"

// NewNamedSprite creates an unplaced sprite with the given name and
// dimensions, auto-assigning a short identifier derived from a uuid so the
// caller does not have to track a counter. The identifier is random, not
// guaranteed unique (see shortID).
func NewNamedSprite(name string, w, h int) *Sprite {
	s := NewSprite(w, h)
	s.Name = name
	s.ID = shortID()
	return s
}

// shortID derives a small non-negative int identifier from a fresh uuid's
// first four bytes. It is not a uniqueness guarantee (the Sprite.ID field
// predates uuid adoption and is typed int), only a convenience default for
// callers that don't assign their own IDs.
func shortID() int {
	id := uuid.New()
	v := int(id[0])<<24 | int(id[1])<<16 | int(id[2])<<8 | int(id[3])
	return v & 0x7fffffff
}
