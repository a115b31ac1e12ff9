package texpack

// shelf is a horizontal strip spanning the bin's width, filled left to
// right, with a single baseline Y.
type shelf struct {
	start int // y of the shelf baseline
	size  int // used width, measured from the left
	max   int // tallest rect placed on this shelf so far
	rects []*Sprite
}

func (s *shelf) place(sprite *Sprite) {
	s.rects = append(s.rects, sprite)
	sprite.X = s.size
	sprite.Y = s.start
	s.size += sprite.Width
	if sprite.Height > s.max {
		s.max = sprite.Height
	}
}

// ShelfLayout arranges sprites on progressively higher horizontal shelves.
// When a sprite fits no existing shelf it starts a new one just past the
// shelves created so far.
type ShelfLayout struct {
	sheet   *Sheet
	size    int // total height of shelves created so far
	shelves []*shelf
}

// NewShelfLayout creates an empty Shelf layout for the given sheet.
func NewShelfLayout(sheet *Sheet) *ShelfLayout {
	l := &ShelfLayout{sheet: sheet}
	l.Clear()
	return l
}

// Clear resets the layout to the empty bin.
func (l *ShelfLayout) Clear() {
	l.size = 0
	l.shelves = nil
}

// GetBest finds the minimum-score placement among existing shelves and a
// hypothetical new shelf, across all candidate sprites.
func (l *ShelfLayout) GetBest(remaining []*Sprite) (index int, pos Point, rotate bool, ok bool) {
	maxW, maxH := l.sheet.MaxWidth, l.sheet.MaxHeight

	bestScore := 0
	haveBest := false
	var bestShelf *shelf // nil means "hypothetical new shelf"
	var bestNewStart int
	var bestRotate bool

	for i, spr := range remaining {
		w, h := spr.Width, spr.Height
		if !l.sheet.fits(w, h) {
			continue // TooLarge: filtered silently during scoring
		}

		var candShelf *shelf
		candScore := 0
		candHasScore := false
		var candRotate bool
		var candNewStart int

		for _, sh := range l.shelves {
			cw, ch := w, h
			flip := false
			if l.sheet.AllowRotate && cw > ch && cw <= sh.max {
				cw, ch = ch, cw
				flip = true
			}

			if sh.size+cw <= maxW && ch <= sh.max {
				score := (maxW-sh.size-cw)*sh.max + cw*(sh.max-ch)
				if !candHasScore || score < candScore {
					candScore = score
					candHasScore = true
					candShelf = sh
					candRotate = spr.Rotated != flip
				}
			}
		}

		if candShelf == nil {
			// No room on any existing shelf: synthesize a hypothetical new one.
			cw, ch := w, h
			flip := false
			if l.sheet.AllowRotate && ch > cw {
				cw, ch = ch, cw
				flip = true
			}

			if len(l.shelves) > 0 && l.size+ch > maxH {
				continue // no room for a new shelf either
			}

			score := (maxW - cw) * ch
			if !candHasScore || score < candScore {
				candScore = score
				candHasScore = true
				candRotate = spr.Rotated != flip
				candNewStart = l.size
			}
		}

		if !candHasScore {
			continue
		}

		if !haveBest || candScore < bestScore {
			bestScore = candScore
			haveBest = true
			index = i
			bestShelf = candShelf
			bestRotate = candRotate
			bestNewStart = candNewStart
		}
	}

	if !haveBest {
		return 0, Point{}, false, false
	}

	if bestShelf != nil {
		pos = Point{X: bestShelf.size, Y: bestShelf.start}
	} else {
		pos = Point{X: 0, Y: bestNewStart}
	}
	return index, pos, bestRotate, true
}

// Place commits a sprite onto the shelf implied by pos.Y: an existing
// shelf whose baseline matches, or a freshly synthesized one.
func (l *ShelfLayout) Place(sprite *Sprite, pos Point, rotate bool) bool {
	needsFlip := sprite.Rotated != rotate
	if needsFlip {
		sprite.Rotate()
	}

	sh := l.findShelf(pos.Y)
	isNew := sh == nil
	if isNew {
		sh = &shelf{start: pos.Y}
	}

	candidate := NewRect(sh.size, sh.start, sprite.Width, sprite.Height)
	if !l.sheet.Check(candidate) {
		if needsFlip {
			sprite.Rotate() // revert to original orientation
		}
		return false
	}

	sh.place(sprite)
	l.size = max(l.size, sh.start+sh.max)

	if isNew {
		l.shelves = append(l.shelves, sh)
	}
	return true
}

func (l *ShelfLayout) findShelf(start int) *shelf {
	for _, sh := range l.shelves {
		if sh.start == start {
			return sh
		}
	}
	return nil
}

// Add places as many of the given sprites as possible, returning the
// placed and remaining sets in input order.
func (l *ShelfLayout) Add(sprites ...*Sprite) (placed, remaining []*Sprite) {
	return runAdd(l, sprites)
}
