package texpack

// stack is a vertical strip spanning the bin's height, filled top to
// bottom, with a single baseline X. The transpose of a shelf.
type stack struct {
	start int // x of the stack baseline
	size  int // used height, measured from the top
	max   int // widest rect placed on this stack so far
	rects []*Sprite
}

func (s *stack) place(sprite *Sprite) {
	s.rects = append(s.rects, sprite)
	sprite.X = s.start
	sprite.Y = s.size
	s.size += sprite.Height
	if sprite.Width > s.max {
		s.max = sprite.Width
	}
}

// StackLayout arranges sprites in progressively wider vertical columns.
// It is the transpose of ShelfLayout: columns grow from x=0 rightward
// instead of shelves growing from y=0 upward.
type StackLayout struct {
	sheet  *Sheet
	size   int // total width of columns created so far
	stacks []*stack
}

// NewStackLayout creates an empty Stack layout for the given sheet.
func NewStackLayout(sheet *Sheet) *StackLayout {
	l := &StackLayout{sheet: sheet}
	l.Clear()
	return l
}

// Clear resets the layout to the empty bin.
func (l *StackLayout) Clear() {
	l.size = 0
	l.stacks = nil
}

// GetBest finds the minimum-score placement among existing stacks and a
// hypothetical new stack, across all candidate sprites.
func (l *StackLayout) GetBest(remaining []*Sprite) (index int, pos Point, rotate bool, ok bool) {
	maxW, maxH := l.sheet.MaxWidth, l.sheet.MaxHeight

	bestScore := 0
	haveBest := false
	var bestStack *stack // nil means "hypothetical new stack"
	var bestNewStart int
	var bestRotate bool

	for i, spr := range remaining {
		w, h := spr.Width, spr.Height
		if !l.sheet.fits(w, h) {
			continue // TooLarge
		}

		var candStack *stack
		candScore := 0
		candHasScore := false
		var candRotate bool
		var candNewStart int

		for _, st := range l.stacks {
			cw, ch := w, h
			// "rotate if the sprite's long edge fits within the stack's
			// current width budget" — the candidate stack's own max, per
			// the spec's reading of the original's undefined reference.
			flip := false
			if l.sheet.AllowRotate && ch > cw && ch <= st.max {
				cw, ch = ch, cw
				flip = true
			}

			if st.size+ch <= maxH && cw <= st.max {
				score := (maxH-st.size-ch)*st.max + ch*(st.max-cw)
				if !candHasScore || score < candScore {
					candScore = score
					candHasScore = true
					candStack = st
					candRotate = spr.Rotated != flip
				}
			}
		}

		if candStack == nil {
			// No room on any existing stack: synthesize a hypothetical new one.
			cw, ch := w, h
			flip := false
			if l.sheet.AllowRotate && cw > ch {
				cw, ch = ch, cw
				flip = true
			}

			if len(l.stacks) > 0 && l.size+cw > maxW {
				continue // no room for a new stack either
			}

			score := (maxH - ch) * cw
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
			bestStack = candStack
			bestRotate = candRotate
			bestNewStart = candNewStart
		}
	}

	if !haveBest {
		return 0, Point{}, false, false
	}

	if bestStack != nil {
		pos = Point{X: bestStack.start, Y: bestStack.size}
	} else {
		pos = Point{X: bestNewStart, Y: 0}
	}
	return index, pos, bestRotate, true
}

// Place commits a sprite onto the stack implied by pos.X: an existing
// stack whose baseline matches, or a freshly synthesized one.
func (l *StackLayout) Place(sprite *Sprite, pos Point, rotate bool) bool {
	needsFlip := sprite.Rotated != rotate
	if needsFlip {
		sprite.Rotate()
	}

	st := l.findStack(pos.X)
	isNew := st == nil
	if isNew {
		st = &stack{start: pos.X}
	}

	candidate := NewRect(st.start, st.size, sprite.Width, sprite.Height)
	if !l.sheet.Check(candidate) {
		if needsFlip {
			sprite.Rotate() // revert to original orientation
		}
		return false
	}

	st.place(sprite)
	l.size = max(l.size, st.start+st.max)

	if isNew {
		l.stacks = append(l.stacks, st)
	}
	return true
}

func (l *StackLayout) findStack(start int) *stack {
	for _, st := range l.stacks {
		if st.start == start {
			return st
		}
	}
	return nil
}

// Add places as many of the given sprites as possible, returning the
// placed and remaining sets in input order.
func (l *StackLayout) Add(sprites ...*Sprite) (placed, remaining []*Sprite) {
	return runAdd(l, sprites)
}
