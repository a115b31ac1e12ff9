package texpack

// FitHeuristic selects the bin-selection rule MaxRectsLayout uses when
// multiple free rectangles could hold a candidate sprite. BestShortSideFit
// (BSSF) is the default and the one the packing properties in this module
// are verified against; the others are additive alternatives built on the
// same free-rect bookkeeping.
type FitHeuristic int

const (
	// BestShortSideFit positions the sprite against the free rect that
	// leaves the smallest leftover on its shorter side, tie-broken by the
	// longer side. This is the classic MaxRects BSSF heuristic.
	BestShortSideFit FitHeuristic = iota
	// BestLongSideFit mirrors BestShortSideFit but scores on the longer
	// leftover side first.
	BestLongSideFit
	// BestAreaFit chooses the free rect with the least leftover area.
	BestAreaFit
	// BottomLeft chooses the placement whose bottom edge (Y + height) is
	// lowest, tie-broken by the lowest X ("Tetris" placement).
	BottomLeft
	// ContactPoint chooses the placement that touches the most existing
	// edges (bin border or already-placed sprites).
	ContactPoint
)

// MaxRectsLayout arranges sprites by subdividing free space into
// (possibly overlapping) maximal free rectangles. Placing a sprite splits
// every free rect it intersects and prunes any free rect now contained in
// another.
type MaxRectsLayout struct {
	sheet     *Sheet
	heuristic FitHeuristic
	used      []*Sprite
	free      []Rect
}

// NewMaxRectsLayout creates an empty MaxRects layout using BestShortSideFit.
func NewMaxRectsLayout(sheet *Sheet) *MaxRectsLayout {
	return NewMaxRectsLayoutWithHeuristic(sheet, BestShortSideFit)
}

// NewMaxRectsLayoutWithHeuristic creates an empty MaxRects layout using the
// given bin-selection heuristic.
func NewMaxRectsLayoutWithHeuristic(sheet *Sheet, heuristic FitHeuristic) *MaxRectsLayout {
	l := &MaxRectsLayout{sheet: sheet, heuristic: heuristic}
	l.Clear()
	return l
}

// Clear resets the layout to a single free rect spanning the whole bin.
func (l *MaxRectsLayout) Clear() {
	l.used = nil
	l.free = []Rect{NewRect(0, 0, l.sheet.MaxWidth, l.sheet.MaxHeight)}
}

// candidate is a scored placement option found while searching the free list.
type candidate struct {
	pos      Point
	w, h     int // final (post-rotation) dimensions
	rotate   bool
	score1   int
	score2   int
	hasScore bool
}

func (l *MaxRectsLayout) less(a, b candidate) bool {
	if l.heuristic == ContactPoint {
		// Contact score: higher is better, so invert the comparison.
		return a.score1 > b.score1
	}
	return a.score1 < b.score1 || (a.score1 == b.score1 && a.score2 < b.score2)
}

// search finds the best free rect for a sprite of size (w, h), trying both
// orientations when rotation is allowed, per the layout's FitHeuristic.
func (l *MaxRectsLayout) search(w, h int) candidate {
	var best candidate

	consider := func(fx, fy, fw, fh int, rotate bool) {
		c := l.score(fx, fy, w, h, fw, fh, rotate)
		if !c.hasScore {
			return
		}
		if !best.hasScore || l.less(c, best) {
			best = c
		}
	}

	for _, f := range l.free {
		consider(f.X, f.Y, f.Width, f.Height, false)
		if l.sheet.AllowRotate {
			consider(f.X, f.Y, f.Width, f.Height, true)
		}
	}
	return best
}

func (l *MaxRectsLayout) score(fx, fy, w, h, fw, fh int, rotate bool) candidate {
	placeW, placeH := w, h
	if rotate {
		placeW, placeH = h, w
	}
	if fw < placeW || fh < placeH {
		return candidate{}
	}

	dx, dy := fw-placeW, fh-placeH
	c := candidate{
		pos:      Point{X: fx, Y: fy},
		w:        placeW,
		h:        placeH,
		rotate:   rotate,
		hasScore: true,
	}

	switch l.heuristic {
	case BestLongSideFit:
		c.score1, c.score2 = max(dx, dy), min(dx, dy)
	case BestAreaFit:
		c.score1, c.score2 = fw*fh-placeW*placeH, min(dx, dy)
	case BottomLeft:
		c.score1, c.score2 = fy+placeH, fx
	case ContactPoint:
		c.score1, c.score2 = l.contactScore(fx, fy, placeW, placeH), 0
	default: // BestShortSideFit
		c.score1, c.score2 = min(dx, dy), max(dx, dy)
	}
	return c
}

func commonIntervalLength(aStart, aEnd, bStart, bEnd int) int {
	if aEnd < bStart || bEnd < aStart {
		return 0
	}
	return min(aEnd, bEnd) - max(aStart, bStart)
}

func (l *MaxRectsLayout) contactScore(x, y, w, h int) int {
	score := 0
	if x == 0 || x+w == l.sheet.MaxWidth {
		score += h
	}
	if y == 0 || y+h == l.sheet.MaxHeight {
		score += w
	}
	for _, u := range l.used {
		if u.X == x+w || u.Right() == x {
			score += commonIntervalLength(u.Y, u.Bottom(), y, y+h)
		}
		if u.Y == y+h || u.Bottom() == y {
			score += commonIntervalLength(u.X, u.Right(), x, x+w)
		}
	}
	return score
}

// GetBest scores every remaining sprite against the current free list and
// returns the best-scoring sprite/placement pair, validated by the sheet's
// Check predicate.
func (l *MaxRectsLayout) GetBest(remaining []*Sprite) (index int, pos Point, rotate bool, ok bool) {
	var best candidate
	haveBest := false
	bestIndex := -1

	for i, spr := range remaining {
		if !l.sheet.fits(spr.Width, spr.Height) {
			continue
		}
		c := l.search(spr.Width, spr.Height)
		if !c.hasScore {
			continue
		}
		if c.rotate && !l.sheet.AllowRotate {
			continue
		}
		if !l.sheet.Check(NewRect(c.pos.X, c.pos.Y, c.w, c.h)) {
			continue
		}

		if !haveBest || l.less(c, best) {
			best = c
			haveBest = true
			bestIndex = i
		}
	}

	if !haveBest {
		return 0, Point{}, false, false
	}

	finalRotate := remaining[bestIndex].Rotated != best.rotate
	return bestIndex, best.pos, finalRotate, true
}

// Place commits a sprite at the given position and orientation, splitting
// every intersecting free rect and pruning dominated free rects.
func (l *MaxRectsLayout) Place(sprite *Sprite, pos Point, rotate bool) bool {
	needsFlip := sprite.Rotated != rotate
	if needsFlip {
		sprite.Rotate()
	}
	origX, origY := sprite.X, sprite.Y
	sprite.X, sprite.Y = pos.X, pos.Y

	if !l.sheet.Check(sprite.Rect) {
		sprite.X, sprite.Y = origX, origY
		if needsFlip {
			sprite.Rotate()
		}
		return false
	}

	placed := sprite.Rect
	var kept []Rect
	for _, f := range l.free {
		parts, split := splitFreeRect(f, placed)
		if split {
			kept = append(kept, parts...)
		} else {
			kept = append(kept, f)
		}
	}
	l.free = pruneDominated(kept)
	l.used = append(l.used, sprite)
	return true
}

// splitFreeRect splits a free rect against a newly placed rect, returning
// the resulting (possibly empty) set of sub-rects and whether a split
// occurred at all (false if the two rects don't overlap).
func splitFreeRect(free, used Rect) ([]Rect, bool) {
	if used.X >= free.Right() || used.Right() <= free.X ||
		used.Y >= free.Bottom() || used.Bottom() <= free.Y {
		return nil, false
	}

	var out []Rect

	if used.X < free.Right() && used.Right() > free.X {
		if used.Y > free.Y && used.Y < free.Bottom() {
			top := free
			top.Height = used.Y - top.Y
			out = append(out, top)
		}
		if used.Bottom() < free.Bottom() {
			bottom := free
			bottom.Y = used.Bottom()
			bottom.Height = free.Bottom() - used.Bottom()
			out = append(out, bottom)
		}
	}

	if used.Y < free.Bottom() && used.Bottom() > free.Y {
		if used.X > free.X && used.X < free.Right() {
			left := free
			left.Width = used.X - left.X
			out = append(out, left)
		}
		if used.Right() < free.Right() {
			right := free
			right.X = used.Right()
			right.Width = free.Right() - used.Right()
			out = append(out, right)
		}
	}

	return out, true
}

// pruneDominated removes every free rect fully contained in another,
// keeping exactly one of any pair of identical rects.
func pruneDominated(rects []Rect) []Rect {
	dominated := make([]bool, len(rects))
	for i := range rects {
		if dominated[i] {
			continue
		}
		for j := range rects {
			if i == j || dominated[j] {
				continue
			}
			if rects[i].ContainsRect(rects[j]) {
				if rects[i] == rects[j] {
					// Identical rects: keep the lower index, drop the rest.
					if j > i {
						dominated[j] = true
					}
					continue
				}
				dominated[j] = true
			}
		}
	}

	out := make([]Rect, 0, len(rects))
	for i, r := range rects {
		if !dominated[i] {
			out = append(out, r)
		}
	}
	return out
}

// Add places as many of the given sprites as possible, returning the
// placed and remaining sets in input order.
func (l *MaxRectsLayout) Add(sprites ...*Sprite) (placed, remaining []*Sprite) {
	return runAdd(l, sprites)
}
