package texpack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenarioS3RotationRequired exercises the spec's rotation-required
// worked example through Pack with the MaxRects strategy: a 4x10 sprite
// only fits a 10x4 bin once rotated.
func TestScenarioS3RotationRequired(t *testing.T) {
	sheet := NewSheet(10, 4, true, nil)
	layout := NewMaxRectsLayout(sheet)

	sprite := NewSprite(4, 10)
	placed, remaining, err := Pack(layout, sprite)

	require.NoError(t, err)
	require.Len(t, remaining, 0)
	require.Len(t, placed, 1)
	assert.True(t, sprite.Rotated)
	assert.Equal(t, 10, sprite.Width)
	assert.Equal(t, 4, sprite.Height)
}

// TestScenarioS4OversizeRejection exercises the spec's oversize example:
// a sprite too large for the bin in either orientation goes to remaining,
// while a sprite that fits is placed, independent of input order.
func TestScenarioS4OversizeRejection(t *testing.T) {
	sheet := NewSheet(5, 5, false, nil)
	layout := NewShelfLayout(sheet)

	tooBig := NewSprite(6, 1)
	fits := NewSprite(3, 3)

	placed, remaining := layout.Add(tooBig, fits)

	require.Len(t, placed, 1)
	require.Len(t, remaining, 1)
	assert.Same(t, fits, placed[0])
	assert.Same(t, tooBig, remaining[0])
	assert.Equal(t, 0, fits.X)
	assert.Equal(t, 0, fits.Y)
}

// TestPackSurfacesSkylineUnimplemented checks the one place the uniform
// Layout interface can't carry an error: Pack's marker-interface escape
// hatch for the reserved Skyline strategy.
func TestPackSurfacesSkylineUnimplemented(t *testing.T) {
	sheet := NewSheet(10, 10, true, nil)
	layout := NewSkylineLayout(sheet)

	sprite := NewSprite(2, 2)
	placed, remaining, err := Pack(layout, sprite)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnimplemented))
	assert.Len(t, placed, 0)
	assert.Len(t, remaining, 1)
}

// TestNoOverlapInvariant places a batch of sprites with every non-reserved
// strategy and checks that no two placed sprites overlap, the core
// soundness property every Layout must uphold.
func TestNoOverlapInvariant(t *testing.T) {
	sizes := [][2]int{{4, 3}, {4, 3}, {3, 4}, {2, 2}, {5, 1}, {1, 5}, {3, 3}}

	strategyNames := []string{"shelf", "stack", "max-rects"}
	for _, name := range strategyNames {
		name := name
		t.Run(name, func(t *testing.T) {
			sheet := NewSheet(10, 10, true, nil)
			layout, err := NewLayout(name, sheet)
			require.NoError(t, err)

			var sprites []*Sprite
			for _, sz := range sizes {
				sprites = append(sprites, NewSprite(sz[0], sz[1]))
			}

			placed, _ := layout.Add(sprites...)
			for i := 0; i < len(placed); i++ {
				for j := i + 1; j < len(placed); j++ {
					assert.False(t, placed[i].Rect.Intersects(placed[j].Rect),
						"%s and %s overlap", placed[i].String(), placed[j].String())
				}
			}
		})
	}
}

// TestPlacedSpritesWithinBinBounds checks property 1 from spec.md §8
// across every non-reserved strategy: every placed sprite lies fully
// inside [0, maxW] x [0, maxH].
func TestPlacedSpritesWithinBinBounds(t *testing.T) {
	sizes := [][2]int{{4, 3}, {4, 3}, {3, 4}, {2, 2}, {5, 1}, {1, 5}, {3, 3}}

	for _, name := range []string{"shelf", "stack", "max-rects"} {
		name := name
		t.Run(name, func(t *testing.T) {
			sheet := NewSheet(10, 10, true, nil)
			layout, err := NewLayout(name, sheet)
			require.NoError(t, err)

			var sprites []*Sprite
			for _, sz := range sizes {
				sprites = append(sprites, NewSprite(sz[0], sz[1]))
			}

			placed, _ := layout.Add(sprites...)
			for _, s := range placed {
				assert.GreaterOrEqual(t, s.X, 0)
				assert.GreaterOrEqual(t, s.Y, 0)
				assert.LessOrEqual(t, s.Right(), sheet.MaxWidth,
					"%s: sprite exceeds right bound", s.String())
				assert.LessOrEqual(t, s.Bottom(), sheet.MaxHeight,
					"%s: sprite exceeds bottom bound", s.String())
			}
		})
	}
}

// TestNoRotationWhenDisallowed checks property 4 from spec.md §8: when
// allow_rotate is false, no placed sprite ever has Rotated = true.
func TestNoRotationWhenDisallowed(t *testing.T) {
	sizes := [][2]int{{4, 3}, {4, 3}, {3, 4}, {2, 2}, {5, 1}, {1, 5}, {3, 3}}

	for _, name := range []string{"shelf", "stack", "max-rects"} {
		name := name
		t.Run(name, func(t *testing.T) {
			sheet := NewSheet(10, 10, false, nil)
			layout, err := NewLayout(name, sheet)
			require.NoError(t, err)

			var sprites []*Sprite
			for _, sz := range sizes {
				sprites = append(sprites, NewSprite(sz[0], sz[1]))
			}

			placed, _ := layout.Add(sprites...)
			for _, s := range placed {
				assert.False(t, s.Rotated, "%s: rotated with allow_rotate=false", s.String())
			}
		})
	}
}

// TestClearIsIdempotent checks property 5 from spec.md §8: Clear() then
// Add(S) on a used layout must reproduce the same placements a fresh
// instance produces for the same input.
func TestClearIsIdempotent(t *testing.T) {
	newSprites := func() []*Sprite {
		return []*Sprite{NewSprite(4, 3), NewSprite(4, 3), NewSprite(3, 4), NewSprite(2, 2)}
	}

	for _, name := range []string{"shelf", "stack", "max-rects"} {
		name := name
		t.Run(name, func(t *testing.T) {
			sheet := NewSheet(10, 10, true, nil)

			used, err := NewLayout(name, sheet)
			require.NoError(t, err)
			warmup := newSprites()
			used.Add(warmup...)
			used.Clear()

			fresh, err := NewLayout(name, sheet)
			require.NoError(t, err)

			usedSprites := newSprites()
			freshSprites := newSprites()

			usedPlaced, usedRemaining := used.Add(usedSprites...)
			freshPlaced, freshRemaining := fresh.Add(freshSprites...)

			require.Equal(t, len(freshPlaced), len(usedPlaced))
			require.Equal(t, len(freshRemaining), len(usedRemaining))
			for i := range freshPlaced {
				assert.Equal(t, freshPlaced[i].Rect, usedPlaced[i].Rect,
					"placement %d differs after Clear()", i)
				assert.Equal(t, freshPlaced[i].Rotated, usedPlaced[i].Rotated,
					"rotation %d differs after Clear()", i)
			}
		})
	}
}

// TestInputOrderPreserved confirms placed and remaining both keep the
// relative order of the original input slice, independent of the order a
// strategy chose to place sprites in.
func TestInputOrderPreserved(t *testing.T) {
	sheet := NewSheet(4, 4, false, nil)
	layout := NewShelfLayout(sheet)

	first := NewSprite(4, 4)  // fills the whole bin
	second := NewSprite(1, 1) // cannot fit afterward
	third := NewSprite(1, 1)  // cannot fit afterward

	placed, remaining := layout.Add(first, second, third)

	require.Len(t, placed, 1)
	require.Len(t, remaining, 2)
	assert.Same(t, first, placed[0])
	assert.Same(t, second, remaining[0])
	assert.Same(t, third, remaining[1])
}
