// Package choice produces the shapes offered to the player and decides when the
// offer is exhausted.
package choice

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/plus3/blockfit/shape"
)

var (
	ErrTooManyColors = errors.New("more colours requested than available")
	ErrInvalidSlots  = errors.New("slot count must be positive")
	ErrUnknownSlot   = errors.New("unknown slot")
	ErrAlreadyPlaced = errors.New("choice already placed")
)

// Generator draws random colours and shapes from a catalog.
type Generator struct {
	catalog   *shape.Catalog
	available int
	rng       *rand.Rand
	perm      []int
}

// NewGenerator creates a generator over the first paletteSize colours of the
// catalog. A nil rng is replaced by a randomly seeded PCG source.
func NewGenerator(catalog *shape.Catalog, paletteSize int, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	available := max(0, min(catalog.NumColors(), paletteSize))
	return &Generator{
		catalog:   catalog,
		available: available,
		rng:       rng,
		perm:      make([]int, available),
	}
}

// Available is the number of distinct colours the generator can hand out.
func (g *Generator) Available() int { return g.available }

// Catalog returns the catalog shapes are drawn from.
func (g *Generator) Catalog() *shape.Catalog { return g.catalog }

// PickColors returns n distinct colours chosen uniformly without replacement.
func (g *Generator) PickColors(n int) ([]shape.ColorID, error) {
	if n < 0 || n > g.available {
		return nil, fmt.Errorf("%w: %d of %d", ErrTooManyColors, n, g.available)
	}

	idx := g.uniqueIndices(n)
	colors := make([]shape.ColorID, n)
	for i, v := range idx {
		colors[i] = shape.ColorID(v)
	}
	return colors, nil
}

// uniqueIndices runs a partial Fisher-Yates shuffle over [0, available) and
// returns its first k entries. The result aliases g.perm.
func (g *Generator) uniqueIndices(k int) []int {
	for i := range g.perm {
		g.perm[i] = i
	}
	n := len(g.perm)
	for i := 0; i < k; i++ {
		j := i + g.rng.IntN(n-i)
		g.perm[i], g.perm[j] = g.perm[j], g.perm[i]
	}
	return g.perm[:k]
}

// PickShape returns a uniformly random shape from the colour's bucket.
func (g *Generator) PickShape(color shape.ColorID) (shape.Shape, shape.Ref, error) {
	n := g.catalog.BucketLen(color)
	if n == 0 {
		return shape.Shape{}, shape.Ref{}, fmt.Errorf("%w: %d", shape.ErrUnknownColor, color)
	}
	ref := shape.Ref{Color: color, Index: g.rng.IntN(n)}
	s, err := g.catalog.Shape(ref)
	return s, ref, err
}

// Regenerate overwrites every slot of the tray with a fresh choice. Slot colours
// are pairwise distinct. On error the tray is left unchanged.
func (g *Generator) Regenerate(t *Tray) error {
	colors, err := g.PickColors(t.Len())
	if err != nil {
		return err
	}

	next := make([]Choice, len(colors))
	for slot, color := range colors {
		s, ref, err := g.PickShape(color)
		if err != nil {
			return fmt.Errorf("slot %d: %w", slot, err)
		}
		next[slot] = Choice{Slot: slot, Ref: ref, Shape: s, Color: color}
	}

	copy(t.choices, next)
	t.generation++
	return nil
}
