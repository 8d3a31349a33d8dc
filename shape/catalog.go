package shape

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrEmptyCatalog = errors.New("catalog has no colour buckets")
	ErrEmptyBucket  = errors.New("colour bucket has no shapes")
	ErrUnknownColor = errors.New("unknown colour")
)

// Ref identifies a shape by its colour bucket and position inside the bucket.
type Ref struct {
	Color ColorID
	Index int
}

// Catalog is a read-only table of shapes grouped by colour. It is safe to share
// between sessions.
type Catalog struct {
	buckets  [][]Shape
	maxCells int
}

// NewCatalog validates and copies the given buckets. Bucket i belongs to ColorID i.
func NewCatalog(buckets ...[]Shape) (*Catalog, error) {
	if len(buckets) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{buckets: make([][]Shape, len(buckets))}
	for i, bucket := range buckets {
		if len(bucket) == 0 {
			return nil, fmt.Errorf("bucket %d: %w", i, ErrEmptyBucket)
		}
		for j, s := range bucket {
			if s.IsZero() {
				return nil, fmt.Errorf("bucket %d shape %d: %w", i, j, ErrEmptyShape)
			}
			c.maxCells = max(c.maxCells, s.CellCount())
		}
		c.buckets[i] = slices.Clone(bucket)
	}

	return c, nil
}

// ParseCatalog builds a catalog from text buckets: each bucket is a list of
// shapes, each shape a list of '#'/'.' rows.
func ParseCatalog(buckets [][][]string) (*Catalog, error) {
	shapes := make([][]Shape, len(buckets))
	for i, bucket := range buckets {
		for j, rows := range bucket {
			s, err := Parse(rows...)
			if err != nil {
				return nil, fmt.Errorf("bucket %d shape %d: %w", i, j, err)
			}
			shapes[i] = append(shapes[i], s)
		}
	}
	return NewCatalog(shapes...)
}

// NumColors returns the number of colour buckets.
func (c *Catalog) NumColors() int { return len(c.buckets) }

// MaxCells returns the largest CellCount of any shape in the catalog. Callers
// size their per-gesture scratch buffers with it.
func (c *Catalog) MaxCells() int { return c.maxCells }

// ShapesForColor returns a copy of the ordered shapes of one colour bucket.
func (c *Catalog) ShapesForColor(color ColorID) ([]Shape, error) {
	if int(color) < 0 || int(color) >= len(c.buckets) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColor, color)
	}
	return slices.Clone(c.buckets[color]), nil
}

// BucketLen returns the number of shapes for a colour, or 0 if the colour is
// unknown.
func (c *Catalog) BucketLen(color ColorID) int {
	if int(color) < 0 || int(color) >= len(c.buckets) {
		return 0
	}
	return len(c.buckets[color])
}

// Shape looks up a single shape.
func (c *Catalog) Shape(ref Ref) (Shape, error) {
	if c.BucketLen(ref.Color) == 0 {
		return Shape{}, fmt.Errorf("%w: %d", ErrUnknownColor, ref.Color)
	}
	bucket := c.buckets[ref.Color]
	if ref.Index < 0 || ref.Index >= len(bucket) {
		return Shape{}, fmt.Errorf("colour %d has no shape %d", ref.Color, ref.Index)
	}
	return bucket[ref.Index], nil
}
