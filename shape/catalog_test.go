package shape_test

import (
	"testing"

	"github.com/plus3/blockfit/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := shape.Default()

	require.Equal(t, 4, c.NumColors())
	assert.Equal(t, 6, c.MaxCells())

	wantSizes := []int{10, 10, 9, 10}
	for color, want := range wantSizes {
		shapes, err := c.ShapesForColor(shape.ColorID(color))
		require.NoError(t, err)
		assert.Len(t, shapes, want, "colour %d", color)
		assert.Equal(t, want, c.BucketLen(shape.ColorID(color)))

		for i, s := range shapes {
			assert.Greater(t, s.CellCount(), 0, "colour %d shape %d", color, i)
			assert.False(t, s.IsZero())
		}
	}

	assert.Same(t, c, shape.Default())
}

func TestCatalogLookups(t *testing.T) {
	c := shape.Default()

	_, err := c.ShapesForColor(-1)
	assert.ErrorIs(t, err, shape.ErrUnknownColor)
	_, err = c.ShapesForColor(4)
	assert.ErrorIs(t, err, shape.ErrUnknownColor)
	assert.Equal(t, 0, c.BucketLen(99))

	s, err := c.Shape(shape.Ref{Color: 3, Index: 2})
	require.NoError(t, err)
	assert.Equal(t, "#####", s.String())

	_, err = c.Shape(shape.Ref{Color: 2, Index: 9})
	assert.Error(t, err)
	_, err = c.Shape(shape.Ref{Color: 7})
	assert.ErrorIs(t, err, shape.ErrUnknownColor)
}

func TestShapesForColorReturnsCopy(t *testing.T) {
	c := shape.Default()

	shapes, err := c.ShapesForColor(0)
	require.NoError(t, err)
	shapes[0] = shape.MustParse("###")

	again, err := c.ShapesForColor(0)
	require.NoError(t, err)
	assert.Equal(t, "#", again[0].String())
}

func TestNewCatalogValidation(t *testing.T) {
	_, err := shape.NewCatalog()
	assert.ErrorIs(t, err, shape.ErrEmptyCatalog)

	_, err = shape.NewCatalog([]shape.Shape{shape.MustParse("#")}, nil)
	assert.ErrorIs(t, err, shape.ErrEmptyBucket)

	_, err = shape.NewCatalog([]shape.Shape{{}})
	assert.ErrorIs(t, err, shape.ErrEmptyShape)

	_, err = shape.ParseCatalog([][][]string{{{"#"}, {"..", ".."}}})
	assert.ErrorIs(t, err, shape.ErrDegenerateShape)

	c, err := shape.ParseCatalog([][][]string{{{"#"}}, {{"##", "##"}}})
	require.NoError(t, err)
	assert.Equal(t, 2, c.NumColors())
	assert.Equal(t, 4, c.MaxCells())
}
