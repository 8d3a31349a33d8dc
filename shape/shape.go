// Package shape defines the immutable polyomino shapes dragged onto the board and
// the colour-bucketed catalog they are drawn from.
package shape

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

var (
	ErrEmptyShape      = errors.New("shape has no rows or columns")
	ErrRaggedShape     = errors.New("shape rows differ in length")
	ErrDegenerateShape = errors.New("shape has no filled cell")
	ErrLooseBounds     = errors.New("shape has an empty border row or column")
	ErrBadGlyph        = errors.New("shape row contains an unknown glyph")
)

// ColorID indexes the palette. Each colour owns one bucket of shapes.
type ColorID int

// Offset is the position of one filled cell relative to the bottom-left corner of
// the shape's bounding box, in board orientation (rows grow upward).
type Offset struct {
	Col, Row int
}

// Shape is a binary matrix of filled cells. Shapes are values; their backing
// storage is never mutated after construction, so copies may be shared freely.
type Shape struct {
	rows, cols int
	filled     []bool
	cells      []Offset
}

// New builds a shape from a matrix where any non-zero entry is a filled cell.
// Row 0 of the matrix is the top row of the shape.
func New(matrix [][]uint8) (Shape, error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return Shape{}, ErrEmptyShape
	}

	rows, cols := len(matrix), len(matrix[0])
	s := Shape{
		rows:   rows,
		cols:   cols,
		filled: make([]bool, rows*cols),
	}

	for r, line := range matrix {
		if len(line) != cols {
			return Shape{}, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(line), cols, ErrRaggedShape)
		}
		for c, v := range line {
			if v == 0 {
				continue
			}
			s.filled[r*cols+c] = true
			s.cells = append(s.cells, Offset{Col: c, Row: rows - 1 - r})
		}
	}

	if len(s.cells) == 0 {
		return Shape{}, ErrDegenerateShape
	}
	if !s.tight() {
		return Shape{}, ErrLooseBounds
	}

	// Bottom-up, left-to-right keeps layouts stable for callers that index blocks.
	slices.SortFunc(s.cells, func(a, b Offset) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})

	return s, nil
}

// Parse builds a shape from text rows using '#' (or '1') for filled cells and
// '.' (or '0') for empty ones. The first row is the top of the shape.
func Parse(rows ...string) (Shape, error) {
	matrix := make([][]uint8, len(rows))
	for r, row := range rows {
		matrix[r] = make([]uint8, 0, len(row))
		for _, ch := range row {
			switch ch {
			case '#', '1':
				matrix[r] = append(matrix[r], 1)
			case '.', '0':
				matrix[r] = append(matrix[r], 0)
			default:
				return Shape{}, fmt.Errorf("row %d: %q: %w", r, ch, ErrBadGlyph)
			}
		}
	}
	return New(matrix)
}

// MustParse is like Parse but panics on malformed input. It is meant for static
// shape tables.
func MustParse(rows ...string) Shape {
	s, err := Parse(rows...)
	if err != nil {
		panic(fmt.Sprintf("shape: %v", err))
	}
	return s
}

// tight reports whether every border row and column holds a filled cell.
func (s Shape) tight() bool {
	top, bottom, left, right := false, false, false, false
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			if !s.filled[r*s.cols+c] {
				continue
			}
			top = top || r == 0
			bottom = bottom || r == s.rows-1
			left = left || c == 0
			right = right || c == s.cols-1
		}
	}
	return top && bottom && left && right
}

// Rows returns the height of the bounding box.
func (s Shape) Rows() int { return s.rows }

// Cols returns the width of the bounding box.
func (s Shape) Cols() int { return s.cols }

// CellCount returns the number of filled cells, which is also the number of
// blocks a choice of this shape is made of.
func (s Shape) CellCount() int { return len(s.cells) }

// IsZero reports whether s is the zero Shape.
func (s Shape) IsZero() bool { return s.rows == 0 }

// Filled reports whether the matrix cell at (row, col) is filled, with row 0 at
// the top. Out-of-range positions are empty.
func (s Shape) Filled(row, col int) bool {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return false
	}
	return s.filled[row*s.cols+col]
}

// Cells iterates the filled offsets in board orientation, bottom row first.
func (s Shape) Cells() iter.Seq2[int, Offset] {
	return func(yield func(int, Offset) bool) {
		for i, o := range s.cells {
			if !yield(i, o) {
				return
			}
		}
	}
}

// Offsets returns a copy of the filled offsets in board orientation.
func (s Shape) Offsets() []Offset {
	return slices.Clone(s.cells)
}

// Equal reports whether two shapes have the same matrix.
func (s Shape) Equal(o Shape) bool {
	return s.rows == o.rows && s.cols == o.cols && slices.Equal(s.filled, o.filled)
}

// String renders the matrix as '#'/'.' rows separated by newlines.
func (s Shape) String() string {
	var b strings.Builder
	for r := 0; r < s.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < s.cols; c++ {
			if s.filled[r*s.cols+c] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
