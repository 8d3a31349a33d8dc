package choice

import "github.com/plus3/blockfit/shape"

// Fitter reports whether a shape fits anywhere. *board.Grid implements it.
type Fitter interface {
	CanShapeFit(s shape.Shape) bool
}

// Checker decides whether the player has run out of choices or of moves.
type Checker struct {
	board Fitter
	tray  *Tray
}

func NewChecker(board Fitter, tray *Tray) *Checker {
	return &Checker{board: board, tray: tray}
}

// OutOfMoves is true when no unplaced choice fits on the board. It is
// vacuously true once every slot has been placed, so callers refill first.
func (c *Checker) OutOfMoves() bool {
	for _, choice := range c.tray.choices {
		if !choice.Placed && c.board.CanShapeFit(choice.Shape) {
			return false
		}
	}
	return true
}

// OutOfChoices is true when every slot has been placed.
func (c *Checker) OutOfChoices() bool {
	return c.tray.Remaining() == 0
}
