package engine

import (
	"fmt"

	"github.com/plus3/blockfit/board"
)

// EventKind is the phase of a drag gesture.
type EventKind uint8

const (
	DragStart EventKind = iota
	DragMove
	DragEnd
)

func (k EventKind) String() string {
	switch k {
	case DragStart:
		return "DragStart"
	case DragMove:
		return "DragMove"
	case DragEnd:
		return "DragEnd"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is one step of a drag gesture on a tray slot.
//
// Positions holds the world position of every block of the slot's shape, in the
// order of the shape's cells, and is required for DragMove and DragEnd.
// Occupants optionally supplies the handle for each block on DragEnd; when empty
// the session numbers the blocks itself.
type Event struct {
	Kind      EventKind
	Slot      int
	Positions []board.Vec2
	Occupants []board.Occupant
}

// Result is what the session reports back for an event.
//
// Snapped and Cells alias session buffers and are only valid until the next
// call to Handle.
type Result struct {
	Accepted bool
	Snapped  []board.Vec2
	Cells    []board.Coord
	Cleared  board.ClearReport
	Refilled bool
	GameOver bool
}
