package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// HoverStage previews a DragMove: it validates the dragged blocks and lights
// the lines they would complete. DragStart wipes any leftover preview.
type HoverStage struct{}

func (st *HoverStage) Execute(f *Frame) {
	s := f.Session

	switch f.Event.Kind {
	case DragStart:
		s.grid.ClearHighlights()
		f.Result.Accepted = true
	case DragMove:
		n := len(f.Event.Positions)
		cells, snapped := s.cells[:n], s.snapped[:n]
		if !s.grid.Hover(f.Event.Positions, cells, snapped, f.Choice.Color) {
			return
		}
		f.Result.Accepted = true
		f.Result.Cells = cells
		f.Result.Snapped = snapped
	}
}

// DropStage commits a DragEnd whose blocks all land on free cells, consumes
// the slot and clears completed lines.
type DropStage struct{}

func (st *DropStage) Execute(f *Frame) {
	if f.Event.Kind != DragEnd {
		return
	}
	s := f.Session
	s.grid.ClearHighlights()

	n := len(f.Event.Positions)
	cells := s.cells[:n]
	if !s.grid.Resolve(f.Event.Positions, cells) {
		s.log.WithField("slot", f.Event.Slot).Debug("drop rejected")
		return
	}

	occupants := f.Event.Occupants
	if len(occupants) == 0 {
		occupants = s.occupants[:n]
		for i := range occupants {
			s.nextOccupant++
			occupants[i] = s.nextOccupant
		}
	}

	report, err := s.grid.Place(cells, occupants)
	if err != nil {
		s.log.WithError(err).WithField("slot", f.Event.Slot).Debug("drop rejected")
		return
	}
	if err := s.tray.MarkPlaced(f.Event.Slot); err != nil {
		f.Fail(err)
		return
	}

	snapped := s.snapped[:n]
	for i, c := range cells {
		snapped[i] = s.grid.CellToWorld(c)
	}

	f.Placed = true
	f.Result.Accepted = true
	f.Result.Cells = cells
	f.Result.Snapped = snapped
	f.Result.Cleared = report

	log := s.log.WithFields(logrus.Fields{
		"slot":  f.Event.Slot,
		"shape": f.Choice.Ref,
		"at":    cells[0],
	})
	if report.Lines() > 0 {
		f.Signals.Cleared(report)
		log = log.WithFields(logrus.Fields{
			"rows":     report.Rows,
			"cols":     report.Cols,
			"released": report.Released,
		})
	}
	log.Debug("placed")
}

// RefillStage regenerates the tray once every slot has been placed.
type RefillStage struct{}

func (st *RefillStage) Execute(f *Frame) {
	s := f.Session
	if !f.Placed || !s.checker.OutOfChoices() {
		return
	}

	if err := s.gen.Regenerate(s.tray); err != nil {
		f.Fail(fmt.Errorf("refill: %w", err))
		return
	}

	f.Result.Refilled = true
	f.Signals.Refill(s.tray.Choices())
	s.log.WithField("generation", s.tray.Generation()).Debug("tray refilled")
}

// LoseStage ends the game when, after any refill, no unplaced choice fits.
type LoseStage struct{}

func (st *LoseStage) Execute(f *Frame) {
	s := f.Session
	if !f.Placed || !s.checker.OutOfMoves() {
		return
	}

	s.over = true
	f.Result.GameOver = true
	f.Signals.GameOver()
	s.log.WithFields(logrus.Fields{
		"occupied":   s.grid.Occupied(),
		"generation": s.tray.Generation(),
	}).Info("out of moves")
}
