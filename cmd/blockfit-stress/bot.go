package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfit/board"
	"github.com/plus3/blockfit/engine"
)

// Bot plays by dragging a random remaining piece onto a random anchor where it
// fits.
type Bot struct {
	session   *engine.Session
	rng       *rand.Rand
	positions []board.Vec2
}

// Move performs one full drag gesture. It reports whether a piece was placed.
func (b *Bot) Move() (bool, error) {
	grid := b.session.Grid()

	var slots []int
	for _, c := range b.session.Choices() {
		if !c.Placed {
			slots = append(slots, c.Slot)
		}
	}
	b.rng.Shuffle(len(slots), func(i, j int) { slots[i], slots[j] = slots[j], slots[i] })

	for _, slot := range slots {
		c, err := b.session.Choice(slot)
		if err != nil {
			return false, err
		}
		anchors := grid.Anchors(c.Shape)
		if len(anchors) == 0 {
			continue
		}
		anchor := anchors[b.rng.IntN(len(anchors))]

		if _, err := b.session.Handle(engine.Event{Kind: engine.DragStart, Slot: slot}); err != nil {
			return false, err
		}
		b.positions, err = b.session.BlocksAt(slot, anchor, b.positions)
		if err != nil {
			return false, err
		}
		if _, err := b.session.Handle(engine.Event{Kind: engine.DragMove, Slot: slot, Positions: b.positions}); err != nil {
			return false, err
		}
		res, err := b.session.Handle(engine.Event{Kind: engine.DragEnd, Slot: slot, Positions: b.positions})
		if err != nil {
			return false, err
		}
		return res.Accepted, nil
	}
	return false, nil
}
