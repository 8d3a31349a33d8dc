package choice

import (
	"fmt"
	"slices"

	"github.com/plus3/blockfit/shape"
)

// Choice is one shape offered in a tray slot.
type Choice struct {
	Slot   int
	Ref    shape.Ref
	Shape  shape.Shape
	Color  shape.ColorID
	Placed bool
}

// Tray holds a fixed number of choice slots. A new tray starts with every slot
// consumed, so the first check asks for a refill.
type Tray struct {
	choices    []Choice
	generation int
}

func NewTray(slots int) (*Tray, error) {
	if slots <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSlots, slots)
	}
	t := &Tray{choices: make([]Choice, slots)}
	for i := range t.choices {
		t.choices[i] = Choice{Slot: i, Placed: true}
	}
	return t, nil
}

// Len returns the number of slots.
func (t *Tray) Len() int { return len(t.choices) }

// Generation counts completed regenerations.
func (t *Tray) Generation() int { return t.generation }

func (t *Tray) Choice(slot int) (Choice, error) {
	if slot < 0 || slot >= len(t.choices) {
		return Choice{}, fmt.Errorf("%w: %d", ErrUnknownSlot, slot)
	}
	return t.choices[slot], nil
}

// Choices returns a snapshot of every slot.
func (t *Tray) Choices() []Choice { return slices.Clone(t.choices) }

// MarkPlaced consumes a slot. A placed slot stays placed until the next
// regeneration.
func (t *Tray) MarkPlaced(slot int) error {
	if slot < 0 || slot >= len(t.choices) {
		return fmt.Errorf("%w: %d", ErrUnknownSlot, slot)
	}
	if t.choices[slot].Placed {
		return fmt.Errorf("%w: slot %d", ErrAlreadyPlaced, slot)
	}
	t.choices[slot].Placed = true
	return nil
}

// Remaining returns the number of unplaced slots.
func (t *Tray) Remaining() int {
	n := 0
	for _, c := range t.choices {
		if !c.Placed {
			n++
		}
	}
	return n
}
