package engine

import "github.com/plus3/blockfit/choice"

// Frame carries a single event through the stage pipeline.
type Frame struct {
	Event   Event
	Choice  choice.Choice
	Result  Result
	Signals *Signals
	Session *Session

	// Placed is set once the dropped shape has been committed to the board.
	Placed bool

	err error
}

// reset prepares a session-owned frame for the next event.
func (f *Frame) reset(s *Session, ev Event, c choice.Choice) {
	*f = Frame{
		Event:   ev,
		Choice:  c,
		Signals: s.signals,
		Session: s,
	}
}

// Fail records err and stops the remaining stages. Signals raised during the
// frame are discarded. Only the first error is kept.
func (f *Frame) Fail(err error) {
	if f.err == nil {
		f.err = err
	}
}

// Err returns the error recorded with Fail.
func (f *Frame) Err() error { return f.err }
