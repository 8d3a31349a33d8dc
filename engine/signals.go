package engine

import (
	"github.com/plus3/blockfit/board"
	"github.com/plus3/blockfit/choice"
)

// Listener receives the outward signals of a session.
type Listener interface {
	// OnCleared reports the lines removed by a drop.
	OnCleared(report board.ClearReport)
	// OnRefill reports a freshly generated tray.
	OnRefill(choices []choice.Choice)
	// OnGameOver fires once when no remaining choice fits.
	OnGameOver()
}

// ListenerFuncs adapts optional callbacks to the Listener interface.
type ListenerFuncs struct {
	Cleared  func(board.ClearReport)
	Refill   func([]choice.Choice)
	GameOver func()
}

func (l ListenerFuncs) OnCleared(r board.ClearReport) {
	if l.Cleared != nil {
		l.Cleared(r)
	}
}

func (l ListenerFuncs) OnRefill(c []choice.Choice) {
	if l.Refill != nil {
		l.Refill(c)
	}
}

func (l ListenerFuncs) OnGameOver() {
	if l.GameOver != nil {
		l.GameOver()
	}
}

// Signals buffers outward notifications raised by stages. They are delivered
// after every stage of the frame has run, so listeners always observe the
// finished board and tray.
type Signals struct {
	cleared  []board.ClearReport
	refills  [][]choice.Choice
	gameOver bool
	defers   []func()
}

func newSignals() *Signals {
	return &Signals{}
}

// Cleared queues a line-clear notification.
func (s *Signals) Cleared(report board.ClearReport) {
	s.cleared = append(s.cleared, report)
}

// Refill queues a refill notification.
func (s *Signals) Refill(choices []choice.Choice) {
	s.refills = append(s.refills, choices)
}

// GameOver queues the game-over notification. Repeated calls collapse.
func (s *Signals) GameOver() {
	s.gameOver = true
}

// Defer queues a function to run after the listener has been notified.
func (s *Signals) Defer(fn func()) {
	s.defers = append(s.defers, fn)
}

// Pending returns the number of queued notifications.
func (s *Signals) Pending() int {
	n := len(s.cleared) + len(s.refills) + len(s.defers)
	if s.gameOver {
		n++
	}
	return n
}

// Flush delivers clears, then refills, then game over, then deferred functions,
// and resets the buffer. A nil listener only runs the deferred functions.
func (s *Signals) Flush(l Listener) {
	if l != nil {
		for _, r := range s.cleared {
			l.OnCleared(r)
		}
		for _, c := range s.refills {
			l.OnRefill(c)
		}
		if s.gameOver {
			l.OnGameOver()
		}
	}

	for _, fn := range s.defers {
		fn()
	}

	s.reset()
}

func (s *Signals) reset() {
	clear(s.cleared)
	s.cleared = s.cleared[:0]
	clear(s.refills)
	s.refills = s.refills[:0]
	s.gameOver = false
	clear(s.defers)
	s.defers = s.defers[:0]
}
