// Package engine drives a block placement game from drag gestures. A Session
// owns the board, the tray of choices and the generator that refills it, and
// runs every event through a pipeline of stages.
package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/plus3/blockfit/board"
	"github.com/plus3/blockfit/choice"
	"github.com/plus3/blockfit/shape"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrBlockCount           = errors.New("block count does not match shape")
	ErrUnknownEvent         = errors.New("unknown event kind")
)

// DefaultSlots is the number of choices offered at once.
const DefaultSlots = 3

// Options configures a Session. Zero values select the defaults.
type Options struct {
	Catalog  *shape.Catalog
	Geometry board.Geometry
	Slots    int
	// PaletteSize caps the number of colours in play. Zero means every
	// colour of the catalog.
	PaletteSize int
	Rand        *rand.Rand
	Releaser    board.Releaser
	Listener    Listener
	Logger      logrus.FieldLogger
}

func (o *Options) setDefaults() {
	if o.Catalog == nil {
		o.Catalog = shape.Default()
	}
	if o.Geometry == (board.Geometry{}) {
		o.Geometry = board.DefaultGeometry()
	}
	if o.Slots == 0 {
		o.Slots = DefaultSlots
	}
	if o.PaletteSize == 0 {
		o.PaletteSize = o.Catalog.NumColors()
	}
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
}

// Session is one running game. It is not safe for concurrent use; feed it
// events from a single goroutine.
type Session struct {
	catalog  *shape.Catalog
	grid     *board.Grid
	tray     *choice.Tray
	gen      *choice.Generator
	checker  *choice.Checker
	pipeline *Pipeline
	signals  *Signals
	listener Listener
	log      logrus.FieldLogger

	over         bool
	nextOccupant board.Occupant

	frame     Frame
	cells     []board.Coord
	snapped   []board.Vec2
	occupants []board.Occupant
}

// NewSession builds a width x height board and deals the first tray.
func NewSession(width, height int, opts Options) (*Session, error) {
	opts.setDefaults()

	tray, err := choice.NewTray(opts.Slots)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	gen := choice.NewGenerator(opts.Catalog, opts.PaletteSize, opts.Rand)
	if gen.Available() < opts.Slots {
		return nil, fmt.Errorf("%w: %w: %d slots but %d colours",
			ErrInvalidConfiguration, choice.ErrTooManyColors, opts.Slots, gen.Available())
	}

	grid, err := board.New(width, height, opts.Geometry, opts.Releaser)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	maxCells := opts.Catalog.MaxCells()
	s := &Session{
		catalog:   opts.Catalog,
		grid:      grid,
		tray:      tray,
		gen:       gen,
		checker:   choice.NewChecker(grid, tray),
		pipeline:  NewPipeline(),
		signals:   newSignals(),
		listener:  opts.Listener,
		log:       opts.Logger.WithField("component", "engine"),
		cells:     make([]board.Coord, maxCells),
		snapped:   make([]board.Vec2, maxCells),
		occupants: make([]board.Occupant, maxCells),
	}

	s.pipeline.Register(&HoverStage{})
	s.pipeline.Register(&DropStage{})
	s.pipeline.Register(&RefillStage{})
	s.pipeline.Register(&LoseStage{})

	if err := s.deal(); err != nil {
		return nil, err
	}
	return s, nil
}

// StartLevel clears the board, resizes it and deals a new tray. Invalid
// dimensions leave the running level untouched.
func (s *Session) StartLevel(width, height int) error {
	if err := s.grid.Reset(width, height); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return s.deal()
}

func (s *Session) deal() error {
	if err := s.gen.Regenerate(s.tray); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	s.over = false

	s.log.WithFields(logrus.Fields{
		"width":  s.grid.Width(),
		"height": s.grid.Height(),
		"slots":  s.tray.Len(),
	}).Info("level started")

	if s.listener != nil {
		s.listener.OnRefill(s.tray.Choices())
	}
	return nil
}

// Handle feeds one drag event through the stage pipeline.
//
// Rejected placements are not errors: the result simply has Accepted unset.
// Errors report misuse, such as an unknown or already placed slot or a
// position count that does not match the slot's shape. Once the game is over
// every event is ignored and reported with GameOver set.
func (s *Session) Handle(ev Event) (Result, error) {
	if s.over {
		return Result{GameOver: true}, nil
	}
	if ev.Kind > DragEnd {
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownEvent, ev.Kind)
	}

	c, err := s.tray.Choice(ev.Slot)
	if err != nil {
		return Result{}, err
	}
	if c.Placed {
		return Result{}, fmt.Errorf("%w: slot %d", choice.ErrAlreadyPlaced, ev.Slot)
	}

	if ev.Kind != DragStart {
		if len(ev.Positions) != c.Shape.CellCount() {
			return Result{}, fmt.Errorf("%w: %d positions for %d blocks",
				ErrBlockCount, len(ev.Positions), c.Shape.CellCount())
		}
		if len(ev.Occupants) != 0 && len(ev.Occupants) != len(ev.Positions) {
			return Result{}, fmt.Errorf("%w: %d occupants for %d blocks",
				ErrBlockCount, len(ev.Occupants), len(ev.Positions))
		}
	}

	s.frame.reset(s, ev, c)
	s.pipeline.Once(&s.frame, s.listener)
	return s.frame.Result, s.frame.err
}

// Register appends a custom stage after the built-in ones.
func (s *Session) Register(stage Stage) { s.pipeline.Register(stage) }

// Grid exposes the board for rendering and inspection. Callers must not
// mutate it directly.
func (s *Session) Grid() *board.Grid { return s.grid }

// Catalog returns the catalog the tray is dealt from.
func (s *Session) Catalog() *shape.Catalog { return s.catalog }

// Choices returns a snapshot of the tray.
func (s *Session) Choices() []choice.Choice { return s.tray.Choices() }

// Choice returns one tray slot.
func (s *Session) Choice(slot int) (choice.Choice, error) { return s.tray.Choice(slot) }

// Generation counts how many trays have been dealt.
func (s *Session) Generation() int { return s.tray.Generation() }

// Over reports whether the game has ended.
func (s *Session) Over() bool { return s.over }

// Stats returns the stage pipeline statistics.
func (s *Session) Stats() *PipelineStats { return s.pipeline.GetStats() }

// Layout writes the world offsets of a slot's blocks relative to the dragged
// group's position. Event positions are that position plus each offset.
func (s *Session) Layout(slot int, out []board.Vec2) ([]board.Vec2, error) {
	c, err := s.tray.Choice(slot)
	if err != nil {
		return nil, err
	}
	return s.grid.GroupLayout(c.Shape, out), nil
}

// BlocksAt writes the block positions that land a slot's shape with its
// bottom-left corner on anchor.
func (s *Session) BlocksAt(slot int, anchor board.Coord, out []board.Vec2) ([]board.Vec2, error) {
	out, err := s.Layout(slot, out)
	if err != nil {
		return nil, err
	}
	c, _ := s.tray.Choice(slot)
	origin := s.grid.GroupPosition(c.Shape, anchor)
	for i := range out {
		out[i] = origin.Add(out[i])
	}
	return out, nil
}
