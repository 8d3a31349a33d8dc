package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/plus3/blockfit/board"
	"github.com/plus3/blockfit/choice"
	"github.com/plus3/blockfit/debugui"
	debugui_ebiten "github.com/plus3/blockfit/debugui/ebiten"
	"github.com/plus3/blockfit/engine"
	"github.com/plus3/blockfit/pool"
	"github.com/plus3/blockfit/shape"
)

// Block is the sprite behind one occupied cell.
type Block struct {
	Color shape.ColorID
}

type Game struct {
	log     logrus.FieldLogger
	session *engine.Session
	palette []color.RGBA
	blocks  *pool.Pool[*Block]

	width, height int

	// Drag state. slot is -1 when nothing is held.
	slot      int
	offsets   []board.Vec2
	positions []board.Vec2
	occupants []board.Occupant
	hover     engine.Result

	score    int
	lines    int
	gameOver bool

	debug        bool
	overlay      *debugui.Overlay
	imguiBackend debugui_ebiten.ImguiBackend
}

func (g *Game) listener() engine.Listener {
	return engine.ListenerFuncs{
		Cleared: func(r board.ClearReport) {
			g.lines += r.Lines()
			g.score += r.Released * r.Lines()
		},
		Refill: func(choices []choice.Choice) {
			g.log.WithField("slots", len(choices)).Debug("new choices")
		},
		GameOver: func() {
			g.gameOver = true
			g.log.WithFields(logrus.Fields{
				"score": g.score,
				"lines": g.lines,
			}).Info("game over")
		},
	}
}

func (g *Game) restart() {
	g.cancelDrag()
	if err := g.session.StartLevel(g.width, g.height); err != nil {
		g.log.WithError(err).Error("restart failed")
		return
	}
	g.score, g.lines, g.gameOver = 0, 0, false
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	wantMouse, wantKeyboard := false, false
	if g.debug {
		g.imguiBackend.BeginFrame()
		g.overlay.Render()
		g.imguiBackend.EndFrame()
		wantMouse = g.overlay.Input.WantCaptureMouse
		wantKeyboard = g.overlay.Input.WantCaptureKeyboard
	}

	if !wantKeyboard && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart()
	}
	if wantMouse {
		return nil
	}

	mx, my := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.beginDrag(mx, my)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.endDrag(mx, my)
	case g.slot >= 0 && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.moveDrag(mx, my)
	}
	return nil
}

func (g *Game) beginDrag(mx, my int) {
	if g.gameOver {
		return
	}
	slot, ok := g.slotAt(mx, my)
	if !ok {
		return
	}
	if _, err := g.session.Handle(engine.Event{Kind: engine.DragStart, Slot: slot}); err != nil {
		g.log.WithError(err).WithField("slot", slot).Debug("drag refused")
		return
	}
	offsets, err := g.session.Layout(slot, g.offsets)
	if err != nil {
		g.log.WithError(err).Warn("layout failed")
		return
	}
	g.slot, g.offsets = slot, offsets
	g.moveDrag(mx, my)
}

func (g *Game) moveDrag(mx, my int) {
	g.trackCursor(mx, my)
	res, err := g.session.Handle(engine.Event{Kind: engine.DragMove, Slot: g.slot, Positions: g.positions})
	if err != nil {
		g.log.WithError(err).Warn("drag move failed")
		g.cancelDrag()
		return
	}
	g.hover = res
}

func (g *Game) endDrag(mx, my int) {
	if g.slot < 0 {
		return
	}
	defer g.cancelDrag()

	c, err := g.session.Choice(g.slot)
	if err != nil {
		return
	}
	g.trackCursor(mx, my)

	g.occupants = g.occupants[:0]
	for range g.positions {
		o, b := g.blocks.Acquire()
		b.Color = c.Color
		g.occupants = append(g.occupants, o)
	}

	res, err := g.session.Handle(engine.Event{
		Kind:      engine.DragEnd,
		Slot:      g.slot,
		Positions: g.positions,
		Occupants: g.occupants,
	})
	if err != nil || !res.Accepted {
		for _, o := range g.occupants {
			g.blocks.Release(o)
		}
		if err != nil {
			g.log.WithError(err).Warn("drop failed")
		}
		return
	}
	g.score += len(g.occupants)
}

func (g *Game) cancelDrag() {
	g.slot = -1
	g.hover = engine.Result{}
	g.session.Grid().ClearHighlights()
}

// trackCursor writes the world position of every held block.
func (g *Game) trackCursor(mx, my int) {
	at := screenToWorld(mx, my)
	g.positions = g.positions[:0]
	for _, off := range g.offsets {
		g.positions = append(g.positions, at.Add(off))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.debug {
		g.imguiBackend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
