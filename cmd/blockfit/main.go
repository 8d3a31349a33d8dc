package main

import (
	"flag"
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/plus3/blockfit/config"
	"github.com/plus3/blockfit/debugui"
	debugui_ebiten "github.com/plus3/blockfit/debugui/ebiten"
	"github.com/plus3/blockfit/engine"
	"github.com/plus3/blockfit/pool"
)

const (
	ScreenWidth  = 640
	ScreenHeight = 800
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	envPath := flag.String("env", ".env", "Path to a .env file with BLOCKFIT_* overrides.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui inspector panels.")
	flag.Parse()

	if err := config.LoadDotEnv(*envPath); err != nil {
		logrus.WithError(err).Fatal("failed to load env file")
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}
	log := cfg.NewLogger()

	palette, err := cfg.Colors()
	if err != nil {
		log.WithError(err).Fatal("bad palette")
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		log.WithError(err).Fatal("bad shape catalog")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	game := &Game{
		log:     log,
		palette: palette,
		blocks:  pool.New(func() *Block { return &Block{} }, cfg.Board.Width*cfg.Board.Height),
		width:   cfg.Board.Width,
		height:  cfg.Board.Height,
		slot:    -1,
	}
	game.blocks.Preload(cfg.Board.Width * cfg.Board.Height / 2)

	game.session, err = engine.NewSession(cfg.Board.Width, cfg.Board.Height, engine.Options{
		Catalog:     catalog,
		Geometry:    cfg.BoardGeometry(),
		Slots:       cfg.Slots,
		PaletteSize: len(palette),
		Rand:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Releaser:    game.blocks,
		Listener:    game.listener(),
		Logger:      log,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to start session")
	}
	log.WithFields(logrus.Fields{
		"width":  cfg.Board.Width,
		"height": cfg.Board.Height,
		"seed":   seed,
	}).Info("blockfit ready")

	if *debug {
		game.enableDebug(palette)
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle("Blockfit")
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Fatal("game exited")
	}
}

func (g *Game) enableDebug(palette []color.RGBA) {
	g.imguiBackend = debugui_ebiten.NewImguiBackend("Blockfit (debug)", ScreenWidth*2, ScreenHeight)
	g.debug = true

	boardViewer := debugui.NewBoardViewerComponent(palette)
	trayViewer := debugui.NewTrayViewerComponent(palette)
	trayViewer.Restart = g.restart
	stats := debugui.NewPerformanceStatsComponent(120)
	timer := debugui.NewFrameTimer()

	g.overlay = &debugui.Overlay{}
	g.overlay.Add(func() { boardViewer.Render(g.session.Grid()) })
	g.overlay.Add(func() { trayViewer.Render(g.session) })
	g.overlay.Add(func() { stats.Render(g.session.Stats(), timer.GetDeltaTime()) })
}
