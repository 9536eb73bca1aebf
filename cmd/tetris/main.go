package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"
	"github.com/plus3/tetris/debugui"
	debugui_ebiten "github.com/plus3/tetris/debugui/ebiten"
	"github.com/plus3/tetris/game"
)

const windowTitle = "Tetris"

func main() {
	defaults := game.DefaultConfig()
	height := flag.Int("height", defaults.Height, "Visible board rows.")
	width := flag.Int("width", defaults.Width, "Board columns.")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Seed for the piece generator.")
	drop := flag.Duration("drop", defaults.DropInterval, "Gravity interval at level 0.")
	level := flag.Duration("level", defaults.LevelDuration, "Play time between levels.")
	cell := flag.Int("cell", 28, "Cell size in pixels.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui inspector windows.")
	flag.Parse()

	cfg := defaults
	cfg.Height, cfg.Width = *height, *width
	cfg.Seed = *seed
	cfg.DropInterval = *drop
	cfg.LevelDuration = *level
	cfg.MinDropInterval = min(cfg.MinDropInterval, cfg.DropInterval)

	session, err := game.NewSession(cfg)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}
	log.Printf("Starting %dx%d game with seed %d", cfg.Height, cfg.Width, cfg.Seed)

	g := &Game{
		session: session,
		layout:  newLayout(cfg.Height, cfg.Width, *cell),
		keys:    newKeyboard(),
		ghost:   intmap.New[uint64, struct{}](8),
		dt:      time.Second / time.Duration(ebiten.TPS()),
	}

	if *debug {
		w, h := g.layout.windowSize()
		g.imgui = debugui_ebiten.NewImguiBackend(windowTitle, max(w, 1280), max(h, 900))
		g.overlay = newOverlay(session)
		session.Scheduler().Register(g.overlay)
	} else {
		ebiten.SetWindowSize(g.layout.windowSize())
		ebiten.SetWindowTitle(windowTitle)
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}

	state := session.State()
	log.Printf("Final score %d, %d lines, level %d", state.Score, state.Lines, state.Level)
}

func newOverlay(session *game.Session) *debugui.ImguiSystem {
	timer := debugui.NewFrameTimer()
	stats := debugui.NewSessionStatsWindow(120)
	latency := debugui.NewLatencyChart(120)
	inspector := &debugui.BoardInspector{ShowProjection: true}

	overlay := &debugui.ImguiSystem{}
	overlay.Add(func() { stats.Render(session, timer.GetDeltaTime()) })
	overlay.Add(func() { latency.Render(session.Scheduler().Stats()) })
	overlay.Add(func() { inspector.Render(session.Board()) })
	return overlay
}
