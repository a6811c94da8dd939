//go:build ebiten

package app

import (
	"errors"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gridpath/internal/core"
	"gridpath/internal/render"
	"gridpath/internal/session"
	"gridpath/internal/ui"
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *session.Session
	painter *render.GridPainter
	palette render.Palette
	hud     *ui.HUD
	overlay *ui.Overlay
	timer   *core.FixedStep
	logger  *slog.Logger

	scale    int
	hudWidth int
	running  bool
	tickOnce bool
}

// New constructs a Game for the provided session.
func New(s *session.Session, cfg *Config, logger *slog.Logger) *Game {
	size := s.Size()
	return &Game{
		session:  s,
		painter:  render.NewGridPainter(size.W, size.H),
		palette:  render.DefaultPalette(),
		hud:      ui.NewHUD(s, cfg.HUDWidth),
		overlay:  ui.NewOverlay(s, cfg.Scale),
		timer:    core.NewFixedStep(s.TPS()),
		logger:   logger,
		scale:    max(cfg.Scale, 1),
		hudWidth: max(cfg.HUDWidth, 0),
	}
}

// Run opens the window and blocks until it is closed.
func Run(cfg *Config, logger *slog.Logger) error {
	s, err := session.New(cfg.Session(), logger)
	if err != nil {
		return err
	}
	g := New(s, cfg, logger)
	size := s.Size()
	ebiten.SetWindowTitle(s.Name())
	ebiten.SetWindowSize(size.W*g.scale+g.hudWidth, size.H*g.scale)
	logger.Info("window opened", slog.Int("width", size.W), slog.Int("height", size.H), slog.String("layout", cfg.Layout))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (g *Game) stop() {
	g.running = false
	g.tickOnce = false
}

// Update handles input and advances the search.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		g.session.SetMode(session.ModeStart)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		g.session.SetMode(session.ModeGoal)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		g.session.SetMode(session.ModeObstacle)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && g.begin() {
		g.running = true
		g.timer.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && g.session.Engine() != nil {
		g.running = !g.running
		g.timer.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.begin() {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Discard()
		g.stop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
		g.stop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.session.Reset(time.Now().UnixNano())
		g.stop()
	}

	size := g.session.Size()
	consumed := g.hud.Update(size.W * g.scale)
	g.overlay.Update()
	if !consumed && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click()
	}

	g.advance()
	return nil
}

func (g *Game) begin() bool {
	if err := g.session.Begin(); err != nil {
		g.logger.Warn("cannot start search", slog.String("error", err.Error()))
		return false
	}
	return true
}

func (g *Game) click() {
	mx, my := ebiten.CursorPosition()
	x, y, ok := ui.CellAt(mx, my, g.scale, g.session.Size())
	if !ok {
		return
	}
	if err := g.session.Apply(x, y); err != nil {
		g.logger.Warn("edit rejected", slog.Int("x", x), slog.Int("y", y), slog.String("error", err.Error()))
		return
	}
	if g.session.Engine() == nil {
		g.stop()
	}
}

func (g *Game) advance() {
	g.timer.SetTPS(g.session.TPS())
	n := 0
	if g.running {
		n = g.timer.Ticks(maxStepsPerFrame)
	}
	if g.tickOnce {
		n = max(n, 1)
		g.tickOnce = false
	}
	for i := 0; i < n; i++ {
		g.session.Step()
	}
	if g.running && g.session.Status().Terminal() {
		g.running = false
		e := g.session.Engine()
		g.logger.Info("search finished",
			slog.String("status", e.Status().String()),
			slog.Int("steps", e.Steps()),
			slog.Int("path_len", len(e.Path())))
	}
}

// Draw renders the board, overlay and side panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Cells(), g.palette, g.scale)
	if e := g.session.Engine(); e != nil {
		g.overlay.Draw(screen, e)
	} else {
		g.overlay.Draw(screen, nil)
	}
	g.hud.Draw(screen, g.session.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
