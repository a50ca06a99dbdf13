package sprig

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures a Game and its window. Zero fields take defaults.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the logical screen size (default 800×600).
	Width, Height int
	// TPS is the fixed update rate; every update advances sprites by 1/TPS
	// seconds (default 60).
	TPS int
	// Background is the clear color (default opaque black).
	Background Color
	// ShowFPS draws an FPS/TPS overlay in the top-left corner.
	ShowFPS bool
	// Debug logs per-frame group statistics to stderr.
	Debug bool
	// ScreenshotDir is where Game.Screenshot writes PNGs (default
	// "screenshots").
	ScreenshotDir string
}

func (c *RunConfig) applyDefaults() {
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.Background == (Color{}) {
		c.Background = ColorBlack
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
}

// Game is a ready-made ebiten.Game driving a Group of sprites with a fixed
// time step. Set OnUpdate for game logic; return ebiten.Termination from it
// to quit.
type Game struct {
	Config  RunConfig
	Sprites *Group
	Input   *Input
	// Camera, if set, is updated every frame and its view is applied when
	// drawing. Sprites outside its visible bounds are culled.
	Camera *Camera

	// OnUpdate runs after input is sampled and before sprites update.
	OnUpdate func(g *Game, dt float64) error
	// OnDraw runs after sprites are drawn, in screen space.
	OnDraw func(g *Game, screen *ebiten.Image)

	surface     *ImageSurface
	fps         *fpsOverlay
	screenshots []string
}

// NewGame creates a game with an empty sprite group.
func NewGame(cfg RunConfig) *Game {
	cfg.applyDefaults()
	g := &Game{
		Config:  cfg,
		Sprites: NewGroup(),
		Input:   NewInput(),
	}
	g.Sprites.SetDebugMode(cfg.Debug)
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	return g
}

// TimeStep returns the seconds each update advances.
func (g *Game) TimeStep() float64 {
	return 1.0 / float64(g.Config.TPS)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.Input.Sample()
	return g.step(g.TimeStep())
}

// step runs one fixed update without touching Ebitengine input.
func (g *Game) step(dt float64) error {
	if g.OnUpdate != nil {
		if err := g.OnUpdate(g, dt); err != nil {
			return err
		}
	}
	g.Sprites.Update(dt)
	if g.Camera != nil {
		g.Camera.Update(dt)
	}
	if g.fps != nil {
		g.fps.update(dt)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.Config.Background.RGBA())

	if g.surface == nil || g.surface.Target() != screen {
		g.surface = NewImageSurface(screen)
	}
	if g.Camera != nil {
		g.surface.SetView(g.Camera.ViewMatrix())
		g.Sprites.SetCullBounds(g.Camera.VisibleBounds())
	} else {
		g.surface.SetView(identityTransform)
		g.Sprites.ClearCullBounds()
	}
	g.Sprites.Draw(g.surface)

	if g.OnDraw != nil {
		g.OnDraw(g, screen)
	}
	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Config.Width, g.Config.Height
}

// Run opens a window sized from the game's config and runs it until the
// window closes or OnUpdate returns an error. ebiten.Termination ends the
// game without an error.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.Config.Width, g.Config.Height)
	if g.Config.Title != "" {
		ebiten.SetWindowTitle(g.Config.Title)
	}
	ebiten.SetTPS(g.Config.TPS)
	if err := ebiten.RunGame(g); err != nil {
		if g.Config.Debug {
			log.Printf("sprig: game stopped: %v", err)
		}
		return fmt.Errorf("sprig: run: %w", err)
	}
	return nil
}
