// Package ebitenmask runs an aspectmask.Plugin inside Ebitengine. The scene
// draws onto a canvas of the design resolution; the game scales that canvas
// into the content rectangle, paints the bars and then the HUD.
package ebitenmask

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"aspectmask/internal/platform"
	"aspectmask/internal/platform/ebitenwin"
	"aspectmask/internal/render"
	"aspectmask/internal/ui"
	"aspectmask/pkg/aspectmask"
)

// Scene is the game being letterboxed.
type Scene interface {
	Update(p *aspectmask.Plugin) error
	// Draw renders onto world, whose bounds are the design resolution.
	Draw(world *ebiten.Image)
}

type WindowConfig struct {
	Title      string
	Width      int
	Height     int
	MinWidth   int
	MinHeight  int
	Fullscreen bool
	// ClearColor fills the design canvas before the scene draws.
	ClearColor color.Color
}

// maxCachedFaces bounds the font bank across resizes; every new UI scale
// rasterizes fresh faces.
const maxCachedFaces = 32

type Game struct {
	plugin *aspectmask.Plugin
	scene  Scene
	cfg    WindowConfig
	window platform.Window

	world   *ebiten.Image
	fonts   *ui.FontBank
	maskFB  *render.FrameBuffer
	maskImg *ebiten.Image
	maskRev uint64
	hasMask bool
}

func NewGame(plugin *aspectmask.Plugin, scene Scene, cfg WindowConfig) *Game {
	fonts, err := ui.NewFontBank()
	if err != nil && plugin.Logger() != nil {
		plugin.Logger().Printf("aspectmask: hud fonts unavailable, using bitmap fallback: %v", err)
	}
	return &Game{
		plugin: plugin,
		scene:  scene,
		cfg:    cfg,
		fonts:  fonts,
		maskFB: render.NewFrameBuffer(1, 1),
	}
}

// Run opens the Ebitengine window and blocks until the game loop ends.
func Run(g *Game) error {
	if g.window == nil {
		g.window = ebitenwin.Open(platform.WindowConfig{
			Title:       g.cfg.Title,
			WidthPx:     g.cfg.Width,
			HeightPx:    g.cfg.Height,
			MinWidthPx:  g.cfg.MinWidth,
			MinHeightPx: g.cfg.MinHeight,
			Fullscreen:  g.cfg.Fullscreen,
		})
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game loop: %w", err)
	}
	return nil
}

func (g *Game) Plugin() *aspectmask.Plugin { return g.plugin }

// Close ends the game loop on the next Update.
func (g *Game) Close() {
	g.ensureWindow().Close()
}

func (g *Game) ensureWindow() platform.Window {
	if g.window == nil {
		g.window = &ebitenwin.Window{}
	}
	return g.window
}

func (g *Game) Update() error {
	for _, ev := range g.ensureWindow().PollEvents() {
		switch ev.Type {
		case platform.EventResize:
			g.plugin.Resize(float64(ev.Width), float64(ev.Height))
			if g.fonts.Len() > maxCachedFaces {
				g.fonts.Purge()
			}
		case platform.EventDPIChanged:
			g.fonts.Purge()
		case platform.EventClose:
			return ebiten.Termination
		}
	}
	return g.scene.Update(g.plugin)
}

func (g *Game) Draw(screen *ebiten.Image) {
	res := g.plugin.Resolution()
	if g.world == nil {
		g.world = ebiten.NewImage(int(math.Ceil(res.Width)), int(math.Ceil(res.Height)))
	}
	if g.cfg.ClearColor != nil {
		g.world.Fill(g.cfg.ClearColor)
	} else {
		g.world.Clear()
	}
	g.scene.Draw(g.world)

	op := &ebiten.DrawImageOptions{}
	op.GeoM = WorldGeoM(g.plugin.Fit())
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.world, op)

	g.drawMask(screen)
	ui.DrawBoxes(screen, g.plugin.Layout(), g.fonts, g.plugin.IsMaskNode)
}

// refreshMask rasterizes the bars when the plugin applied a resize since the
// last upload. It reports whether maskFB holds new pixels.
func (g *Game) refreshMask() bool {
	if g.hasMask && g.maskRev == g.plugin.Revision() {
		return false
	}
	g.plugin.RasterizeMask(g.maskFB)
	g.maskRev = g.plugin.Revision()
	g.hasMask = true
	return true
}

func (g *Game) drawMask(screen *ebiten.Image) {
	if g.refreshMask() {
		if g.maskImg == nil || g.maskImg.Bounds().Dx() != g.maskFB.W || g.maskImg.Bounds().Dy() != g.maskFB.H {
			if g.maskImg != nil {
				g.maskImg.Deallocate()
			}
			g.maskImg = ebiten.NewImage(g.maskFB.W, g.maskFB.H)
		}
		g.maskImg.WritePixels(g.maskFB.Pixels)
	}
	screen.DrawImage(g.maskImg, nil)
}

// layoutObserver is implemented by windows whose size arrives through
// Game.Layout rather than from the window system directly.
type layoutObserver interface {
	Observe(outsideWidth, outsideHeight int) (int, int)
}

// Layout reports the window size in physical pixels so the bars land on
// device pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if obs, ok := g.ensureWindow().(layoutObserver); ok {
		return obs.Observe(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// WorldGeoM maps the design canvas into the content rectangle.
func WorldGeoM(f aspectmask.FitResult) ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(f.Scale, f.Scale)
	m.Translate(f.Content.X, f.Content.Y)
	return m
}

// CursorPosition returns the cursor in design coordinates. ok is false while
// the cursor is over a bar.
func (g *Game) CursorPosition() (float64, float64, bool) {
	// Layout reports physical pixels, so the cursor is already in window space.
	x, y := ebiten.CursorPosition()
	return g.plugin.Fit().WindowToDesign(float64(x), float64(y))
}
