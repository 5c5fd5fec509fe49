package app

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"aspectmask/internal/ui"
	"aspectmask/pkg/aspectmask"
	"aspectmask/pkg/aspectmask/ebitenmask"
)

const (
	ResolutionWidth  = 600
	ResolutionHeight = 480
	HalfSpriteWidth  = 10
	SpriteSpeed      = 100 // design px per second
	DefaultTitle     = "Aspect Ratio Mask"
)

type Config struct {
	Resolution aspectmask.Resolution
	Mask       aspectmask.Mask
	// WindowScale sizes the initial window relative to the resolution.
	WindowScale float64
	Fullscreen  bool
	Title       string
	Logger      *log.Logger
}

func DefaultConfig() Config {
	return Config{
		Resolution:  aspectmask.Resolution{Width: ResolutionWidth, Height: ResolutionHeight},
		Mask:        aspectmask.DefaultMask(),
		WindowScale: 1.3,
		Title:       DefaultTitle,
	}
}

// App is the demo scene: a square that wraps around the design area and a
// centred HUD caption.
type App struct {
	cfg    Config
	theme  ui.Theme
	plugin *aspectmask.Plugin
	game   *ebitenmask.Game

	spriteX float64
	status  *aspectmask.Node
	notice  string
}

func New(cfg Config) (*App, error) {
	if cfg.WindowScale <= 0 {
		cfg.WindowScale = 1
	}
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	plugin, err := aspectmask.New(aspectmask.Options{
		Resolution: cfg.Resolution,
		Mask:       cfg.Mask,
		Logger:     cfg.Logger,
	})
	if err != nil {
		return nil, err
	}

	theme := ui.DefaultTheme()
	a := &App{cfg: cfg, theme: theme, plugin: plugin}
	a.buildHud()
	a.game = ebitenmask.NewGame(plugin, a, ebitenmask.WindowConfig{
		Title:      cfg.Title,
		Width:      int(math.Round(cfg.Resolution.Width * cfg.WindowScale)),
		Height:     int(math.Round(cfg.Resolution.Height * cfg.WindowScale)),
		Fullscreen: cfg.Fullscreen,
		ClearColor: theme.WorldClear,
	})
	return a, nil
}

func (a *App) buildHud() {
	caption := aspectmask.NewNode("Caption")
	caption.Top = aspectmask.Px(55)
	caption.Width = aspectmask.Percent(100)
	caption.Text = "Press Left / Right To Move\n\nResizing window maintains aspect ratio"
	caption.TextColor = a.theme.HudText
	caption.FontSize = a.theme.FontSize
	caption.Align = aspectmask.AlignCenter

	a.status = aspectmask.NewNode("Status")
	a.status.Left = aspectmask.Px(8)
	a.status.Top = aspectmask.Px(a.cfg.Resolution.Height - 22)
	a.status.Width = aspectmask.Percent(100)
	a.status.TextColor = a.theme.StatusText
	a.status.FontSize = 12

	a.plugin.Hud().Append(caption, a.status)
}

func (a *App) Plugin() *aspectmask.Plugin { return a.plugin }

func (a *App) Run() error {
	return ebitenmask.Run(a.game)
}

func (a *App) Update(p *aspectmask.Plugin) error {
	dt := 1 / float64(ebiten.TPS())

	dir := 0
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir = 1
	} else if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir = -1
	}
	a.spriteX = Step(a.spriteX, dir, dt, p.Resolution().Width)

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(FitReport(p.Resolution(), p.Fit())); err != nil {
			a.notice = "clipboard unavailable"
			if a.cfg.Logger != nil {
				a.cfg.Logger.Printf("copy fit report: %v", err)
			}
		} else {
			a.notice = "fit copied"
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.game.Close()
	}

	a.status.Text = a.statusLine(p.Fit())
	return nil
}

func (a *App) statusLine(f aspectmask.FitResult) string {
	line := fmt.Sprintf("[ Window %.0fx%.0f ] [ Scale %.2f ] [ Bars %s ]", f.Window.Width, f.Window.Height, f.Scale, f.PaddedAxis())
	if a.notice != "" {
		line += " [ " + a.notice + " ]"
	}
	return line
}

func (a *App) Draw(world *ebiten.Image) {
	w := float64(world.Bounds().Dx())
	h := float64(world.Bounds().Dy())
	x := w/2 + a.spriteX - HalfSpriteWidth
	y := h/2 - HalfSpriteWidth
	vector.DrawFilledRect(world, float32(x), float32(y), HalfSpriteWidth*2, HalfSpriteWidth*2, a.theme.Accent, false)
}

// Step advances the sprite's offset from the design centre. Leaving one side
// of the design area makes it reappear on the other.
func Step(x float64, dir int, dt, designWidth float64) float64 {
	edge := HalfSpriteWidth + designWidth/2
	switch {
	case dir > 0:
		if x > edge {
			return -edge
		}
		return x + SpriteSpeed*dt
	case dir < 0:
		if x < -edge {
			return edge
		}
		return x - SpriteSpeed*dt
	}
	return x
}

// FitReport describes the current fit in a copy-friendly form.
func FitReport(res aspectmask.Resolution, f aspectmask.FitResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "design: %s\n", res)
	fmt.Fprintf(&b, "window: %gx%g\n", f.Window.Width, f.Window.Height)
	fmt.Fprintf(&b, "scale: %.4f\n", f.Scale)
	for _, side := range aspectmask.Sides {
		r := f.Bar(side)
		fmt.Fprintf(&b, "bar %s: %.1fx%.1f at %.1f,%.1f\n", side, r.W, r.H, r.X, r.Y)
	}
	fmt.Fprintf(&b, "content: %.1fx%.1f at %.1f,%.1f", f.Content.W, f.Content.H, f.Content.X, f.Content.Y)
	return b.String()
}
