package render

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cyber-escape/components"
	"github.com/lixenwraith/cyber-escape/constants"
	"github.com/lixenwraith/cyber-escape/content"
	"github.com/lixenwraith/cyber-escape/vmath"
)

// ErrMissingFrame is returned for sprites whose frame cannot be resolved
var ErrMissingFrame = errors.New("sprite frame missing")

const hudRows = 1

// HUD is the status line shown during play
type HUD struct {
	Score      int
	HighScore  int
	Difficulty int
	Status     string // empty during normal play
}

// TerminalRenderer maps the play area onto terminal cells and draws frames
type TerminalRenderer struct {
	screen  tcell.Screen
	catalog *content.Catalog
	base    tcell.Style

	width      int
	height     int
	gameY      int
	gameHeight int
}

// NewTerminalRenderer creates a renderer sized to the current screen
func NewTerminalRenderer(screen tcell.Screen, catalog *content.Catalog) *TerminalRenderer {
	r := &TerminalRenderer{
		screen:  screen,
		catalog: catalog,
		base:    tcell.StyleDefault.Background(RgbBackground),
	}
	r.Resize()
	return r
}

// Resize re-reads the screen size; call on resize events
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
	r.gameY = hudRows
	r.gameHeight = max(r.height-hudRows, 0)
}

// Size returns the screen size in cells
func (r *TerminalRenderer) Size() (int, int) {
	return r.width, r.height
}

// Begin clears the back buffer to the background color
func (r *TerminalRenderer) Begin() {
	r.screen.SetStyle(r.base)
	r.screen.Clear()
}

// Show presents the back buffer
func (r *TerminalRenderer) Show() {
	r.screen.Show()
}

// Cell maps a play-area position to a terminal cell inside the playfield
func (r *TerminalRenderer) Cell(pos vmath.Vec2) (x, y int, ok bool) {
	if pos.X < 0 || pos.Y < 0 || r.width == 0 || r.gameHeight == 0 {
		return 0, 0, false
	}
	x = int(pos.X * float64(r.width) / constants.PlayWidth)
	row := int(pos.Y * float64(r.gameHeight) / constants.PlayHeight)
	if x >= r.width || row >= r.gameHeight {
		return 0, 0, false
	}
	return x, r.gameY + row, true
}

// DrawSprites draws in slice order so later sprites cover earlier ones
// Off-screen sprites are skipped; unresolved frames are collected and returned
func (r *TerminalRenderer) DrawSprites(sprites []components.Sprite) error {
	var errs []error
	for _, s := range sprites {
		g, err := r.catalog.Glyph(s.Frame)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w: %w", s.Kind, ErrMissingFrame, err))
			continue
		}
		x, y, ok := r.Cell(s.Position)
		if !ok {
			continue
		}
		r.screen.SetContent(x, y, g.Rune, nil, r.base.Foreground(tinted(g.Color, s.Tint)))
	}
	return errors.Join(errs...)
}

// DrawHUD renders the status line on the top row
func (r *TerminalRenderer) DrawHUD(h HUD) {
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, r.base)
	}
	label := r.base.Foreground(RgbHudText)
	value := r.base.Foreground(RgbHudAccent)

	x := r.drawText(1, 0, "SCORE ", label)
	x = r.drawText(x, 0, fmt.Sprintf("%-6d", h.Score), value)
	x = r.drawText(x+1, 0, "HIGH ", label)
	x = r.drawText(x, 0, fmt.Sprintf("%-6d", h.HighScore), value)
	x = r.drawText(x+1, 0, "LEVEL ", label)
	r.drawText(x, 0, fmt.Sprintf("%d", h.Difficulty), value)

	if h.Status != "" {
		r.drawText(r.width-len([]rune(h.Status))-1, 0, h.Status, r.base.Foreground(RgbHudWarn).Bold(true))
	}
}

// drawText writes s from (x, y), clipping at the screen edge, and returns the next column
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	if y < 0 || y >= r.height {
		return x + len([]rune(s))
	}
	for _, ch := range s {
		if x >= 0 && x < r.width {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}
