package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cyber-escape/components"
	"github.com/lixenwraith/cyber-escape/content"
)

// Interface palette
var (
	RgbBackground   = tcell.NewRGBColor(12, 10, 28)    // Deep violet night
	RgbHudText      = tcell.NewRGBColor(200, 220, 255) // Pale blue
	RgbHudAccent    = tcell.NewRGBColor(0, 255, 200)   // Neon mint for values
	RgbHudWarn      = tcell.NewRGBColor(255, 80, 160)  // Hot pink for paused / game over
	RgbMenuTitle    = tcell.NewRGBColor(0, 220, 255)   // Cyan
	RgbMenuEntry    = tcell.NewRGBColor(170, 170, 200) // Muted lavender
	RgbMenuSelected = tcell.NewRGBColor(255, 255, 120) // Bright yellow
	RgbMenuFooter   = tcell.NewRGBColor(120, 120, 150) // Dim gray-blue
)

// tinted multiplies a frame color by a sprite tint; alpha is ignored
func tinted(c content.Color, t components.Tint) tcell.Color {
	return tcell.NewRGBColor(
		int32(uint16(c.R)*uint16(t.R)/255),
		int32(uint16(c.G)*uint16(t.G)/255),
		int32(uint16(c.B)*uint16(t.B)/255),
	)
}
