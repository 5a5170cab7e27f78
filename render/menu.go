package render

import "github.com/gdamore/tcell/v2"

// Menu is a titled vertical list with one selected entry
type Menu struct {
	Title    string
	Lines    []string // informational rows between title and entries
	Entries  []string
	Selected int
	Footer   string
}

const selectedMarker = "> "

// DrawMenu centers the menu on screen
func (r *TerminalRenderer) DrawMenu(m Menu) {
	rows := 2 + len(m.Lines) + len(m.Entries)
	if len(m.Lines) > 0 {
		rows++
	}
	if m.Footer != "" {
		rows += 2
	}
	y := max((r.height-rows)/2, 0)

	r.drawCentered(y, m.Title, r.base.Foreground(RgbMenuTitle).Bold(true))
	y += 2

	for _, line := range m.Lines {
		r.drawCentered(y, line, r.base.Foreground(RgbHudText))
		y++
	}
	if len(m.Lines) > 0 {
		y++
	}

	for i, entry := range m.Entries {
		if i == m.Selected {
			r.drawCentered(y, selectedMarker+entry, r.base.Foreground(RgbMenuSelected).Bold(true))
		} else {
			r.drawCentered(y, entry, r.base.Foreground(RgbMenuEntry))
		}
		y++
	}

	if m.Footer != "" {
		r.drawCentered(y+1, m.Footer, r.base.Foreground(RgbMenuFooter))
	}
}

func (r *TerminalRenderer) drawCentered(y int, s string, style tcell.Style) {
	x := max((r.width-len([]rune(s)))/2, 0)
	r.drawText(x, y, s, style)
}
