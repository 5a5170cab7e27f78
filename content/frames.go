package content

import "fmt"

// Frame is an opaque handle to a visual frame owned by a Catalog
// The zero value means no frame is assigned
type Frame uint16

// NoFrame is the unassigned frame handle
const NoFrame Frame = 0

// Color is a 24-bit display color
type Color struct {
	R, G, B uint8
}

// Glyph is the terminal representation of a frame
type Glyph struct {
	Rune  rune
	Color Color
}

// Catalog owns the frame handles used by entities and resolves them for rendering
type Catalog struct {
	glyphs []Glyph // index 0 reserved for NoFrame

	portal []Frame
	orb    Frame
	player Frame
}

// portalSpin is the rune cycle for the 16-frame portal animation
var portalSpin = [...]rune{'◐', '◓', '◑', '◒'}

// DefaultCatalog builds the built-in frame set: 16 portal frames, one orb and one player frame
func DefaultCatalog() *Catalog {
	c := &Catalog{glyphs: []Glyph{{}}}

	for i := 0; i < 16; i++ {
		// Brightness ramps up over each quarter turn, hue drifts cyan -> violet
		ramp := uint8(150 + (i%4)*35)
		c.portal = append(c.portal, c.add(Glyph{
			Rune:  portalSpin[i%len(portalSpin)],
			Color: Color{R: uint8(40 + i*8), G: ramp, B: 255},
		}))
	}
	c.orb = c.add(Glyph{Rune: '●', Color: Color{R: 255, G: 60, B: 60}})
	c.player = c.add(Glyph{Rune: '◆', Color: Color{R: 240, G: 255, B: 120}})

	return c
}

func (c *Catalog) add(g Glyph) Frame {
	c.glyphs = append(c.glyphs, g)
	return Frame(len(c.glyphs) - 1)
}

// PortalFrames returns the portal animation frames in order
func (c *Catalog) PortalFrames() []Frame {
	return c.portal
}

// OrbFrame returns the hazard orb frame
func (c *Catalog) OrbFrame() Frame {
	return c.orb
}

// PlayerFrame returns the player frame
func (c *Catalog) PlayerFrame() Frame {
	return c.player
}

// Glyph resolves a frame handle, failing for NoFrame and unknown handles
func (c *Catalog) Glyph(f Frame) (Glyph, error) {
	if f == NoFrame || int(f) >= len(c.glyphs) {
		return Glyph{}, fmt.Errorf("frame %d: %w", f, ErrUnknownFrame)
	}
	return c.glyphs[f], nil
}
