package components

import (
	"github.com/lixenwraith/cyber-escape/content"
	"github.com/lixenwraith/cyber-escape/vmath"
)

// Tint is an RGBA display multiplier, not used by simulation
type Tint struct {
	R, G, B, A uint8
}

// TintWhite leaves the frame colors unchanged
var TintWhite = Tint{R: 255, G: 255, B: 255, A: 255}

// Transform is the shared visual state embedded by value in every entity
type Transform struct {
	Position vmath.Vec2
	Rotation float64 // radians
	Scale    float64 // >= 0
	Tint     Tint
	Frame    content.Frame // non-owning handle into a content.Catalog
}

// NewTransform returns a unit-scale, untinted transform at pos
func NewTransform(pos vmath.Vec2, frame content.Frame) Transform {
	return Transform{
		Position: pos,
		Scale:    1,
		Tint:     TintWhite,
		Frame:    frame,
	}
}

// Kind tags the closed set of entity variants
type Kind uint8

const (
	KindPortal Kind = iota
	KindOrb
	KindPlayer
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindPortal:
		return "portal"
	case KindOrb:
		return "orb"
	case KindPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// Sprite is the per-tick draw request handed to the render sink
type Sprite struct {
	Kind Kind
	Transform
}
