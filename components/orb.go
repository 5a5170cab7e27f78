package components

import (
	"github.com/lixenwraith/cyber-escape/constants"
	"github.com/lixenwraith/cyber-escape/content"
	"github.com/lixenwraith/cyber-escape/vmath"
)

// OffStage is where dormant orbs are parked, past the bottom-right corner
var OffStage = vmath.V(constants.PlayWidth+1, constants.PlayHeight+1)

// Orb is a hazard on a circular orbit around its portal
type Orb struct {
	Transform

	Portal       *Portal // read-only, non-owning
	Radius       float64
	AngularSpeed float64 // rad/s, sign encodes direction
	Angle        float64 // accumulates without wrapping
	Center       vmath.Vec2

	// Dormant orbs belong to a superseded portal; they are skipped by
	// collision and drawing and retired on the next transition
	Dormant bool
}

// NewOrb creates an orb already placed on its orbit at startAngle
func NewOrb(frame content.Frame, portal *Portal, radius, speed, startAngle float64) *Orb {
	o := &Orb{
		Transform:    NewTransform(portal.Position, frame),
		Portal:       portal,
		Radius:       radius,
		AngularSpeed: speed,
		Angle:        startAngle,
		Center:       portal.Position,
	}
	o.Position = vmath.OrbitPosition(o.Center, radius, startAngle)
	return o
}

// Update moves the orb along its orbit by dt seconds, or parks it if its portal is inactive
func (o *Orb) Update(dt float64) {
	if !o.Portal.Active {
		o.Dormant = true
		o.Position = OffStage
		return
	}

	o.Dormant = false
	o.Center = o.Portal.Position
	o.Angle += o.AngularSpeed * dt
	o.Position = vmath.OrbitPosition(o.Center, o.Radius, o.Angle)
}

// Bounds returns the collision circle at the current position
func (o *Orb) Bounds() vmath.Circle {
	return vmath.Circle{Center: o.Position, Radius: constants.OrbHitRadius}
}

// Sprite returns the draw request for this orb
func (o *Orb) Sprite() Sprite {
	return Sprite{Kind: KindOrb, Transform: o.Transform}
}
