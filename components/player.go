package components

import (
	"errors"

	"github.com/lixenwraith/cyber-escape/constants"
	"github.com/lixenwraith/cyber-escape/content"
	"github.com/lixenwraith/cyber-escape/vmath"
)

var (
	// ErrAlreadyMoving is returned when an advance starts mid-traversal
	ErrAlreadyMoving = errors.New("player already moving")

	// ErrZeroDistance is returned when the target coincides with the player
	ErrZeroDistance = errors.New("advance target at player position")
)

// Player is the user-controlled token
type Player struct {
	Transform

	Moving bool

	// ClampArrival snaps the final position onto the target instead of
	// keeping the up-to-one-tick overshoot of the threshold check
	ClampArrival bool

	start     vmath.Vec2
	target    vmath.Vec2
	distance  float64
	direction vmath.Vec2
	speed     float64
	portal    *Portal // last targeted, rides it while idle
}

// NewPlayer creates an idle player at pos
func NewPlayer(pos vmath.Vec2, frame content.Frame) *Player {
	return &Player{Transform: NewTransform(pos, frame)}
}

// AdvanceTo starts a straight-line traversal to the portal's current position
func (p *Player) AdvanceTo(portal *Portal, speed float64) error {
	if p.Moving {
		return ErrAlreadyMoving
	}
	delta := portal.Position.Sub(p.Position)
	dir, ok := delta.Normalize()
	if !ok {
		return ErrZeroDistance
	}

	p.start = p.Position
	p.target = portal.Position
	p.distance = delta.Len()
	p.direction = dir
	p.speed = speed
	p.portal = portal
	p.Moving = true
	return nil
}

// Update advances the traversal by dt seconds, or rides the last portal while idle
func (p *Player) Update(dt float64) {
	if p.Moving {
		p.Position = p.Position.Add(p.direction.Scale(p.speed * dt))
		if vmath.Distance(p.start, p.Position) >= p.distance {
			p.Moving = false
			if p.ClampArrival {
				p.Position = p.target
			}
		}
		return
	}

	if p.portal != nil {
		p.Position = p.portal.Position.Add(vmath.V(constants.PlayerRideOffsetX, constants.PlayerRideOffsetY))
	}
}

// Portal returns the last targeted portal, nil before the first advance
func (p *Player) Portal() *Portal {
	return p.portal
}

// Traveled returns the distance covered since the current traversal began
func (p *Player) Traveled() float64 {
	return vmath.Distance(p.start, p.Position)
}

// Bounds returns the collision circle at the current position
func (p *Player) Bounds() vmath.Circle {
	return vmath.Circle{Center: p.Position, Radius: constants.PlayerHitRadius}
}

// Sprite returns the draw request for the player
func (p *Player) Sprite() Sprite {
	return Sprite{Kind: KindPlayer, Transform: p.Transform}
}
