package components

import (
	"github.com/lixenwraith/cyber-escape/constants"
	"github.com/lixenwraith/cyber-escape/content"
	"github.com/lixenwraith/cyber-escape/vmath"
)

// Portal is a checkpoint the player advances to
// Newly created portals slide down from their spawn position
type Portal struct {
	Transform

	// Active marks the current target; owned by the level controller
	Active bool

	sliding   bool
	slideFrom float64 // Y at slide start
	anim      *Animation
}

// NewPortal creates a portal at pos that immediately begins its slide-in
func NewPortal(pos vmath.Vec2, frames []content.Frame) *Portal {
	p := &Portal{
		Transform: NewTransform(pos, content.NoFrame),
		sliding:   true,
		slideFrom: pos.Y,
		anim:      NewAnimation(frames, constants.PortalFrameHold, true),
	}
	p.Frame = p.anim.Advance()
	return p
}

// Update advances animation or idle spin, then the slide
func (p *Portal) Update() {
	if p.Active {
		p.Frame = p.anim.Advance()
	} else {
		p.Frame = p.anim.FrameAt(constants.PortalInactiveFrame)
		p.Rotation += constants.PortalIdleSpin
	}

	if p.sliding {
		p.Position.Y += constants.PortalSlideStep
		if p.Position.Y-p.slideFrom >= constants.PortalSlideDistance {
			p.sliding = false
		}
	}
}

// BeginSlide starts a slide from the current Y; no-op while already sliding
func (p *Portal) BeginSlide() {
	if p.sliding {
		return
	}
	p.sliding = true
	p.slideFrom = p.Position.Y
}

// Sliding reports whether the portal is mid-slide
func (p *Portal) Sliding() bool {
	return p.sliding
}

// Animation exposes the portal's frame cycle
func (p *Portal) Animation() *Animation {
	return p.anim
}

// Sprite returns the draw request for this portal
func (p *Portal) Sprite() Sprite {
	return Sprite{Kind: KindPortal, Transform: p.Transform}
}
