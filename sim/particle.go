// sim/particle.go
//
// A rigid circular particle moving in the unit box. The particle owns its
// physical state and all of the collision math: closed-form prediction of
// the time until it hits another particle or a wall, and the elastic
// collision response applied when a predicted event fires.

package sim

import "math"

// Color is an opaque RGB payload carried per particle for renderers.
// It is never read by the physics.
type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// Particle is a disc of the given radius and mass moving in the unit box.
// Radius and Mass are immutable after construction; position and velocity
// mutate only through Move and the BounceOff* methods. Count is the number
// of collisions (wall or pair) this particle has been part of so far and is
// the basis of the event-staleness check in Event.Valid.
type Particle struct {
	X, Y   float64 // position
	VX, VY float64 // velocity
	Radius float64
	Mass   float64
	Color  Color
	Count  int
}

// Move advances the particle in a straight line for dt time units.
func (p *Particle) Move(dt float64) {
	p.X += p.VX * dt
	p.Y += p.VY * dt
}

// TimeToHit returns the time until this particle's surface first touches
// that's surface, assuming both move at constant velocity with no
// intervening event. Returns +Inf when the particles never collide:
// moving apart, no relative motion, or a tangential near-miss. A particle
// never collides with itself.
func (p *Particle) TimeToHit(that *Particle) float64 {
	if p == that {
		return math.Inf(1)
	}
	dx := that.X - p.X
	dy := that.Y - p.Y
	dvx := that.VX - p.VX
	dvy := that.VY - p.VY
	dvdr := dx*dvx + dy*dvy
	if dvdr > 0 {
		return math.Inf(1)
	}
	dvdv := dvx*dvx + dvy*dvy
	if dvdv == 0 {
		return math.Inf(1)
	}
	drdr := dx*dx + dy*dy
	sigma := p.Radius + that.Radius
	d := dvdr*dvdr - dvdv*(drdr-sigma*sigma)
	if d < 0 {
		return math.Inf(1)
	}
	return -(dvdr + math.Sqrt(d)) / dvdv
}

// TimeToHitVerticalWall returns the time until the particle's edge reaches
// x=0 or x=1, whichever its x-velocity points at. +Inf if vx is zero.
func (p *Particle) TimeToHitVerticalWall() float64 {
	switch {
	case p.VX > 0:
		return (1.0 - p.X - p.Radius) / p.VX
	case p.VX < 0:
		return (p.Radius - p.X) / p.VX
	default:
		return math.Inf(1)
	}
}

// TimeToHitHorizontalWall returns the time until the particle's edge reaches
// y=0 or y=1, whichever its y-velocity points at. +Inf if vy is zero.
func (p *Particle) TimeToHitHorizontalWall() float64 {
	switch {
	case p.VY > 0:
		return (1.0 - p.Y - p.Radius) / p.VY
	case p.VY < 0:
		return (p.Radius - p.Y) / p.VY
	default:
		return math.Inf(1)
	}
}

// BounceOff updates the velocities of both particles by an elastic
// normal-impulse exchange along the line of centers, and increments both
// collision counts. Assumes the particles are touching at this instant.
// Conserves total momentum and total kinetic energy.
func (p *Particle) BounceOff(that *Particle) {
	dx := that.X - p.X
	dy := that.Y - p.Y
	dvx := that.VX - p.VX
	dvy := that.VY - p.VY
	dvdr := dx*dvx + dy*dvy
	dist := p.Radius + that.Radius // center distance at contact

	// magnitude of the normal impulse
	magnitude := 2 * p.Mass * that.Mass * dvdr / ((p.Mass + that.Mass) * dist)

	fx := magnitude * dx / dist
	fy := magnitude * dy / dist

	p.VX += fx / p.Mass
	p.VY += fy / p.Mass
	that.VX -= fx / that.Mass
	that.VY -= fy / that.Mass

	p.Count++
	that.Count++
}

// BounceOffVerticalWall reflects the x-velocity and increments the
// collision count. Assumes the particle is touching x=0 or x=1.
func (p *Particle) BounceOffVerticalWall() {
	p.VX = -p.VX
	p.Count++
}

// BounceOffHorizontalWall reflects the y-velocity and increments the
// collision count. Assumes the particle is touching y=0 or y=1.
func (p *Particle) BounceOffHorizontalWall() {
	p.VY = -p.VY
	p.Count++
}

// KineticEnergy returns 1/2 m v^2.
func (p *Particle) KineticEnergy() float64 {
	return 0.5 * p.Mass * (p.VX*p.VX + p.VY*p.VY)
}

// Momentum returns the x and y components of the particle's momentum.
func (p *Particle) Momentum() (px, py float64) {
	return p.Mass * p.VX, p.Mass * p.VY
}
