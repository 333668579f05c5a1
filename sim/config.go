// sim/config.go
package sim

import "fmt"

// Default simulation parameters, matching the classic event-driven
// collision demo: redraw twice per simulation-time unit, horizon 10000.
const (
	DefaultRedrawHz = 0.5
	DefaultHorizon  = 10000.0
)

// SimulationConfig groups run parameters for NewCollisionSystem.
type SimulationConfig struct {
	Horizon  float64 // simulation-time limit past which nothing is predicted (must be > 0)
	RedrawHz float64 // redraw ticks per simulated-time unit (must be > 0)
}

// WithDefaults returns a copy with zero-valued fields replaced by defaults.
func (c SimulationConfig) WithDefaults() SimulationConfig {
	if c.Horizon == 0 {
		c.Horizon = DefaultHorizon
	}
	if c.RedrawHz == 0 {
		c.RedrawHz = DefaultRedrawHz
	}
	return c
}

// Validate checks the run parameters. Called once before any simulation
// starts; a failure here is fatal to the run.
func (c SimulationConfig) Validate() error {
	if c.Horizon <= 0 {
		return fmt.Errorf("horizon must be positive, got %v", c.Horizon)
	}
	if c.RedrawHz <= 0 {
		return fmt.Errorf("redraw frequency must be positive, got %v", c.RedrawHz)
	}
	return nil
}

// ParticleSpec is one record of an initial configuration: position,
// velocity, radius, mass, and an RGB color passed through to renderers.
type ParticleSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	VX     float64 `yaml:"vx"`
	VY     float64 `yaml:"vy"`
	Radius float64 `yaml:"radius"`
	Mass   float64 `yaml:"mass"`
	R      int     `yaml:"r"`
	G      int     `yaml:"g"`
	B      int     `yaml:"b"`
}

// Validate checks the construction-time contracts for one record.
func (ps ParticleSpec) Validate() error {
	if ps.Radius <= 0 {
		return fmt.Errorf("radius must be positive, got %v", ps.Radius)
	}
	if ps.Mass <= 0 {
		return fmt.Errorf("mass must be positive, got %v", ps.Mass)
	}
	for _, c := range []struct {
		name string
		v    int
	}{{"r", ps.R}, {"g", ps.G}, {"b", ps.B}} {
		if c.v < 0 || c.v > 255 {
			return fmt.Errorf("color component %s out of range [0,255]: %d", c.name, c.v)
		}
	}
	return nil
}

// Particle constructs the particle described by this record.
func (ps ParticleSpec) Particle() Particle {
	return Particle{
		X: ps.X, Y: ps.Y,
		VX: ps.VX, VY: ps.VY,
		Radius: ps.Radius,
		Mass:   ps.Mass,
		Color:  Color{R: uint8(ps.R), G: uint8(ps.G), B: uint8(ps.B)},
	}
}

// ParticlesFromSpecs validates every record and constructs the particle
// arena. The first malformed record aborts the whole configuration: no
// partial simulation begins.
func ParticlesFromSpecs(specs []ParticleSpec) ([]Particle, error) {
	particles := make([]Particle, 0, len(specs))
	for i, ps := range specs {
		if err := ps.Validate(); err != nil {
			return nil, fmt.Errorf("particle %d: %w", i, err)
		}
		particles = append(particles, ps.Particle())
	}
	return particles, nil
}
