package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestTotalKineticEnergy(t *testing.T) {
	particles := []Particle{
		{VX: 0.03, VY: -0.04, Mass: 2}, // 0.0025
		{VX: 0.01, VY: 0, Mass: 0.5},   // 0.000025
	}

	got := TotalKineticEnergy(particles)
	assert.True(t, scalar.EqualWithinAbs(got, 0.002525, 1e-12), "got %v", got)
}

func TestTotalMomentum(t *testing.T) {
	particles := []Particle{
		{VX: 0.03, VY: -0.04, Mass: 2},
		{VX: -0.01, VY: 0.02, Mass: 0.5},
	}

	px, py := TotalMomentum(particles)
	assert.True(t, scalar.EqualWithinAbs(px, 0.055, 1e-12), "px %v", px)
	assert.True(t, scalar.EqualWithinAbs(py, -0.07, 1e-12), "py %v", py)
}

func TestMetrics_EventsApplied(t *testing.T) {
	m := &Metrics{
		PairCollisions:        3,
		VerticalWallBounces:   2,
		HorizontalWallBounces: 4,
		Redraws:               5,
		StaleDiscarded:        9, // not applied, must not count
	}
	assert.Equal(t, 14, m.EventsApplied())
}
