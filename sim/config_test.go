package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulationConfig_WithDefaults(t *testing.T) {
	got := SimulationConfig{}.WithDefaults()
	assert.Equal(t, DefaultHorizon, got.Horizon)
	assert.Equal(t, DefaultRedrawHz, got.RedrawHz)

	// Explicit values are kept.
	got = SimulationConfig{Horizon: 50, RedrawHz: 2}.WithDefaults()
	assert.Equal(t, 50.0, got.Horizon)
	assert.Equal(t, 2.0, got.RedrawHz)
}

func TestSimulationConfig_Validate(t *testing.T) {
	assert.NoError(t, SimulationConfig{Horizon: 10, RedrawHz: 0.5}.Validate())
	assert.Error(t, SimulationConfig{Horizon: -1, RedrawHz: 0.5}.Validate())
	assert.Error(t, SimulationConfig{Horizon: 10, RedrawHz: -0.5}.Validate())
}

func TestParticleSpec_Validate(t *testing.T) {
	valid := ParticleSpec{X: 0.5, Y: 0.5, Radius: 0.02, Mass: 0.5, R: 255, G: 0, B: 128}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name string
		spec ParticleSpec
	}{
		{"zero radius", ParticleSpec{Radius: 0, Mass: 0.5}},
		{"negative radius", ParticleSpec{Radius: -0.01, Mass: 0.5}},
		{"zero mass", ParticleSpec{Radius: 0.02, Mass: 0}},
		{"negative mass", ParticleSpec{Radius: 0.02, Mass: -1}},
		{"color too large", ParticleSpec{Radius: 0.02, Mass: 0.5, G: 256}},
		{"color negative", ParticleSpec{Radius: 0.02, Mass: 0.5, B: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.spec.Validate())
		})
	}
}

func TestParticleSpec_Particle(t *testing.T) {
	spec := ParticleSpec{X: 0.1, Y: 0.2, VX: 0.01, VY: -0.02, Radius: 0.03, Mass: 0.4, R: 10, G: 20, B: 30}
	got := spec.Particle()
	want := Particle{
		X: 0.1, Y: 0.2, VX: 0.01, VY: -0.02,
		Radius: 0.03, Mass: 0.4,
		Color: Color{R: 10, G: 20, B: 30},
	}
	assert.Equal(t, want, got)
}

func TestParticlesFromSpecs_AbortsOnFirstMalformedRecord(t *testing.T) {
	specs := []ParticleSpec{
		{X: 0.2, Y: 0.2, Radius: 0.02, Mass: 0.5},
		{X: 0.8, Y: 0.8, Radius: -1, Mass: 0.5},
	}

	particles, err := ParticlesFromSpecs(specs)
	require.Error(t, err)
	assert.Nil(t, particles)
	assert.Contains(t, err.Error(), "particle 1")
}

func TestParticlesFromSpecs_BuildsArenaInOrder(t *testing.T) {
	specs := []ParticleSpec{
		{X: 0.2, Y: 0.2, Radius: 0.02, Mass: 0.5},
		{X: 0.8, Y: 0.8, Radius: 0.03, Mass: 1.5},
	}

	particles, err := ParticlesFromSpecs(specs)
	require.NoError(t, err)
	require.Len(t, particles, 2)
	assert.Equal(t, 0.2, particles[0].X)
	assert.Equal(t, 0.03, particles[1].Radius)
}
