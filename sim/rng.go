// sim/rng.go
package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation run.
// Two runs with the same SimulationKey and identical configuration MUST
// produce bit-for-bit identical particle populations.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemParticles is the RNG subsystem for random particle
	// generation. Uses the master seed directly so --seed maps one-to-one
	// onto the population.
	SubsystemParticles = "particles"

	// SubsystemColors is the RNG subsystem for palette assignment when a
	// renderer asks for distinguishable colors.
	SubsystemColors = "colors"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per
// subsystem, so drawing colors never perturbs the particle stream.
//
// Derivation formula:
//   - For SubsystemParticles: uses the master seed directly
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named
// subsystem. The same subsystem name always returns the same *rand.Rand
// instance (cached). Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	var derivedSeed int64
	if name == SubsystemParticles {
		derivedSeed = int64(p.key)
	} else {
		derivedSeed = int64(p.key) ^ fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// === Random populations ===

// Bounds for a randomly generated particle: position uniform in the unit
// box, each velocity component uniform in [0, randomMaxSpeed] with a random
// sign, fixed radius and mass.
const (
	randomMaxSpeed = 0.005
	randomRadius   = 0.02
	randomMass     = 0.5
)

// RandomParticle draws one particle from the standard random population.
func RandomParticle(rng *rand.Rand) Particle {
	vx := rng.Float64() * randomMaxSpeed
	if rng.Intn(2) == 0 {
		vx = -vx
	}
	vy := rng.Float64() * randomMaxSpeed
	if rng.Intn(2) == 0 {
		vy = -vy
	}
	return Particle{
		X: rng.Float64(), Y: rng.Float64(),
		VX: vx, VY: vy,
		Radius: randomRadius,
		Mass:   randomMass,
	}
}

// RandomParticles draws a population of n particles.
func RandomParticles(rng *rand.Rand, n int) ([]Particle, error) {
	if n <= 0 {
		return nil, fmt.Errorf("particle count must be positive, got %d", n)
	}
	particles := make([]Particle, n)
	for i := range particles {
		particles[i] = RandomParticle(rng)
	}
	return particles, nil
}
