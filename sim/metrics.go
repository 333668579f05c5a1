// Tracks simulation-wide statistics: events applied and discarded by kind,
// queue depth, and conservation quantities sampled at run boundaries.

package sim

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Metrics aggregates statistics about the simulation for final reporting.
// Useful for evaluating queue behavior (how many predictions went stale)
// and for sanity-checking the physics over a whole run.
type Metrics struct {
	PairCollisions        int // pair events applied
	VerticalWallBounces   int // vertical-wall events applied
	HorizontalWallBounces int // horizontal-wall events applied
	Redraws               int // redraw ticks delivered
	StaleDiscarded        int // events dropped by the validity check
	PeakQueueDepth        int // largest priority-queue length seen

	StartEnergy    float64
	EndEnergy      float64
	StartMomentumX float64
	StartMomentumY float64
	EndMomentumX   float64
	EndMomentumY   float64

	SimEndedTime float64 // simulation clock at halt
}

// NewMetrics creates an empty Metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// TotalKineticEnergy sums 1/2 m v^2 over the arena.
func TotalKineticEnergy(particles []Particle) float64 {
	energies := make([]float64, len(particles))
	for i := range particles {
		energies[i] = particles[i].KineticEnergy()
	}
	return floats.Sum(energies)
}

// TotalMomentum sums the momentum components over the arena.
func TotalMomentum(particles []Particle) (px, py float64) {
	xs := make([]float64, len(particles))
	ys := make([]float64, len(particles))
	for i := range particles {
		xs[i], ys[i] = particles[i].Momentum()
	}
	return floats.Sum(xs), floats.Sum(ys)
}

// sampleStart records conservation quantities before the first event.
func (m *Metrics) sampleStart(particles []Particle) {
	m.StartEnergy = TotalKineticEnergy(particles)
	m.StartMomentumX, m.StartMomentumY = TotalMomentum(particles)
}

// sampleEnd records conservation quantities after the last event.
func (m *Metrics) sampleEnd(particles []Particle) {
	m.EndEnergy = TotalKineticEnergy(particles)
	m.EndMomentumX, m.EndMomentumY = TotalMomentum(particles)
}

// EventsApplied returns the number of events applied across all kinds.
func (m *Metrics) EventsApplied() int {
	return m.PairCollisions + m.VerticalWallBounces + m.HorizontalWallBounces + m.Redraws
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print(startTime time.Time) {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Sim clock at halt    : %.4f\n", m.SimEndedTime)
	fmt.Printf("Pair collisions      : %d\n", m.PairCollisions)
	fmt.Printf("Wall bounces         : %d vertical, %d horizontal\n", m.VerticalWallBounces, m.HorizontalWallBounces)
	fmt.Printf("Redraw ticks         : %d\n", m.Redraws)
	fmt.Printf("Stale events dropped : %d\n", m.StaleDiscarded)
	fmt.Printf("Peak queue depth     : %d\n", m.PeakQueueDepth)
	fmt.Printf("Kinetic energy       : %.9f -> %.9f\n", m.StartEnergy, m.EndEnergy)
	fmt.Printf("Momentum (x, y)      : (%.9f, %.9f) -> (%.9f, %.9f)\n",
		m.StartMomentumX, m.StartMomentumY, m.EndMomentumX, m.EndMomentumY)
	fmt.Printf("Wall-clock duration  : %v\n", time.Since(startTime))
}
