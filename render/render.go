// Package render provides Renderer implementations for the simulation
// core: a function adapter, a logging renderer, and a WebSocket frame
// broadcaster for live visualization in a browser.
package render

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/collide-sim/collide-sim/sim"
)

// Func adapts a plain function to the sim.Renderer interface.
type Func func(t float64, particles []sim.Particle)

// Render calls the wrapped function.
func (f Func) Render(t float64, particles []sim.Particle) {
	f(t, particles)
}

// Log is a headless renderer that logs a one-line frame summary at debug
// level. An optional pause per frame paces the run against wall-clock time
// the way a graphical frontend would.
type Log struct {
	Pause time.Duration // wall-clock sleep per frame, 0 to run flat out
}

// NewLog creates a Log renderer with the given per-frame pause.
func NewLog(pause time.Duration) *Log {
	return &Log{Pause: pause}
}

// Render logs the frame and applies the pacing pause.
func (l *Log) Render(t float64, particles []sim.Particle) {
	logrus.Debugf("[t %10.4f] frame: %d particles, energy=%.9f", t, len(particles), sim.TotalKineticEnergy(particles))
	if l.Pause > 0 {
		time.Sleep(l.Pause)
	}
}
