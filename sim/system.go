// sim/system.go
package sim

import (
	"fmt"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/collide-sim/collide-sim/sim/trace"
)

// Renderer receives a snapshot of particle state on every redraw tick.
// It is invoked synchronously inside the event loop and is expected to
// return promptly; wall-clock pacing pauses belong to the renderer, not
// the simulation.
type Renderer interface {
	Render(t float64, particles []Particle)
}

// CollisionSystem is the core object that holds simulation time, the
// particle arena, and the event loop. It seeds the scheduler with all
// pairwise and wall predictions plus one redraw tick, then repeatedly
// applies the earliest still-valid event, advancing every particle to that
// event's time and re-predicting for the particles involved.
//
// Invariants: the clock never decreases; it equals the time of the most
// recently applied event, and every particle's position is consistent with
// it (no unapplied motion pending).
type CollisionSystem struct {
	particles []Particle
	sched     *Scheduler
	clock     float64
	horizon   float64
	redrawHz  float64

	renderer Renderer
	tr       *trace.Trace
	Metrics  *Metrics

	stopped atomic.Bool
}

// NewCollisionSystem initializes a system with the given particles and run
// parameters. The particle slice is copied; the individual particles will
// be mutated during the simulation. Construction contracts (positive radius
// and mass on every particle, positive horizon and redraw frequency) are
// checked here and no simulation begins if any fails.
func NewCollisionSystem(particles []Particle, cfg SimulationConfig) (*CollisionSystem, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for i := range particles {
		if particles[i].Radius <= 0 {
			return nil, fmt.Errorf("particle %d: radius must be positive, got %v", i, particles[i].Radius)
		}
		if particles[i].Mass <= 0 {
			return nil, fmt.Errorf("particle %d: mass must be positive, got %v", i, particles[i].Mass)
		}
	}

	arena := make([]Particle, len(particles))
	copy(arena, particles)

	return &CollisionSystem{
		particles: arena,
		sched:     NewScheduler(),
		horizon:   cfg.Horizon,
		redrawHz:  cfg.RedrawHz,
		Metrics:   NewMetrics(),
	}, nil
}

// SetRenderer installs the render callback invoked on redraw ticks.
// A nil renderer leaves the redraw tick as a no-op; the tick is still
// scheduled so the pacing contract holds either way.
func (s *CollisionSystem) SetRenderer(r Renderer) {
	s.renderer = r
}

// SetTrace installs an event trace recorder.
func (s *CollisionSystem) SetTrace(tr *trace.Trace) {
	s.tr = tr
}

// Clock returns the current simulation time.
func (s *CollisionSystem) Clock() float64 {
	return s.clock
}

// Particles returns a snapshot copy of the current particle states.
func (s *CollisionSystem) Particles() []Particle {
	snapshot := make([]Particle, len(s.particles))
	copy(snapshot, s.particles)
	return snapshot
}

// Stop requests a cooperative halt. The flag is checked once per loop
// iteration; safe to call from another goroutine (e.g. a renderer's UI).
func (s *CollisionSystem) Stop() {
	s.stopped.Store(true)
}

// predict schedules every future event involving particle i that falls
// within the horizon: one pair event per other particle plus one
// vertical-wall and one horizontal-wall event. Each event snapshots the
// participants' current collision counts. No-op for the NoParticle
// sentinel, so wall and redraw events can re-predict their absent side
// unconditionally.
func (s *CollisionSystem) predict(i int) {
	if i == NoParticle {
		return
	}
	a := &s.particles[i]

	for j := range s.particles {
		dt := a.TimeToHit(&s.particles[j])
		if s.clock+dt <= s.horizon {
			s.sched.Schedule(newPairEvent(s.clock+dt, i, j, s.particles))
		}
	}

	if dt := a.TimeToHitVerticalWall(); s.clock+dt <= s.horizon {
		s.sched.Schedule(newVerticalWallEvent(s.clock+dt, i, s.particles))
	}
	if dt := a.TimeToHitHorizontalWall(); s.clock+dt <= s.horizon {
		s.sched.Schedule(newHorizontalWallEvent(s.clock+dt, i, s.particles))
	}
}

// redraw delivers the current particle states to the renderer and, while
// the clock is under the horizon, keeps exactly one future redraw tick
// pending.
func (s *CollisionSystem) redraw() {
	if s.renderer != nil {
		s.renderer.Render(s.clock, s.Particles())
	}
	s.Metrics.Redraws++
	if s.clock < s.horizon {
		s.sched.Schedule(newRedrawEvent(s.clock + 1.0/s.redrawHz))
	}
}

// Run executes the event loop until the queue drains past the horizon or
// Stop is called. Single-threaded and synchronous: the renderer is invoked
// inline on redraw ticks. Events are applied in non-decreasing time order;
// stale events are discarded without advancing the clock.
func (s *CollisionSystem) Run() {
	logrus.Infof("starting simulation: %d particles, horizon=%v, redrawHz=%v",
		len(s.particles), s.horizon, s.redrawHz)
	s.Metrics.sampleStart(s.particles)

	for i := range s.particles {
		s.predict(i)
	}
	s.sched.Schedule(newRedrawEvent(s.clock))

	for s.sched.Len() > 0 && !s.stopped.Load() {
		ev, _ := s.sched.PopMin()
		if !ev.Valid(s.particles) {
			s.Metrics.StaleDiscarded++
			continue
		}
		// The only events scheduled past the horizon are redraw ticks;
		// halt instead of advancing particles beyond predicted range.
		if ev.Time > s.horizon {
			break
		}

		dt := ev.Time - s.clock
		for i := range s.particles {
			s.particles[i].Move(dt)
		}
		s.clock = ev.Time
		logrus.Debugf("[t %10.4f] %s a=%d b=%d", s.clock, ev.Kind, ev.A, ev.B)

		switch ev.Kind {
		case PairCollision:
			a, b := &s.particles[ev.A], &s.particles[ev.B]
			a.BounceOff(b)
			s.Metrics.PairCollisions++
		case VerticalWall:
			s.particles[ev.A].BounceOffVerticalWall()
			s.Metrics.VerticalWallBounces++
		case HorizontalWall:
			s.particles[ev.B].BounceOffHorizontalWall()
			s.Metrics.HorizontalWallBounces++
		case Redraw:
			s.redraw()
		}
		s.tr.RecordEvent(trace.Record{Time: ev.Time, Kind: ev.Kind.String(), A: ev.A, B: ev.B})

		s.predict(ev.A)
		s.predict(ev.B)
	}

	s.Metrics.PeakQueueDepth = s.sched.PeakLen()
	s.Metrics.SimEndedTime = s.clock
	s.Metrics.sampleEnd(s.particles)
	logrus.Infof("[t %10.4f] simulation ended", s.clock)
}
