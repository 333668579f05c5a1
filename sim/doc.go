// Package sim provides the core discrete-event simulation engine for a
// population of rigid circular particles moving in the unit box under
// elastic-collision physics.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - particle.go: particle state and the collision-time/response math
//   - event.go: the four event variants and the lazy-invalidation snapshot
//   - system.go: the event loop, prediction, and clock advancement
//
// # Architecture
//
// The CollisionSystem owns the particle arena and a binary-heap Scheduler
// of events ordered by scheduled time. Predicted events that are superseded
// by an earlier collision are never removed from the heap; each event
// snapshots its participants' collision counters at creation and is
// discarded at dequeue time if any counter has moved on (lazy
// invalidation). Rendering is an external collaborator reached through the
// Renderer interface; implementations live in the render package.
//
// Sub-packages:
//   - sim/trace: pure-data recording of applied events in dequeue order
package sim
