// sim/event.go
//
// A scheduled occurrence in the simulation: a point in simulated time, the
// particles involved (by arena index), and a snapshot of their collision
// counts taken when the event was created. Events are immutable; instead of
// removing superseded events from the priority queue, the snapshot is
// compared against the live counts at dequeue time and stale events are
// discarded (lazy invalidation).

package sim

// EventKind discriminates the four event variants.
type EventKind int

const (
	// Redraw is a physics-inert tick that triggers the render callback.
	Redraw EventKind = iota
	// VerticalWall is particle A hitting x=0 or x=1.
	VerticalWall
	// HorizontalWall is particle B hitting y=0 or y=1.
	HorizontalWall
	// PairCollision is a binary collision between particles A and B.
	PairCollision
)

// String returns the kind name used in logs and trace records.
func (k EventKind) String() string {
	switch k {
	case Redraw:
		return "redraw"
	case VerticalWall:
		return "vertical-wall"
	case HorizontalWall:
		return "horizontal-wall"
	case PairCollision:
		return "pair-collision"
	default:
		return "unknown"
	}
}

// NoParticle is the participant sentinel for an absent side of an event.
const NoParticle = -1

// Event is an immutable scheduled occurrence. A and B index into the
// CollisionSystem's particle arena; NoParticle marks an absent participant.
// CountA and CountB hold the participants' collision counts at creation.
type Event struct {
	Time   float64
	Kind   EventKind
	A, B   int
	CountA int
	CountB int
}

func newRedrawEvent(t float64) Event {
	return Event{Time: t, Kind: Redraw, A: NoParticle, B: NoParticle}
}

func newVerticalWallEvent(t float64, a int, arena []Particle) Event {
	return Event{Time: t, Kind: VerticalWall, A: a, B: NoParticle, CountA: arena[a].Count}
}

func newHorizontalWallEvent(t float64, b int, arena []Particle) Event {
	return Event{Time: t, Kind: HorizontalWall, A: NoParticle, B: b, CountB: arena[b].Count}
}

func newPairEvent(t float64, a, b int, arena []Particle) Event {
	return Event{Time: t, Kind: PairCollision, A: a, B: b, CountA: arena[a].Count, CountB: arena[b].Count}
}

// Valid reports whether no present participant has collided since this
// event was created. An invalid event is stale and must be discarded
// without being applied.
func (e Event) Valid(arena []Particle) bool {
	if e.A != NoParticle && arena[e.A].Count != e.CountA {
		return false
	}
	if e.B != NoParticle && arena[e.B].Count != e.CountB {
		return false
	}
	return true
}
