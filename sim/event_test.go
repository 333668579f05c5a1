package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "redraw", Redraw.String())
	assert.Equal(t, "vertical-wall", VerticalWall.String())
	assert.Equal(t, "horizontal-wall", HorizontalWall.String())
	assert.Equal(t, "pair-collision", PairCollision.String())
}

func TestEventConstructors_SnapshotCountsAndSentinels(t *testing.T) {
	arena := []Particle{
		{Radius: 0.02, Mass: 1, Count: 3},
		{Radius: 0.02, Mass: 1, Count: 7},
	}

	redraw := newRedrawEvent(1.5)
	assert.Equal(t, Redraw, redraw.Kind)
	assert.Equal(t, NoParticle, redraw.A)
	assert.Equal(t, NoParticle, redraw.B)

	vwall := newVerticalWallEvent(2.0, 0, arena)
	assert.Equal(t, VerticalWall, vwall.Kind)
	assert.Equal(t, 0, vwall.A)
	assert.Equal(t, NoParticle, vwall.B)
	assert.Equal(t, 3, vwall.CountA)

	hwall := newHorizontalWallEvent(2.5, 1, arena)
	assert.Equal(t, HorizontalWall, hwall.Kind)
	assert.Equal(t, NoParticle, hwall.A)
	assert.Equal(t, 1, hwall.B)
	assert.Equal(t, 7, hwall.CountB)

	pair := newPairEvent(3.0, 0, 1, arena)
	assert.Equal(t, PairCollision, pair.Kind)
	assert.Equal(t, 3, pair.CountA)
	assert.Equal(t, 7, pair.CountB)
}

func TestEventValid_StaleAfterParticipantCollides(t *testing.T) {
	// GIVEN a pair event snapshotting both counters
	arena := []Particle{
		{Radius: 0.02, Mass: 1},
		{Radius: 0.02, Mass: 1},
	}
	ev := newPairEvent(1.0, 0, 1, arena)
	assert.True(t, ev.Valid(arena))

	// WHEN one participant collides elsewhere
	arena[1].BounceOffVerticalWall()

	// THEN the event is stale
	assert.False(t, ev.Valid(arena))
}

func TestEventValid_RedrawNeverStale(t *testing.T) {
	arena := []Particle{{Radius: 0.02, Mass: 1}}
	ev := newRedrawEvent(4.0)

	arena[0].BounceOffHorizontalWall()
	arena[0].BounceOffVerticalWall()

	assert.True(t, ev.Valid(arena))
}

func TestEventValid_WallEventIgnoresAbsentSide(t *testing.T) {
	arena := []Particle{
		{Radius: 0.02, Mass: 1},
		{Radius: 0.02, Mass: 1},
	}
	ev := newVerticalWallEvent(1.0, 0, arena)

	// A collision on an uninvolved particle must not invalidate the event.
	arena[1].BounceOffVerticalWall()
	assert.True(t, ev.Valid(arena))

	arena[0].BounceOffVerticalWall()
	assert.False(t, ev.Valid(arena))
}
