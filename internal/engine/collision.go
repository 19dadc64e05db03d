package engine

import (
	"sort"

	"github.com/vovakirdan/road-race/internal/core"
	"github.com/vovakirdan/road-race/internal/race"
)

// Collider is the unscaled size of a kind's hit box in world units.
type Collider struct {
	W, H float64
}

// DefaultColliders returns the hit box sizes of the race kinds.
func DefaultColliders() map[race.Kind]Collider {
	return map[race.Kind]Collider{
		race.KindPlayer:     {W: 140, H: 70},
		race.KindObstacle:   {W: 100, H: 70},
		race.KindRoadline:   {W: 1000, H: 100},
		race.KindDecoration: {W: 100, H: 100},
	}
}

// pairKey is an unordered sprite pair, labels sorted.
type pairKey [2]string

func newPairKey(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{a, b}
}

func (e *Engine) box(sp *race.Sprite) core.Box {
	c := e.colliders[sp.Kind]
	return core.NewBox(sp.X, sp.Y, c.W*sp.Scale, c.H*sp.Scale)
}

// detectCollisions compares the overlapping pairs of this frame with the
// previous one and queues begin and end events for the changes.
func (e *Engine) detectCollisions() {
	var solid []*race.Sprite
	for _, sp := range e.sprites {
		if sp.Collision {
			solid = append(solid, sp)
		}
	}

	current := make(map[pairKey]struct{})
	for i := 0; i < len(solid); i++ {
		bi := e.box(solid[i])
		for j := i + 1; j < len(solid); j++ {
			if !bi.Overlaps(e.box(solid[j])) {
				continue
			}
			key := newPairKey(solid[i].Label, solid[j].Label)
			current[key] = struct{}{}
			if _, was := e.touching[key]; !was {
				e.queue(key, race.CollisionBegin)
			}
		}
	}

	// Ends are reported in pair order so runs are reproducible.
	var ended []pairKey
	for key := range e.touching {
		if _, still := current[key]; !still {
			ended = append(ended, key)
		}
	}
	sort.Slice(ended, func(i, j int) bool { return less(ended[i], ended[j]) })
	for _, key := range ended {
		e.queue(key, race.CollisionEnd)
	}

	e.touching = current
}

func (e *Engine) queue(key pairKey, state race.CollisionState) {
	e.events = append(e.events, race.CollisionEvent{Pair: [2]string(key), State: state})
	e.logger.Debug("collision", "a", key[0], "b", key[1], "state", state)
}

func less(a, b pairKey) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	return a[1] < b[1]
}
