// Package race implements the road race game logic: session state and the
// per-frame tick controller. It talks to its host engine only through the
// Host capability interface and never renders, plays audio or detects
// collisions itself.
package race

import (
	"errors"
	"fmt"
)

// Kind tags every visual object so the tick can dispatch without inspecting labels.
type Kind int

const (
	KindDecoration Kind = iota // Never moved by the tick
	KindPlayer
	KindRoadline
	KindObstacle
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindDecoration:
		return "decoration"
	case KindPlayer:
		return "player"
	case KindRoadline:
		return "roadline"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Labels of the named objects the tick looks up or creates.
const (
	PlayerLabel     = "player1"
	ObstacleLabel   = "obstacle"
	HealthTextLabel = "health_message"
	ScoreTextLabel  = "score_text"
	GameOverLabel   = "game over"
	CrashLabel      = "crash"
)

// RoadlineLabel returns the label of the i-th roadline sprite.
func RoadlineLabel(i int) string {
	return fmt.Sprintf("roadline%d", i)
}

// Sprite is a visual object in world coordinates, owned by the host registry.
type Sprite struct {
	Label     string
	Kind      Kind
	X, Y      float64 // Center position
	Layer     float64 // Higher layers draw on top
	Scale     float64
	Collision bool // Participates in collision detection
}

// Text is a text label in world coordinates, owned by the host registry.
type Text struct {
	Label    string
	Value    string
	X, Y     float64
	FontSize float64
}

// Key identifies one of the two inputs the tick reads.
type Key int

const (
	KeyActivate Key = iota // Starts the run
	KeyJump
)

// CollisionState is the polarity of a collision event.
type CollisionState int

const (
	CollisionBegin CollisionState = iota
	CollisionEnd
)

// String returns "begin" or "end".
func (s CollisionState) String() string {
	if s == CollisionEnd {
		return "end"
	}
	return "begin"
}

// CollisionEvent reports that two labelled objects started or stopped overlapping.
// The pair is unordered.
type CollisionEvent struct {
	Pair  [2]string
	State CollisionState
}

// Involves reports whether label is either participant.
func (e CollisionEvent) Involves(label string) bool {
	return e.Pair[0] == label || e.Pair[1] == label
}

// Music identifies a background track preset.
type Music int

const (
	MusicWhimsical Music = iota
)

// Sfx identifies a one-shot sound effect preset.
type Sfx int

const (
	SfxImpact Sfx = iota // Player took damage
	SfxJingle            // Run lost
)

// ErrMissingObject is returned when a named object the tick needs is absent.
// It is a precondition violation; hosts treat it as fatal.
var ErrMissingObject = errors.New("race: missing named object")
