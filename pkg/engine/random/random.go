// Package random provides the injectable randomness used by generation and
// layout, so tests can script every draw.
package random

import (
	"math/rand"
	"time"

	"labyrinth/pkg/engine/world"
)

// Source draws uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// New returns a seeded generator; seed 0 seeds from the clock
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Direction returns a uniformly random cardinal direction
func Direction(src Source) world.Direction {
	return world.Direction(src.Intn(4))
}

// Room returns a uniformly random room of g; g must not be empty
func Room(src Source, g *world.Graph) world.RoomID {
	return world.RoomID(src.Intn(g.Len()))
}

// Script replays a fixed sequence of draws, cycling when it runs out.
// Each value is reduced modulo n.
type Script struct {
	Values []int
	next   int
}

// Intn returns the next scripted value modulo n
func (s *Script) Intn(n int) int {
	if len(s.Values) == 0 || n <= 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return ((v % n) + n) % n
}

// Func adapts a function to Source
type Func func(n int) int

// Intn calls f
func (f Func) Intn(n int) int {
	return f(n)
}
