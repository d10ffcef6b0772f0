// Package generator adds random edges to a room graph. Every room gets one
// turn as initiator, in creation order, and a bounded number of attempts to
// land an edge to a random candidate. Full connectivity is not guaranteed.
package generator

import (
	"labyrinth/pkg/engine/random"
	"labyrinth/pkg/engine/world"
)

// DefaultMaxRetries is the number of attempts an initiator gets
const DefaultMaxRetries = 10

// Accepted is an edge landed during generation, seen from its initiator
type Accepted struct {
	From world.RoomID
	To   world.RoomID
	Dir  world.Direction
}

// Report summarizes one generation pass
type Report struct {
	Initiators int
	Connected  int
	Abandoned  int
	Attempts   int
	Accepted   []Accepted // only filled when Builder.Record is set
}

// Builder runs a generation pass over a graph
type Builder struct {
	Policy     ConnectionPolicy
	MaxRetries int
	Rand       random.Source
	Record     bool
}

// Generate gives every room one turn as initiator. An initiator draws a
// candidate uniformly from all rooms, itself included, and asks the graph to
// connect them. After MaxRetries failed attempts the initiator is left as is.
func (b *Builder) Generate(g *world.Graph) Report {
	policy := b.Policy
	if policy == nil {
		policy = DefaultPolicy
	}
	maxRetries := b.MaxRetries
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	src := b.Rand
	if src == nil {
		src = random.New(0)
	}

	var report Report
	if g.Len() == 0 {
		return report
	}

	for i := 0; i < g.Len(); i++ {
		initiator := world.RoomID(i)
		report.Initiators++

		landed := false
		for attempt := 0; attempt < maxRetries; attempt++ {
			candidate := random.Room(src, g)
			dir, err := g.Connect(initiator, candidate, policy.Direction(src))
			report.Attempts++
			if err != nil {
				continue
			}
			landed = true
			if b.Record {
				report.Accepted = append(report.Accepted, Accepted{From: initiator, To: candidate, Dir: dir})
			}
			break
		}

		if landed {
			report.Connected++
		} else {
			report.Abandoned++
		}
	}

	return report
}

// GenerateEdges runs one pass with the given policy and retry budget
func GenerateEdges(g *world.Graph, policy ConnectionPolicy, maxRetries int, src random.Source) Report {
	b := &Builder{Policy: policy, MaxRetries: maxRetries, Rand: src}
	return b.Generate(g)
}
