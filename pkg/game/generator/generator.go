package generator

import (
	"fmt"
	"strings"

	"labyrinth/pkg/engine/random"
	"labyrinth/pkg/engine/world"
)

// ConnectionPolicy decides which direction each connection attempt asks for
type ConnectionPolicy interface {
	// Direction returns world.AnyDirection to let the graph scan for a free pair
	Direction(src random.Source) world.Direction
	Name() string
}

// Available policies
var (
	FreeScan = &FreeScanPolicy{}
	Directed = &DirectedPolicy{}
)

// DefaultPolicy is the default connection policy
var DefaultPolicy ConnectionPolicy = FreeScan

// Policies lists every policy by name
var Policies = []ConnectionPolicy{FreeScan, Directed}

// PolicyByName looks a policy up by its Name, ignoring case
func PolicyByName(name string) (ConnectionPolicy, error) {
	for _, p := range Policies {
		if strings.EqualFold(p.Name(), name) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unknown connection policy %q", name)
}

// FreeScanPolicy lets every attempt take the first free direction pair
type FreeScanPolicy struct{}

// Name returns the name of this policy
func (p *FreeScanPolicy) Name() string {
	return "free-scan"
}

// Direction always defers the choice to the graph
func (p *FreeScanPolicy) Direction(random.Source) world.Direction {
	return world.AnyDirection
}

// DirectedPolicy draws a fresh random direction for every attempt
type DirectedPolicy struct{}

// Name returns the name of this policy
func (p *DirectedPolicy) Name() string {
	return "directed"
}

// Direction returns a uniformly random cardinal direction
func (p *DirectedPolicy) Direction(src random.Source) world.Direction {
	return random.Direction(src)
}
