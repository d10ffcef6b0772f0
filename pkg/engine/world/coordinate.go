package world

import "fmt"

// Spacing is the layout distance between two connected rooms, in relative units.
// North is (-10, 0), South (10, 0), East (0, 10) and West (0, -10).
const Spacing = 10

// Coordinate is a planar layout position, rows growing south and columns east
type Coordinate struct {
	Row int
	Col int
}

// Origin is where a traversal places its root room
var Origin = Coordinate{}

// Add returns the component-wise sum of two coordinates
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{Row: c.Row + o.Row, Col: c.Col + o.Col}
}

// Step returns the coordinate one room away in the given direction
func (c Coordinate) Step(d Direction) Coordinate {
	return c.Add(Offset(d))
}

// Offset returns the fixed layout delta for a direction
func Offset(d Direction) Coordinate {
	dr, dc := d.Delta()
	return Coordinate{Row: dr * Spacing, Col: dc * Spacing}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
