package domain

import "fmt"

// Coord identifies a cell by row (Y) and column (X).
type Coord struct {
	Y int `json:"y"`
	X int `json:"x"`
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Y, c.X)
}

// Direction is one of the eight compass neighbours of a cell.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Compass lists the directions in the order neighbours are queried.
var Compass = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// offsets are (dy, dx) per direction. North points towards increasing rows.
var offsets = [8]Coord{
	North:     {Y: 1, X: 0},
	NorthEast: {Y: 1, X: 1},
	East:      {Y: 0, X: 1},
	SouthEast: {Y: -1, X: 1},
	South:     {Y: -1, X: 0},
	SouthWest: {Y: -1, X: -1},
	West:      {Y: 0, X: -1},
	NorthWest: {Y: 1, X: -1},
}

var directionNames = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func (d Direction) String() string {
	if d < North || d > NorthWest {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Offset returns the (dy, dx) displacement of d.
func (d Direction) Offset() Coord {
	return offsets[d]
}

// Neighbor returns the coordinate one step from c in direction d.
// The result is not wrapped; normalization belongs to the grid.
func (c Coord) Neighbor(d Direction) Coord {
	o := d.Offset()
	return Coord{Y: c.Y + o.Y, X: c.X + o.X}
}
