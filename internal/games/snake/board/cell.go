// Package board holds the snake grid model: static geometry, the obstacle set,
// both snake bodies and the food cell. The engine owns a mutable Board; search
// code only ever sees a View, which has no mutating methods.
package board

import "fmt"

// Cell is a grid coordinate. X grows to the right, Y grows downward.
type Cell struct {
	X, Y int
}

// C is a convenience constructor for Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the cell one unit away in direction d.
func (c Cell) Step(d Dir) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns the Manhattan distance to another cell.
func (c Cell) Manhattan(other Cell) int {
	return abs(c.X-other.X) + abs(c.Y-other.Y)
}

// Chebyshev returns the Chebyshev (king-move) distance to another cell.
func (c Cell) Chebyshev(other Cell) int {
	return max(abs(c.X-other.X), abs(c.Y-other.Y))
}

// Dir is one of the four orthogonal unit moves.
type Dir int

// The declaration order is also the neighbor exploration order.
const (
	DirRight Dir = iota
	DirDown
	DirLeft
	DirUp
)

// Dirs lists every direction in exploration order.
var Dirs = [4]Dir{DirRight, DirDown, DirLeft, DirUp}

// Delta returns the unit vector for the direction.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	default:
		return d
	}
}

// Valid reports whether d is one of the four known directions.
func (d Dir) Valid() bool {
	return d >= DirRight && d <= DirUp
}

func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirBetween returns the direction leading from a to an adjacent cell b.
// ok is false when the cells are not orthogonal neighbors.
func DirBetween(a, b Cell) (d Dir, ok bool) {
	for _, d := range Dirs {
		if a.Step(d) == b {
			return d, true
		}
	}
	return DirRight, false
}

// MoverID identifies one of the two snakes.
type MoverID int

const (
	Player MoverID = iota
	Rival
)

// Other returns the opposing mover.
func (id MoverID) Other() MoverID {
	if id == Player {
		return Rival
	}
	return Player
}

func (id MoverID) String() string {
	switch id {
	case Player:
		return "player"
	case Rival:
		return "rival"
	default:
		return "unknown"
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
