package board

import (
	"math/rand"
	"sort"
)

// NoFood marks a board with no room left for food.
var NoFood = Cell{X: -1, Y: -1}

// Board is the mutable grid model. Only the simulation engine writes to it.
type Board struct {
	w, h      int
	obstacles map[Cell]bool
	bodies    [2][]Cell // Head at index 0
	active    [2]bool
	food      Cell
	bonus     bool
}

// New creates an empty w×h board with no snakes and no food.
func New(w, h int) *Board {
	return &Board{
		w:         w,
		h:         h,
		obstacles: make(map[Cell]bool),
		food:      NoFood,
	}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.w }

// Height returns the number of rows.
func (b *Board) Height() int { return b.h }

// InBounds reports whether c lies on the grid.
func (b *Board) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < b.w && c.Y >= 0 && c.Y < b.h
}

// SetBody places a snake on the board and marks it active.
func (b *Board) SetBody(id MoverID, cells []Cell) {
	b.bodies[id] = append([]Cell(nil), cells...)
	b.active[id] = len(cells) > 0
}

// Deactivate stops a snake from moving. Its last body stays on the board and
// keeps blocking food and the other snake.
func (b *Board) Deactivate(id MoverID) {
	b.active[id] = false
}

// Body returns a copy of a snake body, head first.
func (b *Board) Body(id MoverID) []Cell {
	return append([]Cell(nil), b.bodies[id]...)
}

// Head returns the head cell of a snake.
func (b *Board) Head(id MoverID) (Cell, bool) {
	if len(b.bodies[id]) == 0 {
		return Cell{}, false
	}
	return b.bodies[id][0], true
}

// Advance pushes a new head. The tail is popped unless grow is set.
func (b *Board) Advance(id MoverID, head Cell, grow bool) {
	body := append([]Cell{head}, b.bodies[id]...)
	if !grow {
		body = body[:len(body)-1]
	}
	b.bodies[id] = body
}

// SetObstacles replaces the obstacle set. The previous map is not mutated,
// so views taken earlier keep their own copy.
func (b *Board) SetObstacles(cells []Cell) {
	obstacles := make(map[Cell]bool, len(cells))
	for _, c := range cells {
		if b.InBounds(c) {
			obstacles[c] = true
		}
	}
	b.obstacles = obstacles
}

// Obstacles returns the obstacle cells in row-major order.
func (b *Board) Obstacles() []Cell {
	cells := make([]Cell, 0, len(b.obstacles))
	for c := range b.obstacles {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

// IsObstacle reports whether c is blocked.
func (b *Board) IsObstacle(c Cell) bool {
	return b.obstacles[c]
}

// Occupied reports whether any snake body, live or eliminated, covers c.
func (b *Board) Occupied(c Cell) bool {
	for id := range b.bodies {
		for _, seg := range b.bodies[id] {
			if seg == c {
				return true
			}
		}
	}
	return false
}

// Food returns the current food cell and whether it is bonus food.
func (b *Board) Food() (Cell, bool) {
	return b.food, b.bonus
}

// SetFood places food explicitly.
func (b *Board) SetFood(c Cell, bonus bool) {
	b.food = c
	b.bonus = bonus
}

// EmptyCells returns every in-bounds cell free of obstacles and snakes, row-major.
func (b *Board) EmptyCells() []Cell {
	var cells []Cell
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			c := Cell{X: x, Y: y}
			if !b.obstacles[c] && !b.Occupied(c) {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// PlaceFood moves the food to a uniformly chosen empty cell and rolls the
// bonus flag. It returns false when the board is full.
func (b *Board) PlaceFood(rng *rand.Rand, bonusChance float64) bool {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		b.food = NoFood
		b.bonus = false
		return false
	}
	b.food = empty[rng.Intn(len(empty))]
	b.bonus = rng.Float64() < bonusChance
	return true
}

// ScatterObstacles draws count obstacles by rejection sampling. Cells on a
// snake or within radius (Chebyshev) of an active head are rejected. It gives
// up after a bounded number of draws and returns how many were placed.
func (b *Board) ScatterObstacles(rng *rand.Rand, count, radius int) int {
	obstacles := make(map[Cell]bool, count)
	attempts := count * 200
	for len(obstacles) < count && attempts > 0 {
		attempts--
		c := Cell{X: rng.Intn(b.w), Y: rng.Intn(b.h)}
		if obstacles[c] || b.Occupied(c) || b.nearHead(c, radius) {
			continue
		}
		obstacles[c] = true
	}
	b.obstacles = obstacles
	return len(obstacles)
}

func (b *Board) nearHead(c Cell, radius int) bool {
	for id := range b.bodies {
		if !b.active[id] || len(b.bodies[id]) == 0 {
			continue
		}
		if b.bodies[id][0].Chebyshev(c) <= radius {
			return true
		}
	}
	return false
}

// View captures a read-only snapshot for a single search.
func (b *Board) View() View {
	v := View{
		w:         b.w,
		h:         b.h,
		obstacles: b.obstacles,
		food:      b.food,
	}
	for id := range b.bodies {
		v.bodies[id] = indexBody(b.bodies[id])
	}
	return v
}
