package board

// body is an immutable copy of a snake with O(1) membership.
type body struct {
	cells []Cell
	index map[Cell]bool
}

func indexBody(cells []Cell) body {
	bd := body{
		cells: append([]Cell(nil), cells...),
		index: make(map[Cell]bool, len(cells)),
	}
	for _, c := range cells {
		bd.index[c] = true
	}
	return bd
}

func (bd body) head() (Cell, bool) {
	if len(bd.cells) == 0 {
		return Cell{}, false
	}
	return bd.cells[0], true
}

func (bd body) tail() (Cell, bool) {
	if len(bd.cells) == 0 {
		return Cell{}, false
	}
	return bd.cells[len(bd.cells)-1], true
}

// View is a point-in-time, read-only picture of the board. The obstacle map is
// shared with the Board, which never mutates a map once it has been installed.
// Eliminated snakes stay in the view as blocked cells.
type View struct {
	w, h      int
	obstacles map[Cell]bool
	bodies    [2]body
	food      Cell
}

// Width returns the number of columns.
func (v View) Width() int { return v.w }

// Height returns the number of rows.
func (v View) Height() int { return v.h }

// InBounds reports whether c lies on the grid.
func (v View) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < v.w && c.Y >= 0 && c.Y < v.h
}

// IsObstacle reports whether c is blocked.
func (v View) IsObstacle(c Cell) bool {
	return v.obstacles[c]
}

// IsFood reports whether c holds the food.
func (v View) IsFood(c Cell) bool {
	return c == v.food
}

// Food returns the food cell.
func (v View) Food() Cell {
	return v.food
}

// Head returns the head of a mover; ok is false if it is not on the board.
func (v View) Head(id MoverID) (Cell, bool) {
	return v.bodies[id].head()
}

// Occupies reports whether the mover's body covers c, tail included.
func (v View) Occupies(id MoverID, c Cell) bool {
	return v.bodies[id].index[c]
}

// Body returns a copy of the mover's body, head first.
func (v View) Body(id MoverID) []Cell {
	return append([]Cell(nil), v.bodies[id].cells...)
}

// Allows applies the movement rule for a single target cell: in bounds, not an
// obstacle, not on the other mover's body, and not on the mover's own body
// unless it is the tail, which vacates on the same tick.
func (v View) Allows(id MoverID, c Cell) bool {
	if !v.InBounds(c) || v.obstacles[c] {
		return false
	}
	if v.bodies[id.Other()].index[c] {
		return false
	}
	own := v.bodies[id]
	if own.index[c] {
		tail, _ := own.tail()
		return c == tail
	}
	return true
}

// Neighbors returns the orthogonal neighbors of c that id may enter, in
// right, down, left, up order.
func (v View) Neighbors(c Cell, id MoverID) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range Dirs {
		n := c.Step(d)
		if v.Allows(id, n) {
			out = append(out, n)
		}
	}
	return out
}
