package pathfind

import "github.com/vovakirdan/snake-pathfinder/internal/games/snake/board"

// depthFirst follows the first open neighbor (right, down, left, up) as deep
// as it goes and backtracks only on dead ends. The first route that reaches
// the food wins, so it is usually far from the shortest.
type depthFirst struct{}

type frame struct {
	cell   board.Cell
	parent board.Cell
}

func (depthFirst) FindRoute(v board.View, mover board.MoverID) Route {
	start, ok := v.Head(mover)
	if !ok {
		return nil
	}
	goal := v.Food()
	if start == goal {
		return nil
	}

	prev := make(map[board.Cell]board.Cell)
	stack := []frame{{cell: start, parent: start}}
	found := false
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := prev[top.cell]; seen {
			continue
		}
		prev[top.cell] = top.parent
		if top.cell == goal {
			found = true
			break
		}

		// Push in reverse so the preferred neighbor is popped first.
		neighbors := v.Neighbors(top.cell, mover)
		for i := len(neighbors) - 1; i >= 0; i-- {
			if _, seen := prev[neighbors[i]]; !seen {
				stack = append(stack, frame{cell: neighbors[i], parent: top.cell})
			}
		}
	}

	if !found {
		return fallback(v, mover, start)
	}
	return walkBack(prev, start, goal)
}
