package pathfind

import "github.com/vovakirdan/snake-pathfinder/internal/games/snake/board"

// breadthFirst finds a fewest-steps route.
type breadthFirst struct{}

func (breadthFirst) FindRoute(v board.View, mover board.MoverID) Route {
	start, ok := v.Head(mover)
	if !ok {
		return nil
	}
	goal := v.Food()
	if start == goal {
		return nil
	}

	prev := map[board.Cell]board.Cell{start: start}
	queue := []board.Cell{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == goal {
			break
		}
		for _, n := range v.Neighbors(current, mover) {
			if _, seen := prev[n]; !seen {
				prev[n] = current
				queue = append(queue, n)
			}
		}
	}

	if _, found := prev[goal]; !found {
		return fallback(v, mover, start)
	}
	return walkBack(prev, start, goal)
}
