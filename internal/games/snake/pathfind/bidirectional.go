package pathfind

import "github.com/vovakirdan/snake-pathfinder/internal/games/snake/board"

// bidirectional grows one frontier from the head and one from the food, one
// expansion each per round, and stops as soon as a cell is in both visited
// sets.
//
// The backward frontier also refuses the mover's own body except the head,
// tail included. The forward frontier keeps the usual tail exception.
type bidirectional struct{}

func (bidirectional) FindRoute(v board.View, mover board.MoverID) Route {
	start, ok := v.Head(mover)
	if !ok {
		return nil
	}
	goal := v.Food()
	if start == goal {
		return nil
	}

	forward := map[board.Cell]board.Cell{start: start}
	backward := map[board.Cell]board.Cell{goal: goal}
	forwardQueue := []board.Cell{start}
	backwardQueue := []board.Cell{goal}

	meet, met := board.Cell{}, false
	for len(forwardQueue) > 0 && len(backwardQueue) > 0 && !met {
		current := forwardQueue[0]
		forwardQueue = forwardQueue[1:]
		for _, n := range v.Neighbors(current, mover) {
			if _, seen := forward[n]; !seen {
				forward[n] = current
				forwardQueue = append(forwardQueue, n)
			}
			if _, ok := backward[n]; ok {
				meet, met = n, true
				break
			}
		}
		if met {
			break
		}

		current = backwardQueue[0]
		backwardQueue = backwardQueue[1:]
		for _, n := range v.Neighbors(current, mover) {
			if v.Occupies(mover, n) && n != start {
				continue
			}
			if _, seen := backward[n]; !seen {
				backward[n] = current
				backwardQueue = append(backwardQueue, n)
			}
			if _, ok := forward[n]; ok {
				meet, met = n, true
				break
			}
		}
	}

	if !met {
		return fallback(v, mover, start)
	}

	route := walkBack(forward, start, meet)
	for c := meet; c != goal; {
		c = backward[c]
		route = append(route, c)
	}
	return route
}
