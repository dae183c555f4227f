// Package pathfind computes routes from a snake's head to the food over a
// read-only board.View. Three interchangeable strategies share one contract.
package pathfind

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/snake-pathfinder/internal/games/snake/board"
)

// ErrUnknownAlgorithm is returned when an algorithm name cannot be parsed.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm selects a search strategy.
type Algorithm int

const (
	BreadthFirst Algorithm = iota
	DepthFirst
	Bidirectional
)

// Algorithms lists every algorithm in cycling order.
func Algorithms() []Algorithm {
	return []Algorithm{BreadthFirst, DepthFirst, Bidirectional}
}

// ParseAlgorithm accepts the short name or the title, case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if strings.EqualFold(s, a.String()) || strings.EqualFold(s, a.Title()) {
			return a, nil
		}
	}
	return BreadthFirst, fmt.Errorf("pathfind: %q: %w", s, ErrUnknownAlgorithm)
}

// Valid reports whether a is a known algorithm.
func (a Algorithm) Valid() bool {
	return a >= BreadthFirst && a <= Bidirectional
}

// Next returns the following algorithm, wrapping around.
func (a Algorithm) Next() Algorithm {
	return (a + 1) % Algorithm(len(Algorithms()))
}

// String returns the CLI name.
func (a Algorithm) String() string {
	switch a {
	case BreadthFirst:
		return "bfs"
	case DepthFirst:
		return "dfs"
	case Bidirectional:
		return "bidirectional"
	default:
		return "unknown"
	}
}

// Title returns the display name.
func (a Algorithm) Title() string {
	switch a {
	case BreadthFirst:
		return "BFS"
	case DepthFirst:
		return "DFS"
	case Bidirectional:
		return "Bidirectional"
	default:
		return "Unknown"
	}
}

// Route is the ordered list of cells a mover will enter, excluding its
// current head and ending at the target.
type Route []board.Cell

// Strategy finds a route for one mover on one snapshot.
//
// An empty route means either the head already sits on the food or there is
// no legal move at all; callers tell the two apart by checking the head.
// When the food is unreachable the route is a single fallback step.
type Strategy interface {
	FindRoute(v board.View, mover board.MoverID) Route
}

// New returns the strategy for a. It panics on an unknown algorithm, which is
// a programming error; validate with Valid first.
func New(a Algorithm) Strategy {
	switch a {
	case BreadthFirst:
		return breadthFirst{}
	case DepthFirst:
		return depthFirst{}
	case Bidirectional:
		return bidirectional{}
	default:
		panic(fmt.Sprintf("pathfind: unknown algorithm %d", int(a)))
	}
}

// fallback returns one step to any enterable neighbor not on the mover's own
// body (tail included). It does not look further ahead than that single step.
func fallback(v board.View, mover board.MoverID, head board.Cell) Route {
	for _, n := range v.Neighbors(head, mover) {
		if !v.Occupies(mover, n) {
			return Route{n}
		}
	}
	return nil
}

// walkBack follows predecessor links from goal back to start and returns the
// cells after start, in travel order.
func walkBack(prev map[board.Cell]board.Cell, start, goal board.Cell) Route {
	var route Route
	for c := goal; c != start; c = prev[c] {
		route = append(route, c)
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route
}
