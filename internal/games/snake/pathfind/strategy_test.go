package pathfind

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/snake-pathfinder/internal/games/snake/board"
)

// checkRoute verifies that the route is a chain of legal single steps on v.
func checkRoute(t *testing.T, v board.View, mover board.MoverID, route Route) {
	t.Helper()
	prev, _ := v.Head(mover)
	for i, c := range route {
		if prev.Manhattan(c) != 1 {
			t.Fatalf("step %d: %v is not adjacent to %v", i, c, prev)
		}
		if !v.Allows(mover, c) {
			t.Fatalf("step %d: %v is not enterable", i, c)
		}
		prev = c
	}
}

func TestBreadthFirstScenario(t *testing.T) {
	b := board.New(10, 10)
	b.SetBody(board.Player, []board.Cell{board.C(0, 0)})
	b.SetFood(board.C(3, 4), false)
	v := b.View()

	route := New(BreadthFirst).FindRoute(v, board.Player)
	if len(route) != 7 {
		t.Fatalf("route length = %d, expected 7: %v", len(route), route)
	}
	if route[len(route)-1] != board.C(3, 4) {
		t.Errorf("route ends at %v, expected (3,4)", route[len(route)-1])
	}
	checkRoute(t, v, board.Player, route)
}

func TestBreadthFirstIsShortestOnOpenGrid(t *testing.T) {
	const size = 6
	strategy := New(BreadthFirst)
	for hy := 0; hy < size; hy++ {
		for hx := 0; hx < size; hx++ {
			for fy := 0; fy < size; fy++ {
				for fx := 0; fx < size; fx++ {
					head, food := board.C(hx, hy), board.C(fx, fy)
					b := board.New(size, size)
					b.SetBody(board.Player, []board.Cell{head})
					b.SetFood(food, false)

					route := strategy.FindRoute(b.View(), board.Player)
					if len(route) != head.Manhattan(food) {
						t.Fatalf("head %v food %v: route length %d, expected %d",
							head, food, len(route), head.Manhattan(food))
					}
				}
			}
		}
	}
}

func TestHeadOnFoodReturnsEmptyRoute(t *testing.T) {
	for _, a := range Algorithms() {
		b := board.New(5, 5)
		b.SetBody(board.Player, []board.Cell{board.C(2, 2)})
		b.SetFood(board.C(2, 2), false)

		if route := New(a).FindRoute(b.View(), board.Player); len(route) != 0 {
			t.Errorf("%s: expected empty route, got %v", a, route)
		}
	}
}

// encircledBoard wraps the snake around the food so only the tail touches it.
func encircledBoard() *board.Board {
	b := board.New(5, 5)
	b.SetBody(board.Player, []board.Cell{
		board.C(1, 1), board.C(2, 1), board.C(3, 1), board.C(3, 2),
		board.C(3, 3), board.C(2, 3), board.C(1, 3), board.C(1, 2),
	})
	b.SetFood(board.C(2, 2), false)
	return b
}

func TestRouteThroughVacatingTail(t *testing.T) {
	for _, a := range []Algorithm{BreadthFirst, DepthFirst} {
		t.Run(a.String(), func(t *testing.T) {
			v := encircledBoard().View()
			route := New(a).FindRoute(v, board.Player)
			expected := Route{board.C(1, 2), board.C(2, 2)}
			if len(route) != len(expected) || route[0] != expected[0] || route[1] != expected[1] {
				t.Errorf("route = %v, expected %v", route, expected)
			}
		})
	}
}

func TestBidirectionalBackwardFrontierAvoidsTail(t *testing.T) {
	v := encircledBoard().View()
	route := New(Bidirectional).FindRoute(v, board.Player)

	// The backward search cannot leave the food, so the fallback step is used.
	if len(route) != 1 || route[0] != board.C(0, 1) {
		t.Errorf("route = %v, expected fallback [(0,1)]", route)
	}
}

func TestFallbackWhenFoodUnreachable(t *testing.T) {
	for _, a := range Algorithms() {
		t.Run(a.String(), func(t *testing.T) {
			b := board.New(7, 7)
			b.SetBody(board.Player, []board.Cell{board.C(0, 0), board.C(0, 1)})
			b.SetObstacles([]board.Cell{board.C(4, 5), board.C(6, 5), board.C(5, 4), board.C(5, 6)})
			b.SetFood(board.C(5, 5), false)
			v := b.View()

			route := New(a).FindRoute(v, board.Player)
			if len(route) != 1 {
				t.Fatalf("expected single fallback step, got %v", route)
			}
			if route[0] != board.C(1, 0) {
				t.Errorf("fallback = %v, expected (1,0)", route[0])
			}
			checkRoute(t, v, board.Player, route)
		})
	}
}

func TestNoLegalMove(t *testing.T) {
	for _, a := range Algorithms() {
		t.Run(a.String(), func(t *testing.T) {
			b := board.New(5, 5)
			b.SetBody(board.Player, []board.Cell{board.C(0, 0)})
			b.SetObstacles([]board.Cell{board.C(1, 0), board.C(0, 1)})
			b.SetFood(board.C(4, 4), false)

			if route := New(a).FindRoute(b.View(), board.Player); len(route) != 0 {
				t.Errorf("expected empty route, got %v", route)
			}
		})
	}
}

func TestRivalBoxedInByPlayer(t *testing.T) {
	// Rival head on the top wall, player body on its other three sides.
	b := board.New(8, 8)
	b.SetBody(board.Rival, []board.Cell{board.C(3, 0)})
	b.SetBody(board.Player, []board.Cell{
		board.C(2, 0), board.C(2, 1), board.C(3, 1), board.C(4, 1), board.C(4, 0),
	})
	b.SetFood(board.C(7, 7), false)

	for _, a := range Algorithms() {
		if route := New(a).FindRoute(b.View(), board.Rival); len(route) != 0 {
			t.Errorf("%s: expected empty route, got %v", a, route)
		}
	}
}

func TestDepthFirstPrefersFirstNeighbor(t *testing.T) {
	b := board.New(5, 5)
	b.SetBody(board.Player, []board.Cell{board.C(0, 0)})
	b.SetFood(board.C(0, 2), false)
	v := b.View()

	route := New(DepthFirst).FindRoute(v, board.Player)
	checkRoute(t, v, board.Player, route)
	if route[0] != board.C(1, 0) {
		t.Errorf("first step = %v, expected (1,0)", route[0])
	}
	if len(route) <= 2 {
		t.Errorf("expected a detour longer than the shortest route, got %v", route)
	}
	if route[len(route)-1] != board.C(0, 2) {
		t.Errorf("route ends at %v", route[len(route)-1])
	}
}

func TestBidirectionalFindsShortRoute(t *testing.T) {
	b := board.New(10, 10)
	b.SetBody(board.Player, []board.Cell{board.C(0, 0)})
	b.SetFood(board.C(3, 4), false)
	v := b.View()

	route := New(Bidirectional).FindRoute(v, board.Player)
	checkRoute(t, v, board.Player, route)
	if route[len(route)-1] != board.C(3, 4) {
		t.Errorf("route ends at %v", route[len(route)-1])
	}
	if len(route) != 7 {
		t.Errorf("route length = %d, expected 7 on an open grid", len(route))
	}
}

func TestRoutesAreLegalAndDeterministic(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := board.New(12, 12)
		b.SetBody(board.Player, []board.Cell{board.C(5, 3), board.C(4, 3), board.C(3, 3), board.C(2, 3)})
		b.SetBody(board.Rival, []board.Cell{board.C(8, 8), board.C(8, 9), board.C(8, 10)})
		b.ScatterObstacles(rng, 15, 1)
		b.PlaceFood(rng, 0)
		v := b.View()

		for _, a := range Algorithms() {
			for _, mover := range []board.MoverID{board.Player, board.Rival} {
				s := New(a)
				first := s.FindRoute(v, mover)
				second := s.FindRoute(v, mover)
				checkRoute(t, v, mover, first)

				if len(first) != len(second) {
					t.Fatalf("seed %d %s %s: routes differ in length", seed, a, mover)
				}
				for i := range first {
					if first[i] != second[i] {
						t.Fatalf("seed %d %s %s: routes differ at %d", seed, a, mover, i)
					}
				}
				if len(first) > 1 && first[len(first)-1] != v.Food() {
					t.Errorf("seed %d %s %s: multi-step route does not end at food", seed, a, mover)
				}
			}
		}
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in       string
		expected Algorithm
		wantErr  bool
	}{
		{"bfs", BreadthFirst, false},
		{"DFS", DepthFirst, false},
		{"Bidirectional", Bidirectional, false},
		{"astar", BreadthFirst, true},
	}

	for _, tc := range tests {
		got, err := ParseAlgorithm(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrUnknownAlgorithm) {
				t.Errorf("ParseAlgorithm(%q) error = %v, expected ErrUnknownAlgorithm", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.expected {
			t.Errorf("ParseAlgorithm(%q) = %v, %v", tc.in, got, err)
		}
	}

	if Bidirectional.Next() != BreadthFirst {
		t.Error("Next should wrap around")
	}
}
