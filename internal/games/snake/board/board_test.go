package board

import (
	"math/rand"
	"testing"
)

func TestNeighborsRespectBoundsAndObstacles(t *testing.T) {
	b := New(5, 5)
	b.SetBody(Player, []Cell{C(0, 0)})
	b.SetObstacles([]Cell{C(1, 0)})

	got := b.View().Neighbors(C(0, 0), Player)
	if len(got) != 1 || got[0] != C(0, 1) {
		t.Errorf("Neighbors((0,0)) = %v, expected [(0,1)]", got)
	}
}

func TestNeighborsOrder(t *testing.T) {
	b := New(5, 5)
	b.SetBody(Player, []Cell{C(2, 2)})

	got := b.View().Neighbors(C(2, 2), Player)
	expected := []Cell{C(3, 2), C(2, 3), C(1, 2), C(2, 1)}
	if len(got) != len(expected) {
		t.Fatalf("expected %d neighbors, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("neighbor %d = %v, expected %v", i, got[i], expected[i])
		}
	}
}

func TestOwnTailIsEnterable(t *testing.T) {
	b := New(5, 5)
	// Head at (1,1), body wraps so the tail sits right of the head.
	b.SetBody(Player, []Cell{C(1, 1), C(1, 2), C(2, 2), C(2, 1)})
	v := b.View()

	tests := []struct {
		name     string
		cell     Cell
		expected bool
	}{
		{"tail", C(2, 1), true},
		{"neck", C(1, 2), false},
		{"middle", C(2, 2), false},
		{"free", C(0, 1), true},
		{"out of bounds", C(-1, 1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := v.Allows(Player, tc.cell); got != tc.expected {
				t.Errorf("Allows(%v) = %v, expected %v", tc.cell, got, tc.expected)
			}
		})
	}
}

func TestOtherBodyBlockedIncludingTail(t *testing.T) {
	b := New(6, 6)
	b.SetBody(Player, []Cell{C(0, 0)})
	b.SetBody(Rival, []Cell{C(1, 1), C(1, 0)})
	v := b.View()

	if v.Allows(Player, C(1, 0)) {
		t.Error("player must not enter the rival's tail")
	}
	if v.Allows(Player, C(1, 1)) {
		t.Error("player must not enter the rival's head")
	}

	b.Deactivate(Rival)
	v = b.View()
	if v.Allows(Player, C(1, 0)) || v.Allows(Player, C(1, 1)) {
		t.Error("an eliminated rival's body must keep blocking the player")
	}
	if !b.Occupied(C(1, 0)) {
		t.Error("an eliminated rival's body must stay occupied")
	}
}

func TestViewIsDetachedFromBoard(t *testing.T) {
	b := New(5, 5)
	b.SetBody(Player, []Cell{C(2, 2), C(1, 2)})
	v := b.View()

	b.Advance(Player, C(3, 2), false)

	head, _ := v.Head(Player)
	if head != C(2, 2) {
		t.Errorf("view head changed after board mutation: %v", head)
	}
	if !v.Occupies(Player, C(1, 2)) {
		t.Error("view lost a body cell after board mutation")
	}
}

func TestAdvanceGrowAndMove(t *testing.T) {
	b := New(5, 5)
	b.SetBody(Player, []Cell{C(1, 1), C(0, 1)})

	b.Advance(Player, C(2, 1), false)
	if body := b.Body(Player); len(body) != 2 || body[0] != C(2, 1) || body[1] != C(1, 1) {
		t.Errorf("after move body = %v", body)
	}

	b.Advance(Player, C(3, 1), true)
	if body := b.Body(Player); len(body) != 3 || body[2] != C(1, 1) {
		t.Errorf("after grow body = %v", body)
	}
}

func TestPlaceFoodAvoidsSnakesAndObstacles(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := New(6, 6)
	b.SetBody(Player, []Cell{C(0, 0), C(1, 0), C(2, 0)})
	b.SetBody(Rival, []Cell{C(5, 5), C(4, 5)})
	b.SetObstacles([]Cell{C(3, 3), C(2, 2)})

	for i := 0; i < 200; i++ {
		if !b.PlaceFood(rng, 0.5) {
			t.Fatal("PlaceFood reported a full board")
		}
		food, _ := b.Food()
		if b.IsObstacle(food) || b.Occupied(food) || !b.InBounds(food) {
			t.Fatalf("food placed on invalid cell %v", food)
		}
	}
}

func TestPlaceFoodFullBoard(t *testing.T) {
	b := New(2, 1)
	b.SetBody(Player, []Cell{C(0, 0), C(1, 0)})

	if b.PlaceFood(rand.New(rand.NewSource(1)), 0) {
		t.Error("PlaceFood should fail on a full board")
	}
	if food, _ := b.Food(); food != NoFood {
		t.Errorf("food = %v, expected NoFood", food)
	}
}

func TestScatterObstaclesKeepsClearOfHeads(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := New(40, 40)
	b.SetBody(Player, []Cell{C(10, 20)})
	b.SetBody(Rival, []Cell{C(30, 20)})

	placed := b.ScatterObstacles(rng, 10, 3)
	if placed != 10 {
		t.Fatalf("placed %d obstacles, expected 10", placed)
	}
	for _, o := range b.Obstacles() {
		if o.Chebyshev(C(10, 20)) <= 3 || o.Chebyshev(C(30, 20)) <= 3 {
			t.Errorf("obstacle %v too close to a head", o)
		}
	}
}

func TestScatterObstaclesGivesUp(t *testing.T) {
	b := New(4, 4)
	b.SetBody(Player, []Cell{C(1, 1)})

	// Every cell is within radius 3 of the head.
	if placed := b.ScatterObstacles(rand.New(rand.NewSource(1)), 5, 3); placed != 0 {
		t.Errorf("placed %d obstacles on a board with no eligible cells", placed)
	}
}

func TestDirHelpers(t *testing.T) {
	for _, d := range Dirs {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: double opposite mismatch", d)
		}
		got, ok := DirBetween(C(3, 3), C(3, 3).Step(d))
		if !ok || got != d {
			t.Errorf("DirBetween for %v = %v, %v", d, got, ok)
		}
	}
	if _, ok := DirBetween(C(0, 0), C(2, 0)); ok {
		t.Error("DirBetween should reject non-adjacent cells")
	}
	if Dir(9).Valid() {
		t.Error("Dir(9) should be invalid")
	}
}
