package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-pathfinder/internal/games/snake/board"
	"github.com/vovakirdan/snake-pathfinder/internal/games/snake/pathfind"
)

var (
	flagWidth     int
	flagHeight    int
	flagHead      string
	flagFood      string
	flagObstacles []string
	flagBody      []string
	flagRouteAlgo string
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Run one search on a hand-built board",
	Long: `Build a board from flags, run a search from the snake's head and print
the route with a map. Cells are given as x,y with 0,0 in the top-left corner.

--body lists the cells behind the head, nearest first. --algo takes one
algorithm or "all" to compare them on the same board.

Map legend: @ head, o body, * food, # obstacle, + route.

Examples:
  snake route --head 0,0 --food 7,7
  snake route --width 5 --height 5 --head 0,0 --food 4,0 --obstacle 2,0 --obstacle 2,1
  snake route --head 3,3 --body 2,3 --body 1,3 --food 0,3 --algo all`,
	Args: cobra.NoArgs,
	RunE: runRoute,
}

func init() {
	routeCmd.Flags().IntVar(&flagWidth, "width", 8, "Board width")
	routeCmd.Flags().IntVar(&flagHeight, "height", 8, "Board height")
	routeCmd.Flags().StringVar(&flagHead, "head", "0,0", "Head cell")
	routeCmd.Flags().StringVar(&flagFood, "food", "7,7", "Food cell")
	routeCmd.Flags().StringArrayVar(&flagObstacles, "obstacle", nil, "Obstacle cell (repeatable)")
	routeCmd.Flags().StringArrayVar(&flagBody, "body", nil, "Body cell behind the head (repeatable)")
	routeCmd.Flags().StringVar(&flagRouteAlgo, "algo", "all", "Search algorithm, or all")
}

// parseCell parses "x,y".
func parseCell(s string) (board.Cell, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return board.Cell{}, fmt.Errorf("cell %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return board.Cell{}, fmt.Errorf("cell %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return board.Cell{}, fmt.Errorf("cell %q: %w", s, err)
	}
	return board.C(x, y), nil
}

func parseCells(ss []string) ([]board.Cell, error) {
	cells := make([]board.Cell, 0, len(ss))
	for _, s := range ss {
		c, err := parseCell(s)
		if err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}
	return cells, nil
}

// buildBoard assembles the board described by the route flags.
func buildBoard() (*board.Board, error) {
	if flagWidth < 2 || flagHeight < 2 {
		return nil, fmt.Errorf("board must be at least 2x2, got %dx%d", flagWidth, flagHeight)
	}
	b := board.New(flagWidth, flagHeight)

	head, err := parseCell(flagHead)
	if err != nil {
		return nil, err
	}
	body, err := parseCells(flagBody)
	if err != nil {
		return nil, err
	}
	food, err := parseCell(flagFood)
	if err != nil {
		return nil, err
	}
	obstacles, err := parseCells(flagObstacles)
	if err != nil {
		return nil, err
	}

	for _, c := range append([]board.Cell{head, food}, body...) {
		if !b.InBounds(c) {
			return nil, fmt.Errorf("cell %v is outside the %dx%d board", c, flagWidth, flagHeight)
		}
	}
	if err := checkSnake(head, body, food); err != nil {
		return nil, err
	}

	b.SetBody(board.Player, append([]board.Cell{head}, body...))
	b.SetObstacles(obstacles)
	b.SetFood(food, false)
	return b, nil
}

// checkSnake rejects a body that is not a connected chain of distinct cells
// behind the head, and food placed on the body.
func checkSnake(head board.Cell, body []board.Cell, food board.Cell) error {
	seen := map[board.Cell]bool{head: true}
	prev := head
	for _, c := range body {
		if seen[c] {
			return fmt.Errorf("body cell %v appears twice", c)
		}
		if c.Manhattan(prev) != 1 {
			return fmt.Errorf("body cell %v is not next to %v", c, prev)
		}
		if c == food {
			return fmt.Errorf("food %v is on the body", food)
		}
		seen[c] = true
		prev = c
	}
	return nil
}

// describeRoute summarizes a search result in one line.
func describeRoute(v board.View, route pathfind.Route) string {
	head, _ := v.Head(board.Player)
	switch {
	case len(route) == 0 && head == v.Food():
		return "already on food"
	case len(route) == 0:
		return "no move"
	case route[len(route)-1] != v.Food():
		return fmt.Sprintf("food unreachable, fallback step %v", route[0])
	default:
		return fmt.Sprintf("%d steps", len(route))
	}
}

func runRoute(_ *cobra.Command, _ []string) error {
	algos, err := parseAlgorithms(flagRouteAlgo)
	if err != nil {
		return err
	}
	b, err := buildBoard()
	if err != nil {
		return err
	}

	view := b.View()
	for _, a := range algos {
		route := pathfind.New(a).FindRoute(view, board.Player)
		logger.Debug("route", "algorithm", a, "length", len(route))

		fmt.Printf("%s: %s\n", a.Title(), describeRoute(view, route))
		if len(route) > 0 {
			fmt.Println(formatRoute(route))
		}
		fmt.Println(drawMap(view, route))
	}
	return nil
}

func formatRoute(route pathfind.Route) string {
	parts := make([]string, len(route))
	for i, c := range route {
		parts[i] = c.String()
	}
	return "  " + strings.Join(parts, " -> ")
}

// drawMap renders the board with the route overlaid.
func drawMap(v board.View, route pathfind.Route) string {
	onRoute := make(map[board.Cell]bool, len(route))
	for _, c := range route {
		onRoute[c] = true
	}
	head, _ := v.Head(board.Player)

	var sb strings.Builder
	for y := range v.Height() {
		sb.WriteString("  ")
		for x := range v.Width() {
			c := board.C(x, y)
			r := '.'
			switch {
			case c == head:
				r = '@'
			case v.Occupies(board.Player, c):
				r = 'o'
			case v.IsFood(c):
				r = '*'
			case v.IsObstacle(c):
				r = '#'
			case onRoute[c]:
				r = '+'
			}
			sb.WriteRune(r)
			sb.WriteRune(' ')
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
