package snake

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/snake-pathfinder/internal/config"
	"github.com/vovakirdan/snake-pathfinder/internal/core"
	"github.com/vovakirdan/snake-pathfinder/internal/games/snake/board"
)

type moverStyle struct {
	head, body rune
	headColor  core.Color
	bodyColor  core.Color
}

var moverStyles = [2]moverStyle{
	board.Player: {head: '@', body: 'o', headColor: core.ColorBrightGreen, bodyColor: core.ColorGreen},
	board.Rival:  {head: '&', body: 'x', headColor: core.ColorBrightMagenta, bodyColor: core.ColorMagenta},
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.Snapshot()

	g.renderHUD(dst, s)
	g.renderFooter(dst)

	if s.TooSmall {
		renderOverlay(dst, core.ColorYellow, "Window too small", "Resize to continue")
		return
	}

	origin := g.gridOrigin(dst, s)
	dst.DrawBox(core.NewRect(origin.X-1, origin.Y-1, s.Width*cellWidth+2, s.Height+2), core.ColorGray)
	plot := func(c board.Cell, r rune, color core.Color) {
		dst.SetCell(origin.X+c.X*cellWidth, origin.Y+c.Y, r, color)
	}

	for _, c := range s.Obstacles {
		plot(c, '#', core.ColorGray)
	}
	for _, c := range s.Player.Route {
		plot(c, '·', core.ColorCyan)
	}
	if s.HasFood {
		if s.BonusFood {
			plot(s.Food, '$', core.ColorBrightYellow)
		} else {
			plot(s.Food, '*', core.ColorRed)
		}
	}
	if s.Rival != nil {
		renderMover(plot, *s.Rival)
	}
	renderMover(plot, s.Player)

	switch s.Phase {
	case PhaseIdle:
		renderOverlay(dst, core.ColorBrightCyan, g.Title(), "Enter to start")
	case PhasePaused:
		renderOverlay(dst, core.ColorYellow, "Paused", "Press P to continue")
	case PhaseGameOver:
		renderOverlay(dst, core.ColorBrightRed, gameOverLine(s), "Press R to restart")
	}
}

// gridOrigin returns the screen position of cell (0,0), centering the board.
func (g *Game) gridOrigin(dst *core.Screen, s Snapshot) core.Rect {
	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight-footerHeight)
	box := area.Centered(s.Width*cellWidth+2, s.Height+2)
	return core.NewRect(box.X+1, box.Y+1, s.Width*cellWidth, s.Height)
}

func renderMover(plot func(board.Cell, rune, core.Color), m MoverSnapshot) {
	style := moverStyles[m.ID]
	bodyColor, headColor := style.bodyColor, style.headColor
	if !m.Alive {
		bodyColor, headColor = core.ColorGray, core.ColorGray
	}
	for i := len(m.Body) - 1; i >= 0; i-- {
		if i == 0 {
			plot(m.Body[i], style.head, headColor)
		} else {
			plot(m.Body[i], style.body, bodyColor)
		}
	}
}

// renderHUD draws the status line and separator.
func (g *Game) renderHUD(dst *core.Screen, s Snapshot) {
	var hud strings.Builder
	fmt.Fprintf(&hud, " %s · %s · %s/%s  Score: %d",
		g.Title(), s.Algorithm.Title(), s.Difficulty.Title(), s.Mode.Title(), s.Player.Score)
	if s.Rival != nil {
		fmt.Fprintf(&hud, "  Rival: %d", s.Rival.Score)
	}
	dst.DrawText(0, 0, hud.String())

	var extra []string
	if s.DoubleActive {
		extra = append(extra, fmt.Sprintf("x2 %ds", seconds(s.DoubleRemaining)))
	}
	switch s.Mode {
	case config.ModeChallenge:
		extra = append(extra, fmt.Sprintf("Time %ds", seconds(s.ChallengeRemaining)))
	case config.ModeSurvival:
		extra = append(extra, fmt.Sprintf("Speed %d", s.RampLevel+1))
	}
	if len(extra) > 0 {
		text := strings.Join(extra, "  ") + " "
		dst.DrawTextColor(dst.Width()-len(text), 0, text, core.ColorBrightYellow)
	}

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

func (g *Game) renderFooter(dst *core.Screen) {
	help := " arrows steer · tab algorithm · m mode · n difficulty · v duel · p pause · q quit"
	dst.DrawTextColor(0, dst.Height()-1, help, core.ColorGray)
}

func gameOverLine(s Snapshot) string {
	switch s.Winner() {
	case OutcomePlayer:
		return "You win!"
	case OutcomeRival:
		return "Rival wins"
	case OutcomeDraw:
		return "Draw"
	}
	switch s.EndReason {
	case EndTimeUp:
		return fmt.Sprintf("Time up! Score: %d", s.Player.Score)
	case EndNoMove:
		return fmt.Sprintf("Boxed in! Score: %d", s.Player.Score)
	default:
		return fmt.Sprintf("Game Over. Score: %d", s.Player.Score)
	}
}

// renderOverlay draws a centered two-line box.
func renderOverlay(dst *core.Screen, color core.Color, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := dst.Bounds().Centered(boxW, 5)

	dst.FillRect(box, ' ')
	dst.DrawBox(box, color)
	dst.DrawTextCentered(box.Y+1, line1, color)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}

func seconds(d time.Duration) int {
	return int((d + time.Second - 1) / time.Second)
}
