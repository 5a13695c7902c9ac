package tui

import (
	"fmt"

	"github.com/vovakirdan/greedy-snake/internal/core"
	"github.com/vovakirdan/greedy-snake/internal/games/snake"
)

// Board layout constants
const (
	hudHeight = 2 // Score line and message line above the field
	cellWidth = 2 // Terminal columns per grid cell, keeps cells roughly square
)

// BoardSize returns the terminal size needed to draw a w×h grid.
func BoardSize(w, h int) (int, int) {
	return w*cellWidth + 2, h + 2 + hudHeight
}

// DrawBoard renders a session snapshot into the screen buffer.
// best is the best score recorded so far in this process.
func DrawBoard(scr *core.Screen, snap snake.Snapshot, best int) {
	scr.Clear()

	needW, needH := BoardSize(snap.Width, snap.Height)
	if scr.Width() < needW || scr.Height() < needH {
		y := scr.Height() / 2
		scr.DrawTextCentered(y-1, "Terminal too small", core.ColorRed)
		scr.DrawTextCentered(y, fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, scr.Width(), scr.Height()), core.ColorGray)
		return
	}

	drawHUD(scr, snap, best)

	field := core.NewRect((scr.Width()-needW)/2, hudHeight, needW, snap.Height+2)
	scr.DrawBox(field, core.ColorGray)

	cell := func(p snake.Point, r rune, c core.Color) {
		x := field.X + 1 + p.X*cellWidth
		y := field.Y + 1 + p.Y
		for i := 0; i < cellWidth; i++ {
			scr.SetColored(x+i, y, r, c)
		}
	}

	if snap.Food.Present {
		cell(snap.Food.Pos, '▓', core.ColorRed)
	}
	if snap.Bonus.Present {
		cell(snap.Bonus.Pos, '▓', core.ColorGold)
	}
	for i := len(snap.Body) - 1; i >= 0; i-- {
		c := core.ColorGreen
		if i == 0 {
			c = core.ColorLightBlue
		}
		cell(snap.Body[i], '█', c)
	}

	drawOverlay(scr, field, snap, best)
}

// drawHUD draws the score line and the message line.
func drawHUD(scr *core.Screen, snap snake.Snapshot, best int) {
	status := fmt.Sprintf("Score: %d   Length: %d   Speed: %s   Best: %d",
		snap.Score, len(snap.Body), snap.SpeedLabel, best)
	speedColor := core.ColorWhite
	if snap.Boosting {
		speedColor = core.ColorOrange
	}
	scr.DrawTextCentered(0, status, speedColor)

	switch {
	case snap.MessageVisible:
		scr.DrawTextCentered(1, snap.Message, core.ColorGold)
	case snap.Bonus.Present:
		scr.DrawTextCentered(1, fmt.Sprintf("Golden food! %.1fs", snap.BonusRemaining.Seconds()), core.ColorYellow)
	}
}

// drawOverlay writes pause and game over banners over the field.
func drawOverlay(scr *core.Screen, field core.Rect, snap snake.Snapshot, best int) {
	_, cy := field.Center()

	switch snap.State {
	case snake.StatePaused:
		scr.DrawTextCentered(cy, " PAUSED ", core.ColorYellow)
		scr.DrawTextCentered(cy+1, " p: resume   esc: menu ", core.ColorGray)
	case snake.StateOver:
		scr.DrawTextCentered(cy-1, " GAME OVER ", core.ColorRed)
		scr.DrawTextCentered(cy, fmt.Sprintf(" Score: %d   Best: %d ", snap.Score, best), core.ColorWhite)
		scr.DrawTextCentered(cy+1, " r: play again   esc: menu ", core.ColorGray)
	}
}
