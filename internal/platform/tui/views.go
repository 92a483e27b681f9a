package tui

import (
	"fmt"

	"github.com/vovakirdan/blocks/internal/core"
	"github.com/vovakirdan/blocks/internal/games/breakout"
)

const (
	titleText   = "B L O C K S"
	startPrompt = "Press <SPACE> to start"
	pausedText  = "Game Paused"
	resumeText  = "Press <SPACE> to resume"
	endPrompt   = "Press <SPACE> to continue"
)

// drawStack renders the active screen into dst.
func drawStack(st *Stack, dst *core.Screen, tickRate int) {
	dst.Clear()

	top := st.Top()
	switch top.Kind {
	case ScreenStart:
		drawStart(dst, top.Ticks, tickRate)
	case ScreenPlay:
		drawPlay(dst, top.Play)
	case ScreenPause:
		if below := st.Below(); below != nil && below.Kind == ScreenPlay {
			drawPlay(dst, below.Play)
		}
		drawPause(dst)
	case ScreenEnd:
		drawEnd(dst, top.Result)
	}
}

func drawStart(dst *core.Screen, ticks, tickRate int) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, titleText, core.ColorRed)

	// Blinks twice a second.
	if tickRate <= 0 || (ticks*2/tickRate)%2 == 0 {
		dst.DrawTextCentered(mid+1, startPrompt, core.ColorLightGray)
	}
}

func drawPlay(dst *core.Screen, play *breakout.Play) {
	snap := play.Snapshot()
	breakout.Render(snap, dst)

	label := fmt.Sprintf("Level %d", snap.Index+1)
	dst.DrawTextColored(dst.Width()-len(label), dst.Height()-1, label, core.ColorLightGray)
}

func drawPause(dst *core.Screen) {
	w := max(len(resumeText)+4, 20)
	h := 5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, pausedText, core.ColorYellow)
	dst.DrawTextCentered(box.Y+3, resumeText, core.ColorLightGray)
}

func drawEnd(dst *core.Screen, r EndResult) {
	mid := dst.Height() / 2

	dst.DrawTextCentered(mid-3, "GAME OVER", core.ColorRed)
	dst.DrawTextCentered(mid-1, fmt.Sprintf("Score: %d", r.Score), core.ColorWhite)
	dst.DrawTextCentered(mid, fmt.Sprintf("Level: %d", r.Level+1), core.ColorLightGray)

	if r.NewBest {
		dst.DrawTextCentered(mid+1, "NEW BEST!", core.ColorYellow)
	} else {
		dst.DrawTextCentered(mid+1, fmt.Sprintf("Best: %d", r.HighScore), core.ColorLightGray)
	}

	dst.DrawTextCentered(mid+3, endPrompt, core.ColorGray)
}
