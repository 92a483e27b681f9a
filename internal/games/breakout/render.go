package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/blocks/internal/core"
)

// Glyphs used on the terminal.
const (
	BlockChar  = '█'
	PaddleChar = '='
	BallChar   = '●'
)

// LaunchHint is shown while the ball waits for launch.
const LaunchHint = "Press <SPACE> to launch the ball"

// Render draws the snapshot into dst, scaling the field onto the whole
// screen. The bottom row carries the score and, while pending, the launch hint.
func Render(s Snapshot, dst *core.Screen) {
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	sx := float64(dst.Width()) / s.FieldW
	sy := float64(dst.Height()) / s.FieldH

	for _, b := range s.Blocks {
		dst.DrawRect(scaleRect(b.Rect, sx, sy), BlockChar, b.Fill)
	}

	dst.DrawRect(scaleRect(s.PaddleRect(), sx, sy), PaddleChar, core.ColorDarkGray)

	if s.Mode != ModeLost {
		bx := int(math.Floor(s.BallX * sx))
		by := int(math.Floor(s.BallY * sy))
		dst.SetColored(bx, by, BallChar, core.ColorRed)
	}

	hud := dst.Height() - 1
	if s.Mode == ModePending {
		dst.DrawTextCentered(hud, LaunchHint, core.ColorLightGray)
	}
	dst.DrawTextColored(0, hud, fmt.Sprintf("Score: %d", s.Score), core.ColorLightGray)
}

// scaleRect maps a field box onto screen cells. Every box keeps at least
// one cell in each direction.
func scaleRect(r core.RectF, sx, sy float64) core.Rect {
	x0 := int(math.Floor(r.X * sx))
	y0 := int(math.Floor(r.Y * sy))
	x1 := max(int(math.Floor(r.Right()*sx)), x0+1)
	y1 := max(int(math.Floor(r.Bottom()*sy)), y0+1)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}
