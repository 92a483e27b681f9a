package breakout

import (
	"math"
	"sort"

	"github.com/vovakirdan/blocks/internal/core"
)

// Snapshot is a read-only copy of a level's state for renderers and tests.
type Snapshot struct {
	Index  int
	Layout string
	Mode   Mode
	Score  uint

	FieldW, FieldH float64

	BallX, BallY   float64
	BallVX, BallVY float64
	BallRadius     float64
	BallSpeed      float64

	PaddleX          float64
	PaddleY          float64 // top edge
	PaddleWidth      float64
	PaddleInnerWidth float64
	PaddleHeight     float64

	Blocks []Block // sorted by row, then column
}

// Snapshot returns the current state of the level.
func (p *Play) Snapshot() Snapshot {
	blocks := make([]Block, 0, len(p.level.Blocks))
	for _, b := range p.level.Blocks {
		blocks = append(blocks, b)
	}
	sort.Slice(blocks, func(a, b int) bool {
		if blocks[a].Key.J != blocks[b].Key.J {
			return blocks[a].Key.J < blocks[b].Key.J
		}
		return blocks[a].Key.I < blocks[b].Key.I
	})

	return Snapshot{
		Index:            p.level.Index,
		Layout:           p.level.Name,
		Mode:             p.mode,
		Score:            p.score,
		FieldW:           p.cfg.Field.Width,
		FieldH:           p.cfg.Field.Height,
		BallX:            p.ballX,
		BallY:            p.ballY,
		BallVX:           p.ballVX,
		BallVY:           p.ballVY,
		BallRadius:       p.cfg.Ball.Radius,
		BallSpeed:        p.level.BallSpeed,
		PaddleX:          p.paddleX,
		PaddleY:          p.cfg.Paddle.Line,
		PaddleWidth:      p.cfg.Paddle.Width,
		PaddleInnerWidth: p.cfg.Paddle.InnerWidth,
		PaddleHeight:     p.cfg.Paddle.Height,
		Blocks:           blocks,
	}
}

// PaddleRect returns the outer paddle box.
func (s *Snapshot) PaddleRect() core.RectF {
	return core.NewRectF(s.PaddleX-s.PaddleWidth/2, s.PaddleY, s.PaddleWidth, s.PaddleHeight)
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := uint64(s.Index)      //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Mode) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Score)
	h = h*31 + math.Float64bits(s.BallX)
	h = h*31 + math.Float64bits(s.BallY)
	h = h*31 + math.Float64bits(s.BallVX)
	h = h*31 + math.Float64bits(s.BallVY)
	h = h*31 + math.Float64bits(s.PaddleX)
	h = h*31 + uint64(len(s.Blocks))

	for _, b := range s.Blocks {
		h = h*31 + uint64(b.Key.I) //#nosec G115 -- hash computation
		h = h*31 + uint64(b.Key.J) //#nosec G115 -- hash computation
	}

	return h
}
