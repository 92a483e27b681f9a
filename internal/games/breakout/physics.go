package breakout

import (
	"math"
	"sort"

	"github.com/vovakirdan/blocks/internal/config"
	"github.com/vovakirdan/blocks/internal/core"
)

// Mode is the phase of a level.
type Mode int

const (
	ModePending Mode = iota // Ball rests above the paddle until launched
	ModeRunning             // Ball in flight
	ModeLost                // Ball fell past the paddle
	ModeWon                 // Every block destroyed
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case ModePending:
		return "pending"
	case ModeRunning:
		return "running"
	case ModeLost:
		return "lost"
	case ModeWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the level is over.
func (m Mode) Terminal() bool {
	return m == ModeLost || m == ModeWon
}

// Bounce is the block edge the ball is taken to have hit.
type Bounce int

const (
	BounceNone Bounce = iota
	BounceTop
	BounceBottom
	BounceLeft
	BounceRight
)

// Sound is an audio cue raised by a collision.
type Sound int

const (
	SoundBlockHit Sound = iota
	SoundPaddleHit
)

// String returns the name of the cue.
func (s Sound) String() string {
	switch s {
	case SoundBlockHit:
		return "block-hit"
	case SoundPaddleHit:
		return "paddle-hit"
	default:
		return "unknown"
	}
}

// PhysicsState is the input of one collision pass, taken after the ball
// moved for the frame.
type PhysicsState struct {
	BallX, BallY   float64
	BallVX, BallVY float64
	PaddleX        float64
	Speed          float64 // ball speed of the level
}

// CollisionResult is the outcome of one collision pass.
type CollisionResult struct {
	VX, VY    float64
	Mode      Mode // ModeRunning unless the pass ended the level
	Bounce    Bounce
	Destroyed []BlockKey // in evaluation order
	Sounds    []Sound
}

// Count returns the number of blocks destroyed by the pass.
func (r CollisionResult) Count() int {
	return len(r.Destroyed)
}

// Collide resolves one frame of contacts. Exactly one of side wall, top wall,
// floor, paddle or block field is handled, in that priority. Walls only turn
// a ball that is still heading into them. The block set is not modified; the
// caller removes Destroyed.
func Collide(cfg config.BlocksConfig, st PhysicsState, blocks map[BlockKey]Block) CollisionResult {
	res := CollisionResult{VX: st.BallVX, VY: st.BallVY, Mode: ModeRunning}
	r := cfg.Ball.Radius

	switch {
	case st.BallX-r <= 0 || st.BallX+r >= cfg.Field.Width:
		if (st.BallX-r <= 0 && res.VX < 0) || (st.BallX+r >= cfg.Field.Width && res.VX > 0) {
			res.VX = -res.VX
		}

	case st.BallY-r <= 0:
		if res.VY < 0 {
			res.VY = -res.VY
		}

	case st.BallY+r > cfg.Physics.LossLine:
		res.Mode = ModeLost

	case touchesPaddle(cfg, st):
		res.VX, res.VY = deflect(cfg, st)
		res.Sounds = append(res.Sounds, SoundPaddleHit)

	default:
		collideBlocks(cfg, st, blocks, &res)
	}

	return res
}

func touchesPaddle(cfg config.BlocksConfig, st PhysicsState) bool {
	r := cfg.Ball.Radius
	reach := cfg.Paddle.Width/2 + cfg.Paddle.Margin
	return st.BallVY > 0 &&
		st.BallY+r > cfg.Paddle.Line &&
		st.BallX+r >= st.PaddleX-reach &&
		st.BallX-r <= st.PaddleX+reach
}

// deflect reflects the ball off the paddle. The offset from the paddle centre
// steers vx, and vy is re-derived so the speed stays at the level speed.
func deflect(cfg config.BlocksConfig, st PhysicsState) (vx, vy float64) {
	vx, vy = st.BallVX, -st.BallVY

	ratio := (st.BallX - st.PaddleX) / cfg.Physics.DeflectScale
	if ratio != 0 {
		limit := st.Speed - cfg.Physics.SpeedMargin
		vx = core.ClampF(vx+ratio, -limit, limit)
		vy = -math.Sqrt(st.Speed*st.Speed - vx*vx)
	}
	return vx, vy
}

type blockHit struct {
	key    BlockKey
	bounce Bounce
}

// collideBlocks runs the block pass in two phases: collect every overlapping
// block with its bounce, then report them all as destroyed. Only the bounce of
// the last hit in (row, column) order is applied.
func collideBlocks(cfg config.BlocksConfig, st PhysicsState, blocks map[BlockKey]Block, res *CollisionResult) {
	r := cfg.Ball.Radius
	ball := core.NewRectF(st.BallX-r, st.BallY-r, 2*r, 2*r)

	var hits []blockHit
	for key, b := range blocks {
		if ball.Overlaps(b.Rect) {
			hits = append(hits, blockHit{key: key, bounce: bounceOff(st, b.Rect)})
		}
	}

	if len(hits) == len(blocks) {
		res.Mode = ModeWon
	}
	if len(hits) == 0 {
		return
	}

	sort.Slice(hits, func(a, b int) bool {
		if hits[a].key.J != hits[b].key.J {
			return hits[a].key.J < hits[b].key.J
		}
		return hits[a].key.I < hits[b].key.I
	})

	res.Destroyed = make([]BlockKey, len(hits))
	for i, h := range hits {
		res.Destroyed[i] = h.key
	}
	res.Sounds = append(res.Sounds, SoundBlockHit)

	res.Bounce = hits[len(hits)-1].bounce
	switch res.Bounce {
	case BounceTop, BounceBottom:
		res.VY = -res.VY
	case BounceLeft, BounceRight:
		res.VX = -res.VX
	}
}

// bounceOff infers the edge of rect the ball came through from the side of
// the rect its centre is on and the direction it travels.
func bounceOff(st PhysicsState, rect core.RectF) Bounce {
	switch {
	case st.BallVY < 0 && st.BallY > rect.Bottom():
		return BounceBottom
	case st.BallVY > 0 && st.BallY < rect.Y:
		return BounceTop
	case st.BallVX < 0 && st.BallX > rect.Right():
		return BounceRight
	default:
		return BounceLeft
	}
}
