package breakout

import (
	"github.com/vovakirdan/blocks/internal/config"
)

// Direction is a paddle movement direction.
type Direction int

const (
	Left Direction = iota
	Right
)

// String returns the name of the direction.
func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// FrameResult reports what one frame did.
type FrameResult struct {
	Destroyed int
	Sounds    []Sound
	Mode      Mode
}

// OutcomeKind tells how a level ended.
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota // Level still in progress
	OutcomeLost
	OutcomeWon
)

// Outcome is the terminal report of a level.
type Outcome struct {
	Kind      OutcomeKind
	Score     uint
	NextIndex int // level to continue with after a win
}

// Play owns the mutable state of one level. It is not safe for concurrent
// use; the platform update loop is its only caller.
type Play struct {
	cfg   config.BlocksConfig
	level Level

	mode  Mode
	score uint

	ballX, ballY   float64
	ballVX, ballVY float64

	paddleX   float64
	leftMult  float64
	rightMult float64
}

// NewPlay starts a level with the ball resting above a centred paddle.
// score is carried over from the previous level.
func NewPlay(cfg config.BlocksConfig, level Level, score uint) *Play {
	return &Play{
		cfg:       cfg,
		level:     level,
		mode:      ModePending,
		score:     score,
		ballX:     cfg.Field.Width / 2,
		ballY:     cfg.Ball.StartY,
		ballVX:    0,
		ballVY:    -level.BallSpeed,
		paddleX:   cfg.Field.Width / 2,
		leftMult:  1,
		rightMult: 1,
	}
}

// Mode returns the current phase.
func (p *Play) Mode() Mode { return p.mode }

// Score returns the accumulated score.
func (p *Play) Score() uint { return p.score }

// Index returns the level index.
func (p *Play) Index() int { return p.level.Index }

// Remaining returns the number of blocks left.
func (p *Play) Remaining() int { return len(p.level.Blocks) }

// Launch releases the ball. It only has an effect while pending.
func (p *Play) Launch() {
	if p.mode == ModePending {
		p.mode = ModeRunning
	}
}

// AdvanceFrame moves the ball one step and resolves its contacts.
// Outside ModeRunning it does nothing.
func (p *Play) AdvanceFrame() FrameResult {
	if p.mode != ModeRunning {
		return FrameResult{Mode: p.mode}
	}

	p.ballX += p.ballVX
	p.ballY += p.ballVY

	res := Collide(p.cfg, PhysicsState{
		BallX:   p.ballX,
		BallY:   p.ballY,
		BallVX:  p.ballVX,
		BallVY:  p.ballVY,
		PaddleX: p.paddleX,
		Speed:   p.level.BallSpeed,
	}, p.level.Blocks)

	p.ballVX, p.ballVY = res.VX, res.VY
	for _, key := range res.Destroyed {
		delete(p.level.Blocks, key)
	}
	p.score += uint(res.Count())
	p.mode = res.Mode

	return FrameResult{
		Destroyed: res.Count(),
		Sounds:    res.Sounds,
		Mode:      p.mode,
	}
}

// MovePaddle moves the paddle one key press in dir. A repeated press keeps
// accelerating; a fresh press or a change of direction starts over at the
// base paddle speed. While pending the ball travels with the paddle.
// Input is ignored once the level is lost.
func (p *Play) MovePaddle(dir Direction, repeat bool) {
	if p.mode == ModeLost {
		return
	}

	limitLeft, limitRight := p.cfg.LimitLeft(), p.cfg.LimitRight()

	var delta float64
	switch dir {
	case Left:
		p.rightMult = 1
		if p.paddleX <= limitLeft {
			return
		}
		p.leftMult = p.ramp(p.leftMult, repeat)
		delta = -p.cfg.Paddle.Speed * p.leftMult
	case Right:
		p.leftMult = 1
		if p.paddleX >= limitRight {
			return
		}
		p.rightMult = p.ramp(p.rightMult, repeat)
		delta = p.cfg.Paddle.Speed * p.rightMult
	}

	x := min(max(p.paddleX+delta, limitLeft), limitRight)
	delta = x - p.paddleX
	p.paddleX = x
	if p.mode == ModePending {
		p.ballX += delta
	}
}

func (p *Play) ramp(mult float64, repeat bool) float64 {
	if repeat {
		return mult * p.cfg.Paddle.Ramp
	}
	return 1
}

// Outcome reports how the level ended, or OutcomeNone while it is running.
func (p *Play) Outcome() Outcome {
	switch p.mode {
	case ModeLost:
		return Outcome{Kind: OutcomeLost, Score: p.score}
	case ModeWon:
		return Outcome{Kind: OutcomeWon, Score: p.score, NextIndex: p.level.Index + 1}
	default:
		return Outcome{Kind: OutcomeNone, Score: p.score}
	}
}
