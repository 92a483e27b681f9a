package breakout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blocks/internal/config"
	"github.com/vovakirdan/blocks/internal/core"
)

func blockAt(i, j int) Block {
	return Block{
		Key:  BlockKey{i, j},
		Rect: core.NewRectF(float64(i)*40, float64(j)*20, 40, 20),
		Fill: core.ColorGray,
	}
}

func blockSet(blocks ...Block) map[BlockKey]Block {
	m := make(map[BlockKey]Block, len(blocks))
	for _, b := range blocks {
		m[b.Key] = b
	}
	return m
}

// farBlock keeps the field non-empty without touching the ball.
func farBlock() map[BlockKey]Block {
	return blockSet(blockAt(19, 4))
}

func TestCollideWalls(t *testing.T) {
	cfg := config.DefaultBlocksConfig()

	tests := []struct {
		name   string
		x, y   float64
		vx, vy float64
		wantVX float64
		wantVY float64
	}{
		{"left wall", 8, 200, -3, -4, 3, -4},
		{"right wall", 792, 200, 3, 4, -3, 4},
		{"left wall touching", 10, 200, -3, -4, 3, -4},
		{"leaving left wall", 8, 200, 3, -4, 3, -4},
		{"top wall", 400, 9, 3, -4, 3, 4},
		{"leaving top wall", 400, 9, 3, 4, 3, 4},
		{"corner handles side first", 5, 5, -3, -4, 3, -4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Collide(cfg, PhysicsState{
				BallX: tc.x, BallY: tc.y, BallVX: tc.vx, BallVY: tc.vy,
				PaddleX: 400, Speed: 5,
			}, farBlock())

			assert.Equal(t, ModeRunning, res.Mode)
			assert.Equal(t, tc.wantVX, res.VX)
			assert.Equal(t, tc.wantVY, res.VY)
			assert.Empty(t, res.Destroyed)
			assert.Empty(t, res.Sounds)
		})
	}
}

func TestCollideFloorLoses(t *testing.T) {
	cfg := config.DefaultBlocksConfig()

	// Directly above the paddle: the floor check wins.
	res := Collide(cfg, PhysicsState{
		BallX: 400, BallY: 411, BallVX: 0, BallVY: 5, PaddleX: 400, Speed: 5,
	}, farBlock())
	assert.Equal(t, ModeLost, res.Mode)
	assert.Equal(t, 5.0, res.VY)

	// Exactly on the loss line is still in play.
	res = Collide(cfg, PhysicsState{
		BallX: 100, BallY: 410, BallVX: 0, BallVY: 5, PaddleX: 700, Speed: 5,
	}, farBlock())
	assert.Equal(t, ModeRunning, res.Mode)
}

func TestCollidePaddleDeflection(t *testing.T) {
	cfg := config.DefaultBlocksConfig()

	res := Collide(cfg, PhysicsState{
		BallX: 410, BallY: 395, BallVX: 0, BallVY: 5, PaddleX: 400, Speed: 5,
	}, farBlock())

	assert.InDelta(t, 0.5, res.VX, 1e-12)
	assert.InDelta(t, -math.Sqrt(24.75), res.VY, 1e-12)
	assert.Equal(t, []Sound{SoundPaddleHit}, res.Sounds)
	assert.Equal(t, ModeRunning, res.Mode)
}

func TestCollidePaddleCases(t *testing.T) {
	cfg := config.DefaultBlocksConfig()

	tests := []struct {
		name   string
		x      float64
		vx, vy float64
		hit    bool
		wantVX float64
	}{
		{"centre keeps vx", 400, 0, 5, true, 0},
		{"far right clamps", 440, 4.8, 1.4, true, 4.9},
		{"far left clamps", 360, -4.8, 1.4, true, -4.9},
		{"reach edge touches", 460, 0, 5, true, 3},
		{"beyond reach misses", 461, 0, 5, false, 0},
		{"rising ball passes", 400, 0, -5, false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Collide(cfg, PhysicsState{
				BallX: tc.x, BallY: 395, BallVX: tc.vx, BallVY: tc.vy, PaddleX: 400, Speed: 5,
			}, farBlock())

			if !tc.hit {
				assert.Empty(t, res.Sounds)
				assert.Equal(t, tc.vy, res.VY)
				return
			}
			assert.Equal(t, []Sound{SoundPaddleHit}, res.Sounds)
			assert.InDelta(t, tc.wantVX, res.VX, 1e-12)
			assert.Less(t, res.VY, 0.0)
		})
	}
}

func TestPaddleReflectionPreservesSpeed(t *testing.T) {
	cfg := config.DefaultBlocksConfig()

	for _, speed := range []float64{5, 10, 15} {
		for _, vx := range []float64{-(speed - 0.1), -2, 0, 1.5, speed - 0.1} {
			vy := math.Sqrt(speed*speed - vx*vx)
			for off := -60.0; off <= 60; off += 2.5 {
				res := Collide(cfg, PhysicsState{
					BallX: 400 + off, BallY: 395, BallVX: vx, BallVY: vy, PaddleX: 400, Speed: speed,
				}, farBlock())

				require.Equal(t, []Sound{SoundPaddleHit}, res.Sounds, "speed %v vx %v offset %v", speed, vx, off)
				assert.InDelta(t, speed*speed, res.VX*res.VX+res.VY*res.VY, 1e-9,
					"speed %v vx %v offset %v", speed, vx, off)
				assert.Less(t, math.Abs(res.VX), speed)
			}
		}
	}
}

func TestCollideSingleBlockFromBelowWins(t *testing.T) {
	cfg := config.DefaultBlocksConfig()

	res := Collide(cfg, PhysicsState{
		BallX: 20, BallY: 25, BallVX: 0, BallVY: -5, PaddleX: 400, Speed: 5,
	}, blockSet(blockAt(0, 0)))

	assert.Equal(t, ModeWon, res.Mode)
	assert.Equal(t, BounceBottom, res.Bounce)
	assert.Equal(t, 5.0, res.VY)
	assert.Equal(t, []BlockKey{{0, 0}}, res.Destroyed)
	assert.Equal(t, 1, res.Count())
	assert.Equal(t, []Sound{SoundBlockHit}, res.Sounds)
}

func TestCollideDoesNotMutateBlocks(t *testing.T) {
	cfg := config.DefaultBlocksConfig()
	blocks := blockSet(blockAt(0, 0), blockAt(19, 4))

	res := Collide(cfg, PhysicsState{
		BallX: 20, BallY: 25, BallVX: 0, BallVY: -5, PaddleX: 400, Speed: 5,
	}, blocks)

	assert.Equal(t, 1, res.Count())
	assert.Len(t, blocks, 2)
}

func TestBounceDirections(t *testing.T) {
	cfg := config.DefaultBlocksConfig()
	target := blockAt(5, 5) // x 200..240, y 100..120

	tests := []struct {
		name           string
		x, y, vx, vy   float64
		bounce         Bounce
		wantVX, wantVY float64
	}{
		{"from below", 220, 125, 0, -5, BounceBottom, 0, 5},
		{"from above", 220, 95, 0, 5, BounceTop, 0, -5},
		{"from the right", 245, 110, -5, 0, BounceRight, 5, 0},
		{"from the left", 195, 110, 5, 0, BounceLeft, -5, 0},
		{"centre inside defaults to left", 220, 110, -3, -4, BounceLeft, 3, -4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Collide(cfg, PhysicsState{
				BallX: tc.x, BallY: tc.y, BallVX: tc.vx, BallVY: tc.vy, PaddleX: 400, Speed: 5,
			}, blockSet(target, blockAt(0, 0)))

			assert.Equal(t, ModeRunning, res.Mode)
			assert.Equal(t, tc.bounce, res.Bounce)
			assert.Equal(t, tc.wantVX, res.VX)
			assert.Equal(t, tc.wantVY, res.VY)
			assert.Equal(t, []BlockKey{target.Key}, res.Destroyed)
		})
	}
}

func TestCollideLastHitDecidesBounce(t *testing.T) {
	cfg := config.DefaultBlocksConfig()

	// The ball overlaps (1,0) from below and sits beside (0,1).
	res := Collide(cfg, PhysicsState{
		BallX: 40, BallY: 25, BallVX: 3, BallVY: -4, PaddleX: 400, Speed: 5,
	}, blockSet(blockAt(0, 1), blockAt(1, 0), blockAt(19, 4)))

	assert.Equal(t, []BlockKey{{1, 0}, {0, 1}}, res.Destroyed)
	assert.Equal(t, BounceLeft, res.Bounce)
	assert.Equal(t, -3.0, res.VX)
	assert.Equal(t, -4.0, res.VY, "only one reflection per pass")
	assert.Equal(t, []Sound{SoundBlockHit}, res.Sounds, "one cue per pass")
}

func TestCollideEmptyFieldWins(t *testing.T) {
	cfg := config.DefaultBlocksConfig()

	res := Collide(cfg, PhysicsState{
		BallX: 400, BallY: 200, BallVX: 0, BallVY: -5, PaddleX: 400, Speed: 5,
	}, map[BlockKey]Block{})

	assert.Equal(t, ModeWon, res.Mode)
	assert.Zero(t, res.Count())
	assert.Empty(t, res.Sounds)
}

func TestModeTerminal(t *testing.T) {
	assert.False(t, ModePending.Terminal())
	assert.False(t, ModeRunning.Terminal())
	assert.True(t, ModeLost.Terminal())
	assert.True(t, ModeWon.Terminal())
}
