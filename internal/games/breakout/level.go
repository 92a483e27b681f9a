// Package breakout implements the blocks game core: level generation, the
// collision engine and the play controller. It has no terminal dependencies;
// the platform drives it frame by frame and renders its snapshots.
package breakout

import (
	"fmt"

	"github.com/vovakirdan/blocks/internal/config"
	"github.com/vovakirdan/blocks/internal/core"
	"github.com/vovakirdan/blocks/internal/registry"
)

// BlockKey identifies a block by its grid cell. Two blocks are the same block
// when their keys are equal, whatever their appearance.
type BlockKey struct {
	I int // Column
	J int // Row
}

// Block is a destructible block of the field.
type Block struct {
	Key    BlockKey
	Rect   core.RectF
	Fill   core.Color
	Stroke core.Color
}

// Level is a freshly generated block field with its ball speed.
type Level struct {
	Index     int
	Name      string
	Blocks    map[BlockKey]Block
	BallSpeed float64
}

func init() {
	registry.Register(0, "Pyramid", pyramid)
	registry.Register(1, "Diamond", diamond)
	registry.Register(2, "Wall", wall)
}

func pyramid() []registry.Cell {
	var cells []registry.Cell
	for j := 0; j < 3; j++ {
		for x := 0; x < 5-2*j; x++ {
			cells = append(cells, registry.Cell{I: 8 + j + x, J: j})
		}
	}
	return cells
}

func diamond() []registry.Cell {
	return []registry.Cell{
		{I: 10, J: 0},
		{I: 9, J: 1}, {I: 11, J: 1},
		{I: 8, J: 2}, {I: 12, J: 2},
		{I: 9, J: 3}, {I: 11, J: 3},
		{I: 10, J: 4},
	}
}

func wall() []registry.Cell {
	cells := make([]registry.Cell, 0, 100)
	for i := 0; i < 20; i++ {
		for j := 0; j < 5; j++ {
			cells = append(cells, registry.Cell{I: i, J: j})
		}
	}
	return cells
}

// ParseLayout converts ASCII rows into grid cells.
// '#' marks a block; every other character is an empty cell.
func ParseLayout(rows []string) []registry.Cell {
	var cells []registry.Cell
	for j, row := range rows {
		for i, ch := range []rune(row) {
			if ch == '#' {
				cells = append(cells, registry.Cell{I: i, J: j})
			}
		}
	}
	return cells
}

// Generator builds levels from a configuration and its layout registry.
type Generator struct {
	cfg     config.BlocksConfig
	layouts *registry.Registry
}

// NewGenerator returns a generator over the built-in layouts plus the
// layouts declared in cfg, which take the next free pattern indices.
func NewGenerator(cfg config.BlocksConfig) (*Generator, error) {
	layouts := registry.Builtin()
	for _, lc := range cfg.Levels.Layouts {
		cells := ParseLayout(lc.Rows)
		if len(cells) == 0 {
			return nil, fmt.Errorf("breakout: layout %q has no blocks", lc.Name)
		}
		layouts.Add(lc.Name, func() []registry.Cell {
			return append([]registry.Cell(nil), cells...)
		})
	}
	return &Generator{cfg: cfg, layouts: layouts}, nil
}

// Config returns the configuration levels are generated with.
func (g *Generator) Config() config.BlocksConfig {
	return g.cfg
}

// Layouts lists the registered layout patterns.
func (g *Generator) Layouts() []registry.Layout {
	return g.layouts.List()
}

// Level generates the level at index. The pattern is index modulo the
// configured level count; every full pass after the second multiplies the
// base ball speed by the pass number.
//
// Level panics if the selected pattern index has no registered layout.
func (g *Generator) Level(index int) Level {
	if index < 0 {
		panic(fmt.Sprintf("breakout: negative level index %d", index))
	}

	lvl := index % g.cfg.Levels.Count
	cycle := index / g.cfg.Levels.Count

	layout, ok := g.layouts.Lookup(lvl)
	if !ok {
		panic(fmt.Sprintf("breakout: no layout registered for pattern %d", lvl))
	}

	return Level{
		Index:     index,
		Name:      layout.Name,
		Blocks:    g.blocks(layout.Pattern()),
		BallSpeed: BallSpeed(g.cfg, cycle),
	}
}

// BallSpeed returns the ball speed of a level cycle. The first two cycles
// share the base speed.
func BallSpeed(cfg config.BlocksConfig, cycle int) float64 {
	speed := cfg.Ball.Speed
	if cycle > 1 {
		speed *= float64(cycle)
	}
	return speed
}

func (g *Generator) blocks(cells []registry.Cell) map[BlockKey]Block {
	w, h := g.cfg.Blocks.Width, g.cfg.Blocks.Height

	blocks := make(map[BlockKey]Block, len(cells))
	for _, c := range cells {
		key := BlockKey{I: c.I, J: c.J}
		fill := core.ColorDarkGray
		if c.I%2 == c.J%2 {
			fill = core.ColorGray
		}
		blocks[key] = Block{
			Key:    key,
			Rect:   core.NewRectF(float64(c.I)*w, float64(c.J)*h, w, h),
			Fill:   fill,
			Stroke: core.ColorBlack,
		}
	}
	return blocks
}
