// Package config provides YAML-based configuration loading and difficulty
// presets for the blocks game.
package config

// BlocksConfig holds every tunable of the game. It is passed by value to the
// level generator, the collision engine and the play controller.
type BlocksConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Blocks  BlockConfig   `yaml:"blocks"`
	Paddle  PaddleConfig  `yaml:"paddle"`
	Ball    BallConfig    `yaml:"ball"`
	Physics PhysicsConfig `yaml:"physics"`
	Levels  LevelsConfig  `yaml:"levels"`
}

// FieldConfig defines the play field in field units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BlockConfig defines the size of one grid cell.
type BlockConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines paddle geometry and keyboard response.
type PaddleConfig struct {
	Width      float64 `yaml:"width"`
	InnerWidth float64 `yaml:"inner_width"`
	Height     float64 `yaml:"height"`
	Line       float64 `yaml:"line"`   // y the ball must pass to touch the paddle
	Margin     float64 `yaml:"margin"` // wall gap and reach beyond the paddle edges
	Speed      float64 `yaml:"speed"`  // field units per key press
	Ramp       float64 `yaml:"ramp"`   // multiplier applied per repeated key press
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // base speed of the first cycle
	StartY float64 `yaml:"start_y"`
}

// PhysicsConfig defines the collision constants.
type PhysicsConfig struct {
	LossLine     float64 `yaml:"loss_line"`
	DeflectScale float64 `yaml:"deflect_scale"` // offset from paddle centre per unit of vx change
	SpeedMargin  float64 `yaml:"speed_margin"`  // keeps |vx| strictly below the ball speed
}

// LevelsConfig defines the level rotation.
type LevelsConfig struct {
	Count   int            `yaml:"count"` // patterns per cycle
	Layouts []LayoutConfig `yaml:"layouts"`
}

// LayoutConfig is a custom block pattern drawn as ASCII rows.
// '#' marks a block, any other character an empty cell.
type LayoutConfig struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// LimitLeft returns the smallest allowed paddle centre.
func (c BlocksConfig) LimitLeft() float64 {
	return c.Paddle.Width/2 + c.Paddle.Margin
}

// LimitRight returns the largest allowed paddle centre.
func (c BlocksConfig) LimitRight() float64 {
	return c.Field.Width - c.Paddle.Width/2 - c.Paddle.Margin
}
