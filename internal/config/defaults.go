package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the built-in configuration.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 450,
		},
		Blocks: BlockConfig{
			Width:  40,
			Height: 20,
		},
		Paddle: PaddleConfig{
			Width:      80,
			InnerWidth: 60,
			Height:     20,
			Line:       400,
			Margin:     10,
			Speed:      8,
			Ramp:       1.2,
		},
		Ball: BallConfig{
			Radius: 10,
			Speed:  5,
			StartY: 390,
		},
		Physics: PhysicsConfig{
			LossLine:     420,
			DeflectScale: 20,
			SpeedMargin:  0.1,
		},
		Levels: LevelsConfig{
			Count: 3,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBlocksYAML
}
