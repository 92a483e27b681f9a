package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// LoadBlocks loads the game configuration.
// Search order: customPath -> ~/.blocks/configs/blocks.yaml -> ./configs/blocks.yaml -> embedded default.
// Files are layered over the defaults, so a file may set only the keys it changes.
func LoadBlocks(customPath string) (BlocksConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BlocksConfig{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return BlocksConfig{}, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("blocks.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "blocks.yaml")); err == nil {
		if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultBlocksYAML)
	if err != nil {
		return DefaultBlocksConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte) (BlocksConfig, error) {
	cfg := DefaultBlocksConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BlocksConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blocks", "configs", filename)
}

// Validate rejects configurations the game cannot run with.
func (c BlocksConfig) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"field.width", c.Field.Width},
		{"field.height", c.Field.Height},
		{"blocks.width", c.Blocks.Width},
		{"blocks.height", c.Blocks.Height},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"paddle.speed", c.Paddle.Speed},
		{"paddle.ramp", c.Paddle.Ramp},
		{"ball.radius", c.Ball.Radius},
		{"ball.speed", c.Ball.Speed},
		{"physics.deflect_scale", c.Physics.DeflectScale},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidConfig, p.name, p.value)
		}
	}

	if c.Physics.SpeedMargin < 0 || c.Physics.SpeedMargin >= c.Ball.Speed {
		return fmt.Errorf("%w: physics.speed_margin must be in [0, ball.speed)", ErrInvalidConfig)
	}
	if c.LimitLeft() > c.LimitRight() {
		return fmt.Errorf("%w: paddle does not fit the field", ErrInvalidConfig)
	}
	if c.Levels.Count < 1 {
		return fmt.Errorf("%w: levels.count must be at least 1, got %d", ErrInvalidConfig, c.Levels.Count)
	}
	for i, l := range c.Levels.Layouts {
		if l.Name == "" {
			return fmt.Errorf("%w: layouts[%d] has no name", ErrInvalidConfig, i)
		}
		if len(l.Rows) == 0 {
			return fmt.Errorf("%w: layout %q has no rows", ErrInvalidConfig, l.Name)
		}
	}
	return nil
}
