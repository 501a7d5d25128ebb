package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type overrides struct {
	Window  Config        `yaml:"window"`
	Player  PlayerConfig  `yaml:"player"`
	Physics PhysicsConfig `yaml:"physics"`
	Camera  CameraConfig  `yaml:"camera"`
	Level   LevelConfig   `yaml:"level"`
	Audio   AudioConfig   `yaml:"audio"`
}

// LoadOverrides applies a YAML tuning file on top of the defaults. Keys
// missing from the file keep their current values.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	o := overrides{
		Window:  *C,
		Player:  Player,
		Physics: Physics,
		Camera:  Camera,
		Level:   Level,
		Audio:   Audio,
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	*C = o.Window
	Player = o.Player
	Physics = o.Physics
	Camera = o.Camera
	Level = o.Level
	Audio = o.Audio
	return nil
}
