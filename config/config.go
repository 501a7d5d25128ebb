package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render/update layer the scenes use.
const Default ecs.LayerID = iota

// Facing multipliers used when flipping sprites.
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// Config holds window level settings.
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed float64 `yaml:"moveSpeed"`
	JumpSpeed float64 `yaml:"jumpSpeed"`

	// Jump test distances below the feet
	JumpTolerance    float64 `yaml:"jumpTolerance"`
	CanJumpTolerance float64 `yaml:"canJumpTolerance"`

	// Spawn, center of the collision box
	StartX float64 `yaml:"startX"`
	StartY float64 `yaml:"startY"`

	// Dimensions
	Scale           float64 `yaml:"scale"`
	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`

	AnimationSet string `yaml:"animationSet"`
}

// EnemyTypeConfig describes one enemy kind that can be placed in a level.
type EnemyTypeConfig struct {
	Name            string  `yaml:"name"`
	AnimationSet    string  `yaml:"animationSet"`
	Scale           float64 `yaml:"scale"`
	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
}

// EnemyConfig maps the Tiled "type" property to an enemy kind.
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig `yaml:"types"`
}

// PhysicsConfig holds the platformer engine constants.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"`
	SpaceCell    int     `yaml:"spaceCell"`
}

// CameraConfig contains the viewport used for scrolling.
type CameraConfig struct {
	ViewportWidth  float64 `yaml:"viewportWidth"`
	ViewportHeight float64 `yaml:"viewportHeight"`
}

// LevelConfig covers map loading and the win/lose thresholds.
type LevelConfig struct {
	MapPathFormat string  `yaml:"mapPathFormat"`
	FirstLevel    int     `yaml:"firstLevel"`
	TileScale     float64 `yaml:"tileScale"`
	CoinScale     float64 `yaml:"coinScale"`
	EndOfMap      float64 `yaml:"endOfMap"`
	DeathY        float64 `yaml:"deathY"`

	CoinImage     string `yaml:"coinImage"`
	PlatformImage string `yaml:"platformImage"`

	BackgroundColor color.RGBA `yaml:"-"`
}

// MenuConfig is the instructions screen.
type MenuConfig struct {
	Background string
	Title      string
	StartText  string
	ExitText   string
}

// GameOverConfig is the game over screen.
type GameOverConfig struct {
	Background string
	Title      string
	RetryText  string
	ExitText   string
}

// HUDConfig places the score text.
type HUDConfig struct {
	MarginX    float64
	MarginY    float64
	ScoreColor color.RGBA
}

// DebugConfig is set from the command line.
type DebugConfig struct {
	Enabled  bool
	SkipMenu bool
	Mute     bool
}

var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Physics PhysicsConfig
var Camera CameraConfig
var Level LevelConfig
var Menu MenuConfig
var GameOver GameOverConfig
var HUD HUDConfig
var Debug DebugConfig

// Colors
var (
	White  = color.RGBA{255, 255, 255, 255}
	Yellow = color.RGBA{255, 225, 0, 255}
	Grey   = color.RGBA{100, 100, 100, 255}
	Red    = color.RGBA{255, 0, 0, 255}
	Green  = color.RGBA{0, 255, 0, 255}
	Blue   = color.RGBA{0, 0, 255, 255}
	Cyan   = color.RGBA{0, 255, 255, 255}
)

func init() {
	C = &Config{
		Width:  900,
		Height: 490,
		Title:  "SILENT VALLEY",
		TPS:    60,
	}

	Player = PlayerConfig{
		MoveSpeed:        8,
		JumpSpeed:        18,
		JumpTolerance:    10,
		CanJumpTolerance: 5,
		StartX:           350,
		StartY:           300,
		Scale:            2,
		CollisionWidth:   28,
		CollisionHeight:  56,
		AnimationSet:     "princess",
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"bat": {
				Name:            "bat",
				AnimationSet:    "bat",
				Scale:           2,
				CollisionWidth:  32,
				CollisionHeight: 24,
			},
		},
	}

	Physics = PhysicsConfig{
		Gravity:      1,
		MaxFallSpeed: 24,
		SpaceCell:    32,
	}

	Camera = CameraConfig{
		ViewportWidth:  float64(C.Width),
		ViewportHeight: float64(C.Height),
	}

	Level = LevelConfig{
		MapPathFormat:   "levels/map%d.tmx",
		FirstLevel:      1,
		TileScale:       2,
		CoinScale:       2,
		EndOfMap:        5040,
		DeathY:          -100,
		CoinImage:       "images/coin.png",
		PlatformImage:   "images/platform.png",
		BackgroundColor: color.RGBA{24, 28, 48, 255},
	}

	Menu = MenuConfig{
		Background: "images/background.png",
		Title:      "SILENT VALLEY",
		StartText:  "PRESS SPACE TO START PLAYING",
		ExitText:   "PRESS ESC OR Q TO EXIT",
	}

	GameOver = GameOverConfig{
		Background: "images/gameover.png",
		Title:      "GAME OVER",
		RetryText:  "PRESS SPACE TO PLAY AGAIN",
		ExitText:   "PRESS ESC OR Q TO EXIT",
	}

	HUD = HUDConfig{
		MarginX:    10,
		MarginY:    10,
		ScoreColor: White,
	}
}
