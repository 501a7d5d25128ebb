package factory

import (
	"fmt"

	"github.com/silentvalley/platformer/archetypes"
	"github.com/silentvalley/platformer/assets"
	"github.com/silentvalley/platformer/components"
	cfg "github.com/silentvalley/platformer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, level *assets.Level, number int) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{
		Current: level,
		Number:  number,
	})
	return entry
}

// CreateGameState adds the run state and starts the level on it. The score
// survives only when the previous level asked to keep it.
func CreateGameState(ecs *ecs.ECS, state components.GameStateData) *donburi.Entry {
	entry := archetypes.GameState.Spawn(ecs)
	state.BeginLevel()
	components.GameState.SetValue(entry, state)
	return entry
}

// BuildLevel populates a fresh world with everything in the level: the
// collision space, walls, hazards, coins, moving platforms, enemies, the
// player and the camera.
func BuildLevel(ecs *ecs.ECS, level *assets.Level, state components.GameStateData) error {
	CreateSpace(ecs, level.Width, level.Height, cfg.Physics.SpaceCell)
	CreateLevel(ecs, level, state.Level)
	CreateGameState(ecs, state)

	for _, r := range level.Walls {
		CreateWall(ecs, r)
	}
	for _, r := range level.Hazards {
		CreateHazard(ecs, r)
	}
	for _, r := range level.Coins {
		CreateCoin(ecs, r)
	}
	for _, spawn := range level.MovingPlatforms {
		CreateMovingPlatform(ecs, spawn, level.Width, level.Height)
	}
	for _, spawn := range level.Enemies {
		if _, err := CreateEnemy(ecs, spawn); err != nil {
			return fmt.Errorf("build %s: %w", level.Path, err)
		}
	}

	CreatePlayer(ecs, cfg.Player.StartX, cfg.Player.StartY)
	CreateCamera(ecs)
	return nil
}
