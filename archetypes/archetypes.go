package archetypes

import (
	"github.com/silentvalley/platformer/components"
	cfg "github.com/silentvalley/platformer/config"
	"github.com/silentvalley/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	MovingPlatform = newArchetype(
		tags.MovingPlatform,
		components.Object,
		components.MovingPlatform,
		components.Sprite,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Object,
		components.Sprite,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Animation,
		components.Physics,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Animation,
		components.Physics,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	GameState = newArchetype(
		components.GameState,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
