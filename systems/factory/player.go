package factory

import (
	"github.com/silentvalley/platformer/archetypes"
	"github.com/silentvalley/platformer/assets/animations"
	"github.com/silentvalley/platformer/components"
	cfg "github.com/silentvalley/platformer/config"
	"github.com/silentvalley/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer adds the player centered on (x, y). The same point is used
// for respawns.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	addObject(ecs, player, resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvPlayer))

	components.Player.SetValue(player, components.PlayerData{
		SpawnX: x,
		SpawnY: y,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity: cfg.Physics.Gravity,
	})
	components.Animation.SetValue(player, newAnimation(cfg.Player.AnimationSet, cfg.Player.Scale))

	return player
}

func newAnimation(setKey string, scale float64) components.AnimationData {
	set := cfg.AnimationSets[setKey]
	return components.AnimationData{
		Set:    setKey,
		State:  cfg.Idle,
		Facing: components.FacingRight,
		Walk:   animations.NewCycle(len(set.Walk), set.WalkThrottle),
		Scale:  scale,
	}
}
