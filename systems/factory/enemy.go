package factory

import (
	"fmt"

	"github.com/silentvalley/platformer/archetypes"
	"github.com/silentvalley/platformer/assets"
	"github.com/silentvalley/platformer/components"
	cfg "github.com/silentvalley/platformer/config"
	"github.com/silentvalley/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy adds an enemy standing on spawn.Bottom and moving at
// spawn.ChangeX.
func CreateEnemy(ecs *ecs.ECS, spawn assets.EnemySpawn) (*donburi.Entry, error) {
	kind, ok := cfg.Enemy.Types[spawn.Kind]
	if !ok {
		return nil, fmt.Errorf("enemy type %q: %w", spawn.Kind, assets.ErrInvalidLevelData)
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	w, h := kind.CollisionWidth, kind.CollisionHeight
	addObject(ecs, enemy, resolv.NewObject(spawn.X-w/2, spawn.Bottom, w, h, tags.ResolvEnemy))

	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:   spawn.Kind,
		Patrol: spawn.Patrol,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		SpeedX: spawn.ChangeX,
	})

	anim := newAnimation(kind.AnimationSet, kind.Scale)
	if spawn.ChangeX < 0 {
		anim.Facing = components.FacingLeft
	}
	components.Animation.SetValue(enemy, anim)

	return enemy, nil
}
