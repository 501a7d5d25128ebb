package systems

import (
	"github.com/silentvalley/platformer/assets"
	"github.com/silentvalley/platformer/components"
	"github.com/silentvalley/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MoveEnemies advances enemies along their velocity. Enemies fly and ignore
// walls.
func MoveEnemies(ecs *ecs.ECS) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)
		obj.X += physics.SpeedX
		obj.Y += physics.SpeedY
		obj.Update()
	})
}

// UpdatePatrol turns enemies around at the edges of their patrol bounds.
func UpdatePatrol(ecs *ecs.ECS) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.Patrol == nil {
			return
		}
		obj := components.Object.Get(e)
		reverseAtBounds(components.Physics.Get(e), obj.Left(), obj.Right(), *enemy.Patrol)
	})
}

func reverseAtBounds(physics *components.PhysicsData, left, right float64, bounds assets.PatrolBounds) {
	if right >= bounds.Right && physics.SpeedX > 0 {
		physics.SpeedX = -physics.SpeedX
	} else if left <= bounds.Left && physics.SpeedX < 0 {
		physics.SpeedX = -physics.SpeedX
	}
}
