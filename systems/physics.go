package systems

import (
	"github.com/silentvalley/platformer/components"
	cfg "github.com/silentvalley/platformer/config"
	"github.com/silentvalley/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies gravity to the player and moves it against walls and
// moving platforms.
func UpdatePhysics(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		carryWithPlatform(physics, obj.Object)

		physics.SpeedY -= physics.Gravity
		if physics.SpeedY < -cfg.Physics.MaxFallSpeed {
			physics.SpeedY = -cfg.Physics.MaxFallSpeed
		}

		resolveHorizontalCollision(physics, obj.Object)
		resolveVerticalCollision(physics, obj.Object)
		obj.Update()
	})
}

// UpdateJumpFlag stores the jump test result on the player for display.
func UpdateJumpFlag(ecs *ecs.ECS) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	physics := components.Physics.Get(entry)
	obj := components.Object.Get(entry)
	physics.CanJump = CanJump(obj.Object, cfg.Player.CanJumpTolerance)
}

// carryWithPlatform moves a rider by the displacement of the platform it
// stood on last frame.
func carryWithPlatform(physics *components.PhysicsData, object *resolv.Object) {
	ground := physics.OnGround
	if ground == nil || !ground.HasTags(tags.ResolvPlatform) {
		return
	}
	entry, ok := ground.Data.(*donburi.Entry)
	if !ok || !entry.Valid() || !entry.HasComponent(components.MovingPlatform) {
		return
	}
	platform := components.MovingPlatform.Get(entry)
	object.X += platform.DX
	object.Y += platform.DY
}
