package systems

import (
	"github.com/silentvalley/platformer/components"
	cfg "github.com/silentvalley/platformer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations picks the displayed frame of every animated entity from
// its velocity.
func UpdateAnimations(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		physics := components.Physics.Get(e)
		if cfg.AnimationSets[anim.Set].Airborne {
			animateCharacter(anim, physics)
		} else {
			animateFlyer(anim, physics)
		}
	})
}

func updateFacing(anim *components.AnimationData, dx float64) {
	if dx < 0 {
		anim.Facing = components.FacingLeft
	} else if dx > 0 {
		anim.Facing = components.FacingRight
	}
}

// animateCharacter shows jump and fall frames while airborne, idle when
// standing and cycles the walk frames otherwise.
func animateCharacter(anim *components.AnimationData, physics *components.PhysicsData) {
	updateFacing(anim, physics.SpeedX)

	switch {
	case physics.SpeedY > 0 && !physics.Climbing:
		anim.State = cfg.Jump
	case physics.SpeedY < 0 && !physics.Climbing:
		anim.State = cfg.Fall
	case physics.SpeedX == 0:
		anim.State = cfg.Idle
	default:
		anim.State = cfg.Walk
		anim.Walk.Advance()
	}
}

// animateFlyer has no airborne frames. The walk cycle is throttled by the
// set's WalkThrottle.
func animateFlyer(anim *components.AnimationData, physics *components.PhysicsData) {
	updateFacing(anim, physics.SpeedX)

	if physics.SpeedX == 0 {
		anim.State = cfg.Idle
		return
	}
	anim.State = cfg.Walk
	anim.Walk.Advance()
}

// TexturePath returns the texture for the entity's current frame. States the
// set has no art for fall back to idle.
func TexturePath(anim *components.AnimationData) string {
	set := cfg.AnimationSets[anim.Set]

	switch anim.State {
	case cfg.Jump:
		if set.Jump != "" {
			return set.Jump
		}
	case cfg.Fall:
		if set.Fall != "" {
			return set.Fall
		}
	case cfg.Walk:
		if len(set.Walk) > 0 && anim.Walk != nil {
			return set.Walk[anim.Walk.Frame()%len(set.Walk)]
		}
	}
	return set.Idle
}
