package systems

import (
	"github.com/silentvalley/platformer/components"
	"github.com/silentvalley/platformer/tags"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovingPlatforms advances every moving platform by one tick and
// records its displacement.
func UpdateMovingPlatforms(ecs *ecs.ECS) {
	tags.MovingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		platform := components.MovingPlatform.Get(e)
		obj := components.Object.Get(e)

		x := advanceAxis(platform.Horizontal, obj.X, platform.SpeedX)
		y := advanceAxis(platform.Vertical, obj.Y, platform.SpeedY)

		platform.DX, platform.DY = x-obj.X, y-obj.Y
		obj.X, obj.Y = x, y
		obj.Update()
	})
}

// advanceAxis steps a looping tween measured in ticks. Without a tween the
// platform keeps its straight-line speed.
func advanceAxis(seq *gween.Sequence, pos, speed float64) float64 {
	if seq == nil {
		return pos + speed
	}
	v, _, done := seq.Update(1)
	if done {
		seq.Reset()
	}
	return float64(v)
}
