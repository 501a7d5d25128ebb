package factory

import (
	"math"

	"github.com/silentvalley/platformer/archetypes"
	"github.com/silentvalley/platformer/assets"
	"github.com/silentvalley/platformer/components"
	cfg "github.com/silentvalley/platformer/config"
	"github.com/silentvalley/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMovingPlatform adds a platform that travels back and forth between
// its bounds. Open bounds stop at the edge of the level.
func CreateMovingPlatform(ecs *ecs.ECS, spawn assets.MovingPlatformSpawn, levelW, levelH float64) *donburi.Entry {
	platform := archetypes.MovingPlatform.Spawn(ecs)
	addObject(ecs, platform, resolv.NewObject(spawn.X, spawn.Y, spawn.W, spawn.H, tags.ResolvPlatform))

	components.MovingPlatform.SetValue(platform, components.MovingPlatformData{
		Horizontal: oscillation(spawn.X, spawn.ChangeX, spawn.Horizontal, spawn.W, levelW),
		Vertical:   oscillation(spawn.Y, spawn.ChangeY, spawn.Vertical, spawn.H, levelH),
		SpeedX:     spawn.ChangeX,
		SpeedY:     spawn.ChangeY,
	})
	components.Sprite.SetValue(platform, components.SpriteData{Path: cfg.Level.PlatformImage})

	return platform
}

// oscillation builds a looping tween over the corner position of a platform
// of the given size. The bounds limit its edges. Durations are in ticks.
func oscillation(start, speed float64, bounds *assets.PatrolBounds, size, extent float64) *gween.Sequence {
	if bounds == nil || speed == 0 {
		return nil
	}

	low := bounds.Left
	if math.IsInf(low, -1) {
		low = 0
	}
	high := bounds.Right
	if math.IsInf(high, 1) {
		high = extent
	}
	high -= size
	if high < low {
		high = low
	}
	start = math.Max(low, math.Min(high, start))

	far, near := high, low
	if speed < 0 {
		far, near = low, high
	}
	speed = math.Abs(speed)

	var legs []*gween.Tween
	for _, leg := range [][2]float64{{start, far}, {far, near}, {near, start}} {
		from, to := leg[0], leg[1]
		if from == to {
			continue
		}
		legs = append(legs, gween.New(float32(from), float32(to), float32(math.Abs(to-from)/speed), ease.Linear))
	}
	if len(legs) == 0 {
		return nil
	}
	return gween.NewSequence(legs...)
}
