package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/silentvalley/platformer/components"
	cfg "github.com/silentvalley/platformer/config"
	"github.com/silentvalley/platformer/tags"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object and prints the player state.
// Enabled with --debug.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}

	v, ok := viewportOf(ecs, screen)
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			o := components.ObjectData{Object: obj}
			if !v.visible(o) {
				continue
			}

			x, y := v.toScreen(o.Left(), o.Top())

			var c color.Color = cfg.Cyan
			switch {
			case obj.HasTags(tags.ResolvSolid):
				c = cfg.Grey
			case obj.HasTags(tags.ResolvPlayer):
				c = cfg.Blue
			case obj.HasTags(tags.ResolvEnemy, tags.ResolvHazard):
				c = cfg.Red
			case obj.HasTags(tags.ResolvCoin):
				c = cfg.Yellow
			case obj.HasTags(tags.ResolvPlatform):
				c = cfg.Green
			}

			vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		physics := components.Physics.Get(playerEntry)
		px, py := components.Object.Get(playerEntry).Position()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"TPS %.0f  pos %.0f,%.0f  speed %.0f,%.0f  can jump %v",
			ebiten.ActualTPS(), px, py, physics.SpeedX, physics.SpeedY, physics.CanJump,
		))
	}
}
