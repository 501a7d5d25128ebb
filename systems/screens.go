package systems

import (
	cfg "github.com/silentvalley/platformer/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateScreen creates the input system of a full-screen prompt: the
// start action calls onStart and the quit action calls onQuit.
func NewUpdateScreen(onStart, onQuit func()) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionQuit).JustPressed {
			onQuit()
			return
		}
		if GetAction(input, cfg.ActionStart).JustPressed {
			onStart()
		}
	}
}
