package systems

import (
	"math"

	"github.com/silentvalley/platformer/components"
	"github.com/silentvalley/platformer/config"
	"github.com/silentvalley/platformer/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera keeps the player in the middle of the viewport.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}

	x, y := components.Object.Get(playerEntry).Position()
	CenterCameraOnPlayer(components.Camera.Get(cameraEntry), x, y)
}

// CenterCameraOnPlayer puts the player at the center of the viewport. The
// camera never scrolls left of or below the map origin.
func CenterCameraOnPlayer(camera *components.CameraData, playerX, playerY float64) {
	camera.Position.X = math.Max(0, playerX-config.Camera.ViewportWidth/2)
	camera.Position.Y = math.Max(0, playerY-config.Camera.ViewportHeight/2)
}
