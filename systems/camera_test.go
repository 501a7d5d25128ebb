package systems

import (
	"testing"

	"github.com/silentvalley/platformer/components"
	"github.com/stretchr/testify/assert"
)

func TestCenterCameraOnPlayer(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		wantX  float64
		wantY  float64
	}{
		{"near origin clamps x", 400, 300, 0, 55},
		{"both clamped", 10, 10, 0, 0},
		{"far into the level", 3000, 700, 2550, 455},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := &components.CameraData{}
			CenterCameraOnPlayer(camera, tt.px, tt.py)
			assert.Equal(t, tt.wantX, camera.Position.X)
			assert.Equal(t, tt.wantY, camera.Position.Y)
		})
	}
}

func TestUpdateCameraFollowsPlayer(t *testing.T) {
	e := newTestWorld(t)
	player := createPlayer(e)
	components.Object.Get(player).MoveTo(1450, 600)

	UpdateCamera(e)

	cam, ok := components.Camera.First(e.World)
	assert.True(t, ok)
	assert.Equal(t, 1000.0, components.Camera.Get(cam).Position.X)
	assert.Equal(t, 355.0, components.Camera.Get(cam).Position.Y)
}
