package systems

import (
	"testing"

	"github.com/silentvalley/platformer/assets"
	cfg "github.com/silentvalley/platformer/config"
	"github.com/silentvalley/platformer/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerLandsOnGround(t *testing.T) {
	e := newTestWorld(t)
	addGround(e)
	_, obj, physics := playerOf(t, createPlayer(e))

	for range 60 {
		UpdatePhysics(e)
	}

	assert.Equal(t, 32.0, obj.Bottom())
	assert.Equal(t, 0.0, physics.SpeedY)
	require.NotNil(t, physics.OnGround)
	assert.True(t, physics.OnGround.HasTags("solid"))
}

func TestFallSpeedIsCapped(t *testing.T) {
	e := newTestWorld(t)
	_, _, physics := playerOf(t, createPlayer(e))

	for range 60 {
		UpdatePhysics(e)
	}

	assert.Equal(t, -cfg.Physics.MaxFallSpeed, physics.SpeedY)
	assert.Nil(t, physics.OnGround)
}

func TestWallStopsHorizontalMovement(t *testing.T) {
	e := newTestWorld(t)
	addGround(e)
	factory.CreateWall(e, assets.Rect{X: 400, Y: 32, W: 32, H: 64})
	_, obj, physics := playerOf(t, createPlayer(e))
	obj.MoveTo(380, 32+obj.H/2)

	for range 10 {
		physics.SpeedX = cfg.Player.MoveSpeed
		UpdatePhysics(e)
	}

	assert.Equal(t, 400.0, obj.Right())
	assert.Equal(t, 32.0, obj.Bottom())
}

func TestHeadBumpStopsJump(t *testing.T) {
	e := newTestWorld(t)
	addGround(e)
	factory.CreateWall(e, assets.Rect{X: 300, Y: 120, W: 100, H: 32})
	_, obj, physics := playerOf(t, createPlayer(e))
	obj.MoveTo(350, 32+obj.H/2)

	physics.SpeedY = cfg.Player.JumpSpeed
	UpdatePhysics(e)
	UpdatePhysics(e)

	assert.Equal(t, 120.0, obj.Top())
	assert.Equal(t, 0.0, physics.SpeedY)
}

func TestCanJump(t *testing.T) {
	e := newTestWorld(t)
	addGround(e)
	_, obj, _ := playerOf(t, createPlayer(e))

	tests := []struct {
		name   string
		bottom float64
		want   bool
	}{
		{"standing", 32, true},
		{"just above", 40, true},
		{"edge of tolerance", 42, false},
		{"high up", 200, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj.MoveTo(350, tt.bottom+obj.H/2)
			assert.Equal(t, tt.want, CanJump(obj.Object, cfg.Player.JumpTolerance))
		})
	}
}

func TestUpdateJumpFlag(t *testing.T) {
	e := newTestWorld(t)
	addGround(e)
	_, obj, physics := playerOf(t, createPlayer(e))

	obj.MoveTo(350, 32+obj.H/2)
	UpdateJumpFlag(e)
	assert.True(t, physics.CanJump)

	obj.MoveTo(350, 300)
	UpdateJumpFlag(e)
	assert.False(t, physics.CanJump)
}

func TestMovingPlatformCarriesRider(t *testing.T) {
	e := newTestWorld(t)
	factory.CreateMovingPlatform(e, assets.MovingPlatformSpawn{
		Rect:       assets.Rect{X: 100, Y: 100, W: 64, H: 16},
		ChangeX:    2,
		Horizontal: &assets.PatrolBounds{Left: 0, Right: 400},
	}, 6000, 1000)
	_, obj, physics := playerOf(t, createPlayer(e))
	obj.MoveTo(132, 116+obj.H/2)
	startX := obj.X

	for range 10 {
		UpdateMovingPlatforms(e)
		UpdatePhysics(e)
	}

	require.NotNil(t, physics.OnGround)
	assert.InDelta(t, startX+18, obj.X, 0.01)
	assert.InDelta(t, 116, obj.Bottom(), 0.01)
}

func TestCollisionStopsFlush(t *testing.T) {
	tests := []struct {
		name           string
		wall           assets.Rect
		x, y           float64
		speedX, speedY float64
		wantX, wantY   float64
		grounded       bool
	}{
		{"right into wall", assets.Rect{X: 400, Y: 32, W: 32, H: 64}, 360, 40, 20, 0, 372, 40, false},
		{"left into wall", assets.Rect{X: 300, Y: 32, W: 32, H: 64}, 340, 40, -20, 0, 332, 40, false},
		{"falling onto ground", assets.Rect{X: 0, Y: 0, W: 2000, H: 32}, 340, 40, 0, -20, 340, 32, true},
		{"rising into ceiling", assets.Rect{X: 300, Y: 200, W: 100, H: 32}, 340, 130, 0, 20, 340, 144, false},
		{"clear path", assets.Rect{X: 1000, Y: 0, W: 32, H: 32}, 340, 130, 8, -8, 348, 122, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestWorld(t)
			factory.CreateWall(e, tt.wall)
			_, obj, physics := playerOf(t, createPlayer(e))
			obj.X, obj.Y = tt.x, tt.y
			obj.Update()
			physics.SpeedX, physics.SpeedY = tt.speedX, tt.speedY

			resolveHorizontalCollision(physics, obj.Object)
			resolveVerticalCollision(physics, obj.Object)

			assert.Equal(t, tt.wantX, obj.X)
			assert.Equal(t, tt.wantY, obj.Y)
			assert.Equal(t, tt.grounded, physics.OnGround != nil)
			if tt.grounded {
				assert.Equal(t, 0.0, physics.SpeedY)
			}
		})
	}
}
