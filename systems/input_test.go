package systems

import (
	"testing"

	"github.com/silentvalley/platformer/components"
	cfg "github.com/silentvalley/platformer/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

// press simulates one frame of held actions.
func press(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

func TestGetAction(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionStart] = true

	assert.Equal(t, components.ActionState{Pressed: true, JustPressed: true}, GetAction(input, cfg.ActionStart))

	input.Previous = input.Current
	assert.Equal(t, components.ActionState{Pressed: true}, GetAction(input, cfg.ActionStart))

	input.Current[cfg.ActionStart] = false
	assert.Equal(t, components.ActionState{JustReleased: true}, GetAction(input, cfg.ActionStart))
}

func TestHorizontalInput(t *testing.T) {
	tests := []struct {
		name    string
		actions []cfg.ActionID
		want    float64
	}{
		{"right only", []cfg.ActionID{cfg.ActionMoveRight}, cfg.Player.MoveSpeed},
		{"left only", []cfg.ActionID{cfg.ActionMoveLeft}, -cfg.Player.MoveSpeed},
		{"both", []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight}, 0},
		{"down only", []cfg.ActionID{cfg.ActionMoveDown}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestWorld(t)
			_, _, physics := playerOf(t, createPlayer(e))
			physics.SpeedX = 3

			press(e, tt.actions...)
			UpdatePlayerInput(e)

			assert.Equal(t, tt.want, physics.SpeedX)
		})
	}
}

func TestJumpIsDebounced(t *testing.T) {
	e := newTestWorld(t)
	addGround(e)
	_, obj, physics := playerOf(t, createPlayer(e))
	obj.MoveTo(350, 32+obj.H/2)
	input := getOrCreateInput(e)

	press(e, cfg.ActionMoveUp)
	UpdatePlayerInput(e)
	assert.Equal(t, cfg.Player.JumpSpeed, physics.SpeedY)
	assert.True(t, input.JumpNeedsReset)
	assert.Equal(t, []cfg.SoundID{cfg.SoundJump}, pendingSounds(e))

	// Still holding up while another key changes.
	physics.SpeedY = 0
	press(e, cfg.ActionMoveUp, cfg.ActionMoveRight)
	UpdatePlayerInput(e)
	assert.Equal(t, 0.0, physics.SpeedY)
	assert.Equal(t, cfg.Player.MoveSpeed, physics.SpeedX)
	assert.True(t, input.JumpNeedsReset)

	press(e, cfg.ActionMoveRight)
	UpdatePlayerInput(e)
	assert.False(t, input.JumpNeedsReset)

	press(e, cfg.ActionMoveUp, cfg.ActionMoveRight)
	UpdatePlayerInput(e)
	assert.Equal(t, cfg.Player.JumpSpeed, physics.SpeedY)
	assert.Len(t, pendingSounds(e), 2)
}

func TestNoJumpInMidAir(t *testing.T) {
	e := newTestWorld(t)
	addGround(e)
	_, obj, physics := playerOf(t, createPlayer(e))
	obj.MoveTo(350, 200)

	press(e, cfg.ActionMoveUp)
	UpdatePlayerInput(e)

	assert.Equal(t, 0.0, physics.SpeedY)
	assert.False(t, getOrCreateInput(e).JumpNeedsReset)
	assert.Empty(t, pendingSounds(e))
}

func TestNoJumpWhileHoldingDown(t *testing.T) {
	e := newTestWorld(t)
	addGround(e)
	_, obj, physics := playerOf(t, createPlayer(e))
	obj.MoveTo(350, 32+obj.H/2)

	press(e, cfg.ActionMoveUp, cfg.ActionMoveDown)
	UpdatePlayerInput(e)

	assert.Equal(t, 0.0, physics.SpeedY)
}

func TestQuitRequestsExit(t *testing.T) {
	e := newTestWorld(t)
	createPlayer(e)

	press(e, cfg.ActionQuit)
	UpdatePlayerInput(e)

	state := GetOrCreateGameState(e)
	require.Equal(t, components.TransitionExit, state.Pending)
}
