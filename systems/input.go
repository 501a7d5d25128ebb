package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/silentvalley/platformer/components"
	cfg "github.com/silentvalley/platformer/config"
	"github.com/silentvalley/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdateGameplay in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// UpdatePlayerInput turns key changes into player velocity. Held keys are
// only re-evaluated on frames where some action went down or up.
func UpdatePlayerInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionQuit).JustPressed {
		RequestTransition(ecs, components.TransitionExit)
		return
	}
	if !input.Changed() {
		return
	}
	if GetAction(input, cfg.ActionMoveUp).JustReleased {
		input.JumpNeedsReset = false
	}

	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(entry)
	if applyMovementInput(input, components.Physics.Get(entry), obj.Object) {
		PlaySFX(ecs, cfg.SoundJump)
	}
}

// applyMovementInput sets the player's speed from the held actions and
// reports whether a jump started.
func applyMovementInput(input *components.InputData, physics *components.PhysicsData, obj *resolv.Object) bool {
	up := input.Current[cfg.ActionMoveUp]
	down := input.Current[cfg.ActionMoveDown]
	left := input.Current[cfg.ActionMoveLeft]
	right := input.Current[cfg.ActionMoveRight]

	jumped := false
	if up && !down && !input.JumpNeedsReset && CanJump(obj, cfg.Player.JumpTolerance) {
		physics.SpeedY = cfg.Player.JumpSpeed
		input.JumpNeedsReset = true
		jumped = true
	}

	switch {
	case right && !left:
		physics.SpeedX = cfg.Player.MoveSpeed
	case left && !right:
		physics.SpeedX = -cfg.Player.MoveSpeed
	default:
		physics.SpeedX = 0
	}

	return jumped
}
