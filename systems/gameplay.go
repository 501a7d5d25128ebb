package systems

import (
	"github.com/charmbracelet/log"
	"github.com/silentvalley/platformer/components"
	cfg "github.com/silentvalley/platformer/config"
	"github.com/silentvalley/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGameplay runs one frame of play. The order matters: animation reads
// last frame's velocities and the death checks see this frame's positions.
// Nothing runs while a transition waits for the scene driver.
func UpdateGameplay(e *ecs.ECS) {
	state := GetOrCreateGameState(e)
	if state.Pending != components.TransitionNone {
		return
	}

	UpdatePlayerInput(e)
	if state.Pending != components.TransitionNone {
		return
	}

	UpdateAnimations(e)
	UpdateJumpFlag(e)
	UpdateMovingPlatforms(e)
	MoveEnemies(e)
	UpdatePatrol(e)
	UpdatePhysics(e)
	CollectCoins(e)

	if !CheckFallOff(e) && !CheckHazards(e) {
		CheckLevelEnd(e)
	}

	UpdateCamera(e)
}

// GetOrCreateGameState returns the singleton game state, creating a fresh
// run when the world has none.
func GetOrCreateGameState(e *ecs.ECS) *components.GameStateData {
	entry, ok := components.GameState.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.GameState))
		components.GameState.SetValue(entry, components.NewGameState(cfg.Level.FirstLevel, cfg.Level.EndOfMap))
	}
	return components.GameState.Get(entry)
}

// RequestTransition asks the scene driver for a view change. The first
// request of a frame wins.
func RequestTransition(e *ecs.ECS, t components.Transition) {
	state := GetOrCreateGameState(e)
	if state.Request(t) {
		log.Debug("transition requested", "to", t, "level", state.Level, "score", state.Score)
	}
}

// CollectCoins removes every coin the player touches and scores it.
func CollectCoins(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	state := GetOrCreateGameState(e)

	for _, coin := range Overlapping(components.Object.Get(playerEntry).Object, tags.ResolvCoin) {
		space.Remove(coin)
		if entry, ok := coin.Data.(*donburi.Entry); ok && entry.Valid() {
			e.World.Remove(entry.Entity())
		}
		state.Score++
		PlaySFX(e, cfg.SoundCoin)
	}
}

// CheckFallOff ends the life of a player that dropped below the map.
func CheckFallOff(e *ecs.ECS) bool {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return false
	}
	obj := components.Object.Get(playerEntry)
	if _, y := obj.Position(); y >= cfg.Level.DeathY {
		return false
	}

	respawn(playerEntry)
	loseLife(e)
	return true
}

// CheckHazards ends the life of a player touching an enemy or a death tile.
func CheckHazards(e *ecs.ECS) bool {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return false
	}
	obj := components.Object.Get(playerEntry)
	if len(Overlapping(obj.Object, tags.ResolvEnemy, tags.ResolvHazard)) == 0 {
		return false
	}

	physics := components.Physics.Get(playerEntry)
	physics.SpeedX = 0
	physics.SpeedY = 0
	respawn(playerEntry)
	loseLife(e)
	return true
}

// CheckLevelEnd advances to the next level once the player passes the end
// of the map. The score carries over.
func CheckLevelEnd(e *ecs.ECS) bool {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return false
	}
	state := GetOrCreateGameState(e)
	if x, _ := components.Object.Get(playerEntry).Position(); x < state.EndOfMap {
		return false
	}

	state.Level++
	state.ResetScore = false
	RequestTransition(e, components.TransitionNextLevel)
	log.Info("level complete", "next", state.Level, "score", state.Score)
	return true
}

func respawn(playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	components.Object.Get(playerEntry).MoveTo(player.SpawnX, player.SpawnY)

	anim := components.Animation.Get(playerEntry)
	anim.State = cfg.Idle
	if anim.Walk != nil {
		anim.Walk.Restart()
	}
}

func loseLife(e *ecs.ECS) {
	PlaySFX(e, cfg.SoundGameOver)
	RequestTransition(e, components.TransitionGameOver)
}
