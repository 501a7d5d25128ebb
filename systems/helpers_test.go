package systems

import (
	"testing"

	"github.com/silentvalley/platformer/assets"
	"github.com/silentvalley/platformer/components"
	cfg "github.com/silentvalley/platformer/config"
	"github.com/silentvalley/platformer/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestWorld returns a world with a collision space, a fresh run and a
// camera but no level content.
func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 6000, 1000, cfg.Physics.SpaceCell)
	factory.CreateGameState(e, components.NewGameState(cfg.Level.FirstLevel, cfg.Level.EndOfMap))
	factory.CreateCamera(e)
	return e
}

// addGround lays a floor along the bottom of the test world.
func addGround(e *ecs.ECS) {
	factory.CreateWall(e, assets.Rect{X: 0, Y: 0, W: 2000, H: 32})
}

func playerOf(t *testing.T, entry *donburi.Entry) (*donburi.Entry, *components.ObjectData, *components.PhysicsData) {
	t.Helper()
	if entry == nil || !entry.HasComponent(components.Player) {
		t.Fatal("not a player entry")
	}
	return entry, components.Object.Get(entry), components.Physics.Get(entry)
}

func pendingSounds(e *ecs.ECS) []cfg.SoundID {
	return GetOrCreateAudio(e).PendingSFX
}

// createPlayer spawns the player at the configured start point.
func createPlayer(e *ecs.ECS) *donburi.Entry {
	return factory.CreatePlayer(e, cfg.Player.StartX, cfg.Player.StartY)
}

func createBat(e *ecs.ECS, changeX float64, patrol *assets.PatrolBounds) *donburi.Entry {
	entry, err := factory.CreateEnemy(e, assets.EnemySpawn{
		X:       1000,
		Bottom:  600,
		Kind:    "bat",
		ChangeX: changeX,
		Patrol:  patrol,
	})
	if err != nil {
		panic(err)
	}
	return entry
}
