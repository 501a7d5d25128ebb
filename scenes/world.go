package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/silentvalley/platformer/assets"
	"github.com/silentvalley/platformer/components"
	cfg "github.com/silentvalley/platformer/config"
	"github.com/silentvalley/platformer/systems"
	"github.com/silentvalley/platformer/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs the levels of one play-through. Finishing a level
// rebuilds the world in place and keeps the run state.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	state        components.GameStateData
	once         sync.Once
	err          error
}

// NewPlatformerScene starts a new run on the given level.
func NewPlatformerScene(sc SceneChanger, level int) *PlatformerScene {
	return &PlatformerScene{
		sceneChanger: sc,
		state:        components.NewGameState(level, cfg.Level.EndOfMap),
	}
}

func (ps *PlatformerScene) Update() error {
	ps.once.Do(func() { ps.err = ps.setup() })
	if ps.err != nil {
		return ps.err
	}

	ps.ecs.Update()
	return ps.handleTransition()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.renderBackground()
	ps.ecs.Draw(screen)
}

// setup builds a fresh world for the current level of the run.
func (ps *PlatformerScene) setup() error {
	level, err := loadLevel(ps.state.Level)
	if err != nil {
		return err
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first to initialize audio context)
	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateGameplay)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	if err := factory.BuildLevel(ecs, level, ps.state); err != nil {
		return err
	}
	ps.ecs = ecs

	state := systems.GetOrCreateGameState(ecs)
	log.Info("level ready", "level", state.Level, "map", level.Path, "score", state.Score)
	return nil
}

// handleTransition acts on the request gameplay left in the game state.
func (ps *PlatformerScene) handleTransition() error {
	state := systems.GetOrCreateGameState(ps.ecs)

	switch state.Pending {
	case components.TransitionNextLevel:
		ps.state = *state
		return ps.setup()
	case components.TransitionGameOver:
		best := systems.RecordScore(state.Score)
		log.Info("game over", "level", state.Level, "score", state.Score, "best", best)
		ps.sceneChanger.ChangeScene(NewGameOverScene(ps.sceneChanger, state.Score, best))
	case components.TransitionExit:
		return ebiten.Termination
	}
	return nil
}

// renderBackground draws the static tile layers once per level.
func (ps *PlatformerScene) renderBackground() {
	entry, ok := components.Level.First(ps.ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(entry)
	if level.Background != nil || level.Current == nil {
		return
	}

	img, err := assets.RenderBackground(level.Current)
	if err != nil {
		log.Warn("could not render level", "map", level.Current.Path, "err", err)
		img = ebiten.NewImage(1, 1)
	}
	level.Background = img
}

// loadLevel reads the numbered map. Past the last shipped map the run
// continues on the first one with its level counter unchanged.
func loadLevel(n int) (*assets.Level, error) {
	path := assets.LevelPath(n)
	if !assets.LevelExists(assets.FS, n) {
		log.Warn("no map for level, reusing the first one", "level", n)
		path = assets.LevelPath(cfg.Level.FirstLevel)
	}

	level, err := assets.LoadLevel(assets.FS, path, cfg.Level.TileScale)
	if err != nil {
		return nil, fmt.Errorf("setup level %d: %w", n, err)
	}
	return level, nil
}
