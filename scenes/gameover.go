package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/silentvalley/platformer/config"
	"github.com/silentvalley/platformer/systems"
	"github.com/silentvalley/platformer/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	screen       *ui.ScreenUI
	once         sync.Once
	score, best  int
	quit         bool
	err          error
}

// NewGameOverScene shows the final score of the run next to the best one.
func NewGameOverScene(sc SceneChanger, score, best int) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, score: score, best: best}
}

func (gs *GameOverScene) Update() error {
	gs.once.Do(gs.configure)
	if gs.err != nil {
		return gs.err
	}

	gs.ecs.Update()
	gs.screen.Update()

	if gs.quit {
		return ebiten.Termination
	}
	return nil
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.screen, gs.err = ui.NewScreenUI(cfg.GameOver.Title, []string{
		scoreLine(gs.score, gs.best),
		cfg.GameOver.RetryText,
		cfg.GameOver.ExitText,
	}, backgroundImage(cfg.GameOver.Background))
	if gs.err != nil {
		return
	}

	gs.ecs = ecs.NewECS(donburi.NewWorld())

	gs.ecs.AddSystem(systems.UpdateAudio)
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateScreen(
		func() {
			gs.sceneChanger.ChangeScene(NewPlatformerScene(gs.sceneChanger, cfg.Level.FirstLevel))
		},
		func() { gs.quit = true },
	))

	gs.ecs.AddRenderer(cfg.Default, func(_ *ecs.ECS, screen *ebiten.Image) {
		gs.screen.Draw(screen)
	})
}

func scoreLine(score, best int) string {
	return fmt.Sprintf("SCORE %d   BEST %d", score, best)
}
