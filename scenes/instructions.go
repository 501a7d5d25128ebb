package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/silentvalley/platformer/config"
	"github.com/silentvalley/platformer/systems"
	"github.com/silentvalley/platformer/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InstructionsScene is the title screen shown before the first level.
type InstructionsScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	screen       *ui.ScreenUI
	once         sync.Once
	quit         bool
	err          error
}

func NewInstructionsScene(sc SceneChanger) *InstructionsScene {
	return &InstructionsScene{sceneChanger: sc}
}

func (is *InstructionsScene) Update() error {
	is.once.Do(is.configure)
	if is.err != nil {
		return is.err
	}

	is.ecs.Update()
	is.screen.Update()

	if is.quit {
		return ebiten.Termination
	}
	return nil
}

func (is *InstructionsScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if is.ecs == nil {
		return
	}
	is.ecs.Draw(screen)
}

func (is *InstructionsScene) configure() {
	is.screen, is.err = ui.NewScreenUI(cfg.Menu.Title, []string{
		cfg.Menu.StartText,
		cfg.Menu.ExitText,
	}, backgroundImage(cfg.Menu.Background))
	if is.err != nil {
		return
	}

	is.ecs = ecs.NewECS(donburi.NewWorld())

	is.ecs.AddSystem(systems.UpdateAudio)
	is.ecs.AddSystem(systems.UpdateInput)
	is.ecs.AddSystem(systems.NewUpdateScreen(
		func() {
			is.sceneChanger.ChangeScene(NewPlatformerScene(is.sceneChanger, cfg.Level.FirstLevel))
		},
		func() { is.quit = true },
	))

	is.ecs.AddRenderer(cfg.Default, func(_ *ecs.ECS, screen *ebiten.Image) {
		is.screen.Draw(screen)
	})

	systems.PlayRandomMusic()
}
