package scenes

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/silentvalley/platformer/assets"
)

// Scene is one view of the game. Update returns ebiten.Termination to quit
// or any other error to abort the run.
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene Scene)
}

// backgroundImage loads a screen background, nil when the file is missing.
func backgroundImage(path string) *ebiten.Image {
	img, err := assets.GetImage(path)
	if err != nil {
		log.Warn("missing background", "path", path, "err", err)
		return nil
	}
	return img
}
