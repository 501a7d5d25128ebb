package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // same face API as the menus
	"github.com/silentvalley/platformer/components"
	cfg "github.com/silentvalley/platformer/config"
	"github.com/silentvalley/platformer/fonts"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the score in the bottom-left corner of the screen.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.GameState.First(ecs.World)
	if !ok {
		return
	}
	state := components.GameState.Get(entry)

	height := screen.Bounds().Dy()
	label := fmt.Sprintf("Score: %d", state.Score)
	text.Draw(screen, label, fonts.HUD.Get(),
		int(cfg.HUD.MarginX), height-int(cfg.HUD.MarginY), cfg.HUD.ScoreColor)
}
