package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/silentvalley/platformer/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Current *assets.Level
	Number  int
	// Background is the pre-rendered static tile layers. Nil until the scene
	// renders it.
	Background *ebiten.Image
}

var Level = donburi.NewComponentType[LevelData]()
