package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MovingPlatformData drives a platform back and forth between its bounds.
// DX and DY hold the last frame's displacement so riders can be carried.
type MovingPlatformData struct {
	Horizontal *gween.Sequence
	Vertical   *gween.Sequence
	SpeedX     float64
	SpeedY     float64
	DX, DY     float64
}

var MovingPlatform = donburi.NewComponentType[MovingPlatformData]()
