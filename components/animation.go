package components

import (
	"github.com/silentvalley/platformer/assets/animations"
	cfg "github.com/silentvalley/platformer/config"
	"github.com/yohamta/donburi"
)

// Facing selects the plain or mirrored texture of a pair.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Multiplier is the horizontal scale used to draw this facing.
func (f Facing) Multiplier() float64 {
	if f == FacingLeft {
		return cfg.DirectionLeft
	}
	return cfg.DirectionRight
}

type AnimationData struct {
	Set    string
	State  cfg.StateID
	Facing Facing
	Walk   *animations.Cycle
	// Scale multiplies the texture size when drawing.
	Scale float64
}

var Animation = donburi.NewComponentType[AnimationData]()
