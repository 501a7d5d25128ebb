package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	Gravity  float64
	OnGround *resolv.Object
	// CanJump mirrors the jump test each frame. Display only.
	CanJump  bool
	Climbing bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
