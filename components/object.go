package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's collision box. X and Y are the bottom-left
// corner in y-up world space.
type ObjectData struct {
	*resolv.Object
}

// Position returns the center of the box.
func (o ObjectData) Position() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

// MoveTo places the center of the box and refreshes its space cells.
func (o ObjectData) MoveTo(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H/2
	o.Update()
}

func (o ObjectData) Left() float64   { return o.X }
func (o ObjectData) Right() float64  { return o.X + o.W }
func (o ObjectData) Bottom() float64 { return o.Y }
func (o ObjectData) Top() float64    { return o.Y + o.H }

var Object = donburi.NewComponentType[ObjectData]()
