package components

import (
	"github.com/silentvalley/platformer/assets"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Kind string
	// Patrol is nil for enemies that fly in a straight line.
	Patrol *assets.PatrolBounds
}

var Enemy = donburi.NewComponentType[EnemyData]()
