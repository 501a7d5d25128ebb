package factory

import (
	"math"

	"github.com/silentvalley/platformer/archetypes"
	"github.com/silentvalley/platformer/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace adds the collision space covering width x height world units.
func CreateSpace(ecs *ecs.ECS, width, height float64, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	w := int(math.Ceil(width/float64(cellSize))) * cellSize
	h := int(math.Ceil(height/float64(cellSize))) * cellSize
	components.Space.Set(space, resolv.NewSpace(w, h, cellSize, cellSize))
	return space
}

// addObject links obj to its entry and registers it with the space.
func addObject(ecs *ecs.ECS, entry *donburi.Entry, obj *resolv.Object) {
	obj.Data = entry // Link for O(1) lookup
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
