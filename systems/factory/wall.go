package factory

import (
	"github.com/silentvalley/platformer/archetypes"
	"github.com/silentvalley/platformer/assets"
	"github.com/silentvalley/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, r assets.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	addObject(ecs, wall, resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid))
	return wall
}

// CreateHazard adds a death tile. Touching it ends the player's life.
func CreateHazard(ecs *ecs.ECS, r assets.Rect) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)
	addObject(ecs, hazard, resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvHazard))
	return hazard
}
