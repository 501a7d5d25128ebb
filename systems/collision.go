package systems

import (
	"math"

	"github.com/silentvalley/platformer/components"
	"github.com/silentvalley/platformer/tags"
	"github.com/solarlune/resolv"
)

// overlapsAt reports whether a, shifted by (dx, dy), intersects b. Touching
// edges do not count. Check reports every object sharing a grid cell, so
// this is the narrow phase.
func overlapsAt(a *resolv.Object, dx, dy float64, b *resolv.Object) bool {
	return a.X+dx < b.X+b.W &&
		a.X+a.W+dx > b.X &&
		a.Y+dy < b.Y+b.H &&
		a.Y+a.H+dy > b.Y
}

// Overlapping returns the objects with any of the given tags whose boxes
// intersect obj.
func Overlapping(obj *resolv.Object, tags ...string) []*resolv.Object {
	check := obj.Check(0, 0, tags...)
	if check == nil {
		return nil
	}

	var hits []*resolv.Object
	for _, o := range check.Objects {
		if overlapsAt(obj, 0, 0, o) {
			hits = append(hits, o)
		}
	}
	return hits
}

// CanJump reports whether there is ground within tolerance below obj.
func CanJump(obj *resolv.Object, tolerance float64) bool {
	check := obj.Check(0, -tolerance, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		return false
	}
	for _, o := range check.Objects {
		if overlapsAt(obj, 0, -tolerance, o) {
			return true
		}
	}
	return false
}

// resolveHorizontalCollision moves the object by its horizontal speed and
// stops it flush against walls and moving platforms.
func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	if check := object.Check(dx, 0, tags.ResolvSolid, tags.ResolvPlatform); check != nil {
		for _, o := range check.ObjectsByTags(tags.ResolvSolid, tags.ResolvPlatform) {
			// Already inside: the vertical pass pushes it out.
			if overlapsAt(object, 0, 0, o) || !overlapsAt(object, dx, 0, o) {
				continue
			}
			contact := check.ContactWithObject(o).X()
			if dx > 0 {
				dx = math.Min(dx, contact)
			} else {
				dx = math.Max(dx, contact)
			}
		}
	}

	object.X += dx
}

// resolveVerticalCollision moves the object by its vertical speed. Landing on
// a wall or platform records it as ground and zeroes the speed.
func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = nil
	dy := physics.SpeedY

	check := object.Check(0, dy, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		object.Y += dy
		return
	}

	blocked := false
	for _, o := range check.ObjectsByTags(tags.ResolvSolid, tags.ResolvPlatform) {
		if !overlapsAt(object, 0, dy, o) {
			continue
		}
		contact := check.ContactWithObject(o).Y()
		if dy <= 0 {
			if contact >= dy {
				dy = contact
				physics.OnGround = o
				blocked = true
			}
		} else {
			dy = math.Min(dy, contact)
			blocked = true
		}
	}

	if blocked {
		physics.SpeedY = 0
	}
	object.Y += dy
}
