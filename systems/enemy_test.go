package systems

import (
	"math"
	"testing"

	"github.com/silentvalley/platformer/assets"
	"github.com/silentvalley/platformer/components"
	"github.com/stretchr/testify/assert"
)

func TestReverseAtBounds(t *testing.T) {
	bounds := assets.PatrolBounds{Left: 100, Right: 300}

	tests := []struct {
		name        string
		left, right float64
		dx          float64
		want        float64
	}{
		{"inside keeps moving", 150, 182, 2, 2},
		{"right edge reached", 270, 300, 2, -2},
		{"past right edge moving back", 280, 312, -2, -2},
		{"left edge reached", 100, 132, -3, 3},
		{"past left edge moving away", 90, 122, 3, 3},
		{"stopped at edge", 268, 300, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			physics := &components.PhysicsData{SpeedX: tt.dx}
			reverseAtBounds(physics, tt.left, tt.right, bounds)
			assert.Equal(t, tt.want, physics.SpeedX)
		})
	}
}

func TestReverseAtOneSidedBounds(t *testing.T) {
	bounds := assets.PatrolBounds{Left: math.Inf(-1), Right: 300}

	physics := &components.PhysicsData{SpeedX: -2}
	reverseAtBounds(physics, -5000, -4968, bounds)
	assert.Equal(t, -2.0, physics.SpeedX)

	physics.SpeedX = 2
	reverseAtBounds(physics, 268, 300, bounds)
	assert.Equal(t, -2.0, physics.SpeedX)
}

func TestPatrolKeepsEnemyBetweenBounds(t *testing.T) {
	e := newTestWorld(t)
	// The bat is 32 wide and starts centered on x=1000.
	bat := createBat(e, 2, &assets.PatrolBounds{Left: 940, Right: 1060})
	obj := components.Object.Get(bat)

	for range 300 {
		MoveEnemies(e)
		UpdatePatrol(e)
		assert.GreaterOrEqual(t, obj.Left(), 940.0-2)
		assert.LessOrEqual(t, obj.Right(), 1060.0+2)
	}
}

func TestEnemyWithoutPatrolMovesInAStraightLine(t *testing.T) {
	e := newTestWorld(t)
	bat := createBat(e, -1, nil)
	obj := components.Object.Get(bat)
	startX, startY := obj.Position()

	for range 100 {
		MoveEnemies(e)
		UpdatePatrol(e)
	}

	x, y := obj.Position()
	assert.Equal(t, startX-100, x)
	assert.Equal(t, startY, y)
}
