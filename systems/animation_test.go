package systems

import (
	"testing"

	"github.com/silentvalley/platformer/assets/animations"
	"github.com/silentvalley/platformer/components"
	cfg "github.com/silentvalley/platformer/config"
	"github.com/stretchr/testify/assert"
)

func TestFacingFollowsHorizontalSpeed(t *testing.T) {
	tests := []struct {
		name  string
		start components.Facing
		dx    float64
		want  components.Facing
	}{
		{"moving left", components.FacingRight, -8, components.FacingLeft},
		{"moving right", components.FacingLeft, 8, components.FacingRight},
		{"standing keeps left", components.FacingLeft, 0, components.FacingLeft},
		{"standing keeps right", components.FacingRight, 0, components.FacingRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anim := &components.AnimationData{Facing: tt.start}
			updateFacing(anim, tt.dx)
			assert.Equal(t, tt.want, anim.Facing)
		})
	}
}

func TestCharacterState(t *testing.T) {
	tests := []struct {
		name    string
		physics components.PhysicsData
		want    cfg.StateID
	}{
		{"rising", components.PhysicsData{SpeedX: 8, SpeedY: 5}, cfg.Jump},
		{"falling", components.PhysicsData{SpeedX: -8, SpeedY: -3}, cfg.Fall},
		{"standing", components.PhysicsData{}, cfg.Idle},
		{"walking", components.PhysicsData{SpeedX: 8}, cfg.Walk},
		{"climbing up", components.PhysicsData{SpeedY: 4, Climbing: true}, cfg.Idle},
		{"climbing while walking", components.PhysicsData{SpeedX: 8, SpeedY: -4, Climbing: true}, cfg.Walk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anim := &components.AnimationData{Set: "princess", Walk: animations.NewCycle(7, 0)}
			animateCharacter(anim, &tt.physics)
			assert.Equal(t, tt.want, anim.State)
		})
	}
}

func TestPlayerWalkCycleWraps(t *testing.T) {
	anim := &components.AnimationData{Set: "princess", Walk: animations.NewCycle(7, 0)}
	physics := &components.PhysicsData{SpeedX: 8}

	var frames []int
	for range 8 {
		animateCharacter(anim, physics)
		frames = append(frames, anim.Walk.Frame())
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 0, 1}, frames)
	assert.Equal(t, "images/princess/walk/walk2.png", TexturePath(anim))
}

func TestEnemyWalkAdvancesEveryFourthTick(t *testing.T) {
	bat := cfg.AnimationSets["bat"]
	anim := &components.AnimationData{Set: "bat", Walk: animations.NewCycle(len(bat.Walk), bat.WalkThrottle)}
	physics := &components.PhysicsData{SpeedX: -2}

	changes := map[int]int{}
	last := anim.Walk.Frame()
	for tick := 1; tick <= 16; tick++ {
		animateFlyer(anim, physics)
		if f := anim.Walk.Frame(); f != last {
			changes[tick] = f
			last = f
		}
	}

	assert.Equal(t, map[int]int{4: 1, 8: 2, 12: 3, 16: 0}, changes)
	assert.Equal(t, components.FacingLeft, anim.Facing)
	assert.Equal(t, cfg.Walk, anim.State)
}

func TestFlyerIdlesWhenStopped(t *testing.T) {
	anim := &components.AnimationData{Set: "bat", Facing: components.FacingLeft, Walk: animations.NewCycle(4, 3)}
	animateFlyer(anim, &components.PhysicsData{SpeedY: -5})

	assert.Equal(t, cfg.Idle, anim.State)
	assert.Equal(t, components.FacingLeft, anim.Facing)
	assert.Equal(t, 0, anim.Walk.Frame())
}

func TestTexturePathFallsBackToIdle(t *testing.T) {
	anim := &components.AnimationData{Set: "bat", State: cfg.Fall}
	assert.Equal(t, cfg.AnimationSets["bat"].Idle, TexturePath(anim))
	assert.Equal(t, cfg.AnimationSets["bat"].Walk[0], TexturePath(anim))

	anim = &components.AnimationData{Set: "princess", State: cfg.Jump}
	assert.Equal(t, "images/princess/jump/jump1.png", TexturePath(anim))
}

func TestUpdateAnimationsCoversPlayerAndEnemies(t *testing.T) {
	e := newTestWorld(t)
	player := createPlayer(e)
	enemy := createBat(e, 2, nil)
	components.Physics.Get(player).SpeedY = 3

	UpdateAnimations(e)

	assert.Equal(t, cfg.Jump, components.Animation.Get(player).State)
	assert.Equal(t, cfg.Walk, components.Animation.Get(enemy).State)
}
