package config

// AnimationSet names the textures an entity can show. Paths are relative to
// the images directory of the asset bundle.
type AnimationSet struct {
	Idle string
	Jump string
	Fall string
	Walk []string

	// WalkThrottle is the number of ticks the walk frame is held before it
	// advances. Zero advances every tick.
	WalkThrottle int
	// Airborne sets use the jump and fall frames.
	Airborne bool
}

// AnimationSets maps an animation set key to its textures.
var AnimationSets = map[string]AnimationSet{
	"princess": {
		Idle: "images/princess/idle/idle1.png",
		Jump: "images/princess/jump/jump1.png",
		Fall: "images/princess/fall/fall1.png",
		Walk: []string{
			"images/princess/walk/walk1.png",
			"images/princess/walk/walk2.png",
			"images/princess/walk/walk3.png",
			"images/princess/walk/walk4.png",
			"images/princess/walk/walk5.png",
			"images/princess/walk/walk6.png",
			"images/princess/walk/walk7.png",
		},
		Airborne: true,
	},
	"bat": {
		Idle: "images/bat/bat_flying1.png",
		Walk: []string{
			"images/bat/bat_flying1.png",
			"images/bat/bat_flying2.png",
			"images/bat/bat_flying3.png",
			"images/bat/bat_flying4.png",
		},
		WalkThrottle: 3,
	},
}
