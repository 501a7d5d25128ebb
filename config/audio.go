package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundCoin
	SoundJump
	SoundGameOver
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int     `yaml:"sampleRate"`
	DefaultMusicVol float64 `yaml:"defaultMusicVol"`
	DefaultSFXVol   float64 `yaml:"defaultSfxVol"`
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	MusicTracks       []string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.5,
		DefaultSFXVol:   1.0,
	}

	Sound = SoundConfig{
		MusicTracks: []string{
			"audio/music/valley.wav",
			"audio/music/caves.wav",
			"audio/music/night.wav",
		},
		SFXPaths: map[SoundID]string{
			SoundCoin:     "audio/sfx/coin.wav",
			SoundJump:     "audio/sfx/jump.wav",
			SoundGameOver: "audio/sfx/gameover.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundGameOver: 1.2,
		},
	}
}
