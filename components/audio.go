package components

import (
	cfg "github.com/silentvalley/platformer/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised by systems this frame (singleton).
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
