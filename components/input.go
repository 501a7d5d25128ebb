package components

import (
	cfg "github.com/silentvalley/platformer/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	// JumpNeedsReset is set by a jump and cleared when up is released.
	JumpNeedsReset bool
}

// Changed reports whether any action went down or up this frame.
func (i *InputData) Changed() bool {
	return i.Current != i.Previous
}

var Input = donburi.NewComponentType[InputData]()
