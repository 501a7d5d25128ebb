package components

import "github.com/yohamta/donburi"

// Transition is a view change requested by gameplay systems. The scene
// driver acts on it after the frame's systems have run.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionGameplay
	TransitionGameOver
	TransitionNextLevel
	TransitionExit
)

func (t Transition) String() string {
	switch t {
	case TransitionNone:
		return "none"
	case TransitionGameplay:
		return "gameplay"
	case TransitionGameOver:
		return "game over"
	case TransitionNextLevel:
		return "next level"
	case TransitionExit:
		return "exit"
	}
	return "unknown"
}

// GameStateData is the run state carried between levels (singleton).
type GameStateData struct {
	Score      int
	Level      int
	ResetScore bool
	EndOfMap   float64
	BestScore  int
	Pending    Transition
}

// NewGameState starts a run at the given level.
func NewGameState(level int, endOfMap float64) GameStateData {
	return GameStateData{
		Level:      level,
		ResetScore: true,
		EndOfMap:   endOfMap,
	}
}

// BeginLevel runs at every level setup. The score is zeroed only when the
// previous transition asked for it.
func (g *GameStateData) BeginLevel() {
	if g.ResetScore {
		g.Score = 0
	}
	g.ResetScore = true
	g.Pending = TransitionNone
}

// Request records a transition unless one is already pending this frame.
func (g *GameStateData) Request(t Transition) bool {
	if g.Pending != TransitionNone {
		return false
	}
	g.Pending = t
	return true
}

var GameState = donburi.NewComponentType[GameStateData]()
