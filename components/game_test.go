package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBeginLevelResetsScoreOnlyWhenFlagged(t *testing.T) {
	g := NewGameState(1, 5040)
	g.Score = 7
	g.BeginLevel()
	assert.Equal(t, 0, g.Score)
	assert.True(t, g.ResetScore)

	g.Score = 4
	g.ResetScore = false
	g.BeginLevel()
	assert.Equal(t, 4, g.Score, "level advance keeps the score")
	assert.True(t, g.ResetScore, "flag re-arms after setup")
}

func TestRequestKeepsFirstTransition(t *testing.T) {
	g := NewGameState(1, 5040)
	assert.True(t, g.Request(TransitionGameOver))
	assert.False(t, g.Request(TransitionNextLevel))
	assert.Equal(t, TransitionGameOver, g.Pending)

	g.BeginLevel()
	assert.Equal(t, TransitionNone, g.Pending)
}
