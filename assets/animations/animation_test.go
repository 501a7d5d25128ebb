package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCycleWithoutThrottleAdvancesEveryTick(t *testing.T) {
	c := NewCycle(7, 0)

	var seen []int
	for i := 0; i < 8; i++ {
		assert.True(t, c.Advance())
		seen = append(seen, c.Frame())
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 0, 1}, seen)
}

func TestCycleThrottleHoldsFrame(t *testing.T) {
	c := NewCycle(4, 3)

	var changed []int
	for tick := 1; tick <= 16; tick++ {
		if c.Advance() {
			changed = append(changed, tick)
		}
	}

	assert.Equal(t, []int{4, 8, 12, 16}, changed)
	assert.Equal(t, 0, c.Frame(), "four frames wrap after sixteen ticks")
}

func TestCycleRestart(t *testing.T) {
	c := NewCycle(4, 3)
	for i := 0; i < 6; i++ {
		c.Advance()
	}
	c.Restart()
	assert.Equal(t, 0, c.Frame())
	assert.False(t, c.Advance())
}
