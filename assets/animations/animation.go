package animations

// Cycle steps through a looping run of frames. A throttle holds each frame
// for extra ticks: with Throttle 3 the frame changes on every 4th Advance.
type Cycle struct {
	Frames   int
	Throttle int
	counter  int
	frame    int
}

// Advance moves the cycle forward by one tick and reports whether the
// visible frame changed.
func (c *Cycle) Advance() bool {
	if c.Throttle > 0 && c.counter != c.Throttle {
		c.counter++
		return false
	}
	c.counter = 0
	c.frame++
	if c.frame >= c.Frames {
		c.frame = 0
	}
	return true
}

func (c *Cycle) Frame() int {
	return c.frame
}

func (c *Cycle) Restart() {
	c.frame = 0
	c.counter = 0
}

func NewCycle(frames, throttle int) *Cycle {
	return &Cycle{
		Frames:   frames,
		Throttle: throttle,
	}
}
