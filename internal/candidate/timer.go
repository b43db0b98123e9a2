package candidate

import "fmt"

// QuestionSeconds is the per-question time limit.
const QuestionSeconds = 120

// Countdown tracks the remaining time for one question. The interactive loop
// drives it from a ticker; Tick reports expiry exactly once, and the loop
// must stop the ticker before submitting so a manual submission cannot race
// a pending auto-submit.
type Countdown struct {
	remaining int
}

// NewCountdown starts a countdown at the given number of seconds.
func NewCountdown(seconds int) *Countdown {
	return &Countdown{remaining: seconds}
}

// Tick consumes one second. expired is true only on the tick that reaches
// zero; later ticks stay at zero without re-firing.
func (c *Countdown) Tick() (remaining int, expired bool) {
	if c.remaining <= 0 {
		return 0, false
	}
	c.remaining--
	return c.remaining, c.remaining == 0
}

// Remaining returns the seconds left.
func (c *Countdown) Remaining() int { return c.remaining }

// Display renders the remaining time as MM:SS.
func (c *Countdown) Display() string {
	return fmt.Sprintf("%02d:%02d", c.remaining/60, c.remaining%60)
}
