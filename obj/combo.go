package obj

import "time"

// ComboCursor alternates forward attacks between step 1 and step 2. A pause
// longer than the reset window starts over at step 1.
type ComboCursor struct {
	next int
	last time.Duration
	used bool
}

// Peek returns the step Next would produce at now without advancing.
func (c *ComboCursor) Peek(now, reset time.Duration) int {
	if c == nil || c.next == 0 || (c.used && now-c.last > reset) {
		return 1
	}
	return c.next
}

// Next returns the step for an attack at now and flips the cursor.
func (c *ComboCursor) Next(now, reset time.Duration) int {
	if c == nil {
		return 1
	}
	step := c.Peek(now, reset)
	c.last = now
	c.used = true
	c.next = 3 - step
	return step
}

// Reset starts the next attack over at step 1.
func (c *ComboCursor) Reset() {
	if c == nil {
		return
	}
	c.next = 1
	c.used = false
}
