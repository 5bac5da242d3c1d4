package counter

// DefaultStart is the value a counter holds before its first call
const DefaultStart = 16

// Counter is an integer cell that keeps its value between calls.
// It is decremented on every call with no lower bound.
type Counter struct {
	value int
	calls int
}

// New creates a counter that will return start on its first call
func New(start int) *Counter {
	return &Counter{value: start}
}

// Next returns the current value and then decrements it
func (c *Counter) Next() int {
	v := c.value
	c.value--
	c.calls++
	return v
}

// Value returns what the next call would return, without consuming it
func (c *Counter) Value() int {
	return c.value
}

// Calls returns how many times Next has been invoked
func (c *Counter) Calls() int {
	return c.calls
}
