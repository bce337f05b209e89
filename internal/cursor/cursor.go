package cursor

import (
	"fmt"
	"strings"
	"sync"
)

// Policy decides what happens past the end of the list. There is no default:
// every browser picks one.
type Policy int

const (
	// Wrap cycles: next from the last item returns to the first and previous
	// from the first goes to the last.
	Wrap Policy = iota + 1
	// Exhaust moves forward only until the list runs out, then reports
	// Exhausted until Reset.
	Exhaust
)

func (p Policy) String() string {
	switch p {
	case Wrap:
		return "wrap"
	case Exhaust:
		return "exhaust"
	default:
		return "unknown"
	}
}

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrap":
		return Wrap, nil
	case "exhaust", "swipe":
		return Exhaust, nil
	default:
		return 0, fmt.Errorf("unknown browse policy %q", s)
	}
}

type Input int

const (
	KeyRight Input = iota + 1
	KeyLeft
	ButtonNext
	ButtonPrevious
	SwipeLeft
	SwipeRight
)

// Cursor is an index into a fetched list of known length. All input sources
// go through Apply so the index has a single owner.
type Cursor struct {
	mu        sync.Mutex
	policy    Policy
	length    int
	index     int
	exhausted bool
}

func New(length int, policy Policy) (*Cursor, error) {
	if policy != Wrap && policy != Exhaust {
		return nil, fmt.Errorf("cursor: invalid policy %d", policy)
	}
	c := &Cursor{policy: policy}
	c.reset(length)
	return c, nil
}

func (c *Cursor) Policy() Policy {
	return c.policy
}

// Reset points the cursor at the first item of a list of the given length.
func (c *Cursor) Reset(length int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset(length)
}

func (c *Cursor) reset(length int) {
	if length < 0 {
		length = 0
	}
	c.length = length
	c.index = 0
	c.exhausted = length == 0 && c.policy == Exhaust
}

func (c *Cursor) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.length
}

// Index returns the current position, or -1 when the list is empty or
// exhausted.
func (c *Cursor) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.length == 0 || c.exhausted {
		return -1
	}
	return c.index
}

func (c *Cursor) Exhausted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.exhausted
}

func (c *Cursor) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.length == 0 {
		return -1
	}
	switch c.policy {
	case Wrap:
		c.index = (c.index + 1) % c.length
	case Exhaust:
		if c.exhausted {
			return -1
		}
		if c.index+1 >= c.length {
			c.exhausted = true
			return -1
		}
		c.index++
	}
	return c.index
}

func (c *Cursor) Previous() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.length == 0 {
		return -1
	}
	switch c.policy {
	case Wrap:
		c.index = (c.index - 1 + c.length) % c.length
	case Exhaust:
		// stepping back from the end shows the last item again
		if c.exhausted {
			c.exhausted = false
			return c.index
		}
		if c.index > 0 {
			c.index--
		}
	}
	return c.index
}

// Apply maps an input event onto Next or Previous. Swiping left dismisses
// the current item; swiping right accepts it; both move forward.
func (c *Cursor) Apply(in Input) int {
	switch in {
	case KeyRight, ButtonNext, SwipeLeft, SwipeRight:
		return c.Next()
	case KeyLeft, ButtonPrevious:
		return c.Previous()
	default:
		return c.Index()
	}
}
