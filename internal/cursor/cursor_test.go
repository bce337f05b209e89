package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresPolicy(t *testing.T) {
	_, err := New(3, 0)
	assert.Error(t, err)
}

func TestWrap_NextThenPreviousIsIdentity(t *testing.T) {
	for length := 1; length <= 6; length++ {
		for start := 0; start < length; start++ {
			c, err := New(length, Wrap)
			require.NoError(t, err)
			for i := 0; i < start; i++ {
				c.Next()
			}
			require.Equal(t, start, c.Index())

			c.Next()
			c.Previous()
			assert.Equal(t, start, c.Index(), "length=%d start=%d", length, start)

			c.Previous()
			c.Next()
			assert.Equal(t, start, c.Index(), "length=%d start=%d", length, start)
		}
	}
}

func TestWrap_LengthNextsReturnToStart(t *testing.T) {
	for length := 1; length <= 6; length++ {
		for start := 0; start < length; start++ {
			c, _ := New(length, Wrap)
			for i := 0; i < start; i++ {
				c.Next()
			}
			for i := 0; i < length; i++ {
				c.Next()
			}
			assert.Equal(t, start, c.Index(), "length=%d start=%d", length, start)
		}
	}
}

func TestWrap_PreviousFromFirstGoesToLast(t *testing.T) {
	c, _ := New(4, Wrap)
	assert.Equal(t, 3, c.Previous())
	assert.False(t, c.Exhausted())
}

func TestExhaust_StopsAtEnd(t *testing.T) {
	c, _ := New(3, Exhaust)
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 1, c.Next())
	assert.Equal(t, 2, c.Next())
	assert.False(t, c.Exhausted())

	assert.Equal(t, -1, c.Next())
	assert.True(t, c.Exhausted())
	assert.Equal(t, -1, c.Index())
	assert.Equal(t, -1, c.Next())

	assert.Equal(t, 2, c.Previous())
	assert.False(t, c.Exhausted())
	assert.Equal(t, 1, c.Previous())
	assert.Equal(t, 0, c.Previous())
	assert.Equal(t, 0, c.Previous())
}

func TestExhaust_EmptyListIsExhausted(t *testing.T) {
	c, _ := New(0, Exhaust)
	assert.True(t, c.Exhausted())
	assert.Equal(t, -1, c.Index())

	c.Reset(2)
	assert.False(t, c.Exhausted())
	assert.Equal(t, 0, c.Index())
}

func TestWrap_EmptyList(t *testing.T) {
	c, _ := New(0, Wrap)
	assert.Equal(t, -1, c.Next())
	assert.Equal(t, -1, c.Previous())
	assert.False(t, c.Exhausted())
}

func TestApply_AllInputsShareOneIndex(t *testing.T) {
	c, _ := New(5, Wrap)
	inputs := []Input{KeyRight, ButtonNext, SwipeRight, SwipeLeft, KeyLeft, ButtonPrevious}
	want := []int{1, 2, 3, 4, 3, 2}
	for i, in := range inputs {
		assert.Equal(t, want[i], c.Apply(in))
	}
	assert.Equal(t, 2, c.Index())
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("Wrap")
	require.NoError(t, err)
	assert.Equal(t, Wrap, p)

	p, err = ParsePolicy("swipe")
	require.NoError(t, err)
	assert.Equal(t, Exhaust, p)

	_, err = ParsePolicy("")
	assert.Error(t, err)
}
