package state

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycle_UnmountRunsHooksOnce(t *testing.T) {
	var l Lifecycle
	var order []int

	l.Mount()
	l.OnUnmount(func() { order = append(order, 1) })
	l.OnUnmount(func() { order = append(order, 2) })

	l.Unmount()
	l.Unmount()

	assert.Equal(t, []int{2, 1}, order)
	assert.False(t, l.Mounted())
}

func TestLifecycle_OnUnmountWhenNotMounted(t *testing.T) {
	var l Lifecycle
	ran := false
	l.OnUnmount(func() { ran = true })
	assert.True(t, ran)
}

func TestLifecycle_AliveAt(t *testing.T) {
	var l Lifecycle
	first := l.Mount()
	assert.True(t, l.AliveAt(first))

	l.Unmount()
	assert.False(t, l.AliveAt(first))

	second := l.Mount()
	assert.False(t, l.AliveAt(first))
	assert.True(t, l.AliveAt(second))
}

func TestResource_RefreshCommitsValue(t *testing.T) {
	var l Lifecycle
	l.Mount()
	r := NewResource[[]string](&l)

	committed, err := r.Refresh(context.Background(), func(context.Context) ([]string, error) {
		assert.True(t, r.Loading())
		return []string{"a"}, nil
	})
	require.NoError(t, err)
	assert.True(t, committed)
	assert.False(t, r.Loading())

	v, ok := r.Value()
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, v)
}

func TestResource_FailureKeepsStaleValue(t *testing.T) {
	var l Lifecycle
	l.Mount()
	r := NewResource[int](&l)
	r.Set(7)

	boom := errors.New("boom")
	committed, err := r.Refresh(context.Background(), func(context.Context) (int, error) { return 0, boom })
	assert.True(t, committed)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, r.Err(), boom)

	v, ok := r.Value()
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	_, err = r.Refresh(context.Background(), func(context.Context) (int, error) { return 8, nil })
	require.NoError(t, err)
	assert.NoError(t, r.Err())
}

func TestResource_DiscardsAfterUnmount(t *testing.T) {
	var l Lifecycle
	l.Mount()
	r := NewResource[int](&l)

	committed, _ := r.Refresh(context.Background(), func(context.Context) (int, error) {
		l.Unmount()
		return 1, nil
	})
	assert.False(t, committed)
	_, ok := r.Value()
	assert.False(t, ok)
}

func TestResource_DiscardsAfterRemount(t *testing.T) {
	var l Lifecycle
	l.Mount()
	r := NewResource[int](&l)

	committed, _ := r.Refresh(context.Background(), func(context.Context) (int, error) {
		l.Unmount()
		l.Mount()
		return 1, nil
	})
	assert.False(t, committed)
}

func TestResource_LastIssuedWins(t *testing.T) {
	var l Lifecycle
	l.Mount()
	r := NewResource[string](&l)

	release := make(chan struct{})
	done := make(chan bool)
	go func() {
		ok, _ := r.Refresh(context.Background(), func(context.Context) (string, error) {
			<-release
			return "old", nil
		})
		done <- ok
	}()

	// wait until the first refresh is in flight
	require.Eventually(t, r.Loading, time.Second, time.Millisecond)

	ok, err := r.Refresh(context.Background(), func(context.Context) (string, error) { return "new", nil })
	require.NoError(t, err)
	assert.True(t, ok)

	close(release)
	assert.False(t, <-done)

	v, _ := r.Value()
	assert.Equal(t, "new", v)
}

func TestResource_GuardDiscards(t *testing.T) {
	r := NewResource[int](nil)
	committed, _ := r.Refresh(context.Background(), func(context.Context) (int, error) { return 1, nil }, func() bool { return false })
	assert.False(t, committed)
}

func TestResource_UpdateAndReset(t *testing.T) {
	r := NewResource[[]int](nil)
	assert.False(t, r.Update(func(v []int) []int { return append(v, 1) }))

	r.Set([]int{1})
	assert.True(t, r.Update(func(v []int) []int { return append(v, 2) }))
	v, _ := r.Value()
	assert.Equal(t, []int{1, 2}, v)

	r.Reset()
	_, ok := r.Value()
	assert.False(t, ok)
}

func TestSelection_TicketInvalidatedBySwitch(t *testing.T) {
	var s Selection[int64]
	_, ok := s.Ticket()
	assert.False(t, ok)

	a := s.Select(1)
	assert.True(t, s.Valid(a))

	b := s.Select(2)
	assert.False(t, s.Valid(a))
	assert.True(t, s.Valid(b))

	// reselecting the same key still supersedes older requests
	c := s.Select(2)
	assert.False(t, s.Valid(b))
	assert.True(t, s.Valid(c))

	cur, ok := s.Ticket()
	assert.True(t, ok)
	assert.True(t, s.Valid(cur))

	s.Clear()
	assert.False(t, s.Valid(cur))
	_, ok = s.Current()
	assert.False(t, ok)
}
