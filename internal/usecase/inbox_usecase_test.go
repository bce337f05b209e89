package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmatch/internal/domain/message"
	"jobmatch/internal/domain/user"
)

const (
	tick    = 10 * time.Millisecond
	settled = 2 * time.Second
)

func TestInbox_PollsThreadsAndUnread(t *testing.T) {
	be := newFakeBackend()
	be.threads = []message.Thread{{ApplicationID: 1, UnreadCount: 1}}
	be.unread = 1
	in := NewInbox(be, loggedIn(user.TypeJobSeeker), tick, nil)

	require.NoError(t, in.Mount(context.Background(), 0))
	defer in.Unmount()

	require.Eventually(t, func() bool { return len(in.Threads()) == 1 }, settled, time.Millisecond)
	require.Eventually(t, func() bool { return in.UnreadCount() == 1 }, settled, time.Millisecond)

	be.mu.Lock()
	be.threads = append(be.threads, message.Thread{ApplicationID: 2})
	be.unread = 3
	be.mu.Unlock()

	assert.Eventually(t, func() bool { return len(in.Threads()) == 2 }, settled, time.Millisecond)
	assert.Eventually(t, func() bool { return in.UnreadCount() == 3 }, settled, time.Millisecond)
}

func TestInbox_AutoSelectsThread(t *testing.T) {
	be := newFakeBackend()
	be.threads = []message.Thread{{ApplicationID: 7, OtherUser: message.Participant{Email: "acme@example.com"}}}
	be.messages[7] = []message.Message{{ID: 1, Text: "welcome"}}
	in := NewInbox(be, loggedIn(user.TypeJobSeeker), tick, nil)

	require.NoError(t, in.Mount(context.Background(), 7))
	defer in.Unmount()

	require.Eventually(t, func() bool { return len(in.Messages()) == 1 }, settled, time.Millisecond)
	th, ok := in.Selected()
	require.True(t, ok)
	assert.Equal(t, int64(7), th.ApplicationID)
	assert.Equal(t, "acme@example.com", th.DisplayName())
	assert.Eventually(t, func() bool { return be.count("MarkRead") > 0 }, settled, time.Millisecond)
}

func TestInbox_SwitchThreadRestartsMessagePolling(t *testing.T) {
	be := newFakeBackend()
	be.threads = []message.Thread{{ApplicationID: 1}, {ApplicationID: 2}}
	be.messages[1] = []message.Message{{ID: 1, Text: "one"}}
	be.messages[2] = []message.Message{{ID: 2, Text: "two"}}
	in := NewInbox(be, loggedIn(user.TypeCompany), tick, nil)

	require.NoError(t, in.Mount(context.Background(), 0))
	defer in.Unmount()

	showing := func(text string) func() bool {
		return func() bool { m := in.Messages(); return len(m) == 1 && m[0].Text == text }
	}
	in.Select(1)
	require.Eventually(t, showing("one"), settled, time.Millisecond)
	in.Select(2)
	require.Eventually(t, showing("two"), settled, time.Millisecond)

	// the new loop keeps polling thread 2 only
	be.mu.Lock()
	be.messages[2] = append(be.messages[2], message.Message{ID: 3, Text: "later"})
	be.mu.Unlock()
	assert.Eventually(t, func() bool { return len(in.Messages()) == 2 }, settled, time.Millisecond)
}

func TestInbox_UnmountStopsPolling(t *testing.T) {
	be := newFakeBackend()
	in := NewInbox(be, loggedIn(user.TypeJobSeeker), tick, nil)

	require.NoError(t, in.Mount(context.Background(), 0))
	require.Eventually(t, func() bool { return be.count("Threads") >= 2 }, settled, time.Millisecond)
	in.Unmount()

	n := be.count("Threads")
	time.Sleep(5 * tick)
	assert.Equal(t, n, be.count("Threads"), "polling continued after unmount")
}

func TestInbox_SessionLostOnUnauthorized(t *testing.T) {
	be := newFakeBackend()
	be.fail("Threads", unauthorized)
	sess := loggedIn(user.TypeJobSeeker)
	in := NewInbox(be, sess, tick, nil)

	require.NoError(t, in.Mount(context.Background(), 0))
	defer in.Unmount()

	select {
	case <-in.SessionLost():
	case <-time.After(settled):
		require.FailNow(t, "expected session lost")
	}
	assert.False(t, sess.IsAuthenticated())
}

func TestInbox_MountRequiresSession(t *testing.T) {
	be := newFakeBackend()
	in := NewInbox(be, &fakeSession{}, tick, nil)

	assert.ErrorIs(t, in.Mount(context.Background(), 0), ErrLoginRequired)
	assert.Zero(t, be.count("Threads"))
}
