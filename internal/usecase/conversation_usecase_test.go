package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmatch/internal/domain/message"
	"jobmatch/internal/domain/user"
	"jobmatch/internal/state"
)

func TestConversation_StaleSelectionDiscarded(t *testing.T) {
	be := newFakeBackend()
	be.messages[1] = []message.Message{{ID: 1, Text: "from thread 1"}}
	be.messages[2] = []message.Message{{ID: 2, Text: "from thread 2"}}

	release := make(chan struct{})
	entered := make(chan struct{})
	be.beforeMessages = func(id int64) {
		if id == 1 {
			close(entered)
			<-release
		}
	}

	var life state.Lifecycle
	life.Mount()
	c := NewConversation(be, loggedIn(user.TypeCompany), &life, false, nil)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- c.Open(ctx, 1) }()
	<-entered

	require.NoError(t, c.Open(ctx, 2))
	close(release)
	require.NoError(t, <-done)

	msgs := c.Messages()
	require.Len(t, msgs, 1, "stale response committed")
	assert.Equal(t, "from thread 2", msgs[0].Text)
	id, _ := c.Selected()
	assert.Equal(t, int64(2), id)
}

func TestConversation_SendAppearsOnceAfterRefresh(t *testing.T) {
	be := newFakeBackend()
	be.messages[5] = []message.Message{{ID: 1, Text: "hello"}}

	var life state.Lifecycle
	life.Mount()
	c := NewConversation(be, loggedIn(user.TypeJobSeeker), &life, false, nil)
	ctx := context.Background()

	require.NoError(t, c.Open(ctx, 5))
	require.NoError(t, c.Send(ctx, "  are you hiring?  "))
	require.NoError(t, c.Refresh(ctx))

	n := 0
	for _, m := range c.Messages() {
		if m.Text == "are you hiring?" {
			n++
		}
	}
	assert.Equal(t, 1, n, "sent message appears exactly once")
	assert.Equal(t, 3, be.count("Messages"), "send refetches the thread")
}

func TestConversation_EmptyMessageRejected(t *testing.T) {
	be := newFakeBackend()
	var life state.Lifecycle
	life.Mount()
	c := NewConversation(be, loggedIn(user.TypeJobSeeker), &life, false, nil)
	_ = c.Open(context.Background(), 1)

	assert.ErrorIs(t, c.Send(context.Background(), "   "), ErrInvalidInput)
	assert.Zero(t, be.count("SendMessage"))
}

func TestConversation_SendFailureKeepsMessages(t *testing.T) {
	be := newFakeBackend()
	be.messages[1] = []message.Message{{ID: 1, Text: "hi"}}
	var life state.Lifecycle
	life.Mount()
	c := NewConversation(be, loggedIn(user.TypeJobSeeker), &life, false, nil)
	ctx := context.Background()
	_ = c.Open(ctx, 1)

	be.fail("SendMessage", errors.New("boom"))
	require.Error(t, c.Send(ctx, "again"))
	assert.Len(t, c.Messages(), 1)
	assert.Equal(t, "Failed to send message", c.Error())
}

func TestConversation_MarkReadAfterFetch(t *testing.T) {
	be := newFakeBackend()
	be.threads = []message.Thread{{ApplicationID: 4, UnreadCount: 2}}
	var life state.Lifecycle
	life.Mount()
	c := NewConversation(be, loggedIn(user.TypeJobSeeker), &life, true, nil)

	require.NoError(t, c.Open(context.Background(), 4))
	assert.Equal(t, []int64{4}, be.reads)
}
