package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmatch/internal/domain/user"
	"jobmatch/internal/infrastructure/sessionstore"
	"jobmatch/internal/session"
	"jobmatch/internal/usecase"
)

func TestNextLine_ReadsInputThenQuitsAtEOF(t *testing.T) {
	ctx := context.Background()
	lines := readLines(ctx, strings.NewReader("a\nn\n"))

	for _, want := range []string{"a", "n", "q"} {
		got, err := nextLine(ctx, lines, nil)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestNextLine_LogoutEndsPrompt(t *testing.T) {
	ctx := context.Background()
	sess, err := session.New(ctx, sessionstore.NewMemory(), nil)
	require.NoError(t, err)
	require.NoError(t, sess.SetSession(ctx, "tok", user.TypeJobSeeker))

	events, unsubscribe := sess.Subscribe()
	defer unsubscribe()

	// no input ever arrives
	lines := make(chan string)

	done := make(chan error, 1)
	go func() {
		_, err := nextLine(ctx, lines, events)
		done <- err
	}()

	require.NoError(t, sess.Clear(ctx))
	select {
	case err := <-done:
		assert.ErrorIs(t, err, usecase.ErrLoginRequired)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "prompt still waiting after logout")
	}
}

func TestNextLine_IgnoresLoginEvents(t *testing.T) {
	ctx := context.Background()
	events := make(chan session.Event, 1)
	events <- session.Event{Kind: session.EventLogin}
	lines := make(chan string, 1)
	lines <- "s"

	got, err := nextLine(ctx, lines, events)
	require.NoError(t, err)
	assert.Equal(t, "s", got)
}
