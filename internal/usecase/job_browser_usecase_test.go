package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmatch/internal/cursor"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/user"
)

func threeJobs() []job.Job {
	return []job.Job{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}, {ID: 3, Title: "C"}}
}

func currentID(b *JobBrowser) int64 {
	j, _ := b.Current()
	return j.ID
}

func TestJobBrowser_RequiresPolicy(t *testing.T) {
	_, err := NewJobBrowser(newFakeBackend(), loggedIn(user.TypeJobSeeker), 0, nil)
	assert.Error(t, err)
}

func TestJobBrowser_SwipeModeExhausts(t *testing.T) {
	be := newFakeBackend()
	be.jobs = threeJobs()
	b, err := NewJobBrowser(be, loggedIn(user.TypeJobSeeker), cursor.Exhaust, nil)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, b.Mount(ctx))

	assert.Equal(t, int64(1), currentID(b))
	require.NoError(t, b.Handle(ctx, cursor.SwipeRight))
	assert.True(t, b.Applied(1))
	assert.Equal(t, 1, be.count("Apply"))
	assert.Equal(t, int64(2), currentID(b))

	_ = b.Handle(ctx, cursor.SwipeLeft)
	_ = b.Handle(ctx, cursor.SwipeLeft)
	assert.True(t, b.Exhausted())
	_, ok := b.Current()
	assert.False(t, ok, "no current job when exhausted")
	assert.Equal(t, 1, be.count("Apply"), "left swipes must not apply")
}

func TestJobBrowser_WrapMode(t *testing.T) {
	be := newFakeBackend()
	be.jobs = threeJobs()
	b, err := NewJobBrowser(be, loggedIn(user.TypeJobSeeker), cursor.Wrap, nil)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, b.Mount(ctx))

	_ = b.Handle(ctx, cursor.KeyLeft)
	assert.Equal(t, int64(3), currentID(b))
	_ = b.Handle(ctx, cursor.ButtonNext)
	assert.Equal(t, int64(1), currentID(b))
}

func TestJobBrowser_FailedApplyStaysOnJob(t *testing.T) {
	be := newFakeBackend()
	be.jobs = threeJobs()
	be.fail("Apply", errors.New("timeout"))
	b, err := NewJobBrowser(be, loggedIn(user.TypeJobSeeker), cursor.Exhaust, nil)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, b.Mount(ctx))

	require.Error(t, b.Handle(ctx, cursor.SwipeRight))
	assert.Equal(t, int64(1), currentID(b), "cursor stays on a failed apply")
	assert.Equal(t, "Failed to apply for this job", b.Error())
}

func TestJobBrowser_EmptyListUnderExhaust(t *testing.T) {
	be := newFakeBackend()
	b, err := NewJobBrowser(be, loggedIn(user.TypeJobSeeker), cursor.Exhaust, nil)
	require.NoError(t, err)
	require.NoError(t, b.Mount(context.Background()))
	assert.True(t, b.Exhausted())
}
