package marketplace

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmatch/internal/repository"
)

type fixture struct {
	svc     *Service
	store   *repository.SQLiteStore
	seeker  int64
	owner   int64
	outside int64
	company repository.CompanyRecord
	job     JobView
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	store, err := repository.OpenSQLiteStore(ctx, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	f := fixture{svc: NewService(store), store: store}

	for i, dst := range []*int64{&f.seeker, &f.owner, &f.outside} {
		u, err := store.CreateUser(ctx, repository.UserRecord{
			Email: fmt.Sprintf("user%d@example.com", i),
			Name:  "User",
		})
		require.NoError(t, err)
		*dst = u.ID
	}

	f.company, err = f.svc.CreateCompany(ctx, f.owner, CompanyInput{CompanyName: "Acme", Email: "jobs@acme.io"})
	require.NoError(t, err)

	f.job, err = f.svc.PostJob(ctx, f.owner, PostingInput{Title: "Engineer", Description: "Build", Location: "Remote"})
	require.NoError(t, err)
	return f
}

func TestCompany_CreateOnceAndUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateCompany(ctx, f.owner, CompanyInput{CompanyName: "Again"})
	assert.ErrorIs(t, err, ErrCompanyExists)
	_, err = f.svc.UpdateCompany(ctx, f.seeker, CompanyInput{CompanyName: "X"})
	assert.ErrorIs(t, err, ErrCompanyNotFound)

	var fe *FieldError
	_, err = f.svc.CreateCompany(ctx, f.seeker, CompanyInput{})
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "company_name", fe.Field)

	logo := "/media/logos/acme.png"
	c, err := f.svc.UpdateCompany(ctx, f.owner, CompanyInput{CompanyName: "Acme Corp", LogoURL: &logo})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", c.CompanyName)
	assert.NotNil(t, c.LogoURL)

	view, err := f.svc.MyCompany(ctx, f.owner)
	require.NoError(t, err)
	require.Len(t, view.Jobs, 1)
	assert.Equal(t, f.job.Job.ID, view.Jobs[0].ID)
}

func TestPostJob_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.PostJob(ctx, f.seeker, PostingInput{Title: "x", Description: "x", Location: "x"})
	assert.ErrorIs(t, err, ErrForbidden, "non-company poster")
	_, err = f.svc.PostJob(ctx, f.owner, PostingInput{Title: "x", Location: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	lo, hi := 9, 1
	_, err = f.svc.PostJob(ctx, f.owner, PostingInput{Title: "x", Description: "x", Location: "x", SalaryMin: &lo, SalaryMax: &hi})
	assert.ErrorIs(t, err, ErrInvalidInput, "salary range")

	assert.NotNil(t, f.job.Job.Requirements, "lists must never be nil")
	assert.NotNil(t, f.job.Job.Benefits, "lists must never be nil")
}

func TestApply(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	app, err := f.svc.Apply(ctx, f.seeker, f.job.Job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pending", app.Application.Status)
	assert.Equal(t, "Engineer", app.Job.Title)

	_, err = f.svc.Apply(ctx, f.seeker, f.job.Job.ID)
	assert.ErrorIs(t, err, ErrAlreadyApplied)
	_, err = f.svc.Apply(ctx, f.owner, f.job.Job.ID)
	assert.ErrorIs(t, err, ErrForbidden, "applying to own job")
	_, err = f.svc.Apply(ctx, f.seeker, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	mine, err := f.svc.MyApplications(ctx, f.seeker)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	applicants, err := f.svc.Applicants(ctx, f.owner)
	require.NoError(t, err)
	assert.Len(t, applicants, 1)
	_, err = f.svc.Applicants(ctx, f.seeker)
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	app, err := f.svc.Apply(ctx, f.seeker, f.job.Job.ID)
	require.NoError(t, err)
	id := app.Application.ID

	_, err = f.svc.UpdateStatus(ctx, f.owner, id, "Hired")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = f.svc.UpdateStatus(ctx, f.seeker, id, "Accepted")
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := f.svc.UpdateStatus(ctx, f.owner, id, "Accepted")
	require.NoError(t, err)
	assert.Equal(t, "Accepted", got.Application.Status)
}

func TestMessagingAndThreads(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	app, err := f.svc.Apply(ctx, f.seeker, f.job.Job.ID)
	require.NoError(t, err)
	id := app.Application.ID

	_, err = f.svc.SendMessage(ctx, f.outside, id, "hello")
	assert.ErrorIs(t, err, ErrForbidden, "outsider")
	_, err = f.svc.SendMessage(ctx, f.owner, id, "   ")
	assert.ErrorIs(t, err, ErrInvalidInput, "blank text")

	sent, err := f.svc.SendMessage(ctx, f.owner, id, "Thanks for applying")
	require.NoError(t, err)
	assert.Equal(t, "Acme", sent.Sender.Name, "company owner shown by company name")

	threads, err := f.svc.Threads(ctx, f.seeker)
	require.NoError(t, err)
	require.Len(t, threads, 1)
	th := threads[0]
	assert.Equal(t, id, th.ApplicationID)
	assert.Equal(t, "Acme", th.Other.Name)
	assert.Equal(t, "Engineer", th.JobTitle)
	assert.Equal(t, "Thanks for applying", th.LastMessage)
	assert.Equal(t, 1, th.UnreadCount)

	n, err := f.svc.UnreadCount(ctx, f.seeker)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.NoError(t, f.svc.MarkRead(ctx, f.seeker, id))
	n, err = f.svc.UnreadCount(ctx, f.seeker)
	require.NoError(t, err)
	assert.Zero(t, n, "unread after mark read")

	ownerThreads, err := f.svc.Threads(ctx, f.owner)
	require.NoError(t, err)
	require.Len(t, ownerThreads, 1)
	assert.Equal(t, f.seeker, ownerThreads[0].Other.ID, "owner sees the applicant")

	msgs, err := f.svc.Messages(ctx, f.seeker, id)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
	_, err = f.svc.Messages(ctx, f.seeker, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}
