package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmatch/internal/domain/application"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/user"
	"jobmatch/internal/infrastructure/api"
)

func TestSeekerDashboard_ProfileFailureRedirects(t *testing.T) {
	be := newFakeBackend()
	be.fail("Profile", &api.Error{StatusCode: 500})
	sess := loggedIn(user.TypeJobSeeker)
	d := NewSeekerDashboard(be, sess, nil)

	assert.ErrorIs(t, d.Mount(context.Background()), ErrLoginRequired)
	// only a rejected token clears the session
	assert.True(t, sess.IsAuthenticated())
}

func TestSeekerDashboard_ApplicationsFailureIsSoft(t *testing.T) {
	be := newFakeBackend()
	be.profile = user.Profile{Name: "Ada"}
	be.fail("MyApplications", &api.Error{StatusCode: 500, Detail: "db down"})
	d := NewSeekerDashboard(be, loggedIn(user.TypeJobSeeker), nil)

	require.NoError(t, d.Mount(context.Background()))
	p, ok := d.Profile()
	require.True(t, ok)
	assert.Equal(t, "Ada", p.Name)
	assert.Equal(t, "db down", d.Error())
}

func TestSeekerDashboard_StaleDataKeptOnFailure(t *testing.T) {
	be := newFakeBackend()
	be.apps = []application.Application{{ID: 1, JobTitle: "Go"}}
	d := NewSeekerDashboard(be, loggedIn(user.TypeJobSeeker), nil)
	require.NoError(t, d.Mount(context.Background()))

	be.fail("MyApplications", errors.New("connection reset"))
	require.Error(t, d.RefreshApplications(context.Background()))
	assert.Len(t, d.Applications(), 1, "stale list kept")
	assert.Equal(t, "Failed to load applications", d.Error())
}

func TestSeekerDashboard_UnmountedFetchDoesNotCommit(t *testing.T) {
	be := newFakeBackend()
	be.profile = user.Profile{Name: "Ada"}
	d := NewSeekerDashboard(be, loggedIn(user.TypeJobSeeker), nil)
	require.NoError(t, d.Mount(context.Background()))
	d.Unmount()

	be.apps = []application.Application{{ID: 9}}
	_ = d.RefreshApplications(context.Background())
	assert.Empty(t, d.Applications())
}

func TestCompanyDashboard_MissingProfile(t *testing.T) {
	be := newFakeBackend()
	d := NewCompanyDashboard(be, loggedIn(user.TypeCompany), nil)

	assert.ErrorIs(t, d.Mount(context.Background()), ErrCompanyProfileMissing)
}

func TestCompanyDashboard_LoadsOwnJobs(t *testing.T) {
	be := newFakeBackend()
	be.company = &user.CompanyProfile{ID: 1, CompanyName: "Acme"}
	be.jobs = []job.Job{{ID: 1, Company: 1, Title: "Mine"}, {ID: 2, Company: 2, Title: "Theirs"}}
	d := NewCompanyDashboard(be, loggedIn(user.TypeCompany), nil)

	require.NoError(t, d.Mount(context.Background()))
	jobs := d.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, "Mine", jobs[0].Title)
}

func TestCompanyEditor_CreateThenUpdate(t *testing.T) {
	be := newFakeBackend()
	e := NewCompanyEditor(be, loggedIn(user.TypeCompany), nil)
	ctx := context.Background()

	require.NoError(t, e.Mount(ctx))
	require.False(t, e.Exists(), "create mode expected")

	e.Edit(func(in *user.CompanyInput) { in.CompanyName = "Acme"; in.Industry = "Software" })
	_, err := e.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, be.count("CreateCompany"))
	assert.True(t, e.Exists())

	e.Edit(func(in *user.CompanyInput) { in.Location = "Berlin" })
	c, err := e.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, be.count("UpdateCompany"))
	assert.Equal(t, "Berlin", c.Location)
	assert.Equal(t, "Software", c.Industry)
}

func TestCompanyEditor_RequiresName(t *testing.T) {
	be := newFakeBackend()
	e := NewCompanyEditor(be, loggedIn(user.TypeCompany), nil)

	_, err := e.Submit(context.Background())
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "Company name is required", e.Error())
}
