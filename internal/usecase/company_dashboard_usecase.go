package usecase

import (
	"context"
	"errors"
	"log"
	"net/http"

	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/user"
	"jobmatch/internal/infrastructure/api"
	"jobmatch/internal/state"
)

// ErrCompanyProfileMissing sends a company without a profile to setup.
var ErrCompanyProfileMissing = errors.New("company profile missing")

type CompanyAPI interface {
	MyCompany(ctx context.Context) (user.CompanyProfile, error)
	Jobs(ctx context.Context, companyID *int64) ([]job.Job, error)
}

type CompanyDashboard struct {
	gate
	api CompanyAPI

	life    state.Lifecycle
	company *state.Resource[user.CompanyProfile]
	jobs    *state.Resource[[]job.Job]
}

func NewCompanyDashboard(api CompanyAPI, sess SessionStore, logger *log.Logger) *CompanyDashboard {
	d := &CompanyDashboard{gate: gate{sess: sess, logger: logger}, api: api}
	d.company = state.NewResource[user.CompanyProfile](&d.life)
	d.jobs = state.NewResource[[]job.Job](&d.life)
	return d
}

func (d *CompanyDashboard) Mount(ctx context.Context) error {
	if err := d.require(); err != nil {
		return err
	}
	d.life.Mount()

	if _, err := load(ctx, d.gate, d.company, d.api.MyCompany); err != nil {
		d.life.Unmount()
		if isNotFound(err) {
			return ErrCompanyProfileMissing
		}
		return requiredFailed(err)
	}
	_ = d.RefreshJobs(ctx)
	return nil
}

func (d *CompanyDashboard) Unmount() {
	d.life.Unmount()
}

// RefreshJobs loads the jobs posted by this company.
func (d *CompanyDashboard) RefreshJobs(ctx context.Context) error {
	c, ok := d.company.Value()
	if !ok {
		return nil
	}
	id := c.ID
	_, err := load(ctx, d.gate, d.jobs, func(ctx context.Context) ([]job.Job, error) {
		return d.api.Jobs(ctx, &id)
	})
	return err
}

func (d *CompanyDashboard) Company() (user.CompanyProfile, bool) {
	return d.company.Value()
}

// Jobs prefers the dedicated listing and falls back to the listings embedded
// in the company profile.
func (d *CompanyDashboard) Jobs() []job.Job {
	if jobs, ok := d.jobs.Value(); ok {
		return jobs
	}
	c, _ := d.company.Value()
	return c.JobListings
}

func (d *CompanyDashboard) Error() string {
	if err := d.company.Err(); err != nil {
		return Describe(err, "Failed to load company profile")
	}
	return Describe(d.jobs.Err(), "Failed to load jobs")
}

func isNotFound(err error) bool {
	var apiErr *api.Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
