package usecase

import (
	"context"
	"fmt"
	"log"

	"jobmatch/internal/domain/application"
	"jobmatch/internal/domain/user"
	"jobmatch/internal/state"
)

type SeekerAPI interface {
	Profile(ctx context.Context) (user.Profile, error)
	MyApplications(ctx context.Context) ([]application.Application, error)
}

// SeekerDashboard shows the job seeker's profile and applications. The
// profile is required to render; applications are not.
type SeekerDashboard struct {
	gate
	api SeekerAPI

	life    state.Lifecycle
	profile *state.Resource[user.Profile]
	apps    *state.Resource[[]application.Application]
}

func NewSeekerDashboard(api SeekerAPI, sess SessionStore, logger *log.Logger) *SeekerDashboard {
	d := &SeekerDashboard{gate: gate{sess: sess, logger: logger}, api: api}
	d.profile = state.NewResource[user.Profile](&d.life)
	d.apps = state.NewResource[[]application.Application](&d.life)
	return d
}

func (d *SeekerDashboard) Mount(ctx context.Context) error {
	if err := d.require(); err != nil {
		return err
	}
	d.life.Mount()

	if _, err := load(ctx, d.gate, d.profile, d.api.Profile); err != nil {
		d.life.Unmount()
		return requiredFailed(err)
	}
	// Applications failing leaves the dashboard usable.
	_ = d.RefreshApplications(ctx)
	return nil
}

func (d *SeekerDashboard) Unmount() {
	d.life.Unmount()
}

func (d *SeekerDashboard) RefreshApplications(ctx context.Context) error {
	_, err := load(ctx, d.gate, d.apps, d.api.MyApplications)
	return err
}

func (d *SeekerDashboard) Profile() (user.Profile, bool) {
	return d.profile.Value()
}

func (d *SeekerDashboard) Applications() []application.Application {
	return valueOr(d.apps, nil)
}

func (d *SeekerDashboard) Loading() bool {
	return d.profile.Loading() || d.apps.Loading()
}

func (d *SeekerDashboard) Error() string {
	if err := d.profile.Err(); err != nil {
		return Describe(err, "Failed to load user data")
	}
	return Describe(d.apps.Err(), "Failed to load applications")
}

// requiredFailed is the redirect for a view whose precondition could not
// be loaded.
func requiredFailed(err error) error {
	if err == nil || err == ErrLoginRequired {
		return err
	}
	return fmt.Errorf("%w: %w", ErrLoginRequired, err)
}
