package usecase

import (
	"context"
	"log"
	"sync"

	"jobmatch/internal/domain/application"
	"jobmatch/internal/state"
)

type ApplicantsAPI interface {
	Applicants(ctx context.Context) ([]application.Application, error)
	UpdateApplicationStatus(ctx context.Context, applicationID int64, status application.Status) (application.Application, error)
	MessagesAPI
}

// Applicants is the company's applicant tracker: applications grouped by
// job, a title filter, status updates, and a conversation per applicant.
type Applicants struct {
	gate
	api ApplicantsAPI

	life state.Lifecycle
	apps *state.Resource[[]application.Application]
	conv *Conversation

	mu          sync.Mutex
	titleFilter string
	notice      notice
}

func NewApplicants(api ApplicantsAPI, sess SessionStore, logger *log.Logger) *Applicants {
	a := &Applicants{gate: gate{sess: sess, logger: logger}, api: api}
	a.apps = state.NewResource[[]application.Application](&a.life)
	a.conv = NewConversation(api, sess, &a.life, false, logger)
	return a
}

func (a *Applicants) Mount(ctx context.Context) error {
	if err := a.require(); err != nil {
		return err
	}
	a.life.Mount()
	return a.Refresh(ctx)
}

func (a *Applicants) Unmount() {
	a.conv.Close()
	a.life.Unmount()
}

func (a *Applicants) Refresh(ctx context.Context) error {
	_, err := load(ctx, a.gate, a.apps, a.api.Applicants)
	return err
}

func (a *Applicants) Applications() []application.Application {
	return valueOr(a.apps, nil)
}

func (a *Applicants) SetTitleFilter(title string) {
	a.mu.Lock()
	a.titleFilter = title
	a.mu.Unlock()
}

func (a *Applicants) TitleFilter() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.titleFilter
}

func (a *Applicants) JobTitles() []string {
	return application.JobTitles(a.Applications())
}

// Groups returns the applications grouped by job, narrowed by the title
// filter.
func (a *Applicants) Groups() []application.Group {
	return application.FilterByTitle(application.GroupByJob(a.Applications()), a.TitleFilter())
}

// UpdateStatus changes one application's status and patches it into the
// cached list. A failed update leaves the list as it was.
func (a *Applicants) UpdateStatus(ctx context.Context, applicationID int64, status application.Status) error {
	if !status.Valid() {
		return invalid("Unknown status " + string(status))
	}
	current, ok := a.find(applicationID)
	if !ok {
		return invalid("Application not found")
	}
	if current.Status == status {
		return nil
	}
	if err := a.require(); err != nil {
		return err
	}

	updated, err := a.api.UpdateApplicationStatus(ctx, applicationID, status)
	if err != nil {
		err = a.settle(ctx, err)
		a.notice.set(err, "Failed to update status")
		return err
	}
	if updated.Status.Valid() {
		status = updated.Status
	}
	a.apps.Update(func(apps []application.Application) []application.Application {
		next, _ := application.WithStatus(apps, applicationID, status)
		return next
	})
	a.notice.clear()
	a.logf("[Applicants] status updated application_id=%d status=%s", applicationID, status)
	return nil
}

func (a *Applicants) find(applicationID int64) (application.Application, bool) {
	for _, app := range a.Applications() {
		if app.ID == applicationID {
			return app, true
		}
	}
	return application.Application{}, false
}

// Conversation is the message dialog for the open applicant.
func (a *Applicants) Conversation() *Conversation {
	return a.conv
}

func (a *Applicants) Error() string {
	if s := a.notice.String(); s != "" {
		return s
	}
	return Describe(a.apps.Err(), "Failed to load applicants")
}
