package usecase

import (
	"context"
	"log"
	"sync"

	"jobmatch/internal/cursor"
	"jobmatch/internal/domain/application"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/state"
)

type JobBrowserAPI interface {
	Jobs(ctx context.Context, companyID *int64) ([]job.Job, error)
	Apply(ctx context.Context, jobID int64) (application.Application, error)
}

// JobBrowser pages one job at a time through the fetched list.
type JobBrowser struct {
	gate
	api JobBrowserAPI

	life state.Lifecycle
	jobs *state.Resource[[]job.Job]
	cur  *cursor.Cursor

	mu      sync.Mutex
	applied map[int64]bool
	notice  notice
}

func NewJobBrowser(api JobBrowserAPI, sess SessionStore, policy cursor.Policy, logger *log.Logger) (*JobBrowser, error) {
	cur, err := cursor.New(0, policy)
	if err != nil {
		return nil, err
	}
	b := &JobBrowser{
		gate:    gate{sess: sess, logger: logger},
		api:     api,
		cur:     cur,
		applied: map[int64]bool{},
	}
	b.jobs = state.NewResource[[]job.Job](&b.life)
	return b, nil
}

func (b *JobBrowser) Mount(ctx context.Context) error {
	if err := b.require(); err != nil {
		return err
	}
	b.life.Mount()
	return b.Refresh(ctx)
}

func (b *JobBrowser) Unmount() {
	b.life.Unmount()
}

// Refresh reloads the jobs and rewinds the cursor when the list changes.
func (b *JobBrowser) Refresh(ctx context.Context) error {
	committed, err := load(ctx, b.gate, b.jobs, func(ctx context.Context) ([]job.Job, error) {
		return b.api.Jobs(ctx, nil)
	})
	if committed && err == nil {
		jobs, _ := b.jobs.Value()
		b.cur.Reset(len(jobs))
	}
	return err
}

func (b *JobBrowser) Jobs() []job.Job {
	return valueOr(b.jobs, nil)
}

func (b *JobBrowser) Current() (job.Job, bool) {
	jobs := b.Jobs()
	i := b.cur.Index()
	if i < 0 || i >= len(jobs) {
		return job.Job{}, false
	}
	return jobs[i], true
}

func (b *JobBrowser) Index() int {
	return b.cur.Index()
}

func (b *JobBrowser) Exhausted() bool {
	return b.cur.Exhausted()
}

func (b *JobBrowser) Policy() cursor.Policy {
	return b.cur.Policy()
}

// Handle routes one input through the cursor. A right swipe applies to the
// current job first and only advances when the application went through.
func (b *JobBrowser) Handle(ctx context.Context, in cursor.Input) error {
	if in == cursor.SwipeRight {
		if err := b.Apply(ctx); err != nil {
			return err
		}
	}
	b.cur.Apply(in)
	return nil
}

func (b *JobBrowser) Apply(ctx context.Context) error {
	j, ok := b.Current()
	if !ok {
		return invalid("No job selected")
	}
	if b.Applied(j.ID) {
		return nil
	}
	if err := b.require(); err != nil {
		return err
	}

	if _, err := b.api.Apply(ctx, j.ID); err != nil {
		err = b.settle(ctx, err)
		b.notice.set(err, "Failed to apply for this job")
		return err
	}
	b.mu.Lock()
	b.applied[j.ID] = true
	b.mu.Unlock()
	b.notice.clear()
	b.logf("[Browse] applied job_id=%d", j.ID)
	return nil
}

func (b *JobBrowser) Applied(jobID int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.applied[jobID]
}

func (b *JobBrowser) Error() string {
	if s := b.notice.String(); s != "" {
		return s
	}
	return Describe(b.jobs.Err(), "Failed to load jobs")
}
