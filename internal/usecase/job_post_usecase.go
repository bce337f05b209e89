package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"jobmatch/internal/domain/job"
)

type JobPostAPI interface {
	PostJob(ctx context.Context, p job.Posting) (job.Job, error)
}

// JobPostFields is the text of the job post form, as typed.
type JobPostFields struct {
	Title               string
	Description         string
	Location            string
	IsRemote            bool
	SalaryMin           string
	SalaryMax           string
	SalaryType          string
	EmploymentType      string
	ExperienceLevel     string
	ApplicationDeadline string
}

type JobPostForm struct {
	gate
	api JobPostAPI

	mu           sync.Mutex
	fields       JobPostFields
	requirements []string
	benefits     []string
	notice       notice
}

func NewJobPostForm(api JobPostAPI, sess SessionStore, logger *log.Logger) *JobPostForm {
	return &JobPostForm{gate: gate{sess: sess, logger: logger}, api: api}
}

func (f *JobPostForm) SetFields(v JobPostFields) {
	f.mu.Lock()
	f.fields = v
	f.mu.Unlock()
}

func (f *JobPostForm) Fields() JobPostFields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *JobPostForm) AddRequirement(s string) bool {
	return f.addItem(&f.requirements, s)
}

func (f *JobPostForm) RemoveRequirement(i int) bool {
	return f.removeItem(&f.requirements, i)
}

func (f *JobPostForm) Requirements() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requirements...)
}

func (f *JobPostForm) AddBenefit(s string) bool {
	return f.addItem(&f.benefits, s)
}

func (f *JobPostForm) RemoveBenefit(i int) bool {
	return f.removeItem(&f.benefits, i)
}

func (f *JobPostForm) Benefits() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.benefits...)
}

func (f *JobPostForm) addItem(list *[]string, s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	f.mu.Lock()
	*list = append(*list, s)
	f.mu.Unlock()
	return true
}

func (f *JobPostForm) removeItem(list *[]string, i int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i < 0 || i >= len(*list) {
		return false
	}
	*list = append((*list)[:i:i], (*list)[i+1:]...)
	return true
}

func (f *JobPostForm) Error() string {
	return f.notice.String()
}

// Payload builds the create request from the form.
func (f *JobPostForm) Payload() (job.Posting, error) {
	f.mu.Lock()
	fields := f.fields
	reqs := append([]string{}, f.requirements...)
	bens := append([]string{}, f.benefits...)
	f.mu.Unlock()

	p := job.Posting{
		Title:           strings.TrimSpace(fields.Title),
		Description:     strings.TrimSpace(fields.Description),
		Location:        strings.TrimSpace(fields.Location),
		IsRemote:        fields.IsRemote,
		Requirements:    reqs,
		Benefits:        bens,
		SalaryType:      strings.TrimSpace(fields.SalaryType),
		EmploymentType:  strings.TrimSpace(fields.EmploymentType),
		ExperienceLevel: strings.TrimSpace(fields.ExperienceLevel),
	}
	switch {
	case p.Title == "":
		return job.Posting{}, invalid("Title is required")
	case p.Description == "":
		return job.Posting{}, invalid("Description is required")
	case p.Location == "":
		return job.Posting{}, invalid("Location is required")
	}

	var err error
	if p.SalaryMin, err = job.ParseSalary(fields.SalaryMin); err != nil {
		return job.Posting{}, salaryError("Minimum salary", err)
	}
	if p.SalaryMax, err = job.ParseSalary(fields.SalaryMax); err != nil {
		return job.Posting{}, salaryError("Maximum salary", err)
	}
	if p.SalaryMin != nil && p.SalaryMax != nil && *p.SalaryMin > *p.SalaryMax {
		return job.Posting{}, invalid("Minimum salary cannot exceed maximum salary")
	}
	if d := strings.TrimSpace(fields.ApplicationDeadline); d != "" {
		p.ApplicationDeadline = &d
	}
	return p, nil
}

// Submit posts the job. Success clears the form; failure keeps it.
func (f *JobPostForm) Submit(ctx context.Context) (job.Job, error) {
	p, err := f.Payload()
	if err != nil {
		f.notice.set(err, "")
		return job.Job{}, err
	}
	if err := f.require(); err != nil {
		return job.Job{}, err
	}

	posted, err := f.api.PostJob(ctx, p)
	if err != nil {
		err = f.settle(ctx, err)
		f.notice.set(err, "Failed to post job")
		return job.Job{}, err
	}

	f.mu.Lock()
	f.fields = JobPostFields{}
	f.requirements = nil
	f.benefits = nil
	f.mu.Unlock()
	f.notice.clear()
	f.logf("[JobPost] posted job_id=%d", posted.ID)
	return posted, nil
}

func salaryError(field string, err error) error {
	if errors.Is(err, job.ErrInvalidSalary) {
		return invalid(field + " must be a whole non-negative number")
	}
	return err
}
