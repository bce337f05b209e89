// Package marketplace holds the reference backend's company, job,
// application and messaging rules.
package marketplace

import (
	"context"
	"errors"
	"sort"
	"strings"

	"jobmatch/internal/domain/application"
	"jobmatch/internal/repository"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrCompanyNotFound = errors.New("company profile not found")
	ErrCompanyExists   = errors.New("company profile already exists")
	ErrAlreadyApplied  = errors.New("already applied")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInternal        = errors.New("internal error")
)

// FieldError is a validation failure on one request field.
type FieldError struct {
	Field string
	Msg   string
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Msg }

func (e *FieldError) Is(target error) bool { return target == ErrInvalidInput }

func required(field string) error {
	return &FieldError{Field: field, Msg: "This field is required."}
}

type CompanyInput struct {
	CompanyName string
	Email       string
	Industry    string
	Location    string
	Description string
	LinkedIn    string
	Portfolio   string
	// LogoURL is only replaced when set.
	LogoURL *string
}

type PostingInput struct {
	Title               string
	Description         string
	Requirements        []string
	Benefits            []string
	Location            string
	IsRemote            bool
	SalaryMin           *int
	SalaryMax           *int
	SalaryType          string
	EmploymentType      string
	ExperienceLevel     string
	ApplicationDeadline *string
}

type CompanyView struct {
	Company repository.CompanyRecord
	Jobs    []repository.JobRecord
}

type JobView struct {
	Job     repository.JobRecord
	Company repository.CompanyRecord
}

type ApplicationView struct {
	Application repository.ApplicationRecord
	Job         repository.JobRecord
	Applicant   repository.UserRecord
}

// Party is one side of a conversation.
type Party struct {
	ID    int64
	Name  string
	Email string
}

type MessageView struct {
	Message repository.MessageRecord
	Sender  Party
}

type ThreadView struct {
	ApplicationID int64
	Other         Party
	JobTitle      string
	LastMessage   string
	UnreadCount   int
}

type Service struct {
	store repository.Store
}

func NewService(store repository.Store) *Service {
	return &Service{store: store}
}

func (s *Service) MyCompany(ctx context.Context, userID int64) (CompanyView, error) {
	c, err := s.companyOf(ctx, userID)
	if err != nil {
		return CompanyView{}, err
	}
	jobs, err := s.store.ListJobs(ctx, &c.ID)
	if err != nil {
		return CompanyView{}, ErrInternal
	}
	return CompanyView{Company: c, Jobs: jobs}, nil
}

func (s *Service) Companies(ctx context.Context) ([]repository.CompanyRecord, error) {
	jobs, err := s.store.ListJobs(ctx, nil)
	if err != nil {
		return nil, ErrInternal
	}
	seen := map[int64]bool{}
	out := []repository.CompanyRecord{}
	for _, j := range jobs {
		if seen[j.CompanyID] {
			continue
		}
		seen[j.CompanyID] = true
		if c, err := s.store.GetCompanyByID(ctx, j.CompanyID); err == nil {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

func (s *Service) CreateCompany(ctx context.Context, userID int64, in CompanyInput) (repository.CompanyRecord, error) {
	if strings.TrimSpace(in.CompanyName) == "" {
		return repository.CompanyRecord{}, required("company_name")
	}
	c := applyCompany(repository.CompanyRecord{OwnerID: userID}, in)
	created, err := s.store.CreateCompany(ctx, c)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return repository.CompanyRecord{}, ErrCompanyExists
		}
		return repository.CompanyRecord{}, ErrInternal
	}
	return created, nil
}

func (s *Service) UpdateCompany(ctx context.Context, userID int64, in CompanyInput) (repository.CompanyRecord, error) {
	c, err := s.companyOf(ctx, userID)
	if err != nil {
		return repository.CompanyRecord{}, err
	}
	if strings.TrimSpace(in.CompanyName) == "" {
		return repository.CompanyRecord{}, required("company_name")
	}
	c = applyCompany(c, in)
	if err := s.store.UpdateCompany(ctx, c); err != nil {
		return repository.CompanyRecord{}, ErrInternal
	}
	return c, nil
}

func applyCompany(c repository.CompanyRecord, in CompanyInput) repository.CompanyRecord {
	c.CompanyName = strings.TrimSpace(in.CompanyName)
	c.Email = strings.TrimSpace(in.Email)
	c.Industry = strings.TrimSpace(in.Industry)
	c.Location = strings.TrimSpace(in.Location)
	c.Description = in.Description
	c.LinkedIn = strings.TrimSpace(in.LinkedIn)
	c.Portfolio = strings.TrimSpace(in.Portfolio)
	if in.LogoURL != nil {
		c.LogoURL = in.LogoURL
	}
	return c
}

func (s *Service) Jobs(ctx context.Context, companyID *int64) ([]JobView, error) {
	jobs, err := s.store.ListJobs(ctx, companyID)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]JobView, 0, len(jobs))
	for _, j := range jobs {
		c, err := s.store.GetCompanyByID(ctx, j.CompanyID)
		if err != nil {
			return nil, ErrInternal
		}
		out = append(out, JobView{Job: j, Company: c})
	}
	return out, nil
}

func (s *Service) PostJob(ctx context.Context, userID int64, in PostingInput) (JobView, error) {
	c, err := s.companyOf(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrCompanyNotFound) {
			return JobView{}, ErrForbidden
		}
		return JobView{}, err
	}

	switch {
	case strings.TrimSpace(in.Title) == "":
		return JobView{}, required("title")
	case strings.TrimSpace(in.Description) == "":
		return JobView{}, required("description")
	case strings.TrimSpace(in.Location) == "":
		return JobView{}, required("location")
	}
	if in.SalaryMin != nil && in.SalaryMax != nil && *in.SalaryMin > *in.SalaryMax {
		return JobView{}, &FieldError{Field: "salary_max", Msg: "Must not be lower than salary_min."}
	}

	j, err := s.store.CreateJob(ctx, repository.JobRecord{
		CompanyID:           c.ID,
		Title:               strings.TrimSpace(in.Title),
		Description:         in.Description,
		Requirements:        nonNil(in.Requirements),
		Benefits:            nonNil(in.Benefits),
		Location:            strings.TrimSpace(in.Location),
		IsRemote:            in.IsRemote,
		SalaryMin:           in.SalaryMin,
		SalaryMax:           in.SalaryMax,
		SalaryType:          in.SalaryType,
		EmploymentType:      in.EmploymentType,
		ExperienceLevel:     in.ExperienceLevel,
		ApplicationDeadline: in.ApplicationDeadline,
	})
	if err != nil {
		return JobView{}, ErrInternal
	}
	return JobView{Job: j, Company: c}, nil
}

func (s *Service) Apply(ctx context.Context, userID, jobID int64) (ApplicationView, error) {
	j, err := s.store.GetJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ApplicationView{}, ErrNotFound
		}
		return ApplicationView{}, ErrInternal
	}
	if c, err := s.store.GetCompanyByID(ctx, j.CompanyID); err == nil && c.OwnerID == userID {
		return ApplicationView{}, ErrForbidden
	}

	a, err := s.store.CreateApplication(ctx, repository.ApplicationRecord{
		JobID:       jobID,
		ApplicantID: userID,
		Status:      string(application.StatusPending),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ApplicationView{}, ErrAlreadyApplied
		}
		return ApplicationView{}, ErrInternal
	}
	return s.viewApplication(ctx, a)
}

func (s *Service) MyApplications(ctx context.Context, userID int64) ([]ApplicationView, error) {
	apps, err := s.store.ListApplicationsByApplicant(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return s.viewApplications(ctx, apps)
}

func (s *Service) Applicants(ctx context.Context, userID int64) ([]ApplicationView, error) {
	c, err := s.companyOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	apps, err := s.store.ListApplicationsByCompany(ctx, c.ID)
	if err != nil {
		return nil, ErrInternal
	}
	return s.viewApplications(ctx, apps)
}

func (s *Service) UpdateStatus(ctx context.Context, userID, applicationID int64, status string) (ApplicationView, error) {
	if !application.Status(status).Valid() {
		return ApplicationView{}, &FieldError{Field: "status", Msg: "\"" + status + "\" is not a valid choice."}
	}
	a, j, err := s.applicationFor(ctx, applicationID)
	if err != nil {
		return ApplicationView{}, err
	}
	c, err := s.store.GetCompanyByID(ctx, j.CompanyID)
	if err != nil || c.OwnerID != userID {
		return ApplicationView{}, ErrForbidden
	}

	a, err = s.store.UpdateApplicationStatus(ctx, a.ID, status)
	if err != nil {
		return ApplicationView{}, ErrInternal
	}
	return s.viewApplication(ctx, a)
}

func (s *Service) Messages(ctx context.Context, userID, applicationID int64) ([]MessageView, error) {
	if _, err := s.participants(ctx, userID, applicationID); err != nil {
		return nil, err
	}
	msgs, err := s.store.ListMessages(ctx, applicationID)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]MessageView, 0, len(msgs))
	for _, m := range msgs {
		sender, err := s.party(ctx, m.SenderID)
		if err != nil {
			return nil, err
		}
		out = append(out, MessageView{Message: m, Sender: sender})
	}
	return out, nil
}

func (s *Service) SendMessage(ctx context.Context, userID, applicationID int64, text string) (MessageView, error) {
	if strings.TrimSpace(text) == "" {
		return MessageView{}, required("text")
	}
	if _, err := s.participants(ctx, userID, applicationID); err != nil {
		return MessageView{}, err
	}
	m, err := s.store.CreateMessage(ctx, repository.MessageRecord{
		ApplicationID: applicationID,
		SenderID:      userID,
		Text:          strings.TrimSpace(text),
	})
	if err != nil {
		return MessageView{}, ErrInternal
	}
	sender, err := s.party(ctx, userID)
	if err != nil {
		return MessageView{}, err
	}
	return MessageView{Message: m, Sender: sender}, nil
}

func (s *Service) MarkRead(ctx context.Context, userID, applicationID int64) error {
	if _, err := s.participants(ctx, userID, applicationID); err != nil {
		return err
	}
	if err := s.store.MarkRead(ctx, applicationID, userID); err != nil {
		return ErrInternal
	}
	return nil
}

// Threads lists one thread per application the user takes part in, most
// recent activity first.
func (s *Service) Threads(ctx context.Context, userID int64) ([]ThreadView, error) {
	apps, err := s.store.ListApplicationsByApplicant(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	if c, err := s.store.GetCompanyByOwner(ctx, userID); err == nil {
		owned, err := s.store.ListApplicationsByCompany(ctx, c.ID)
		if err != nil {
			return nil, ErrInternal
		}
		apps = append(apps, owned...)
	}

	type ranked struct {
		view ThreadView
		last int64
	}
	rows := make([]ranked, 0, len(apps))
	for _, a := range apps {
		p, err := s.participants(ctx, userID, a.ID)
		if err != nil {
			return nil, err
		}
		msgs, err := s.store.ListMessages(ctx, a.ID)
		if err != nil {
			return nil, ErrInternal
		}
		unread, err := s.store.UnreadCount(ctx, a.ID, userID)
		if err != nil {
			return nil, ErrInternal
		}
		r := ranked{view: ThreadView{
			ApplicationID: a.ID,
			Other:         p.other,
			JobTitle:      p.job.Title,
			UnreadCount:   unread,
		}}
		if n := len(msgs); n > 0 {
			r.view.LastMessage = msgs[n-1].Text
			r.last = msgs[n-1].ID
		}
		rows = append(rows, r)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].last != rows[j].last {
			return rows[i].last > rows[j].last
		}
		return rows[i].view.ApplicationID > rows[j].view.ApplicationID
	})
	out := make([]ThreadView, len(rows))
	for i, r := range rows {
		out[i] = r.view
	}
	return out, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID int64) (int, error) {
	threads, err := s.Threads(ctx, userID)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, t := range threads {
		n += t.UnreadCount
	}
	return n, nil
}

type conversation struct {
	job   repository.JobRecord
	other Party
}

// participants resolves the other side of an application's conversation
// for userID, failing with ErrForbidden for outsiders.
func (s *Service) participants(ctx context.Context, userID, applicationID int64) (conversation, error) {
	a, j, err := s.applicationFor(ctx, applicationID)
	if err != nil {
		return conversation{}, err
	}
	c, err := s.store.GetCompanyByID(ctx, j.CompanyID)
	if err != nil {
		return conversation{}, ErrInternal
	}

	switch userID {
	case a.ApplicantID:
		return conversation{job: j, other: Party{ID: c.OwnerID, Name: c.CompanyName, Email: c.Email}}, nil
	case c.OwnerID:
		other, err := s.party(ctx, a.ApplicantID)
		if err != nil {
			return conversation{}, err
		}
		return conversation{job: j, other: other}, nil
	default:
		return conversation{}, ErrForbidden
	}
}

// party names a user the way the other side sees them: a company owner by
// the company name.
func (s *Service) party(ctx context.Context, userID int64) (Party, error) {
	u, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return Party{}, ErrInternal
	}
	p := Party{ID: u.ID, Name: u.Name, Email: u.Email}
	if c, err := s.store.GetCompanyByOwner(ctx, userID); err == nil {
		p.Name = c.CompanyName
	}
	return p, nil
}

func (s *Service) applicationFor(ctx context.Context, applicationID int64) (repository.ApplicationRecord, repository.JobRecord, error) {
	a, err := s.store.GetApplication(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.ApplicationRecord{}, repository.JobRecord{}, ErrNotFound
		}
		return repository.ApplicationRecord{}, repository.JobRecord{}, ErrInternal
	}
	j, err := s.store.GetJob(ctx, a.JobID)
	if err != nil {
		return repository.ApplicationRecord{}, repository.JobRecord{}, ErrInternal
	}
	return a, j, nil
}

func (s *Service) companyOf(ctx context.Context, userID int64) (repository.CompanyRecord, error) {
	c, err := s.store.GetCompanyByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.CompanyRecord{}, ErrCompanyNotFound
		}
		return repository.CompanyRecord{}, ErrInternal
	}
	return c, nil
}

func (s *Service) viewApplications(ctx context.Context, apps []repository.ApplicationRecord) ([]ApplicationView, error) {
	out := make([]ApplicationView, 0, len(apps))
	for _, a := range apps {
		v, err := s.viewApplication(ctx, a)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *Service) viewApplication(ctx context.Context, a repository.ApplicationRecord) (ApplicationView, error) {
	j, err := s.store.GetJob(ctx, a.JobID)
	if err != nil {
		return ApplicationView{}, ErrInternal
	}
	u, err := s.store.GetUserByID(ctx, a.ApplicantID)
	if err != nil {
		return ApplicationView{}, ErrInternal
	}
	u.PasswordHash = ""
	return ApplicationView{Application: a, Job: j, Applicant: u}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
