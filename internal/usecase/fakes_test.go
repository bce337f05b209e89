package usecase

import (
	"context"
	"sync"
	"time"

	"jobmatch/internal/domain/application"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/message"
	"jobmatch/internal/domain/user"
	"jobmatch/internal/infrastructure/api"
)

type fakeSession struct {
	mu       sync.Mutex
	token    string
	userType user.Type
	clears   int
}

func loggedIn(t user.Type) *fakeSession {
	return &fakeSession{token: "tok", userType: t}
}

func (s *fakeSession) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

func (s *fakeSession) UserType() user.Type {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userType
}

func (s *fakeSession) SetSession(_ context.Context, token string, t user.Type) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.userType = token, t
	return nil
}

func (s *fakeSession) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.userType = "", ""
	s.clears++
	return nil
}

// fakeBackend answers every API port from memory. Errors are injected per
// method name.
type fakeBackend struct {
	mu    sync.Mutex
	calls map[string]int
	errs  map[string]error

	auth     user.AuthResult
	profile  user.Profile
	company  *user.CompanyProfile
	jobs     []job.Job
	posted   []job.Posting
	apps     []application.Application
	messages map[int64][]message.Message
	threads  []message.Thread
	unread   int
	reads    []int64
	nextID   int64

	// beforeMessages runs inside Messages before it answers.
	beforeMessages func(applicationID int64)
	// beforeUpdate runs inside UpdateProfile before it answers.
	beforeUpdate func()
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		calls:    map[string]int{},
		errs:     map[string]error{},
		messages: map[int64][]message.Message{},
		nextID:   100,
	}
}

func (f *fakeBackend) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	return f.errs[name]
}

func (f *fakeBackend) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeBackend) fail(name string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[name] = err
}

func (f *fakeBackend) Signup(_ context.Context, in user.SignupInput) (user.AuthResult, error) {
	if err := f.record("Signup"); err != nil {
		return user.AuthResult{}, err
	}
	return f.auth, nil
}

func (f *fakeBackend) Login(_ context.Context, in user.LoginInput) (user.AuthResult, error) {
	if err := f.record("Login"); err != nil {
		return user.AuthResult{}, err
	}
	return f.auth, nil
}

func (f *fakeBackend) Profile(context.Context) (user.Profile, error) {
	if err := f.record("Profile"); err != nil {
		return user.Profile{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.profile, nil
}

func (f *fakeBackend) UpdateProfile(_ context.Context, in user.ProfileInput) (user.Profile, error) {
	if err := f.record("UpdateProfile"); err != nil {
		return user.Profile{}, err
	}
	f.mu.Lock()
	hook := f.beforeUpdate
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profile.Name = in.Name
	f.profile.Skills = append([]string{}, in.Skills...)
	f.profile.Experience = in.Experience
	f.profile.Education = in.Education
	f.profile.Location = in.Location
	f.profile.Phone = in.Phone
	f.profile.LinkedIn = in.LinkedIn
	f.profile.Portfolio = in.Portfolio
	if in.Resume != nil {
		u := "/media/resumes/" + in.Resume.Filename
		f.profile.ResumeURL = &u
	}
	return f.profile, nil
}

func (f *fakeBackend) MyCompany(context.Context) (user.CompanyProfile, error) {
	if err := f.record("MyCompany"); err != nil {
		return user.CompanyProfile{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.company == nil {
		return user.CompanyProfile{}, &api.Error{StatusCode: 404, Detail: "Company profile not found"}
	}
	return *f.company, nil
}

func (f *fakeBackend) CreateCompany(_ context.Context, in user.CompanyInput) (user.CompanyProfile, error) {
	if err := f.record("CreateCompany"); err != nil {
		return user.CompanyProfile{}, err
	}
	return f.saveCompany(in), nil
}

func (f *fakeBackend) UpdateCompany(_ context.Context, in user.CompanyInput) (user.CompanyProfile, error) {
	if err := f.record("UpdateCompany"); err != nil {
		return user.CompanyProfile{}, err
	}
	return f.saveCompany(in), nil
}

func (f *fakeBackend) saveCompany(in user.CompanyInput) user.CompanyProfile {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := user.CompanyProfile{
		ID:          1,
		CompanyName: in.CompanyName,
		Email:       in.Email,
		Industry:    in.Industry,
		Location:    in.Location,
		Description: in.Description,
		LinkedIn:    in.LinkedIn,
		Portfolio:   in.Portfolio,
	}
	f.company = &c
	return c
}

func (f *fakeBackend) Jobs(_ context.Context, companyID *int64) ([]job.Job, error) {
	if err := f.record("Jobs"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []job.Job
	for _, j := range f.jobs {
		if companyID == nil || j.Company == *companyID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeBackend) PostJob(_ context.Context, p job.Posting) (job.Job, error) {
	if err := f.record("PostJob"); err != nil {
		return job.Job{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posted = append(f.posted, p)
	f.nextID++
	return job.Job{ID: f.nextID, Title: p.Title}, nil
}

func (f *fakeBackend) Apply(_ context.Context, jobID int64) (application.Application, error) {
	if err := f.record("Apply"); err != nil {
		return application.Application{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	app := application.Application{ID: f.nextID, Job: jobID, Status: application.StatusPending}
	f.apps = append(f.apps, app)
	return app, nil
}

func (f *fakeBackend) MyApplications(context.Context) ([]application.Application, error) {
	if err := f.record("MyApplications"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]application.Application(nil), f.apps...), nil
}

func (f *fakeBackend) Applicants(context.Context) ([]application.Application, error) {
	if err := f.record("Applicants"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]application.Application(nil), f.apps...), nil
}

func (f *fakeBackend) UpdateApplicationStatus(_ context.Context, id int64, status application.Status) (application.Application, error) {
	if err := f.record("UpdateApplicationStatus"); err != nil {
		return application.Application{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.apps {
		if f.apps[i].ID == id {
			f.apps[i].Status = status
			return f.apps[i], nil
		}
	}
	return application.Application{}, &api.Error{StatusCode: 404, Detail: "Not found"}
}

func (f *fakeBackend) Messages(_ context.Context, id int64) ([]message.Message, error) {
	if err := f.record("Messages"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	hook := f.beforeMessages
	f.mu.Unlock()
	if hook != nil {
		hook(id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]message.Message(nil), f.messages[id]...), nil
}

func (f *fakeBackend) SendMessage(_ context.Context, id int64, text string) (message.Message, error) {
	if err := f.record("SendMessage"); err != nil {
		return message.Message{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	m := message.Message{ID: f.nextID, Text: text, Timestamp: time.Now()}
	f.messages[id] = append(f.messages[id], m)
	return m, nil
}

func (f *fakeBackend) MarkRead(_ context.Context, id int64) error {
	if err := f.record("MarkRead"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads = append(f.reads, id)
	for i := range f.threads {
		if f.threads[i].ApplicationID == id {
			f.threads[i].UnreadCount = 0
		}
	}
	return nil
}

func (f *fakeBackend) Threads(context.Context) ([]message.Thread, error) {
	if err := f.record("Threads"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]message.Thread(nil), f.threads...), nil
}

func (f *fakeBackend) UnreadCount(context.Context) (int, error) {
	if err := f.record("UnreadCount"); err != nil {
		return 0, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.unread, nil
}

var unauthorized = &api.Error{StatusCode: 401, Detail: "Given token not valid for any token type"}
