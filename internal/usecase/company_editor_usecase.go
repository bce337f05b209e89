package usecase

import (
	"context"
	"log"
	"strings"
	"sync"

	"jobmatch/internal/domain/user"
	"jobmatch/internal/state"
)

type CompanyEditorAPI interface {
	MyCompany(ctx context.Context) (user.CompanyProfile, error)
	CreateCompany(ctx context.Context, in user.CompanyInput) (user.CompanyProfile, error)
	UpdateCompany(ctx context.Context, in user.CompanyInput) (user.CompanyProfile, error)
}

// CompanyEditor creates the company profile on first submit and replaces it
// afterwards.
type CompanyEditor struct {
	gate
	api CompanyEditorAPI

	life    state.Lifecycle
	company *state.Resource[user.CompanyProfile]

	mu     sync.Mutex
	form   user.CompanyInput
	notice notice
}

func NewCompanyEditor(api CompanyEditorAPI, sess SessionStore, logger *log.Logger) *CompanyEditor {
	e := &CompanyEditor{gate: gate{sess: sess, logger: logger}, api: api}
	e.company = state.NewResource[user.CompanyProfile](&e.life)
	return e
}

func (e *CompanyEditor) Mount(ctx context.Context) error {
	if err := e.require(); err != nil {
		return err
	}
	e.life.Mount()

	committed, err := load(ctx, e.gate, e.company, e.api.MyCompany)
	switch {
	case err != nil && isNotFound(err):
		// no profile yet: the form creates one
		return nil
	case err != nil:
		e.life.Unmount()
		return requiredFailed(err)
	}
	if committed {
		c, _ := e.company.Value()
		e.mu.Lock()
		e.form = user.CompanyInputFrom(c)
		e.mu.Unlock()
	}
	return nil
}

func (e *CompanyEditor) Unmount() {
	e.life.Unmount()
}

// Exists reports whether a company profile has been loaded or created.
func (e *CompanyEditor) Exists() bool {
	_, ok := e.company.Value()
	return ok
}

func (e *CompanyEditor) Form() user.CompanyInput {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.form
}

func (e *CompanyEditor) Edit(fn func(*user.CompanyInput)) {
	e.mu.Lock()
	fn(&e.form)
	e.mu.Unlock()
}

func (e *CompanyEditor) Error() string {
	return e.notice.String()
}

func (e *CompanyEditor) Submit(ctx context.Context) (user.CompanyProfile, error) {
	form := e.Form()
	if strings.TrimSpace(form.CompanyName) == "" {
		err := invalid("Company name is required")
		e.notice.set(err, "")
		return user.CompanyProfile{}, err
	}
	if err := e.require(); err != nil {
		return user.CompanyProfile{}, err
	}

	save := e.api.CreateCompany
	if e.Exists() {
		save = e.api.UpdateCompany
	}

	epoch := e.life.Epoch()
	c, err := save(ctx, form)
	if err != nil {
		err = e.settle(ctx, err)
		e.notice.set(err, "Failed to save company profile")
		return user.CompanyProfile{}, err
	}
	if !e.life.AliveAt(epoch) {
		return c, nil
	}

	e.company.Set(c)
	e.mu.Lock()
	e.form = user.CompanyInputFrom(c)
	e.mu.Unlock()
	e.notice.clear()
	return c, nil
}
