package usecase

import (
	"context"
	"log"
	"strings"
	"sync"

	"jobmatch/internal/domain/skill"
	"jobmatch/internal/domain/user"
	"jobmatch/internal/state"
)

type ProfileAPI interface {
	Profile(ctx context.Context) (user.Profile, error)
	UpdateProfile(ctx context.Context, in user.ProfileInput) (user.Profile, error)
}

// ProfileEditor is the job seeker edit form. Submission replaces the whole
// profile; a failure keeps the form as typed.
type ProfileEditor struct {
	gate
	api ProfileAPI

	life    state.Lifecycle
	profile *state.Resource[user.Profile]

	mu         sync.Mutex
	form       user.ProfileInput
	submitting bool
	notice     notice
}

func NewProfileEditor(api ProfileAPI, sess SessionStore, logger *log.Logger) *ProfileEditor {
	e := &ProfileEditor{gate: gate{sess: sess, logger: logger}, api: api}
	e.profile = state.NewResource[user.Profile](&e.life)
	return e
}

// Mount loads the current profile into the form.
func (e *ProfileEditor) Mount(ctx context.Context) error {
	if err := e.require(); err != nil {
		return err
	}
	e.life.Mount()

	committed, err := load(ctx, e.gate, e.profile, e.api.Profile)
	if err != nil {
		e.life.Unmount()
		return requiredFailed(err)
	}
	if committed {
		p, _ := e.profile.Value()
		e.mu.Lock()
		e.form = user.ProfileInputFrom(p)
		e.mu.Unlock()
	}
	return nil
}

func (e *ProfileEditor) Unmount() {
	e.life.Unmount()
}

func (e *ProfileEditor) Form() user.ProfileInput {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.form
}

func (e *ProfileEditor) Edit(fn func(*user.ProfileInput)) {
	e.mu.Lock()
	fn(&e.form)
	e.mu.Unlock()
}

// SetSkillsText fills skills from comma separated input.
func (e *ProfileEditor) SetSkillsText(text string) {
	e.Edit(func(in *user.ProfileInput) { in.Skills = skill.ParseInput(text) })
}

func (e *ProfileEditor) Submitting() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.submitting
}

func (e *ProfileEditor) Profile() (user.Profile, bool) {
	return e.profile.Value()
}

func (e *ProfileEditor) Error() string {
	return e.notice.String()
}

func (e *ProfileEditor) Submit(ctx context.Context) (user.Profile, error) {
	e.mu.Lock()
	if e.submitting {
		e.mu.Unlock()
		return user.Profile{}, invalid("An update is already in progress")
	}
	form := e.form
	e.submitting = true
	e.mu.Unlock()
	defer e.setSubmitting(false)

	if strings.TrimSpace(form.Name) == "" {
		err := invalid("Name is required")
		e.notice.set(err, "")
		return user.Profile{}, err
	}
	if err := e.require(); err != nil {
		return user.Profile{}, err
	}

	epoch := e.life.Epoch()
	p, err := e.api.UpdateProfile(ctx, form)

	if err != nil {
		err = e.settle(ctx, err)
		e.notice.set(err, "Failed to update profile")
		e.logf("[Profile] update error: %v", err)
		return user.Profile{}, err
	}
	if !e.life.AliveAt(epoch) {
		return p, nil
	}

	e.profile.Set(p)
	e.mu.Lock()
	e.form = user.ProfileInputFrom(p)
	e.mu.Unlock()
	e.notice.clear()
	return p, nil
}

func (e *ProfileEditor) setSubmitting(v bool) {
	e.mu.Lock()
	e.submitting = v
	e.mu.Unlock()
}
