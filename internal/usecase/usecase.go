package usecase

import (
	"context"
	"errors"
	"log"
	"sync"

	"jobmatch/internal/domain/user"
	"jobmatch/internal/infrastructure/api"
	"jobmatch/internal/state"
)

var (
	// ErrLoginRequired means the caller must send the user to the login
	// entry point. The session has already been cleared when the backend
	// rejected the token.
	ErrLoginRequired = errors.New("login required")
	ErrInvalidInput  = errors.New("invalid input")
)

// InputError is a validation failure the user can correct and resubmit.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return e.Msg }

func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }

func invalid(msg string) error {
	return &InputError{Msg: msg}
}

// Describe turns an operation error into the text a view shows.
func Describe(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var in *InputError
	if errors.As(err, &in) {
		return in.Msg
	}
	if errors.Is(err, ErrLoginRequired) {
		return "Your session has ended. Please log in again."
	}
	return api.Message(err, fallback)
}

// SessionStore is the part of the session the views use.
type SessionStore interface {
	IsAuthenticated() bool
	UserType() user.Type
	SetSession(ctx context.Context, token string, userType user.Type) error
	Clear(ctx context.Context) error
}

type gate struct {
	sess   SessionStore
	logger *log.Logger
}

func (g gate) require() error {
	if g.sess == nil || !g.sess.IsAuthenticated() {
		return ErrLoginRequired
	}
	return nil
}

// settle maps a rejected token to a cleared session and ErrLoginRequired.
// Other errors pass through.
func (g gate) settle(ctx context.Context, err error) error {
	if err == nil || !api.IsUnauthorized(err) {
		return err
	}
	if g.sess != nil {
		if cErr := g.sess.Clear(ctx); cErr != nil {
			g.logf("[Usecase] clear session error: %v", cErr)
		}
	}
	g.logf("[Usecase] session rejected by backend, login required")
	return ErrLoginRequired
}

func (g gate) logf(format string, args ...any) {
	if g.logger != nil {
		g.logger.Printf(format, args...)
	}
}

// load refreshes r through fetch behind the session gate.
func load[T any](ctx context.Context, g gate, r *state.Resource[T], fetch func(context.Context) (T, error), guards ...func() bool) (bool, error) {
	if err := g.require(); err != nil {
		return false, err
	}
	committed, err := r.Refresh(ctx, fetch, guards...)
	return committed, g.settle(ctx, err)
}

// notice is the inline error text of a view.
type notice struct {
	mu   sync.Mutex
	text string
}

func (n *notice) set(err error, fallback string) {
	n.mu.Lock()
	n.text = Describe(err, fallback)
	n.mu.Unlock()
}

func (n *notice) clear() {
	n.mu.Lock()
	n.text = ""
	n.mu.Unlock()
}

func (n *notice) String() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.text
}

func valueOr[T any](r *state.Resource[T], def T) T {
	v, ok := r.Value()
	if !ok {
		return def
	}
	return v
}
