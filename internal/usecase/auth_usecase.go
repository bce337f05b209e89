package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"jobmatch/internal/domain/user"
)

type AuthAPI interface {
	Signup(ctx context.Context, in user.SignupInput) (user.AuthResult, error)
	Login(ctx context.Context, in user.LoginInput) (user.AuthResult, error)
}

// Auth is the single writer of the session.
type Auth struct {
	gate
	api AuthAPI
}

func NewAuthUsecase(api AuthAPI, sess SessionStore, logger *log.Logger) *Auth {
	return &Auth{gate: gate{sess: sess, logger: logger}, api: api}
}

// Signup registers and logs in. as picks the user type; pass "" to derive it
// from the returned account.
func (u *Auth) Signup(ctx context.Context, in user.SignupInput, as user.Type) (user.AuthResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" {
		return user.AuthResult{}, invalid("Name is required")
	}
	if err := validateCredentials(in.Email, in.Password); err != nil {
		return user.AuthResult{}, err
	}

	res, err := u.api.Signup(ctx, in)
	if err != nil {
		return user.AuthResult{}, err
	}
	return res, u.begin(ctx, res, as)
}

func (u *Auth) Login(ctx context.Context, in user.LoginInput, as user.Type) (user.AuthResult, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := validateCredentials(in.Email, in.Password); err != nil {
		return user.AuthResult{}, err
	}

	res, err := u.api.Login(ctx, in)
	if err != nil {
		return user.AuthResult{}, err
	}
	return res, u.begin(ctx, res, as)
}

func (u *Auth) begin(ctx context.Context, res user.AuthResult, as user.Type) error {
	if res.AccessToken == "" {
		return errors.New("auth response without access token")
	}
	t := user.TypeFor(res.User, as)
	if err := u.sess.SetSession(ctx, res.AccessToken, t); err != nil {
		return err
	}
	u.logf("[Auth] logged in user_id=%d user_type=%s", res.User.ID, t)
	return nil
}

func (u *Auth) Logout(ctx context.Context) error {
	return u.sess.Clear(ctx)
}

// RequireSession is the proactive check views run before any protected
// fetch.
func (u *Auth) RequireSession() error {
	return u.require()
}

func validateCredentials(email, password string) error {
	if email == "" {
		return invalid("Email is required")
	}
	if !strings.Contains(email, "@") {
		return invalid("Enter a valid email address")
	}
	if password == "" {
		return invalid("Password is required")
	}
	return nil
}
