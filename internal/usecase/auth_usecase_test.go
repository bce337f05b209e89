package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmatch/internal/domain/user"
)

func TestAuth_LoginDerivesUserType(t *testing.T) {
	be := newFakeBackend()
	be.auth = user.AuthResult{AccessToken: "jwt", User: user.Account{ID: 1, HasCompanyProfile: true}}
	sess := &fakeSession{}
	uc := NewAuthUsecase(be, sess, nil)

	_, err := uc.Login(context.Background(), user.LoginInput{Email: "a@b.c", Password: "pw"}, "")
	require.NoError(t, err)
	assert.Equal(t, "jwt", sess.token)
	assert.Equal(t, user.TypeCompany, sess.userType)
}

func TestAuth_ExplicitUserTypeWins(t *testing.T) {
	be := newFakeBackend()
	be.auth = user.AuthResult{AccessToken: "jwt", User: user.Account{ID: 1, HasCompanyProfile: true}}
	sess := &fakeSession{}
	uc := NewAuthUsecase(be, sess, nil)

	_, err := uc.Signup(context.Background(), user.SignupInput{Name: "A", Email: "a@b.c", Password: "pw"}, user.TypeJobSeeker)
	require.NoError(t, err)
	assert.Equal(t, user.TypeJobSeeker, sess.userType)
}

func TestAuth_InvalidInputSkipsBackend(t *testing.T) {
	be := newFakeBackend()
	uc := NewAuthUsecase(be, &fakeSession{}, nil)

	_, err := uc.Login(context.Background(), user.LoginInput{Email: "", Password: "pw"}, "")
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "Email is required", Describe(err, "x"))
	assert.Zero(t, be.count("Login"))
}

func TestAuth_FailedLoginLeavesSessionEmpty(t *testing.T) {
	be := newFakeBackend()
	be.fail("Login", unauthorized)
	sess := &fakeSession{}
	uc := NewAuthUsecase(be, sess, nil)

	_, err := uc.Login(context.Background(), user.LoginInput{Email: "a@b.c", Password: "bad"}, "")
	require.Error(t, err)
	assert.False(t, sess.IsAuthenticated())
}

func TestAuth_MissingTokenInResponse(t *testing.T) {
	be := newFakeBackend()
	sess := &fakeSession{}
	uc := NewAuthUsecase(be, sess, nil)

	_, err := uc.Login(context.Background(), user.LoginInput{Email: "a@b.c", Password: "pw"}, "")
	require.Error(t, err)
	assert.False(t, sess.IsAuthenticated())
}

func TestAuth_LogoutPreemptsProtectedFetch(t *testing.T) {
	be := newFakeBackend()
	sess := loggedIn(user.TypeJobSeeker)
	auth := NewAuthUsecase(be, sess, nil)
	dash := NewSeekerDashboard(be, sess, nil)

	require.NoError(t, auth.Logout(context.Background()))
	assert.ErrorIs(t, auth.RequireSession(), ErrLoginRequired)
	assert.ErrorIs(t, dash.Mount(context.Background()), ErrLoginRequired)
	assert.Zero(t, be.count("Profile"), "no network call after logout")
}

func TestGate_UnauthorizedClearsSession(t *testing.T) {
	be := newFakeBackend()
	be.fail("Applicants", unauthorized)
	sess := loggedIn(user.TypeCompany)
	a := NewApplicants(be, sess, nil)

	assert.ErrorIs(t, a.Mount(context.Background()), ErrLoginRequired)
	assert.False(t, sess.IsAuthenticated())
	assert.Equal(t, 1, sess.clears)
}
