package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"jobmatch/internal/domain/skill"
	"jobmatch/internal/repository"
)

func newTestService(t *testing.T) (*Service, *repository.SQLiteStore) {
	t.Helper()
	store, err := repository.OpenSQLiteStore(context.Background(), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewService(store, store).WithCost(bcrypt.MinCost), store
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	acc, err := svc.Register(ctx, RegisterInput{Name: " Ada ", Email: " Ada@Example.com ", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", acc.User.Email)
	assert.Equal(t, "Ada", acc.User.Name)
	assert.Empty(t, acc.User.PasswordHash, "password hash leaked")

	got, err := svc.Login(ctx, LoginInput{Email: "ADA@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, acc.User.ID, got.User.ID)
	assert.False(t, got.HasCompanyProfile)
}

func TestRegister_Rejects(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidInput, "empty email")
	_, err = svc.Register(ctx, RegisterInput{Email: "a@b.c", Password: "short"})
	assert.ErrorIs(t, err, ErrInvalidInput, "short password")

	_, err = svc.Register(ctx, RegisterInput{Email: "a@b.c", Password: "password123"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, RegisterInput{Email: "A@B.C", Password: "password123"})
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, RegisterInput{Email: "a@b.c", Password: "password123"})
	require.NoError(t, err)

	cases := []LoginInput{
		{Email: "a@b.c", Password: "wrong-password"},
		{Email: "nobody@b.c", Password: "password123"},
		{Email: "a@b.c", Password: ""},
		{Email: "", Password: "password123"},
	}
	for _, in := range cases {
		_, err := svc.Login(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidCredentials, "login %+v", in)
	}
}

func TestLogin_ReportsCompanyProfile(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	acc, err := svc.Register(ctx, RegisterInput{Email: "owner@acme.io", Password: "password123"})
	require.NoError(t, err)
	_, err = store.CreateCompany(ctx, repository.CompanyRecord{OwnerID: acc.User.ID, CompanyName: "Acme"})
	require.NoError(t, err)

	got, err := svc.Login(ctx, LoginInput{Email: "owner@acme.io", Password: "password123"})
	require.NoError(t, err)
	assert.True(t, got.HasCompanyProfile)
}

func TestUpdateProfile_SkillsEncoding(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	acc, err := svc.Register(ctx, RegisterInput{Email: "a@b.c", Password: "password123"})
	require.NoError(t, err)

	want := []string{"Go", "SQL"}
	for _, fromForm := range []bool{false, true} {
		u, err := svc.UpdateProfile(ctx, acc.User.ID, ProfileUpdate{Name: "Ada", Skills: want, FromForm: fromForm})
		require.NoError(t, err, "fromForm=%v", fromForm)

		// form uploads store the list as a JSON-encoded string
		isList := len(u.Skills) > 0 && u.Skills[0] == '['
		assert.NotEqual(t, fromForm, isList, "fromForm=%v stored %s", fromForm, u.Skills)
		assert.Equal(t, want, skill.Normalize(u.Skills), "fromForm=%v", fromForm)
	}
}

func TestUpdateProfile_KeepsFilesUnlessReplaced(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	acc, err := svc.Register(ctx, RegisterInput{Email: "a@b.c", Password: "password123"})
	require.NoError(t, err)

	resume := "/media/resumes/1/cv.pdf"
	_, err = svc.UpdateProfile(ctx, acc.User.ID, ProfileUpdate{Name: "Ada", ResumeURL: &resume, FromForm: true})
	require.NoError(t, err)
	u, err := svc.UpdateProfile(ctx, acc.User.ID, ProfileUpdate{Name: "Ada L"})
	require.NoError(t, err)
	require.NotNil(t, u.ResumeURL, "resume url lost")
	assert.Equal(t, resume, *u.ResumeURL)

	_, err = svc.UpdateProfile(ctx, acc.User.ID, ProfileUpdate{Name: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.UpdateProfile(ctx, 999, ProfileUpdate{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}
