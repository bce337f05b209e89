package auth

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"jobmatch/internal/repository"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrNotFound               = errors.New("not found")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// Account is an authenticated user plus what the login payload reports
// about them.
type Account struct {
	User              repository.UserRecord
	HasCompanyProfile bool
}

// ProfileUpdate replaces every editable profile field. Uploaded file URLs
// are only replaced when set.
type ProfileUpdate struct {
	Name       string
	Skills     []string
	Experience string
	Education  string
	Location   string
	Phone      string
	LinkedIn   string
	Portfolio  string

	// FromForm marks a multipart submission. Skills from a form are stored
	// as an encoded string, the way the form-data parser hands them over.
	FromForm bool

	ResumeURL         *string
	ProfilePictureURL *string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (Account, error)
	Login(ctx context.Context, in LoginInput) (Account, error)
	Profile(ctx context.Context, userID int64) (repository.UserRecord, error)
	UpdateProfile(ctx context.Context, userID int64, in ProfileUpdate) (repository.UserRecord, error)
}

type Service struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	cost      int
}

func NewService(users repository.UserRepository, companies repository.CompanyRepository) *Service {
	return &Service{users: users, companies: companies, cost: bcrypt.DefaultCost}
}

// WithCost overrides the bcrypt cost; tests use bcrypt.MinCost.
func (s *Service) WithCost(cost int) *Service {
	s.cost = cost
	return s
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Account, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return Account{}, ErrInvalidInput
	}
	if !isValidPassword(in.Password) {
		return Account{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return Account{}, ErrInternal
	}

	created, err := s.users.CreateUser(ctx, repository.UserRecord{
		Email:        email,
		Name:         strings.TrimSpace(in.Name),
		PasswordHash: string(hash),
		Skills:       json.RawMessage("[]"),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return Account{}, ErrEmailAlreadyRegistered
		}
		return Account{}, ErrInternal
	}
	return Account{User: sanitizeUser(created)}, nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (Account, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return Account{}, ErrInvalidCredentials
	}
	if in.Password == "" {
		return Account{}, ErrInvalidCredentials
	}

	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Account{}, ErrInvalidCredentials
		}
		return Account{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return Account{}, ErrInvalidCredentials
	}

	hasCompany := false
	if _, err := s.companies.GetCompanyByOwner(ctx, u.ID); err == nil {
		hasCompany = true
	} else if !errors.Is(err, repository.ErrNotFound) {
		return Account{}, ErrInternal
	}
	return Account{User: sanitizeUser(u), HasCompanyProfile: hasCompany}, nil
}

func (s *Service) Profile(ctx context.Context, userID int64) (repository.UserRecord, error) {
	u, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.UserRecord{}, ErrNotFound
		}
		return repository.UserRecord{}, ErrInternal
	}
	return sanitizeUser(u), nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, in ProfileUpdate) (repository.UserRecord, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return repository.UserRecord{}, ErrInvalidInput
	}

	u, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.UserRecord{}, ErrNotFound
		}
		return repository.UserRecord{}, ErrInternal
	}

	skills, err := encodeSkills(in.Skills, in.FromForm)
	if err != nil {
		return repository.UserRecord{}, ErrInternal
	}

	u.Name = name
	u.Skills = skills
	u.Experience = in.Experience
	u.Education = in.Education
	u.Location = strings.TrimSpace(in.Location)
	u.Phone = strings.TrimSpace(in.Phone)
	u.LinkedIn = strings.TrimSpace(in.LinkedIn)
	u.Portfolio = strings.TrimSpace(in.Portfolio)
	if in.ResumeURL != nil {
		u.ResumeURL = in.ResumeURL
	}
	if in.ProfilePictureURL != nil {
		u.ProfilePictureURL = in.ProfilePictureURL
	}

	if err := s.users.UpdateUser(ctx, u); err != nil {
		return repository.UserRecord{}, ErrInternal
	}
	return sanitizeUser(u), nil
}

// encodeSkills stores JSON submissions as a list. Form submissions end up
// as a string holding an encoded string holding the list, which is what
// clients of this API have to cope with.
func encodeSkills(skills []string, fromForm bool) (json.RawMessage, error) {
	if skills == nil {
		skills = []string{}
	}
	b, err := json.Marshal(skills)
	if err != nil {
		return nil, err
	}
	if !fromForm {
		return b, nil
	}
	for i := 0; i < 2; i++ {
		if b, err = json.Marshal(string(b)); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}

func isValidPassword(pw string) bool {
	pw = strings.TrimSpace(pw)
	if len(pw) < 8 {
		return false
	}
	return true
}

func sanitizeUser(u repository.UserRecord) repository.UserRecord {
	u.PasswordHash = ""
	return u
}

var _ AuthUsecase = (*Service)(nil)
