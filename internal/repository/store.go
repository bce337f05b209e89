package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)

type UserRecord struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string

	// Skills is stored as the JSON the profile endpoint serves.
	Skills            json.RawMessage
	Experience        string
	Education         string
	Location          string
	Phone             string
	LinkedIn          string
	Portfolio         string
	ResumeURL         *string
	ProfilePictureURL *string

	CreatedAt time.Time
}

type CompanyRecord struct {
	ID          int64
	OwnerID     int64
	CompanyName string
	Email       string
	Industry    string
	Location    string
	Description string
	LogoURL     *string
	LinkedIn    string
	Portfolio   string
}

type JobRecord struct {
	ID                  int64
	CompanyID           int64
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
	PostedAt            time.Time
}

type ApplicationRecord struct {
	ID          int64
	JobID       int64
	ApplicantID int64
	Status      string
	AppliedAt   time.Time
}

type MessageRecord struct {
	ID            int64
	ApplicationID int64
	SenderID      int64
	Text          string
	Timestamp     time.Time
}

type UserRepository interface {
	CreateUser(ctx context.Context, u UserRecord) (UserRecord, error)
	GetUserByID(ctx context.Context, id int64) (UserRecord, error)
	GetUserByEmail(ctx context.Context, email string) (UserRecord, error)
	UpdateUser(ctx context.Context, u UserRecord) error
}

type CompanyRepository interface {
	CreateCompany(ctx context.Context, c CompanyRecord) (CompanyRecord, error)
	UpdateCompany(ctx context.Context, c CompanyRecord) error
	GetCompanyByOwner(ctx context.Context, ownerID int64) (CompanyRecord, error)
	GetCompanyByID(ctx context.Context, id int64) (CompanyRecord, error)
}

type JobRepository interface {
	CreateJob(ctx context.Context, j JobRecord) (JobRecord, error)
	GetJob(ctx context.Context, id int64) (JobRecord, error)
	ListJobs(ctx context.Context, companyID *int64) ([]JobRecord, error)
}

type ApplicationRepository interface {
	CreateApplication(ctx context.Context, a ApplicationRecord) (ApplicationRecord, error)
	GetApplication(ctx context.Context, id int64) (ApplicationRecord, error)
	ListApplicationsByApplicant(ctx context.Context, applicantID int64) ([]ApplicationRecord, error)
	ListApplicationsByCompany(ctx context.Context, companyID int64) ([]ApplicationRecord, error)
	UpdateApplicationStatus(ctx context.Context, id int64, status string) (ApplicationRecord, error)
}

type MessageRepository interface {
	CreateMessage(ctx context.Context, m MessageRecord) (MessageRecord, error)
	ListMessages(ctx context.Context, applicationID int64) ([]MessageRecord, error)
	MarkRead(ctx context.Context, applicationID, userID int64) error
	UnreadCount(ctx context.Context, applicationID, userID int64) (int, error)
}

// Store is every repository the reference backend needs.
type Store interface {
	UserRepository
	CompanyRepository
	JobRepository
	ApplicationRepository
	MessageRepository
}
