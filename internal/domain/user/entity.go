package user

import (
	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/skill"
)

type Type string

const (
	TypeJobSeeker Type = "job_seeker"
	TypeCompany   Type = "company"
)

func (t Type) Valid() bool {
	return t == TypeJobSeeker || t == TypeCompany
}

func ParseType(s string) (Type, bool) {
	t := Type(s)
	return t, t.Valid()
}

// Account is the user summary returned with an access token.
type Account struct {
	ID                int64  `json:"id"`
	Email             string `json:"email"`
	Name              string `json:"name"`
	HasCompanyProfile bool   `json:"has_company_profile"`
}

type AuthResult struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token,omitempty"`
	User         Account `json:"user"`
}

// TypeFor picks the session user type. An explicit choice wins; otherwise
// owning a company profile makes the account a company.
func TypeFor(a Account, explicit Type) Type {
	if explicit.Valid() {
		return explicit
	}
	if a.HasCompanyProfile {
		return TypeCompany
	}
	return TypeJobSeeker
}

type Profile struct {
	ID                int64      `json:"id,omitempty"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Skills            skill.List `json:"skills"`
	Experience        string     `json:"experience"`
	Education         string     `json:"education"`
	Location          string     `json:"location"`
	Phone             string     `json:"phone"`
	LinkedIn          string     `json:"linkedin"`
	Portfolio         string     `json:"portfolio"`
	ResumeURL         *string    `json:"resume_url,omitempty"`
	ProfilePictureURL *string    `json:"profile_picture_url,omitempty"`
}

type CompanyProfile struct {
	ID          int64     `json:"id,omitempty"`
	CompanyName string    `json:"company_name"`
	Email       string    `json:"email"`
	Industry    string    `json:"industry"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	LogoURL     *string   `json:"logo_url,omitempty"`
	LinkedIn    string    `json:"linkedin"`
	Portfolio   string    `json:"portfolio"`
	JobListings []job.Job `json:"job_listings"`
}

// Attachment is a file sent with a multipart mutation.
type Attachment struct {
	Filename string
	Content  []byte
}
