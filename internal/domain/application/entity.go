package application

import (
	"time"

	"jobmatch/internal/domain/skill"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusReviewed Status = "Reviewed"
	StatusAccepted Status = "Accepted"
	StatusRejected Status = "Rejected"
)

var Statuses = []Status{StatusPending, StatusReviewed, StatusAccepted, StatusRejected}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Applicant is the job seeker side of an application as shown to companies.
type Applicant struct {
	ID                int64      `json:"id"`
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

type Application struct {
	ID        int64     `json:"id"`
	Job       int64     `json:"job"`
	JobTitle  string    `json:"job_title"`
	Applicant Applicant `json:"applicant"`
	Status    Status    `json:"status"`
	AppliedAt time.Time `json:"applied_at"`
}
