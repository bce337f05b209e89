package dto

import (
	"time"

	"jobmatch/internal/usecase/marketplace"
)

type ApplicationResponse struct {
	ID        int64           `json:"id"`
	Job       int64           `json:"job"`
	JobTitle  string          `json:"job_title"`
	Applicant ProfileResponse `json:"applicant"`
	Status    string          `json:"status"`
	AppliedAt time.Time       `json:"applied_at"`
}

func NewApplicationResponse(v marketplace.ApplicationView) ApplicationResponse {
	return ApplicationResponse{
		ID:        v.Application.ID,
		Job:       v.Job.ID,
		JobTitle:  v.Job.Title,
		Applicant: NewProfileResponse(v.Applicant),
		Status:    v.Application.Status,
		AppliedAt: v.Application.AppliedAt,
	}
}

func NewApplicationListResponse(views []marketplace.ApplicationView) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(views))
	for _, v := range views {
		out = append(out, NewApplicationResponse(v))
	}
	return out
}
