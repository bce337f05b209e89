package dto

import (
	"time"

	"jobmatch/internal/repository"
	"jobmatch/internal/usecase/marketplace"
)

type CompanyResponse struct {
	ID          int64         `json:"id"`
	CompanyName string        `json:"company_name"`
	Email       string        `json:"email"`
	Industry    string        `json:"industry"`
	Location    string        `json:"location"`
	Description string        `json:"description"`
	LogoURL     *string       `json:"logo_url"`
	LinkedIn    string        `json:"linkedin"`
	Portfolio   string        `json:"portfolio"`
	JobListings []JobResponse `json:"job_listings"`
}

func NewCompanyResponse(c repository.CompanyRecord, jobs []repository.JobRecord) CompanyResponse {
	listings := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		listings = append(listings, NewJobResponse(marketplace.JobView{Job: j, Company: c}))
	}
	return CompanyResponse{
		ID:          c.ID,
		CompanyName: c.CompanyName,
		Email:       c.Email,
		Industry:    c.Industry,
		Location:    c.Location,
		Description: c.Description,
		LogoURL:     c.LogoURL,
		LinkedIn:    c.LinkedIn,
		Portfolio:   c.Portfolio,
		JobListings: listings,
	}
}

type CompanyInfo struct {
	ID          int64   `json:"id"`
	CompanyName string  `json:"company_name"`
	Industry    string  `json:"industry"`
	Location    string  `json:"location"`
	LogoURL     *string `json:"logo_url"`
}

type JobResponse struct {
	ID                  int64       `json:"id"`
	Title               string      `json:"title"`
	Description         string      `json:"description"`
	Requirements        []string    `json:"requirements"`
	Benefits            []string    `json:"benefits"`
	Location            string      `json:"location"`
	IsRemote            bool        `json:"is_remote"`
	SalaryMin           *int        `json:"salary_min"`
	SalaryMax           *int        `json:"salary_max"`
	SalaryType          string      `json:"salary_type"`
	EmploymentType      string      `json:"employment_type"`
	ExperienceLevel     string      `json:"experience_level"`
	ApplicationDeadline *string     `json:"application_deadline"`
	Company             int64       `json:"company"`
	CompanyInfo         CompanyInfo `json:"company_info"`
	PostedAt            time.Time   `json:"posted_at"`
}

func NewJobResponse(v marketplace.JobView) JobResponse {
	j, c := v.Job, v.Company
	return JobResponse{
		ID:                  j.ID,
		Title:               j.Title,
		Description:         j.Description,
		Requirements:        orEmpty(j.Requirements),
		Benefits:            orEmpty(j.Benefits),
		Location:            j.Location,
		IsRemote:            j.IsRemote,
		SalaryMin:           j.SalaryMin,
		SalaryMax:           j.SalaryMax,
		SalaryType:          j.SalaryType,
		EmploymentType:      j.EmploymentType,
		ExperienceLevel:     j.ExperienceLevel,
		ApplicationDeadline: j.ApplicationDeadline,
		Company:             c.ID,
		CompanyInfo: CompanyInfo{
			ID:          c.ID,
			CompanyName: c.CompanyName,
			Industry:    c.Industry,
			Location:    c.Location,
			LogoURL:     c.LogoURL,
		},
		PostedAt: j.PostedAt,
	}
}

func NewJobListResponse(views []marketplace.JobView) []JobResponse {
	out := make([]JobResponse, 0, len(views))
	for _, v := range views {
		out = append(out, NewJobResponse(v))
	}
	return out
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
