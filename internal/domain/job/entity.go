package job

import "time"

type CompanyInfo struct {
	ID          int64   `json:"id,omitempty"`
	CompanyName string  `json:"company_name"`
	Industry    string  `json:"industry,omitempty"`
	Location    string  `json:"location,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`
}

type Job struct {
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

// Posting is the create-only payload of a new job.
type Posting struct {
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Location            string   `json:"location"`
	IsRemote            bool     `json:"is_remote"`
	Requirements        []string `json:"requirements"`
	Benefits            []string `json:"benefits"`
	SalaryMin           *int     `json:"salary_min"`
	SalaryMax           *int     `json:"salary_max"`
	SalaryType          string   `json:"salary_type"`
	EmploymentType      string   `json:"employment_type"`
	ExperienceLevel     string   `json:"experience_level"`
	ApplicationDeadline *string  `json:"application_deadline"`
}
