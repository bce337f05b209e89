package dto

import (
	"encoding/json"

	"jobmatch/internal/repository"
	ucauth "jobmatch/internal/usecase/auth"
)

type AccountResponse struct {
	ID                int64  `json:"id"`
	Email             string `json:"email"`
	Name              string `json:"name"`
	HasCompanyProfile bool   `json:"has_company_profile"`
}

type AuthResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	User         AccountResponse `json:"user"`
}

func NewAuthResponse(acc ucauth.Account, access, refresh string) AuthResponse {
	return AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User: AccountResponse{
			ID:                acc.User.ID,
			Email:             acc.User.Email,
			Name:              acc.User.Name,
			HasCompanyProfile: acc.HasCompanyProfile,
		},
	}
}

// ProfileResponse serves skills exactly as stored, which may be an encoded
// string rather than a list.
type ProfileResponse struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Skills            json.RawMessage `json:"skills"`
	Experience        string          `json:"experience"`
	Education         string          `json:"education"`
	Location          string          `json:"location"`
	Phone             string          `json:"phone"`
	LinkedIn          string          `json:"linkedin"`
	Portfolio         string          `json:"portfolio"`
	ResumeURL         *string         `json:"resume_url"`
	ProfilePictureURL *string         `json:"profile_picture_url"`
}

func NewProfileResponse(u repository.UserRecord) ProfileResponse {
	skills := u.Skills
	if len(skills) == 0 {
		skills = json.RawMessage("[]")
	}
	return ProfileResponse{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		Skills:            skills,
		Experience:        u.Experience,
		Education:         u.Education,
		Location:          u.Location,
		Phone:             u.Phone,
		LinkedIn:          u.LinkedIn,
		Portfolio:         u.Portfolio,
		ResumeURL:         u.ResumeURL,
		ProfilePictureURL: u.ProfilePictureURL,
	}
}
