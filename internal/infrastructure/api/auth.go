package api

import (
	"context"
	"net/http"

	"jobmatch/internal/domain/user"
)

func (c *Client) Signup(ctx context.Context, in user.SignupInput) (user.AuthResult, error) {
	var out user.AuthResult
	err := c.do(ctx, call{method: http.MethodPost, path: "/auth/signup/", json: in}, &out)
	return out, err
}

func (c *Client) Login(ctx context.Context, in user.LoginInput) (user.AuthResult, error) {
	var out user.AuthResult
	err := c.do(ctx, call{method: http.MethodPost, path: "/auth/login/", json: in}, &out)
	return out, err
}

func (c *Client) Profile(ctx context.Context) (user.Profile, error) {
	var out user.Profile
	err := c.do(ctx, call{method: http.MethodGet, path: "/auth/profile/", auth: true}, &out)
	return out, err
}

type profilePayload struct {
	Name       string   `json:"name"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`
	Location   string   `json:"location"`
	Phone      string   `json:"phone"`
	LinkedIn   string   `json:"linkedin"`
	Portfolio  string   `json:"portfolio"`
}

// UpdateProfile replaces the job seeker profile. Multipart is used only when
// a resume or picture is attached; skills are then sent as repeated fields.
func (c *Client) UpdateProfile(ctx context.Context, in user.ProfileInput) (user.Profile, error) {
	cl := call{method: http.MethodPut, path: "/auth/update/", auth: true}

	skills := in.Skills
	if skills == nil {
		skills = []string{}
	}
	if in.HasFiles() {
		form := &multipartBody{}
		for _, f := range in.Fields() {
			form.add(f[0], f[1])
		}
		for _, s := range skills {
			form.add("skills", s)
		}
		if in.Resume != nil {
			form.attach("resume", in.Resume.Filename, in.Resume.Content)
		}
		if in.ProfilePicture != nil {
			form.attach("profile_picture", in.ProfilePicture.Filename, in.ProfilePicture.Content)
		}
		cl.form = form
	} else {
		t := in.Trimmed()
		cl.json = profilePayload{
			Name:       t.Name,
			Skills:     skills,
			Experience: t.Experience,
			Education:  t.Education,
			Location:   t.Location,
			Phone:      t.Phone,
			LinkedIn:   t.LinkedIn,
			Portfolio:  t.Portfolio,
		}
	}

	var out user.Profile
	err := c.do(ctx, cl, &out)
	return out, err
}
