package user

import "strings"

// ProfileInput is the full edit form for a job seeker. Every field is sent
// on submit; the server response replaces the cached profile.
type ProfileInput struct {
	Name       string
	Skills     []string
	Experience string
	Education  string
	Location   string
	Phone      string
	LinkedIn   string
	Portfolio  string

	Resume         *Attachment
	ProfilePicture *Attachment
}

func (in ProfileInput) HasFiles() bool {
	return in.Resume != nil || in.ProfilePicture != nil
}

// Trimmed returns the input with surrounding whitespace removed from the
// single-line fields. Experience and education are free text and kept as is.
func (in ProfileInput) Trimmed() ProfileInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Location = strings.TrimSpace(in.Location)
	in.Phone = strings.TrimSpace(in.Phone)
	in.LinkedIn = strings.TrimSpace(in.LinkedIn)
	in.Portfolio = strings.TrimSpace(in.Portfolio)
	return in
}

// Fields returns the scalar form fields in submission order.
func (in ProfileInput) Fields() [][2]string {
	t := in.Trimmed()
	return [][2]string{
		{"name", t.Name},
		{"experience", t.Experience},
		{"education", t.Education},
		{"location", t.Location},
		{"phone", t.Phone},
		{"linkedin", t.LinkedIn},
		{"portfolio", t.Portfolio},
	}
}

func ProfileInputFrom(p Profile) ProfileInput {
	return ProfileInput{
		Name:       p.Name,
		Skills:     append([]string(nil), p.Skills.Strings()...),
		Experience: p.Experience,
		Education:  p.Education,
		Location:   p.Location,
		Phone:      p.Phone,
		LinkedIn:   p.LinkedIn,
		Portfolio:  p.Portfolio,
	}
}

type CompanyInput struct {
	CompanyName string
	Email       string
	Industry    string
	Location    string
	Description string
	LinkedIn    string
	Portfolio   string

	Logo *Attachment
}

func (in CompanyInput) HasFiles() bool {
	return in.Logo != nil
}

func (in CompanyInput) Fields() [][2]string {
	return [][2]string{
		{"company_name", strings.TrimSpace(in.CompanyName)},
		{"email", strings.TrimSpace(in.Email)},
		{"industry", strings.TrimSpace(in.Industry)},
		{"location", strings.TrimSpace(in.Location)},
		{"description", in.Description},
		{"linkedin", strings.TrimSpace(in.LinkedIn)},
		{"portfolio", strings.TrimSpace(in.Portfolio)},
	}
}

func CompanyInputFrom(c CompanyProfile) CompanyInput {
	return CompanyInput{
		CompanyName: c.CompanyName,
		Email:       c.Email,
		Industry:    c.Industry,
		Location:    c.Location,
		Description: c.Description,
		LinkedIn:    c.LinkedIn,
		Portfolio:   c.Portfolio,
	}
}

type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
