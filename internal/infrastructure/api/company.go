package api

import (
	"context"
	"net/http"

	"jobmatch/internal/domain/user"
)

func (c *Client) MyCompany(ctx context.Context) (user.CompanyProfile, error) {
	var out user.CompanyProfile
	err := c.do(ctx, call{method: http.MethodGet, path: "/companies/my-profile/", auth: true}, &out)
	return out, err
}

func (c *Client) CreateCompany(ctx context.Context, in user.CompanyInput) (user.CompanyProfile, error) {
	return c.saveCompany(ctx, http.MethodPost, "/companies/create/", in)
}

func (c *Client) UpdateCompany(ctx context.Context, in user.CompanyInput) (user.CompanyProfile, error) {
	return c.saveCompany(ctx, http.MethodPut, "/companies/update/", in)
}

func (c *Client) saveCompany(ctx context.Context, method, path string, in user.CompanyInput) (user.CompanyProfile, error) {
	cl := call{method: method, path: path, auth: true}
	if in.HasFiles() {
		form := &multipartBody{}
		for _, f := range in.Fields() {
			form.add(f[0], f[1])
		}
		form.attach("logo", in.Logo.Filename, in.Logo.Content)
		cl.form = form
	} else {
		payload := map[string]string{}
		for _, f := range in.Fields() {
			payload[f[0]] = f[1]
		}
		cl.json = payload
	}

	var out user.CompanyProfile
	err := c.do(ctx, cl, &out)
	return out, err
}
