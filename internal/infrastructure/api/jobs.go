package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"jobmatch/internal/domain/application"
	"jobmatch/internal/domain/job"
)

// Jobs lists open jobs, or only one company's jobs when companyID is set.
func (c *Client) Jobs(ctx context.Context, companyID *int64) ([]job.Job, error) {
	cl := call{method: http.MethodGet, path: "/jobs/", auth: true}
	if companyID != nil {
		cl.query = url.Values{"company_id": {strconv.FormatInt(*companyID, 10)}}
	}
	var out []job.Job
	if err := c.do(ctx, cl, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PostJob(ctx context.Context, p job.Posting) (job.Job, error) {
	if p.Requirements == nil {
		p.Requirements = []string{}
	}
	if p.Benefits == nil {
		p.Benefits = []string{}
	}
	var out job.Job
	err := c.do(ctx, call{method: http.MethodPost, path: "/jobs/post/", json: p, auth: true}, &out)
	return out, err
}

func (c *Client) Apply(ctx context.Context, jobID int64) (application.Application, error) {
	var out application.Application
	err := c.do(ctx, call{method: http.MethodPost, path: fmt.Sprintf("/jobs/%d/apply/", jobID), json: struct{}{}, auth: true}, &out)
	return out, err
}

func (c *Client) MyApplications(ctx context.Context) ([]application.Application, error) {
	var out []application.Application
	if err := c.do(ctx, call{method: http.MethodGet, path: "/jobs/my-applications/", auth: true}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Applicants(ctx context.Context) ([]application.Application, error) {
	var out []application.Application
	if err := c.do(ctx, call{method: http.MethodGet, path: "/companies/applicants/", auth: true}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type statusPayload struct {
	Status application.Status `json:"status"`
}

func (c *Client) UpdateApplicationStatus(ctx context.Context, applicationID int64, status application.Status) (application.Application, error) {
	var out application.Application
	err := c.do(ctx, call{
		method: http.MethodPatch,
		path:   fmt.Sprintf("/companies/applicants/%d/", applicationID),
		json:   statusPayload{Status: status},
		auth:   true,
	}, &out)
	return out, err
}
