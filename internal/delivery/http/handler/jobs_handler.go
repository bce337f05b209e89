package handler

import (
	"strconv"
	"strings"

	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase/marketplace"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	svc *marketplace.Service
}

type postJobRequest struct {
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

func NewJobsHandler(svc *marketplace.Service) *JobsHandler {
	return &JobsHandler{svc: svc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs", h.HandleListJobs)
	r.Post("/jobs/post", h.HandlePostJob)
	r.Get("/jobs/my-applications", h.HandleMyApplications)
	r.Post("/jobs/:id/apply", h.HandleApply)
}

// HandleListJobs lists every open job, or one company's jobs when
// company_id is given.
func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	var companyID *int64
	if raw := strings.TrimSpace(c.Query("company_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return middleware.NewFieldError("company_id", "A valid integer is required.", err)
		}
		companyID = &id
	}

	views, err := h.svc.Jobs(c.Context(), companyID)
	if err != nil {
		return mapMarketplaceError(err)
	}
	return response.OK(c, dto.NewJobListResponse(views))
}

func (h *JobsHandler) HandlePostJob(c fiber.Ctx) error {
	var req postJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	view, err := h.svc.PostJob(c.Context(), middleware.UserID(c), marketplace.PostingInput{
		Title:               req.Title,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Benefits:            req.Benefits,
		Location:            req.Location,
		IsRemote:            req.IsRemote,
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		SalaryType:          req.SalaryType,
		EmploymentType:      req.EmploymentType,
		ExperienceLevel:     req.ExperienceLevel,
		ApplicationDeadline: req.ApplicationDeadline,
	})
	if err != nil {
		return mapMarketplaceError(err)
	}
	return response.Created(c, dto.NewJobResponse(view))
}

func (h *JobsHandler) HandleApply(c fiber.Ctx) error {
	jobID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	view, err := h.svc.Apply(c.Context(), middleware.UserID(c), jobID)
	if err != nil {
		return mapMarketplaceError(err)
	}
	return response.Created(c, dto.NewApplicationResponse(view))
}

func (h *JobsHandler) HandleMyApplications(c fiber.Ctx) error {
	views, err := h.svc.MyApplications(c.Context(), middleware.UserID(c))
	if err != nil {
		return mapMarketplaceError(err)
	}
	return response.OK(c, dto.NewApplicationListResponse(views))
}
