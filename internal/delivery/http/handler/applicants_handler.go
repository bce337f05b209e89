package handler

import (
	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase/marketplace"

	"github.com/gofiber/fiber/v3"
)

type ApplicantsHandler struct {
	svc *marketplace.Service
}

type statusRequest struct {
	Status string `json:"status"`
}

func NewApplicantsHandler(svc *marketplace.Service) *ApplicantsHandler {
	return &ApplicantsHandler{svc: svc}
}

func (h *ApplicantsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/companies/applicants", h.List)
	r.Patch("/companies/applicants/:id", h.UpdateStatus)
}

func (h *ApplicantsHandler) List(c fiber.Ctx) error {
	views, err := h.svc.Applicants(c.Context(), middleware.UserID(c))
	if err != nil {
		return mapMarketplaceError(err)
	}
	return response.OK(c, dto.NewApplicationListResponse(views))
}

func (h *ApplicantsHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req statusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	view, err := h.svc.UpdateStatus(c.Context(), middleware.UserID(c), id, req.Status)
	if err != nil {
		return mapMarketplaceError(err)
	}
	return response.OK(c, dto.NewApplicationResponse(view))
}
