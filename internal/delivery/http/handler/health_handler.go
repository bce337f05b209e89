package handler

import (
	"jobmatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	name string
}

func NewHealthHandler(name string) *HealthHandler {
	return &HealthHandler{name: name}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Handle)
}

func (h *HealthHandler) Handle(c fiber.Ctx) error {
	return response.OK(c, fiber.Map{"status": "ok", "app": h.name})
}
