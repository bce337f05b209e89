package handler

import (
	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase/marketplace"

	"github.com/gofiber/fiber/v3"
)

type MessageHandler struct {
	svc *marketplace.Service
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

func NewMessageHandler(svc *marketplace.Service) *MessageHandler {
	return &MessageHandler{svc: svc}
}

func (h *MessageHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/applications/:id/messages", h.List)
	r.Post("/applications/:id/messages", h.Send)
	r.Post("/applications/:id/mark-read", h.MarkRead)
	r.Get("/messages/threads", h.Threads)
	r.Get("/messages/unread-count", h.UnreadCount)
}

func (h *MessageHandler) List(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	views, err := h.svc.Messages(c.Context(), middleware.UserID(c), id)
	if err != nil {
		return mapMarketplaceError(err)
	}
	return response.OK(c, dto.NewMessageListResponse(views))
}

func (h *MessageHandler) Send(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req sendMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	view, err := h.svc.SendMessage(c.Context(), middleware.UserID(c), id, req.Text)
	if err != nil {
		return mapMarketplaceError(err)
	}
	return response.Created(c, dto.NewMessageResponse(view))
}

func (h *MessageHandler) MarkRead(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.MarkRead(c.Context(), middleware.UserID(c), id); err != nil {
		return mapMarketplaceError(err)
	}
	return response.Success(c, fiber.StatusNoContent, nil)
}

func (h *MessageHandler) Threads(c fiber.Ctx) error {
	views, err := h.svc.Threads(c.Context(), middleware.UserID(c))
	if err != nil {
		return mapMarketplaceError(err)
	}
	return response.OK(c, dto.NewThreadListResponse(views))
}

func (h *MessageHandler) UnreadCount(c fiber.Ctx) error {
	n, err := h.svc.UnreadCount(c.Context(), middleware.UserID(c))
	if err != nil {
		return mapMarketplaceError(err)
	}
	return response.OK(c, dto.UnreadCountResponse{UnreadCount: n})
}
