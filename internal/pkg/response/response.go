// Package response writes the backend's wire shapes: resources are sent
// bare, failures as {"detail": "..."} or a map of field errors.
package response

import "github.com/gofiber/fiber/v3"

type Detail struct {
	Detail string `json:"detail"`
}

// FieldErrors maps a request field to its validation messages.
type FieldErrors map[string][]string

const (
	MessageBadRequest          = "Bad request."
	MessageUnauthorized        = "Authentication credentials were not provided."
	MessageForbidden           = "You do not have permission to perform this action."
	MessageNotFound            = "Not found."
	MessageConflict            = "Conflict."
	MessageMethodNotAllowed    = "Method not allowed."
	MessageInternalServerError = "A server error occurred."
	MessageError               = "Error."
)

func OK(c fiber.Ctx, data any) error {
	return Success(c, fiber.StatusOK, data)
}

func Created(c fiber.Ctx, data any) error {
	return Success(c, fiber.StatusCreated, data)
}

func Success(c fiber.Ctx, status int, data any) error {
	st := normalizeStatus(status)
	if data == nil {
		return c.SendStatus(st)
	}
	return c.Status(st).JSON(data)
}

func Error(c fiber.Ctx, status int, message string) error {
	st := normalizeStatus(status)
	return c.Status(st).JSON(Detail{Detail: normalizeMessage(message, st)})
}

func Fields(c fiber.Ctx, errs FieldErrors) error {
	return c.Status(fiber.StatusBadRequest).JSON(errs)
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func normalizeMessage(message string, status int) string {
	if message != "" {
		return message
	}
	return DefaultMessage(status)
}

func DefaultMessage(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	case fiber.StatusForbidden:
		return MessageForbidden
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusMethodNotAllowed:
		return MessageMethodNotAllowed
	case fiber.StatusConflict:
		return MessageConflict
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageError
	}
}
