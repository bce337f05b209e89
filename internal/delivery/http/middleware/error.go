package middleware

import (
	"errors"
	"io"
	"log"

	"jobmatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type AppError struct {
	StatusCode int
	Message    string
	// Fields, when set, is rendered instead of Message as a 400 body.
	Fields response.FieldErrors
	Cause  error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Cause: cause}
}

func NewFieldError(field, message string, cause error) *AppError {
	return &AppError{
		StatusCode: fiber.StatusBadRequest,
		Message:    field + ": " + message,
		Fields:     response.FieldErrors{field: {message}},
		Cause:      cause,
	}
}

type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("[HTTP] panic recovered path=%s: %v", c.Path(), r)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) && len(appErr.Fields) > 0 {
			return response.Fields(c, appErr.Fields)
		}

		status, msg := normalizeError(err)
		if status >= 500 {
			m.logger.Printf("[HTTP] error path=%s: %v", c.Path(), err)
		}
		return response.Error(c, status, msg)
	}
}

func normalizeError(err error) (int, string) {
	if err == nil {
		return fiber.StatusInternalServerError, response.MessageInternalServerError
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.StatusCode <= 0 || appErr.StatusCode >= 500 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError
		}
		return appErr.StatusCode, appErr.Message
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError
		}
		// fiber's own messages ("Not Found", "Cannot GET /x") are replaced
		// with the API's wording.
		return status, response.DefaultMessage(status)
	}

	return fiber.StatusInternalServerError, response.MessageInternalServerError
}
