package handler

import (
	"errors"
	"strconv"

	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase/marketplace"

	"github.com/gofiber/fiber/v3"
)

func mapMarketplaceError(err error) error {
	if err == nil {
		return nil
	}

	var fe *marketplace.FieldError
	switch {
	case errors.As(err, &fe):
		return middleware.NewFieldError(fe.Field, fe.Msg, err)
	case errors.Is(err, marketplace.ErrCompanyNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Company profile not found", err)
	case errors.Is(err, marketplace.ErrCompanyExists):
		return middleware.NewAppError(fiber.StatusBadRequest, "Company profile already exists", err)
	case errors.Is(err, marketplace.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusBadRequest, "You have already applied for this job", err)
	case errors.Is(err, marketplace.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, err)
	case errors.Is(err, marketplace.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, response.MessageForbidden, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}

func pathID(c fiber.Ctx, key string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(key), 10, 64)
	if err != nil || id <= 0 {
		return 0, middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, err)
	}
	return id, nil
}
