package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	workflowerrors "hotel-ops-backend/lib/workflow/errors"
	"hotel-ops-backend/middleware"
	apimodels "hotel-ops-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("failed to parse request body")
		return errors.New("failed to read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetIDByKey(ctx, "id")
}

func (c *BaseAPIController) GetIDByKey(ctx *fiber.Ctx, key string) (string, error) {
	id := ctx.Params(key)
	if id == "" {
		return "", errors.Errorf("path parameter %v is empty", key)
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path()).
		WithField("user_id", middleware.GetUserID(ctx))
}

// SendError maps the workflow error kinds to HTTP statuses; anything
// unrecognized is logged and reported as an internal error with the generic
// message only.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	switch {
	case errors.Is(err, workflowerrors.ErrValidation):
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, workflowerrors.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, workflowerrors.ErrForbidden):
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, workflowerrors.ErrIllegalTransition),
		errors.Is(err, workflowerrors.ErrAssigneeResolution):
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, workflowerrors.ErrConflict):
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
	}
	logger.WithError(err).Error(msg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(msg))
}
