package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hotel-ops-backend/controllers"
	transferhandler "hotel-ops-backend/lib/transfer-request"
	"hotel-ops-backend/middleware"
	apimodels "hotel-ops-backend/models/api"
	transferapimodels "hotel-ops-backend/models/api/transfer"
)

type transferRequestApiController struct {
	controllers.BaseAPIController
}

func InitTransferRequestApiRouters(app *fiber.App) {
	controller := transferRequestApiController{}
	app.Route("transfer_request", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Get(":id", controller.get)
	})
}

// @Summary Create transfer request
// @Tags Transfer requests
// @Description Creates the transfer record and submits its approval request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 transferapimodels.TransferRequestData	true	"request body"
// @Success 200 {object} apimodels.Response{data=requestapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ops/transfer_request [post]
func (c *transferRequestApiController) create(ctx *fiber.Ctx) error {
	var payload transferapimodels.TransferRequestData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	propertyID := middleware.GetUserProperty(ctx)
	userID := middleware.GetUserID(ctx)
	resp, err := transferhandler.Instance.Create(propertyID, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create transfer request")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Transfer request by ID
// @Tags Transfer requests
// @Description Domain record of a transfer request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=transferapimodels.TransferRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ops/transfer_request/{id} [get]
func (c *transferRequestApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	propertyID := middleware.GetUserProperty(ctx)
	resp, err := transferhandler.Instance.GetByID(propertyID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get transfer request")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
