package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hotel-ops-backend/controllers"
	leavehandler "hotel-ops-backend/lib/leave-request"
	"hotel-ops-backend/middleware"
	apimodels "hotel-ops-backend/models/api"
	leaveapimodels "hotel-ops-backend/models/api/leave"
)

type leaveRequestApiController struct {
	controllers.BaseAPIController
}

func InitLeaveRequestApiRouters(app *fiber.App) {
	controller := leaveRequestApiController{}
	app.Route("leave_request", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Get(":id", controller.get)
	})
}

// @Summary Create leave request
// @Tags Leave requests
// @Description Creates the leave record and submits its approval request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 leaveapimodels.LeaveRequestData	true	"request body"
// @Success 200 {object} apimodels.Response{data=requestapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ops/leave_request [post]
func (c *leaveRequestApiController) create(ctx *fiber.Ctx) error {
	var payload leaveapimodels.LeaveRequestData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	propertyID := middleware.GetUserProperty(ctx)
	userID := middleware.GetUserID(ctx)
	resp, err := leavehandler.Instance.Create(propertyID, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create leave request")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Leave request by ID
// @Tags Leave requests
// @Description Domain record of a leave request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=leaveapimodels.LeaveRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ops/leave_request/{id} [get]
func (c *leaveRequestApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	propertyID := middleware.GetUserProperty(ctx)
	resp, err := leavehandler.Instance.GetByID(propertyID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get leave request")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
