package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hotel-ops-backend/controllers"
	employeehandler "hotel-ops-backend/lib/employee"
	"hotel-ops-backend/middleware"
	apimodels "hotel-ops-backend/models/api"
	employeeapimodels "hotel-ops-backend/models/api/employee"
)

type employeeApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeApiRouters(app *fiber.App) {
	controller := employeeApiController{}
	app.Route("employee", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Get(":id", controller.get)
	})
}

// @Summary Employee list
// @Tags Employees
// @Description Employee directory of the property, for pickers
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.EmployeeFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ops/employee/list [post]
func (c *employeeApiController) list(ctx *fiber.Ctx) error {
	var filter employeeapimodels.EmployeeFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	propertyID := middleware.GetUserProperty(ctx)
	list, rowCount, err := employeehandler.Instance.List(propertyID, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list employees")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Employee by ID
// @Tags Employees
// @Description Employee card
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ops/employee/{id} [get]
func (c *employeeApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	propertyID := middleware.GetUserProperty(ctx)
	resp, err := employeehandler.Instance.GetByID(propertyID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get employee")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
